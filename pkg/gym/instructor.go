/*
 * Copyright 2026 The GymTrack Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package gym

import (
	"fmt"

	"github.com/gymtrack-team/gymtrack/internal/log"
)

// Instructor is a person that runs training in the gym. Immutable after
// construction.
type Instructor struct {
	Person

	expertise string
}

// NewInstructor creates a new Instructor.
func NewInstructor(id, name, expertise string) *Instructor {
	return &Instructor{
		Person:    Person{id: id, name: name},
		expertise: expertise,
	}
}

// Expertise returns the expertise of this instructor.
func (i *Instructor) Expertise() string {
	return i.expertise
}

// DisplayInfo returns the instructor summary.
func (i *Instructor) DisplayInfo() string {
	return fmt.Sprintf("ID: %s, Name: %s\nExpertise: %s", i.id, i.name, i.expertise)
}

// ScheduleTraining announces a scheduled training. It changes no state.
func (i *Instructor) ScheduleTraining(details string) {
	log.Logger.Infof("%s scheduled training: %s", i.name, details)
}

// ConductTraining announces a training run by this instructor in their
// field of expertise. It changes no state.
func (i *Instructor) ConductTraining() {
	log.Logger.Infof("%s is conducting a %s training", i.name, i.expertise)
}
