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

// Package gym provides the entities of the gym membership roster: members
// built through a builder, instructors, training sessions and the roster
// that owns the member collection.
package gym

// Displayable is implemented by entities that can render a human-readable
// summary of themselves.
type Displayable interface {
	DisplayInfo() string
}

// Person is the identity shared by all people in the gym. It is embedded by
// Member and Instructor and is immutable after construction.
type Person struct {
	id   string
	name string
}

// ID returns the id of this person.
func (p Person) ID() string {
	return p.id
}

// Name returns the name of this person.
func (p Person) Name() string {
	return p.name
}
