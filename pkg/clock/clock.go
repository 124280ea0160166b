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

// Package clock provides time sources for entities that record timestamps.
// Entities take a Clock instead of calling time.Now so that tests can supply
// deterministic values.
package clock

import "time"

// Clock is a source of the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns a Clock backed by the wall clock.
func System() Clock {
	return systemClock{}
}

// FixedClock is a Clock that returns a manually controlled time.
type FixedClock struct {
	now time.Time
}

// Fixed creates a new FixedClock set to the given time.
func Fixed(t time.Time) *FixedClock {
	return &FixedClock{now: t}
}

// Now returns the currently set time.
func (c *FixedClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by the given duration.
func (c *FixedClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Set sets the clock to the given time.
func (c *FixedClock) Set(t time.Time) {
	c.now = t
}
