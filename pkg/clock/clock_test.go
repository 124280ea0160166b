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

package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gymtrack-team/gymtrack/pkg/clock"
)

func TestClock(t *testing.T) {
	t.Run("system clock test", func(t *testing.T) {
		before := time.Now()
		now := clock.System().Now()
		after := time.Now()

		assert.False(t, now.Before(before))
		assert.False(t, now.After(after))
	})

	t.Run("fixed clock test", func(t *testing.T) {
		base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
		c := clock.Fixed(base)

		assert.Equal(t, base, c.Now())
		assert.Equal(t, base, c.Now())

		c.Advance(30 * time.Minute)
		assert.Equal(t, base.Add(30*time.Minute), c.Now())

		c.Set(base)
		assert.Equal(t, base, c.Now())
	})
}
