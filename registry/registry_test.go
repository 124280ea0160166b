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

package registry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gymtrack-team/gymtrack/pkg/gym"
	"github.com/gymtrack-team/gymtrack/registry"
)

func newMember(id, name, tier string) *gym.Member {
	return gym.NewMemberBuilder(id, name).SetMembershipType(tier).Build()
}

func TestRegistry(t *testing.T) {
	t.Run("register and find by ref id test", func(t *testing.T) {
		reg, err := registry.New()
		assert.NoError(t, err)

		m := newMember("M001", "Jane Smith", "Premium")
		refID, err := reg.RegisterMember(m)
		assert.NoError(t, err)
		assert.NotEmpty(t, refID)

		found, err := reg.FindMemberByRefID(refID)
		assert.NoError(t, err)
		assert.Same(t, m, found)
	})

	t.Run("find unknown ref id test", func(t *testing.T) {
		reg, err := registry.New()
		assert.NoError(t, err)

		_, err = reg.FindMemberByRefID("missing")
		assert.True(t, errors.Is(err, registry.ErrMemberNotFound))
	})

	t.Run("duplicate member ids are both retained test", func(t *testing.T) {
		reg, err := registry.New()
		assert.NoError(t, err)

		refA, err := reg.RegisterMember(newMember("M001", "Jane Smith", "Standard"))
		assert.NoError(t, err)
		refB, err := reg.RegisterMember(newMember("M001", "Jane Smith", "Standard"))
		assert.NoError(t, err)
		assert.NotEqual(t, refA, refB)

		members, err := reg.ListMembers()
		assert.NoError(t, err)
		assert.Len(t, members, 2)
	})

	t.Run("search by name is case-insensitive test", func(t *testing.T) {
		reg, err := registry.New()
		assert.NoError(t, err)

		m := newMember("M001", "Jane Smith", "Standard")
		_, err = reg.RegisterMember(m)
		assert.NoError(t, err)
		_, err = reg.RegisterMember(newMember("M002", "John Doe", "Standard"))
		assert.NoError(t, err)

		found, err := reg.SearchMembersByName("jane smith")
		assert.NoError(t, err)
		assert.Len(t, found, 1)
		assert.Same(t, m, found[0])

		none, err := reg.SearchMembersByName("Jane")
		assert.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("list by tier test", func(t *testing.T) {
		reg, err := registry.New()
		assert.NoError(t, err)

		premiumA := newMember("M001", "John Doe", "Premium")
		standard := newMember("M002", "Jane Smith", "Standard")
		premiumB := newMember("M003", "Alice Johnson", "Premium")
		for _, m := range []*gym.Member{premiumA, standard, premiumB} {
			_, err = reg.RegisterMember(m)
			assert.NoError(t, err)
		}

		premium, err := reg.ListMembersByTier("Premium")
		assert.NoError(t, err)
		assert.ElementsMatch(t, []*gym.Member{premiumA, premiumB}, premium)
	})

	t.Run("find instructors by expertise test", func(t *testing.T) {
		reg, err := registry.New()
		assert.NoError(t, err)

		strength := gym.NewInstructor("I001", "Mike Reyes", "Strength")
		yoga := gym.NewInstructor("I002", "Dana Cole", "Yoga")
		for _, i := range []*gym.Instructor{strength, yoga} {
			_, err = reg.RegisterInstructor(i)
			assert.NoError(t, err)
		}

		found, err := reg.FindInstructorsByExpertise("strength")
		assert.NoError(t, err)
		assert.Len(t, found, 1)
		assert.Same(t, strength, found[0])
	})
}
