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

package gym_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gymtrack-team/gymtrack/pkg/gym"
)

func member(id, name, tier string) *gym.Member {
	return gym.NewMemberBuilder(id, name).SetMembershipType(tier).Build()
}

func names(members []*gym.Member) []string {
	result := make([]string, len(members))
	for i, m := range members {
		result[i] = m.Name()
	}
	return result
}

func iterate(r *gym.Roster) []*gym.Member {
	var members []*gym.Member
	it := r.Iterator()
	for m, ok := it.Next(); ok; m, ok = it.Next() {
		members = append(members, m)
	}
	return members
}

func TestRoster(t *testing.T) {
	t.Run("iteration preserves insertion order test", func(t *testing.T) {
		roster := gym.NewRoster()
		roster.AddMember(member("M003", "Carol", "Premium"))
		roster.AddMember(member("M001", "Alice", "Standard"))
		roster.AddMember(member("M002", "Bob", "Premium"))

		assert.Equal(t, []string{"Carol", "Alice", "Bob"}, names(iterate(roster)))
		assert.Equal(t, 3, roster.Len())
	})

	t.Run("duplicate ids are retained test", func(t *testing.T) {
		roster := gym.NewRoster()
		roster.AddMember(member("M001", "Alice", "Standard"))
		roster.AddMember(member("M001", "Alice", "Standard"))

		assert.Equal(t, 2, roster.Len())
	})

	t.Run("filter by type test", func(t *testing.T) {
		roster := gym.NewRoster()
		roster.AddMember(member("M001", "Alice", "Premium"))
		roster.AddMember(member("M002", "Bob", "Standard"))
		roster.AddMember(member("M003", "Carol", "Premium"))

		premium := roster.FilterMembersByType("Premium")
		assert.Equal(t, []string{"Alice", "Carol"}, names(premium))

		// case-insensitive substring match
		assert.Equal(t, []string{"Alice", "Carol"}, names(roster.FilterMembersByType("prem")))
		assert.Equal(t, []string{"Alice", "Bob", "Carol"}, names(roster.FilterMembersByType("membership type")))

		// idempotent and non-mutating
		assert.Equal(t, names(premium), names(roster.FilterMembersByType("Premium")))
		assert.Equal(t, []string{"Alice", "Bob", "Carol"}, names(iterate(roster)))

		assert.Empty(t, roster.FilterMembersByType("Gold"))
	})

	t.Run("sort by name test", func(t *testing.T) {
		roster := gym.NewRoster()
		roster.AddMember(member("M003", "Carol", "Premium"))
		roster.AddMember(member("M001", "Alice", "Standard"))
		roster.AddMember(member("M002", "Bob", "Premium"))

		roster.SortMembersByName()
		assert.Equal(t, []string{"Alice", "Bob", "Carol"}, names(iterate(roster)))
	})

	t.Run("sort is stable test", func(t *testing.T) {
		roster := gym.NewRoster()
		first := member("M010", "Alice", "Premium")
		second := member("M020", "Alice", "Standard")
		roster.AddMember(member("M030", "Bob", "Standard"))
		roster.AddMember(first)
		roster.AddMember(second)

		roster.SortMembersByName()

		members := iterate(roster)
		assert.Equal(t, []string{"Alice", "Alice", "Bob"}, names(members))
		assert.Same(t, first, members[0])
		assert.Same(t, second, members[1])
	})

	t.Run("find by name test", func(t *testing.T) {
		roster := gym.NewRoster()
		roster.AddMember(member("M001", "Jane Smith", "Standard"))
		roster.AddMember(member("M002", "Jane Smith", "Premium"))

		// case-insensitive, full-string match; first match wins
		m, ok := roster.FindMemberByName("JANE SMITH")
		assert.True(t, ok)
		assert.Equal(t, "M001", m.ID())

		// substring does not match
		_, ok = roster.FindMemberByName("Jan")
		assert.False(t, ok)

		m, ok = roster.FindMemberByName("Bob")
		assert.False(t, ok)
		assert.Nil(t, m)
	})

	t.Run("cursor snapshots the order at creation test", func(t *testing.T) {
		roster := gym.NewRoster()
		roster.AddMember(member("M002", "Bob", "Standard"))
		roster.AddMember(member("M001", "Alice", "Standard"))

		it := roster.Iterator()
		roster.SortMembersByName()

		m, ok := it.Next()
		assert.True(t, ok)
		assert.Equal(t, "Bob", m.Name())
		m, ok = it.Next()
		assert.True(t, ok)
		assert.Equal(t, "Alice", m.Name())
		_, ok = it.Next()
		assert.False(t, ok)

		// a fresh cursor reflects the sort
		assert.Equal(t, []string{"Alice", "Bob"}, names(iterate(roster)))
	})

	t.Run("end-to-end scenario test", func(t *testing.T) {
		roster := gym.NewRoster()
		roster.AddMember(member("M001", "John Doe", "Premium"))
		roster.AddMember(gym.NewMemberBuilder("M002", "Jane Smith").Build())
		roster.AddMember(member("M003", "Alice Johnson", "Premium"))

		assert.Equal(t, []string{"John Doe", "Alice Johnson"}, names(roster.FilterMembersByType("Premium")))

		roster.SortMembersByName()
		assert.Equal(t, []string{"Alice Johnson", "Jane Smith", "John Doe"}, names(iterate(roster)))

		m, ok := roster.FindMemberByName("Jane Smith")
		assert.True(t, ok)
		assert.Equal(t, "M002", m.ID())

		_, ok = roster.FindMemberByName("Bob")
		assert.False(t, ok)
	})
}
