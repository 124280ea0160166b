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
	"sort"
	"strings"

	"github.com/gymtrack-team/gymtrack/internal/log"
)

// Roster owns the ordered collection of members of the gym. Members keep
// their insertion order until an explicit sort. No uniqueness constraint is
// enforced on id or name; duplicates are retained. The roster is not safe
// for concurrent use.
type Roster struct {
	members []*Member
}

// NewRoster creates a new empty Roster.
func NewRoster() *Roster {
	return &Roster{}
}

// AddMember appends the member to the end of the roster.
func (r *Roster) AddMember(m *Member) {
	r.members = append(r.members, m)
	log.Logger.Infof("member added: %s (%s)", m.Name(), m.ID())
}

// Len returns the number of members in the roster.
func (r *Roster) Len() int {
	return len(r.members)
}

// FilterMembersByType returns, in current roster order, every member whose
// membership display text contains the given substring, ignoring case. The
// roster is not mutated; an empty result is valid.
func (r *Roster) FilterMembersByType(substr string) []*Member {
	needle := strings.ToLower(substr)

	var filtered []*Member
	for _, m := range r.members {
		if strings.Contains(strings.ToLower(m.Membership().TypeInfo()), needle) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// SortMembersByName sorts the roster in place by member name. The sort is
// stable: members with equal names keep their prior relative order.
func (r *Roster) SortMembersByName() {
	sort.SliceStable(r.members, func(i, j int) bool {
		return r.members[i].Name() < r.members[j].Name()
	})

	names := make([]string, len(r.members))
	for i, m := range r.members {
		names[i] = m.Name()
	}
	log.Logger.Infof("roster sorted by name: %s", strings.Join(names, ", "))
}

// FindMemberByName returns the first member, in current roster order, whose
// name equals the given name ignoring case. The match is against the full
// name, not a substring. The second return value is false when no member
// matches.
func (r *Roster) FindMemberByName(name string) (*Member, bool) {
	for _, m := range r.members {
		if strings.EqualFold(m.Name(), name) {
			return m, true
		}
	}
	return nil, false
}

// Iterator returns a cursor over the roster in its order at call time. The
// cursor is single-pass and forward-only; sorts or additions applied after
// the cursor was created are not reflected by it. Request a fresh cursor to
// observe them.
func (r *Roster) Iterator() *Cursor {
	snapshot := make([]*Member, len(r.members))
	copy(snapshot, r.members)
	return &Cursor{members: snapshot}
}

// Cursor is a single-pass forward iteration handle over the roster's member
// sequence.
type Cursor struct {
	members []*Member
	pos     int
}

// Next returns the next member. The second return value is false when the
// cursor is exhausted.
func (c *Cursor) Next() (*Member, bool) {
	if c.pos >= len(c.members) {
		return nil, false
	}

	m := c.members[c.pos]
	c.pos++
	return m, true
}
