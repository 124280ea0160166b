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
	"time"

	"github.com/gymtrack-team/gymtrack/internal/log"
	"github.com/gymtrack-team/gymtrack/pkg/clock"
)

// Member is a person holding a gym membership. Members are created only
// through MemberBuilder; identity and membership type are immutable after
// Build, only the last check-in changes afterwards.
type Member struct {
	Person

	membership  MembershipType
	lastCheckIn time.Time
	checkedIn   bool
	clock       clock.Clock
}

// MemberBuilder builds a Member. ID and name are required up front, the
// membership type defaults to DefaultTier. No format or uniqueness checks
// are applied to id and name; empty and duplicate values are accepted.
type MemberBuilder struct {
	id    string
	name  string
	tier  string
	clock clock.Clock
}

// NewMemberBuilder creates a new MemberBuilder with the given id and name.
func NewMemberBuilder(id, name string) *MemberBuilder {
	return &MemberBuilder{
		id:    id,
		name:  name,
		tier:  DefaultTier,
		clock: clock.System(),
	}
}

// SetMembershipType sets the membership tier text.
func (b *MemberBuilder) SetMembershipType(tier string) *MemberBuilder {
	b.tier = tier
	return b
}

// SetClock sets the time source used to record check-ins.
func (b *MemberBuilder) SetClock(c clock.Clock) *MemberBuilder {
	b.clock = c
	return b
}

// Build creates the Member.
func (b *MemberBuilder) Build() *Member {
	return &Member{
		Person:     Person{id: b.id, name: b.name},
		membership: NewMembershipType(b.tier),
		clock:      b.clock,
	}
}

// Membership returns the membership type of this member.
func (m *Member) Membership() MembershipType {
	return m.membership
}

// DisplayInfo returns the member summary: the identity line followed by the
// membership type line.
func (m *Member) DisplayInfo() string {
	return fmt.Sprintf("ID: %s, Name: %s\n%s", m.id, m.name, m.membership.TypeInfo())
}

// RenewMembership announces a renewal. It changes no state.
func (m *Member) RenewMembership() {
	log.Logger.Infof("membership renewed for %s (%s)", m.name, m.membership.Tier())
}

// CheckIn records the current time as the member's last check-in and
// returns it.
func (m *Member) CheckIn() time.Time {
	m.lastCheckIn = m.clock.Now()
	m.checkedIn = true
	log.Logger.Infof("%s checked in at %s", m.name, m.lastCheckIn.Format(time.RFC3339))
	return m.lastCheckIn
}

// LastCheckIn returns the last recorded check-in time. The second return
// value is false if the member never checked in.
func (m *Member) LastCheckIn() (time.Time, bool) {
	return m.lastCheckIn, m.checkedIn
}
