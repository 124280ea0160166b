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

// DefaultTier is the tier assigned to members that never chose one.
const DefaultTier = "Standard"

// MembershipType is the tier label attached to a member.
type MembershipType struct {
	tier string
}

// NewMembershipType creates a new MembershipType with the given tier text.
func NewMembershipType(tier string) MembershipType {
	return MembershipType{tier: tier}
}

// Tier returns the raw tier text.
func (t MembershipType) Tier() string {
	return t.tier
}

// TypeInfo returns the display string of this membership type.
func (t MembershipType) TypeInfo() string {
	return "Membership Type: " + t.tier
}
