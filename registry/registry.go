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

// Package registry provides an indexed in-memory directory over the people
// known to the gym. It complements the roster: the roster preserves
// insertion order for browsing, the registry answers indexed lookups by
// registration id, name, tier and expertise.
package registry

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-memdb"
	"github.com/rs/xid"

	"github.com/gymtrack-team/gymtrack/pkg/gym"
)

// ErrMemberNotFound is returned when the given registration id is not in
// the registry.
var ErrMemberNotFound = errors.New("member not found")

// memberRecord wraps a Member with a registration id for storage. Records
// are keyed by RefID; the member-id and name indexes are non-unique, so
// duplicate ids and names in the roster stay representable here.
type memberRecord struct {
	RefID    string
	MemberID string
	Name     string
	Tier     string
	Member   *gym.Member
}

// instructorRecord wraps an Instructor with a registration id for storage.
type instructorRecord struct {
	RefID      string
	Expertise  string
	Instructor *gym.Instructor
}

// Registry is an in-memory directory of members and instructors.
type Registry struct {
	db *memdb.MemDB
}

// New returns a new in-memory registry.
func New() (*Registry, error) {
	memDB, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("new memdb: %w", err)
	}

	return &Registry{
		db: memDB,
	}, nil
}

// RegisterMember adds the member to the registry and returns its
// registration id. Registering the same member twice creates two records.
func (r *Registry) RegisterMember(m *gym.Member) (string, error) {
	txn := r.db.Txn(true)
	defer txn.Abort()

	record := &memberRecord{
		RefID:    xid.New().String(),
		MemberID: m.ID(),
		Name:     m.Name(),
		Tier:     m.Membership().Tier(),
		Member:   m,
	}
	if err := txn.Insert(tblMembers, record); err != nil {
		return "", fmt.Errorf("insert member: %w", err)
	}
	txn.Commit()

	return record.RefID, nil
}

// RegisterInstructor adds the instructor to the registry and returns its
// registration id.
func (r *Registry) RegisterInstructor(i *gym.Instructor) (string, error) {
	txn := r.db.Txn(true)
	defer txn.Abort()

	record := &instructorRecord{
		RefID:      xid.New().String(),
		Expertise:  i.Expertise(),
		Instructor: i,
	}
	if err := txn.Insert(tblInstructors, record); err != nil {
		return "", fmt.Errorf("insert instructor: %w", err)
	}
	txn.Commit()

	return record.RefID, nil
}

// FindMemberByRefID returns the member registered under the given
// registration id.
func (r *Registry) FindMemberByRefID(refID string) (*gym.Member, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblMembers, "id", refID)
	if err != nil {
		return nil, fmt.Errorf("find member by ref id: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%s: %w", refID, ErrMemberNotFound)
	}

	return raw.(*memberRecord).Member, nil
}

// SearchMembersByName returns every member registered under the given name,
// matched case-insensitively against the full name, in registration order.
func (r *Registry) SearchMembersByName(name string) ([]*gym.Member, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tblMembers, "name", name)
	if err != nil {
		return nil, fmt.Errorf("search members by name: %w", err)
	}

	var members []*gym.Member
	for raw := it.Next(); raw != nil; raw = it.Next() {
		members = append(members, raw.(*memberRecord).Member)
	}
	return members, nil
}

// ListMembersByTier returns every member whose membership tier equals the
// given tier, in registration order.
func (r *Registry) ListMembersByTier(tier string) ([]*gym.Member, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tblMembers, "tier", tier)
	if err != nil {
		return nil, fmt.Errorf("list members by tier: %w", err)
	}

	var members []*gym.Member
	for raw := it.Next(); raw != nil; raw = it.Next() {
		members = append(members, raw.(*memberRecord).Member)
	}
	return members, nil
}

// ListMembers returns all registered members in registration order.
func (r *Registry) ListMembers() ([]*gym.Member, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tblMembers, "id")
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	var members []*gym.Member
	for raw := it.Next(); raw != nil; raw = it.Next() {
		members = append(members, raw.(*memberRecord).Member)
	}
	return members, nil
}

// FindInstructorsByExpertise returns every instructor with the given
// expertise, matched case-insensitively.
func (r *Registry) FindInstructorsByExpertise(expertise string) ([]*gym.Instructor, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tblInstructors, "expertise", expertise)
	if err != nil {
		return nil, fmt.Errorf("find instructors by expertise: %w", err)
	}

	var instructors []*gym.Instructor
	for raw := it.Next(); raw != nil; raw = it.Next() {
		instructors = append(instructors, raw.(*instructorRecord).Instructor)
	}
	return instructors, nil
}
