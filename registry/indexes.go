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

package registry

import "github.com/hashicorp/go-memdb"

var (
	tblMembers     = "members"
	tblInstructors = "instructors"
)

var schema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		tblMembers: {
			Name: tblMembers,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "RefID"},
				},
				"member_id": {
					Name:    "member_id",
					Indexer: &memdb.StringFieldIndex{Field: "MemberID"},
				},
				"name": {
					Name:    "name",
					Indexer: &memdb.StringFieldIndex{Field: "Name", Lowercase: true},
				},
				"tier": {
					Name:    "tier",
					Indexer: &memdb.StringFieldIndex{Field: "Tier"},
				},
			},
		},
		tblInstructors: {
			Name: tblInstructors,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "RefID"},
				},
				"expertise": {
					Name:    "expertise",
					Indexer: &memdb.StringFieldIndex{Field: "Expertise", Lowercase: true},
				},
			},
		},
	},
}
