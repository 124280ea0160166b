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
	"time"

	"github.com/rs/xid"

	"github.com/gymtrack-team/gymtrack/internal/log"
	"github.com/gymtrack-team/gymtrack/pkg/clock"
)

// Session is a training session timer. It starts at construction time and
// has no end until the first Extend call.
type Session struct {
	id        string
	startTime time.Time
	endTime   time.Time
	hasEnd    bool
}

// SessionOption configures a Session at construction.
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	clock clock.Clock
}

// WithClock sets the time source that provides the session start time.
func WithClock(c clock.Clock) SessionOption {
	return func(o *sessionOptions) {
		o.clock = c
	}
}

// NewSession creates a new Session with a generated id, started now.
func NewSession(opts ...SessionOption) *Session {
	options := sessionOptions{clock: clock.System()}
	for _, opt := range opts {
		opt(&options)
	}

	return &Session{
		id:        xid.New().String(),
		startTime: options.clock.Now(),
	}
}

// ID returns the id of this session.
func (s *Session) ID() string {
	return s.id
}

// StartTime returns the time the session started.
func (s *Session) StartTime() time.Time {
	return s.startTime
}

// EndTime returns the scheduled end of the session. The second return value
// is false if the session was never extended.
func (s *Session) EndTime() (time.Time, bool) {
	return s.endTime, s.hasEnd
}

// Extend pushes the session end out by the given number of minutes, counted
// from the current end, or from the start if no end is set yet. Repeated
// calls accumulate. Negative minutes move the end backward; the caller is
// expected to validate if that is unwanted.
func (s *Session) Extend(minutes int) time.Time {
	base := s.startTime
	if s.hasEnd {
		base = s.endTime
	}

	s.endTime = base.Add(time.Duration(minutes) * time.Minute)
	s.hasEnd = true
	log.Logger.Infof("session %s extended until %s", s.id, s.endTime.Format(time.RFC3339))
	return s.endTime
}
