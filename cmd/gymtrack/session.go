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

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/gymtrack-team/gymtrack/internal/validation"
	"github.com/gymtrack-team/gymtrack/pkg/gym"
)

var extensions []int

func newSessionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Start a training session and apply extensions to it",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, minutes := range extensions {
				if err := validation.ValidateValue(minutes, "gte=0"); err != nil {
					return err
				}
			}

			session := gym.NewSession()
			cmd.Printf("Session %s started at %s\n",
				session.ID(),
				session.StartTime().Format(time.RFC3339),
			)

			for _, minutes := range extensions {
				end := session.Extend(minutes)
				cmd.Printf("Extended by %dm until %s\n", minutes, end.Format(time.RFC3339))
			}

			if end, ok := session.EndTime(); ok {
				cmd.Printf("Session %s ends at %s\n", session.ID(), end.Format(time.RFC3339))
			} else {
				cmd.Printf("Session %s has no scheduled end\n", session.ID())
			}

			return nil
		},
	}
}

func init() {
	cmd := newSessionCommand()
	cmd.Flags().IntSliceVar(
		&extensions,
		"extend",
		nil,
		"Minutes to extend the session by; may be repeated",
	)
	rootCmd.AddCommand(cmd)
}
