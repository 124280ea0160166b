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
	"encoding/json"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/gymtrack-team/gymtrack/cmd/gymtrack/config"
	"github.com/gymtrack-team/gymtrack/internal/validation"
	"github.com/gymtrack-team/gymtrack/pkg/gym"
	"github.com/gymtrack-team/gymtrack/registry"
)

var filterTier string

// memberSummary is the serializable view of a member for json/yaml output.
type memberSummary struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Tier        string `json:"tier" yaml:"tier"`
	LastCheckIn string `json:"lastCheckIn,omitempty" yaml:"lastCheckIn,omitempty"`
}

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "demo",
		Short:   "Run the gym roster demonstration scenario",
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.Validate(filterTier, []interface{}{"required", "tier"}); err != nil {
				return err
			}

			roster := gym.NewRoster()
			roster.AddMember(gym.NewMemberBuilder("M001", "John Doe").
				SetMembershipType("Premium").
				Build())
			roster.AddMember(gym.NewMemberBuilder("M002", "Jane Smith").Build())
			roster.AddMember(gym.NewMemberBuilder("M003", "Alice Johnson").
				SetMembershipType("Premium").
				Build())

			cmd.Printf("Members with %s membership:\n", filterTier)
			for _, m := range roster.FilterMembersByType(filterTier) {
				cmd.Printf("  %s\n", m.Name())
			}

			roster.SortMembersByName()

			if m, ok := roster.FindMemberByName("Jane Smith"); ok {
				cmd.Printf("Found:\n%s\n", m.DisplayInfo())
				m.CheckIn()
				m.RenewMembership()
			}
			if _, ok := roster.FindMemberByName("Bob"); !ok {
				cmd.Println("No member named Bob")
			}

			reg, err := registry.New()
			if err != nil {
				return err
			}
			it := roster.Iterator()
			for m, ok := it.Next(); ok; m, ok = it.Next() {
				if _, err := reg.RegisterMember(m); err != nil {
					return err
				}
			}

			byTier, err := reg.ListMembersByTier(filterTier)
			if err != nil {
				return err
			}
			cmd.Printf("Registry holds %d %s members\n", len(byTier), filterTier)

			instructor := gym.NewInstructor("I001", "Mike Reyes", "Strength")
			if _, err := reg.RegisterInstructor(instructor); err != nil {
				return err
			}
			instructor.ScheduleTraining("Friday 18:00, main hall")
			instructor.ConductTraining()

			session := gym.NewSession()
			session.Extend(60)
			end := session.Extend(30)
			cmd.Printf("Session %s runs from %s until %s\n",
				session.ID(),
				session.StartTime().Format(time.RFC3339),
				end.Format(time.RFC3339),
			)

			return printRoster(cmd, viper.GetString("output"), roster)
		},
	}
}

func printRoster(cmd *cobra.Command, output string, roster *gym.Roster) error {
	var summaries []memberSummary
	it := roster.Iterator()
	for m, ok := it.Next(); ok; m, ok = it.Next() {
		summary := memberSummary{
			ID:   m.ID(),
			Name: m.Name(),
			Tier: m.Membership().Tier(),
		}
		if checkIn, ok := m.LastCheckIn(); ok {
			summary.LastCheckIn = checkIn.Format(time.RFC3339)
		}
		summaries = append(summaries, summary)
	}

	switch output {
	case "":
		tw := table.NewWriter()
		tw.Style().Options.DrawBorder = false
		tw.Style().Options.SeparateColumns = false
		tw.Style().Options.SeparateFooter = false
		tw.Style().Options.SeparateHeader = false
		tw.Style().Options.SeparateRows = false
		tw.AppendHeader(table.Row{
			"ID",
			"NAME",
			"TIER",
			"LAST CHECK-IN",
		})
		for _, summary := range summaries {
			tw.AppendRow(table.Row{
				summary.ID,
				summary.Name,
				summary.Tier,
				summary.LastCheckIn,
			})
		}
		cmd.Printf("%s\n", tw.Render())
	case "json":
		jsonOutput, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		cmd.Println(string(jsonOutput))
	case "yaml":
		yamlOutput, err := yaml.Marshal(summaries)
		if err != nil {
			return fmt.Errorf("marshal YAML: %w", err)
		}
		cmd.Println(string(yamlOutput))
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}

	return nil
}

func init() {
	cmd := newDemoCommand()
	cmd.Flags().StringVar(
		&filterTier,
		"filter",
		"Premium",
		"The membership tier to filter the roster by",
	)
	rootCmd.AddCommand(cmd)
}
