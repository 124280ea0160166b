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

// Package main is the entry point of the GymTrack CLI.
package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gymtrack-team/gymtrack/internal/log"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "gymtrack",
	Short: "In-memory gym membership roster and session tracking",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.SetLogLevel(logLevel)
	},
}

// Run executes CLI.
func Run() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}

	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&logLevel,
		"log-level",
		"info",
		"Log level: debug, info, warn, error, panic, fatal",
	)
	rootCmd.PersistentFlags().String(
		"output",
		"",
		"Output format: one of 'yaml' or 'json'",
	)
	if err := viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")); err != nil {
		panic(err)
	}
}
