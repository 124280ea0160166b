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

// Package config provides the configuration of the GymTrack CLI.
package config

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ensureGymTrackDir ensures that the directory of GymTrack exists.
func ensureGymTrackDir() (string, error) {
	gymTrackDir := path.Join(os.Getenv("HOME"), ".gymtrack")
	if err := os.MkdirAll(gymTrackDir, 0700); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	return gymTrackDir, nil
}

// configPath returns the path of the CLI configuration file.
func configPath() (string, error) {
	gymTrackDir, err := ensureGymTrackDir()
	if err != nil {
		return "", fmt.Errorf("ensure gymtrack dir: %w", err)
	}
	return path.Join(gymTrackDir, "config.yaml"), nil
}

// Config is the configuration of CLI.
type Config struct {
	// Output is the default output format: "", "json" or "yaml".
	Output string `yaml:"output"`

	// LogLevel is the default level of the logger.
	LogLevel string `yaml:"logLevel"`
}

// New creates a new configuration.
func New() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// Load loads the configuration from the config file.
func Load() (*Config, error) {
	configPathValue, err := configPath()
	if err != nil {
		return nil, fmt.Errorf("get config path: %w", err)
	}

	bytes, err := os.ReadFile(filepath.Clean(configPathValue))
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}

		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := New()
	if err := yaml.Unmarshal(bytes, config); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	return config, nil
}

// Save saves the configuration to the config file.
func Save(config *Config) error {
	configPathValue, err := configPath()
	if err != nil {
		return fmt.Errorf("get config path: %w", err)
	}

	bytes, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(configPathValue), bytes, 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Delete deletes the configuration file.
func Delete() error {
	configPathValue, err := configPath()
	if err != nil {
		return fmt.Errorf("get config path: %w", err)
	}

	if err := os.Remove(filepath.Clean(configPathValue)); err != nil {
		return fmt.Errorf("remove config file: %w", err)
	}

	return nil
}

// Preload loads the configuration into viper before a command runs, so
// flags that were not given fall back to the configured defaults.
func Preload(_ *cobra.Command, _ []string) error {
	config, err := Load()
	if err != nil {
		return err
	}

	viper.SetDefault("output", config.Output)
	viper.SetDefault("logLevel", config.LogLevel)
	return nil
}
