// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".querytree.yaml"

type OutputConfig struct {
	Color bool `yaml:"color"`
}

type CacheConfig struct {
	Enabled         bool          `yaml:"enabled"`
	Expiration      time.Duration `yaml:"expiration"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

type FilterConfig struct {
	ExpectedItems     uint    `yaml:"expected_items"`
	FalsePositiveRate float64 `yaml:"false_positive_rate"`
}

type CommandsConfig struct {
	// Contains enables the "c <value>" membership command.
	Contains bool `yaml:"contains"`
}

type InputConfig struct {
	Progress bool `yaml:"progress"`
}

type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Cache    CacheConfig    `yaml:"cache"`
	Filter   FilterConfig   `yaml:"filter"`
	Commands CommandsConfig `yaml:"commands"`
	Input    InputConfig    `yaml:"input"`
}

var defaultConfig = Config{
	Output: OutputConfig{
		Color: true,
	},
	Cache: CacheConfig{
		Enabled:         true,
		Expiration:      5 * time.Minute,
		CleanupInterval: 10 * time.Minute,
	},
	Filter: FilterConfig{
		ExpectedItems:     100000,
		FalsePositiveRate: 0.01,
	},
	Commands: CommandsConfig{
		Contains: false,
	},
	Input: InputConfig{
		Progress: true,
	},
}

// DefaultConfig returns a copy of the built-in settings.
func DefaultConfig() *Config {
	cfg := defaultConfig
	return &cfg
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads the configuration at path. Fields missing from the file
// keep their defaults. A missing file is not an error; an unreadable or
// invalid one yields the defaults together with the error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.Filter.FalsePositiveRate <= 0 || c.Filter.FalsePositiveRate >= 1 {
		return fmt.Errorf("filter.false_positive_rate must be in (0, 1), got %v", c.Filter.FalsePositiveRate)
	}
	if c.Filter.ExpectedItems == 0 {
		return errors.New("filter.expected_items must be positive")
	}
	if c.Cache.Expiration < 0 {
		return fmt.Errorf("cache.expiration must not be negative, got %v", c.Cache.Expiration)
	}
	return nil
}

func createDefaultConfigFile(path string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// displaySettings prints the effective configuration, writing the default
// file first when none exists.
func displaySettings(w io.Writer, path string) error {
	created := false
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := createDefaultConfigFile(path); err != nil {
			return err
		}
		created = true
	}

	config, err := LoadConfig(path)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if created {
		fmt.Fprintf(w, "Config file: %s (newly created)\n\n", path)
	} else {
		fmt.Fprintf(w, "Config file: %s\n\n", path)
	}
	_, err = w.Write(data)
	return err
}
