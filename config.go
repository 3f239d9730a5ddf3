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

const configFileName = ".avltree.yaml"

// Interfaces a session can be driven through
const (
	InterfaceTUI   = "tui"
	InterfacePlain = "plain"
)

type MenuConfig struct {
	Interface string `yaml:"interface"`
	Seed      []int  `yaml:"seed"`
}

type RenderConfig struct {
	CacheMinutes int  `yaml:"cache_minutes"`
	ShowStats    bool `yaml:"show_stats"`
}

type Config struct {
	Menu   MenuConfig   `yaml:"menu"`
	Render RenderConfig `yaml:"render"`
	Quiet  bool         `yaml:"quiet"`
}

func defaultConfig() *Config {
	return &Config{
		Menu: MenuConfig{
			Interface: InterfaceTUI,
			Seed:      []int{},
		},
		Render: RenderConfig{
			CacheMinutes: 30,
			ShowStats:    true,
		},
		Quiet: false,
	}
}

// CacheExpiry is how long a rendering stays in the render cache
func (c *Config) CacheExpiry() time.Duration {
	if c.Render.CacheMinutes <= 0 {
		return renderCacheExpiration
	}
	return time.Duration(c.Render.CacheMinutes) * time.Minute
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.avltree.yaml. A missing file gives the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return defaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// keys missing from the file keep their defaults
	config := defaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	switch config.Menu.Interface {
	case InterfaceTUI, InterfacePlain:
	case "":
		config.Menu.Interface = InterfaceTUI
	default:
		return nil, fmt.Errorf("config %s: unknown menu interface %q", configPath, config.Menu.Interface)
	}

	return config, nil
}

func writeDefaultConfig(configPath string) error {
	data, err := yaml.Marshal(defaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

// displaySettings prints the effective configuration, creating the default
// file first when there is none.
func displaySettings(out io.Writer, configPath string) error {
	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(out, "Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfig(configPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "%sCreated default configuration at: %s%s\n\n", Green, configPath, Reset)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "avltree Configuration Settings\n")
	fmt.Fprintf(out, "══════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(out, "Config file: %s\n\n", configPath)
	} else {
		fmt.Fprintf(out, "Config file: %s (newly created)\n\n", configPath)
	}

	fmt.Fprintf(out, "%sMenu:%s\n", Green, Reset)
	fmt.Fprintf(out, "  • interface: %s\n", config.Menu.Interface)
	if len(config.Menu.Seed) == 0 {
		fmt.Fprintf(out, "  • seed: none (sessions start with an empty tree)\n\n")
	} else {
		fmt.Fprintf(out, "  • seed: %v\n\n", config.Menu.Seed)
	}

	fmt.Fprintf(out, "%sRendering:%s\n", Green, Reset)
	fmt.Fprintf(out, "  • cache_minutes: %d\n", config.Render.CacheMinutes)
	fmt.Fprintf(out, "  • show_stats: %t\n\n", config.Render.ShowStats)

	fmt.Fprintf(out, "%sOutput:%s\n", Green, Reset)
	fmt.Fprintf(out, "  • quiet: %t\n", config.Quiet)

	return nil
}
