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
	"fmt"
	"os"
	"path/filepath"

	"github.com/cybrota/arbor/trees"
	"gopkg.in/yaml.v3"
)

const configFileName = ".arbor.yaml"

type TreeConfig struct {
	DefaultKind string `yaml:"default_kind"`
	Traversal   string `yaml:"traversal"`
}

type RenderConfig struct {
	Colors bool `yaml:"colors"`
}

type StressConfig struct {
	Rounds int   `yaml:"rounds"`
	Values int   `yaml:"values"`
	Seed   int64 `yaml:"seed"` // 0 picks a time based seed
}

type ExploreConfig struct {
	AutoSave bool `yaml:"auto_save"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Tree    TreeConfig    `yaml:"tree"`
	Render  RenderConfig  `yaml:"render"`
	Stress  StressConfig  `yaml:"stress"`
	Explore ExploreConfig `yaml:"explore"`
	Log     LogConfig     `yaml:"log"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		DefaultKind: string(trees.KindAVL),
		Traversal:   string(trees.Inorder),
	},
	Render: RenderConfig{
		Colors: true,
	},
	Stress: StressConfig{
		Rounds: 200,
		Values: 64,
	},
	Explore: ExploreConfig{
		AutoSave: false,
	},
	Log: LogConfig{
		Level: "info",
	},
}

// Kind returns the configured default engine, falling back to AVL
func (c *Config) Kind() trees.Kind {
	kind, err := trees.ParseKind(c.Tree.DefaultKind)
	if err != nil {
		return trees.KindAVL
	}
	return kind
}

// Order returns the configured traversal, falling back to inorder
func (c *Config) Order() trees.Order {
	order, err := trees.ParseOrder(c.Tree.Traversal)
	if err != nil {
		return trees.Inorder
	}
	return order
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig
		return &cfg, nil
	}
	return loadConfigFrom(configPath)
}

// loadConfigFrom reads path over the defaults. A missing or unreadable file
// yields the defaults; only a malformed file is reported.
func loadConfigFrom(configPath string) (*Config, error) {
	config := defaultConfig

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &config, nil
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig
		return &fallback, fmt.Errorf("failed to parse %s: %v", configPath, err)
	}

	if config.Stress.Rounds <= 0 {
		config.Stress.Rounds = defaultConfig.Stress.Rounds
	}
	if config.Stress.Values <= 0 {
		config.Stress.Values = defaultConfig.Stress.Values
	}
	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfig(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}
	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfig(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 Arbor Configuration Settings\n")
	fmt.Printf("═══════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sTree:%s\n", Green, Reset)
	fmt.Printf("  • %sdefault_kind%s: %s (%s)\n", Green, Reset, config.Kind(), config.Kind().Title())
	fmt.Printf("  • %straversal%s: %s\n\n", Green, Reset, config.Order())

	fmt.Printf("🎨 %sRender:%s\n", Green, Reset)
	fmt.Printf("  • %scolors%s: %t\n\n", Green, Reset, config.Render.Colors)

	fmt.Printf("🧪 %sStress:%s\n", Green, Reset)
	fmt.Printf("  • %srounds%s: %d\n", Green, Reset, config.Stress.Rounds)
	fmt.Printf("  • %svalues%s: %d\n", Green, Reset, config.Stress.Values)
	fmt.Printf("  • %sseed%s: %d\n\n", Green, Reset, config.Stress.Seed)

	fmt.Printf("🔭 %sExplore:%s\n", Green, Reset)
	fmt.Printf("  • %sauto_save%s: %t\n\n", Green, Reset, config.Explore.AutoSave)

	fmt.Printf("📜 %sLog:%s\n", Green, Reset)
	fmt.Printf("  • %slevel%s: %s\n\n", Green, Reset, config.Log.Level)

	fmt.Printf("💡 To change the default engine, edit %s:\n", configPath)
	fmt.Printf("   tree:\n     default_kind: rbt\n")
}
