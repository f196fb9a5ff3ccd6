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
	"os"
	"path/filepath"
	"testing"

	"github.com/cybrota/arbor/trees"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfigFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *cfg)
	assert.Equal(t, trees.KindAVL, cfg.Kind())
	assert.Equal(t, trees.Inorder, cfg.Order())
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	content := `
tree:
  default_kind: red-black
  traversal: level
render:
  colors: false
stress:
  rounds: 10
  seed: 42
explore:
  auto_save: true
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := loadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, trees.KindRBT, cfg.Kind())
	assert.Equal(t, trees.LevelOrder, cfg.Order())
	assert.False(t, cfg.Render.Colors)
	assert.Equal(t, 10, cfg.Stress.Rounds)
	// Unset keys keep their defaults
	assert.Equal(t, defaultConfig.Stress.Values, cfg.Stress.Values)
	assert.Equal(t, int64(42), cfg.Stress.Seed)
	assert.True(t, cfg.Explore.AutoSave)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	content := "tree:\n  default_kind: splay\n  traversal: zigzag\nstress:\n  rounds: -3\n  values: 0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := loadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, trees.KindAVL, cfg.Kind())
	assert.Equal(t, trees.Inorder, cfg.Order())
	assert.Equal(t, defaultConfig.Stress.Rounds, cfg.Stress.Rounds)
	assert.Equal(t, defaultConfig.Stress.Values, cfg.Stress.Values)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte("tree: [unclosed"), 0o644))

	cfg, err := loadConfigFrom(path)
	require.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, defaultConfig, *cfg)
}

func TestWriteDefaultConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, writeDefaultConfig(path))

	cfg, err := loadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *cfg)
}
