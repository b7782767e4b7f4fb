// Copyright 2025 Greenmask
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

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetState - restores the config file path, viper and the decoded config after the test
func resetState(t *testing.T) {
	t.Helper()
	origCfgFile := cfgFile
	origCsv := Config.Csv
	origLog := Config.Log
	t.Cleanup(func() {
		cfgFile = origCfgFile
		Config.Csv = origCsv
		Config.Log = origLog
		viper.Reset()
	})
	cfgFile = ""
	Config.Csv.Options = nil
	viper.Reset()
}

func writeConfig(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// TestExplicitConfigFile tests that the config file provided with --config takes precedence
// over the default config file
func TestExplicitConfigFile(t *testing.T) {
	resetState(t)
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	explicitConfigPath := filepath.Join(tempDir, "explicit", "config.yml")
	writeConfig(t, explicitConfigPath, `
log:
  level: info
`)
	writeConfig(t, filepath.Join(tempDir, appName, defaultConfigFileName), `
log:
  level: debug
`)

	cfgFile = explicitConfigPath
	initConfig()

	assert.Equal(t, "info", viper.GetString("log.level"),
		"Explicit config should be loaded instead of default")
	assert.Equal(t, explicitConfigPath, cfgFile,
		"Config file path should remain as explicitly provided path")
}

// TestDefaultConfigFile tests that the config from the user config directory is used
// when no config file is provided
func TestDefaultConfigFile(t *testing.T) {
	resetState(t)
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	defaultConfigPath := filepath.Join(tempDir, appName, defaultConfigFileName)
	writeConfig(t, defaultConfigPath, `
log:
  level: debug
`)

	initConfig()

	assert.Equal(t, "debug", viper.GetString("log.level"),
		"Default config should be loaded from the standard config directory")
	assert.Equal(t, defaultConfigPath, cfgFile,
		"Config file path should be set to default location")
}

// TestNoConfigFile tests the behavior when neither explicit nor default config file exists
func TestNoConfigFile(t *testing.T) {
	resetState(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	initConfig()

	assert.Equal(t, "", cfgFile,
		"Config file path should remain empty when no config file exists")
}

func TestCsvConfigFromFile(t *testing.T) {
	resetState(t)
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	cfgFile = filepath.Join(tempDir, "config.yml")
	writeConfig(t, cfgFile, `
csv:
  time_zone: Europe/Berlin
  column_pruning: true
  options:
    sep: ";"
    header: true
    maxColumns: 100
`)

	initConfig()

	assert.Equal(t, "Europe/Berlin", Config.Csv.TimeZone)
	assert.True(t, Config.Csv.ColumnPruning)
	assert.Equal(t, ";", Config.Csv.Options["sep"])
	assert.Equal(t, true, Config.Csv.Options["header"])
	// viper lowercases the keys, option names are case-insensitive
	assert.Equal(t, 100, Config.Csv.Options["maxcolumns"])
}

func TestCsvOptionsFromEnv(t *testing.T) {
	resetState(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CSV_OPTIONS", `{"sep": "\t", "quoteAll": true}`)

	initConfig()

	assert.Equal(t, map[string]any{"sep": "\t", "quoteAll": true}, Config.Csv.Options)
}
