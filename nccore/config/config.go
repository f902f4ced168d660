/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads the NetConnect configuration.
//
// Configuration lives in a YAML file. A missing file yields the defaults.
// Environment variables override file values, and the result is checked
// with struct validation before use.
package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvDataPath  = "NETCONNECT_DATA_PATH"
	EnvBackend   = "NETCONNECT_BACKEND"
	EnvLogLevel  = "NETCONNECT_LOG_LEVEL"
	EnvExportDir = "NETCONNECT_EXPORT_DIR"
)

// Storage backends.
const (
	BackendYAML   = "yaml"
	BackendSQLite = "sqlite"
)

// DefaultFilename is the configuration file name inside the config
// directory.
const DefaultFilename = "config.yaml"

// Config holds all NetConnect configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	Export  ExportConfig  `yaml:"export"`
	UI      UIConfig      `yaml:"ui"`
}

// StorageConfig selects where the address book is kept.
type StorageConfig struct {
	Backend string `yaml:"backend" validate:"required,oneof=yaml sqlite"`
	Path    string `yaml:"path" validate:"required"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"required,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"required,oneof=json console"`
	// File receives log output; empty means stderr.
	File string `yaml:"file,omitempty"`
	// Unredacted logs contact details in full. Meant for local debugging.
	Unredacted bool `yaml:"unredacted,omitempty"`
}

// ExportConfig configures CSV exports.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// UIConfig configures the interactive prompt.
type UIConfig struct {
	Prompt string `yaml:"prompt" validate:"required"`
	// Color enables styled output when stdout is a terminal.
	Color bool `yaml:"color"`
}

var validate = validator.New()

// DefaultConfig returns the default configuration. Data and exports go
// under dir.
func DefaultConfig(dir string) *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendYAML,
			Path:    filepath.Join(dir, "netconnect.yaml"),
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Export: ExportConfig{
			Dir: filepath.Join(dir, "exports"),
		},
		UI: UIConfig{
			Prompt: "netconnect> ",
			Color:  true,
		},
	}
}

// DefaultDir returns the per-user configuration directory for NetConnect,
// falling back to the working directory.
func DefaultDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "netconnect")
	}
	return "."
}

// Load reads the configuration at path. A missing file yields the defaults
// rooted at the file's directory. Environment overrides are applied and the
// result validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig(filepath.Dir(path))

	data, err := os.ReadFile(path)
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvDataPath); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv(EnvBackend); v != "" {
		c.Storage.Backend = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvExportDir); v != "" {
		c.Export.Dir = v
	}
}

// Validate checks every field constraint.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if stderrors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s: must satisfy %q, got %q", fe.Namespace(), fieldRule(fe), fe.Value())
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func fieldRule(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
