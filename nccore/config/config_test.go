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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"dirpx.dev/netconnect/nccore/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(filepath.Join(dir, config.DefaultFilename))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultConfig(dir), cfg)
	assert.Equal(t, config.BackendYAML, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(dir, "netconnect.yaml"), cfg.Storage.Path)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  backend: sqlite
  path: /tmp/book.db
logging:
  level: debug
  unredacted: true
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/book.db", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Unredacted)
	assert.Equal(t, "console", cfg.Logging.Format, "unset fields keep defaults")
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvBackend, "SQLITE")
	t.Setenv(config.EnvDataPath, "/data/nc.db")
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvExportDir, "/exports")

	cfg, err := config.Load(filepath.Join(dir, config.DefaultFilename))
	require.NoError(t, err)

	assert.Equal(t, config.BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/data/nc.db", cfg.Storage.Path)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "/exports", cfg.Export.Dir)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown backend", "storage:\n  backend: postgres\n", "Config.Storage.Backend"},
		{"unknown level", "logging:\n  level: loud\n", "Config.Logging.Level"},
		{"empty path", "storage:\n  path: \"\"\n", "Config.Storage.Path"},
		{"not yaml", "storage: [", "failed to parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), config.DefaultFilename)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := config.Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", config.DefaultFilename)
	cfg := config.DefaultConfig(dir)
	cfg.Storage.Backend = config.BackendSQLite
	cfg.Logging.Unredacted = true

	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
