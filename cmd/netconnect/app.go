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

package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"dirpx.dev/netconnect/nccore/config"
	"dirpx.dev/netconnect/nccore/logging"
	"dirpx.dev/netconnect/nccore/logic"
	"dirpx.dev/netconnect/nccore/storage"
	"go.uber.org/zap"
)

// app carries the flags and the lazily opened collaborators shared by all
// subcommands.
type app struct {
	configPath string
	dataPath   string
	backend    string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
	logic  *logic.Logic
}

func (a *app) resolvedConfigPath() string {
	if a.configPath != "" {
		return a.configPath
	}
	return filepath.Join(config.DefaultDir(), config.DefaultFilename)
}

// setup loads the configuration, applies flag overrides and builds the
// logger.
func (a *app) setup() error {
	cfg, err := config.Load(a.resolvedConfigPath())
	if err != nil {
		return err
	}
	if a.dataPath != "" {
		cfg.Storage.Path = a.dataPath
	}
	if a.backend != "" {
		cfg.Storage.Backend = strings.ToLower(a.backend)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

// open returns the Logic over the configured storage, opening it on first
// use.
func (a *app) open(ctx context.Context) (*logic.Logic, error) {
	if a.logic != nil {
		return a.logic, nil
	}

	store, err := storage.Open(ctx, a.cfg.Storage)
	if err != nil {
		return nil, err
	}
	l, err := logic.Open(ctx, store,
		logic.WithExportDir(a.cfg.Export.Dir),
		logic.WithUnredactedLogs(a.cfg.Logging.Unredacted),
		logic.WithLogger(a.logger))
	if err != nil {
		return nil, errors.Join(err, store.Close())
	}

	a.logic = l
	return l, nil
}

// close releases the storage and flushes the logger. It is safe to call
// more than once.
func (a *app) close() error {
	var err error
	if a.logic != nil {
		err = a.logic.Close()
		a.logic = nil
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return err
}
