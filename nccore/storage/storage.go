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

// Package storage persists the address book.
//
// The application keeps the whole book in memory; a Storage loads it once
// at startup and saves the full contents after every command that changed
// it. Backends live in sub-packages: yamlstore writes one YAML document,
// sqlitestore writes an SQLite database. Open picks one from the
// configuration.
package storage

import (
	"context"
	"fmt"

	"dirpx.dev/netconnect/nccore/config"
	"dirpx.dev/netconnect/nccore/model/book"
	"dirpx.dev/netconnect/nccore/storage/sqlitestore"
	"dirpx.dev/netconnect/nccore/storage/yamlstore"
)

// Storage loads and saves whole address books.
type Storage interface {
	// Load reads the saved book. A data source that does not exist yet
	// yields an empty book.
	Load(ctx context.Context) (*book.Book, error)

	// Save replaces the saved book by b.
	Save(ctx context.Context, b *book.Book) error

	// Path names the data source, for messages.
	Path() string

	Close() error
}

var (
	_ Storage = (*yamlstore.Store)(nil)
	_ Storage = (*sqlitestore.Store)(nil)
)

// Open returns the backend selected by cfg.
func Open(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch cfg.Backend {
	case config.BackendYAML:
		return yamlstore.New(cfg.Path), nil
	case config.BackendSQLite:
		s, err := sqlitestore.Open(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
