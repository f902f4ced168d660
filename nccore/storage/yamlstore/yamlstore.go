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

// Package yamlstore keeps the address book in a single YAML document.
//
// The document holds the schema version, the persons and the relations:
//
//	version: 1.0.0
//	lastId: 7
//	persons:
//	  - id: 1
//	    role: client
//	    name: Alice Pauline
//	    ...
//	relations:
//	  - [1, 3]
//
// Saves write a temporary file next to the target and rename it over the
// target, so a crash never leaves a half-written document.
package yamlstore

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"dirpx.dev/netconnect/nccore/model"
	"dirpx.dev/netconnect/nccore/model/book"
)

// Store is a YAML file backend.
type Store struct {
	path string
}

// New returns a store for the document at path. Nothing is read or
// created until Load or Save.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the document path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the document. A missing file yields an empty book.
func (s *Store) Load(ctx context.Context) (*book.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return book.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	b := book.New()
	if err := model.FromYAML(data, &b); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", s.path, err)
	}
	return b, nil
}

// Save writes b atomically.
func (s *Store) Save(ctx context.Context, b *book.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := model.ToYAML(b)
	if err != nil {
		return fmt.Errorf("refusing to save book: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

// Close does nothing; the store holds no open resources.
func (s *Store) Close() error {
	return nil
}
