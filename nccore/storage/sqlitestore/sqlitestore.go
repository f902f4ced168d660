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

// Package sqlitestore keeps the address book in an SQLite database.
//
// The schema has three tables: meta (key/value pairs, holding the schema
// version and the highest id ever assigned), persons (one row per person, its JSON form in data) and
// relations (one row per related id pair, smaller id first). A save
// replaces every row inside one transaction.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"dirpx.dev/netconnect/nccore/model"
	"dirpx.dev/netconnect/nccore/model/book"
	"dirpx.dev/netconnect/nccore/model/person"
	"dirpx.dev/netconnect/nccore/model/schema"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS persons (
	id       INTEGER PRIMARY KEY,
	position INTEGER NOT NULL,
	role     TEXT NOT NULL,
	name     TEXT NOT NULL UNIQUE,
	data     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS relations (
	low_id  INTEGER NOT NULL REFERENCES persons(id) ON DELETE CASCADE,
	high_id INTEGER NOT NULL REFERENCES persons(id) ON DELETE CASCADE,
	PRIMARY KEY (low_id, high_id),
	CHECK (low_id < high_id)
);

CREATE INDEX IF NOT EXISTS idx_persons_position ON persons(position);
`

const (
	versionKey = "schema_version"
	lastIdKey  = "last_id"
)

// Store is an SQLite backend.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens, creating if needed, the database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps the foreign_keys pragma in effect.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, schemaSQL)
	return err
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the book. A database that was never saved to yields an empty
// book.
func (s *Store) Load(ctx context.Context) (*book.Book, error) {
	raw, ok, err := s.meta(ctx, versionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema version: %w", err)
	}
	if !ok {
		return book.New(), nil
	}

	var snap book.Snapshot
	if snap.Version, err = schema.Parse(raw); err != nil {
		return nil, fmt.Errorf("failed to read schema version: %w", err)
	}
	if snap.LastId, err = s.lastId(ctx); err != nil {
		return nil, err
	}
	if snap.Persons, err = s.loadPersons(ctx); err != nil {
		return nil, err
	}
	if snap.Relations, err = s.loadRelations(ctx); err != nil {
		return nil, err
	}

	b, err := book.FromSnapshot(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", s.path, err)
	}
	return b, nil
}

// meta returns the value stored under key and whether it exists.
func (s *Store) meta(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// lastId reads the id high-water mark. Databases written before it was
// recorded yield zero.
func (s *Store) lastId(ctx context.Context) (person.Id, error) {
	raw, ok, err := s.meta(ctx, lastIdKey)
	if err != nil || !ok {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", lastIdKey, raw, err)
	}
	return person.Id(n), nil
}

func (s *Store) loadPersons(ctx context.Context) ([]person.Person, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT data FROM persons ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query persons: %w", err)
	}
	defer rows.Close()

	var persons []person.Person
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		p := &person.Person{}
		if err := model.FromJSON([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("failed to decode person: %w", err)
		}
		persons = append(persons, *p)
	}
	return persons, rows.Err()
}

func (s *Store) loadRelations(ctx context.Context) ([]person.IdTuple, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT low_id, high_id FROM relations ORDER BY low_id, high_id")
	if err != nil {
		return nil, fmt.Errorf("failed to query relations: %w", err)
	}
	defer rows.Close()

	var relations []person.IdTuple
	for rows.Next() {
		var low, high int
		if err := rows.Scan(&low, &high); err != nil {
			return nil, fmt.Errorf("failed to scan relation: %w", err)
		}
		t, err := person.NewIdTuple(person.Id(low), person.Id(high))
		if err != nil {
			return nil, fmt.Errorf("invalid relation (%d, %d): %w", low, high, err)
		}
		relations = append(relations, t)
	}
	return relations, rows.Err()
}

// Save replaces the stored book by b in one transaction.
func (s *Store) Save(ctx context.Context, b *book.Book) (err error) {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid book: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, stmt := range []string{"DELETE FROM relations", "DELETE FROM persons"} {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to clear tables: %w", err)
		}
	}

	meta := [][2]string{
		{versionKey, schema.Current.String()},
		{lastIdKey, strconv.Itoa(b.LastId().Value())},
	}
	for _, kv := range meta {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO meta (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			kv[0], kv[1])
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", kv[0], err)
		}
	}

	for i, p := range b.Persons() {
		var data []byte
		if data, err = model.ToJSON(&p); err != nil {
			return fmt.Errorf("failed to encode %s: %w", p.Name, err)
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO persons (id, position, role, name, data) VALUES (?, ?, ?, ?, ?)",
			p.Id.Value(), i, p.Role.String(), p.Name.String(), string(data))
		if err != nil {
			return fmt.Errorf("failed to insert person %d: %w", p.Id, err)
		}
	}

	for _, t := range b.RelatedIdTuples() {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO relations (low_id, high_id) VALUES (?, ?)",
			t.First().Value(), t.Second().Value())
		if err != nil {
			return fmt.Errorf("failed to insert relation %s: %w", t, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
