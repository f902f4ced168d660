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

// Package logic runs user commands.
//
// Logic is the single entry point used by the presentation layer: it
// parses a line of input, executes the resulting command against the
// application state and saves the address book when the command changed
// it. Every execution is logged under a fresh correlation id.
//
// Logic is not safe for concurrent use; commands run one at a time.
package logic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dirpx.dev/netconnect/nccore/errors"
	"dirpx.dev/netconnect/nccore/logic/command"
	"dirpx.dev/netconnect/nccore/logic/parser"
	"dirpx.dev/netconnect/nccore/model"
	"dirpx.dev/netconnect/nccore/model/book"
	"dirpx.dev/netconnect/nccore/model/filter"
	"dirpx.dev/netconnect/nccore/model/person"
	"dirpx.dev/netconnect/nccore/state"
	"dirpx.dev/netconnect/nccore/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MessageSaveFailure is reported when a command succeeded but the book
// could not be saved.
const MessageSaveFailure = "Could not save data due to the following error: %v"

// Option configures a Logic.
type Option func(*Logic)

// WithExportDir sets the directory relative export file names resolve
// against.
func WithExportDir(dir string) Option {
	return func(l *Logic) { l.exportDir = dir }
}

// WithUnredactedLogs makes logged persons show their contact details.
func WithUnredactedLogs(on bool) Option {
	return func(l *Logic) { l.unredacted = on }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Logic) { l.logger = logger }
}

// Logic executes commands against a state manager backed by a storage.
type Logic struct {
	state      *state.Manager
	store      storage.Storage
	logger     *zap.Logger
	unredacted bool
	exportDir  string

	// savedBook and savedRevision identify the last persisted state.
	savedBook     *book.Book
	savedRevision uint64
}

// Open loads the address book from store and returns a Logic over it.
func Open(ctx context.Context, store storage.Storage, opts ...Option) (*Logic, error) {
	l := &Logic{store: store, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}

	b, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load address book from %s: %w", store.Path(), err)
	}
	l.state = state.New(b)
	l.markSaved()

	l.logger.Info("address book loaded",
		zap.String("path", store.Path()),
		zap.Int("persons", b.Len()),
		zap.Int("relations", len(b.RelatedIdTuples())))
	return l, nil
}

// Execute parses and runs one line of input.
//
// Parse and command failures are returned as *errors.ParseError and
// *errors.CommandError; their messages are meant for the user. The state
// is saved after every command that changed the book.
func (l *Logic) Execute(ctx context.Context, input string) (command.Result, error) {
	start := time.Now()
	log := l.logger.With(zap.String("command_id", uuid.NewString()))

	cmd, err := parser.Parse(input)
	if err != nil {
		log.Debug("command rejected",
			zap.String("word", commandWord(input)),
			zap.Error(err))
		return command.Result{}, err
	}

	if export, ok := cmd.(*command.ExportCommand); ok && export.Dir == "" {
		export.Dir = l.exportDir
	}

	res, err := cmd.Execute(l.state)
	if err != nil {
		log.Info("command failed",
			zap.Stringer("command", cmd),
			zap.Error(err))
		return command.Result{}, err
	}

	if err := l.save(ctx); err != nil {
		log.Error("save failed",
			zap.Stringer("command", cmd),
			zap.String("path", l.store.Path()),
			zap.Error(err))
		return command.Result{}, &errors.CommandError{Message: fmt.Sprintf(MessageSaveFailure, err), Err: err}
	}

	fields := []zap.Field{
		zap.Stringer("command", cmd),
		zap.Int("listed", len(l.state.FilteredPersons())),
		zap.Duration("took", time.Since(start)),
	}
	if res.Person != nil {
		fields = append(fields, zap.String("person", model.SafeString(res.Person, l.unredacted)))
	}
	log.Info("command executed", fields...)
	return res, nil
}

func (l *Logic) save(ctx context.Context) error {
	b := l.state.Book()
	if b == l.savedBook && b.Revision() == l.savedRevision {
		return nil
	}
	if err := l.store.Save(ctx, b); err != nil {
		return err
	}
	l.markSaved()
	return nil
}

func (l *Logic) markSaved() {
	l.savedBook = l.state.Book()
	l.savedRevision = l.savedBook.Revision()
}

// FilteredPersons returns the persons currently shown.
func (l *Logic) FilteredPersons() []person.Person {
	return l.state.FilteredPersons()
}

// ActiveFilter returns the filter currently applied.
func (l *Logic) ActiveFilter() *filter.Filter {
	return l.state.ActiveFilter()
}

// Book returns the address book.
func (l *Logic) Book() *book.Book {
	return l.state.Book()
}

// StoragePath names where the book is saved.
func (l *Logic) StoragePath() string {
	return l.store.Path()
}

// Close releases the storage.
func (l *Logic) Close() error {
	return l.store.Close()
}

func commandWord(input string) string {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
