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

package logic_test

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"strings"
	"testing"

	"dirpx.dev/netconnect/nccore/errors"
	"dirpx.dev/netconnect/nccore/logic"
	"dirpx.dev/netconnect/nccore/logic/command"
	"dirpx.dev/netconnect/nccore/model/book"
	"dirpx.dev/netconnect/nccore/storage/yamlstore"
	"dirpx.dev/netconnect/nccore/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// memStore keeps the saved book in memory and counts saves.
type memStore struct {
	book    *book.Book
	saves   int
	saveErr error
}

func (s *memStore) Load(context.Context) (*book.Book, error) {
	if s.book == nil {
		return book.New(), nil
	}
	return s.book, nil
}

func (s *memStore) Save(_ context.Context, b *book.Book) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.book = b
	return nil
}

func (s *memStore) Path() string { return "memory" }
func (s *memStore) Close() error { return nil }

func openTypical(t *testing.T, opts ...logic.Option) (*logic.Logic, *memStore) {
	t.Helper()
	store := &memStore{book: testutil.TypicalBook()}
	l, err := logic.Open(context.Background(), store, opts...)
	require.NoError(t, err)
	return l, store
}

func TestExecute_SavesOnlyWhenChanged(t *testing.T) {
	ctx := context.Background()
	l, store := openTypical(t)

	tests := []struct {
		input     string
		wantSaves int
	}{
		{"list", 0},
		{"find n/Meier", 0},
		{"relate i/1 i/2", 1},
		{"showrelated i/1", 1},
		{"edit i/1 p/11111111", 2},
		{"unrelate i/1 i/2", 3},
		{"delete i/7", 4},
		{"help", 4},
	}

	for _, tt := range tests {
		_, err := l.Execute(ctx, tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.wantSaves, store.saves, "after %q", tt.input)
	}
}

func TestExecute_Errors(t *testing.T) {
	ctx := context.Background()
	l, store := openTypical(t)

	_, err := l.Execute(ctx, "add n/Amy")
	assert.True(t, errors.IsParse(err))

	_, err = l.Execute(ctx, "unrelate i/1 i/2")
	assert.True(t, errors.IsCommand(err))
	assert.EqualError(t, err, command.MessageRelationNotExists)

	assert.Zero(t, store.saves)
}

func TestExecute_SaveFailure(t *testing.T) {
	l, store := openTypical(t)
	store.saveErr = stderrors.New("disk full")

	_, err := l.Execute(context.Background(), "delete i/1")

	require.Error(t, err)
	assert.True(t, errors.IsCommand(err))
	assert.EqualError(t, err, "Could not save data due to the following error: disk full")
}

func TestExecute_Scenario(t *testing.T) {
	ctx := context.Background()
	l, _ := openTypical(t)

	res, err := l.Execute(ctx, "add n/Amy Bee p/11111111 e/amy@example.com a/Block 312, Amy Street 1 r/client t/friend")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Feedback, "New person added: Amy Bee"))

	_, err = l.Execute(ctx, "relate i/8 i/1")
	require.NoError(t, err)
	assert.Len(t, l.FilteredPersons(), 2)

	_, err = l.Execute(ctx, "find n/amy")
	require.NoError(t, err)
	assert.Equal(t, "1. i/8 1\n2. n/amy", l.ActiveFilter().Format())
	assert.Len(t, l.FilteredPersons(), 1)

	_, err = l.Execute(ctx, "unrelate i/8 i/8")
	require.Error(t, err)
	assert.True(t, l.ActiveFilter().IsEmpty())

	res, err = l.Execute(ctx, "exit")
	require.NoError(t, err)
	assert.True(t, res.Exit)
}

func TestExecute_ExportUsesConfiguredDir(t *testing.T) {
	dir := t.TempDir()
	l, _ := openTypical(t, logic.WithExportDir(dir))

	res, err := l.Execute(context.Background(), "export team")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "team.csv"), res.ExportPath)
	assert.FileExists(t, res.ExportPath)
}

func TestExecute_LogsRedactedCommands(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l, _ := openTypical(t, logic.WithLogger(zap.New(core)))

	_, err := l.Execute(context.Background(),
		"add n/Amy Bee p/11111111 e/amy@example.com a/Block 312 r/client")
	require.NoError(t, err)

	executed := logs.FilterMessage("command executed").All()
	require.Len(t, executed, 1)

	fields := executed[0].ContextMap()
	assert.NotEmpty(t, fields["command_id"])
	assert.NotContains(t, fields["command"], "amy@example.com")
}

func TestOpen_PersistsAcrossSessions(t *testing.T) {
	ctx := context.Background()
	store := yamlstore.New(filepath.Join(t.TempDir(), "book.yaml"))

	first, err := logic.Open(ctx, store)
	require.NoError(t, err)
	_, err = first.Execute(ctx, "add n/Amy Bee p/11111111 e/amy@example.com a/Block 312 r/supplier pr/rice")
	require.NoError(t, err)

	second, err := logic.Open(ctx, store)
	require.NoError(t, err)
	require.Equal(t, 1, second.Book().Len())
	assert.Equal(t, "Amy Bee", second.Book().Persons()[0].Name.String())
}

func TestExecute_LogsChangedPerson(t *testing.T) {
	const add = "add n/Amy Bee p/11111111 e/amy@example.com a/Block 312 r/client"

	tests := []struct {
		name       string
		unredacted bool
		wantEmail  string
	}{
		{"redacted by default", false, "a***@example.com"},
		{"unredacted on request", true, "amy@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			l, _ := openTypical(t, logic.WithLogger(zap.New(core)), logic.WithUnredactedLogs(tt.unredacted))

			_, err := l.Execute(context.Background(), add)
			require.NoError(t, err)

			executed := logs.FilterMessage("command executed").All()
			require.Len(t, executed, 1)
			logged, ok := executed[0].ContextMap()["person"].(string)
			require.True(t, ok, "changed person is logged")
			assert.Contains(t, logged, tt.wantEmail)
		})
	}
}
