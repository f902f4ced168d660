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

// Package command defines the user actions of NetConnect.
//
// Each action is a small value type implementing Command. A command is
// built by the parser package from the text the user typed, then executed
// against a Model: it checks its arguments against the current state,
// mutates that state and returns a Result carrying the feedback shown to
// the user.
//
// Execution failures are returned as *errors.CommandError whose message is
// shown to the user verbatim. Unless a command documents otherwise, a
// failing command leaves the model untouched.
//
// Commands are executed one at a time; nothing in this package is safe for
// concurrent use.
package command

import (
	"fmt"

	"dirpx.dev/netconnect/nccore/errors"
	"dirpx.dev/netconnect/nccore/model/filter"
	"dirpx.dev/netconnect/nccore/model/person"
)

// Model is the application state commands act upon. It is implemented by
// *state.Manager.
type Model interface {
	// HasId reports whether a person with the given id exists.
	HasId(id person.Id) bool

	// HasPerson reports whether a person considered the same as p exists.
	HasPerson(p person.Person) bool

	// Person returns the person with the given id.
	Person(id person.Id) (person.Person, bool)

	// AddPerson stores p under a fresh id and returns the stored person.
	AddPerson(p person.Person) (person.Person, error)

	// SetPerson replaces the person with the given id by edited.
	SetPerson(id person.Id, edited person.Person) (person.Person, error)

	// DeletePerson removes the person with the given id and its relations.
	DeletePerson(id person.Id) (person.Person, error)

	// ClearBook removes every person and relation.
	ClearBook()

	HasRelatedIdTuple(t person.IdTuple) bool
	AddRelatedIdTuple(t person.IdTuple) error
	RemoveRelatedIdTuple(t person.IdTuple)
	RelatedIds(id person.Id) []person.Id

	// ClearFilter makes every person visible again.
	ClearFilter()

	// StackFilters narrows the visible persons with p.
	StackFilters(p filter.Predicate)

	// UpdateFilteredPersonList replaces the active filter by p alone.
	UpdateFilteredPersonList(p filter.Predicate)

	ActiveFilter() *filter.Filter

	// FilteredPersons returns the persons passing the active filter.
	FilteredPersons() []person.Person
}

// Command is one executable user action.
type Command interface {
	// Execute runs the command against m.
	Execute(m Model) (Result, error)

	// String describes the command for logs. Person data is redacted.
	String() string
}

// Result is the outcome of a successful command.
type Result struct {
	// Feedback is the message shown to the user.
	Feedback string

	// ShowHelp asks the presentation layer to display the command usage.
	ShowHelp bool

	// Exit asks the application to terminate.
	Exit bool

	// ExportPath is the file written by an export, if any.
	ExportPath string

	// Person is the person added, edited or deleted, if any.
	Person *person.Person
}

// changed returns a result with a message about p that also carries p.
func changed(format string, p person.Person) Result {
	res := Feedback(format, p.Format())
	res.Person = &p
	return res
}

// Feedback returns a plain result carrying only a message.
func Feedback(format string, args ...any) Result {
	return Result{Feedback: fmt.Sprintf(format, args...)}
}

// fail builds the *errors.CommandError returned by Execute.
func fail(format string, args ...any) error {
	return &errors.CommandError{Message: fmt.Sprintf(format, args...)}
}

// failWith is fail with an underlying cause.
func failWith(err error, format string, args ...any) error {
	return &errors.CommandError{Message: fmt.Sprintf(format, args...), Err: err}
}

// idsPredicate selects exactly the persons with the given ids.
func idsPredicate(ids ...person.Id) filter.Predicate {
	tokens := make([]string, len(ids))
	for i, id := range ids {
		tokens[i] = id.String()
	}
	return filter.IdContainsDigits(tokens...)
}

// listed reports how many persons the model currently shows.
func listed(m Model) Result {
	return Feedback(MessagePersonsListedOverview, len(m.FilteredPersons()))
}
