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

// Package state holds the in-memory application state that commands act
// on: the address book plus the filter that decides which persons are
// currently shown.
package state

import (
	"dirpx.dev/netconnect/nccore/model/book"
	"dirpx.dev/netconnect/nccore/model/filter"
	"dirpx.dev/netconnect/nccore/model/person"
)

// Manager owns the address book and the active filter.
//
// The active filter always holds a non-nil *filter.Filter; a fresh manager
// shows everyone. Manager is not safe for concurrent use.
type Manager struct {
	book   *book.Book
	active *filter.Filter
}

// New returns a manager over b. A nil book is replaced by an empty one.
func New(b *book.Book) *Manager {
	if b == nil {
		b = book.New()
	}
	return &Manager{book: b, active: filter.NoFilter()}
}

// Book returns the managed address book.
func (m *Manager) Book() *book.Book {
	return m.book
}

// ResetBook replaces the book contents by those of b and clears the filter.
func (m *Manager) ResetBook(b *book.Book) {
	if b == nil {
		b = book.New()
	}
	m.book = b
	m.active = filter.NoFilter()
}

// HasId reports whether a person with id is stored.
func (m *Manager) HasId(id person.Id) bool {
	return m.book.HasId(id)
}

// HasPerson reports whether a person with the same identity as p is
// stored, whatever its id.
func (m *Manager) HasPerson(p person.Person) bool {
	return m.book.HasPerson(p)
}

// Person returns the person stored under id.
func (m *Manager) Person(id person.Id) (person.Person, bool) {
	return m.book.Person(id)
}

// AddPerson stores p and returns it with its assigned id. The filter is
// cleared so the new person is visible.
func (m *Manager) AddPerson(p person.Person) (person.Person, error) {
	stored, err := m.book.AddPerson(p)
	if err != nil {
		return person.Person{}, err
	}
	m.ClearFilter()
	return stored, nil
}

// SetPerson replaces the person stored under id. The filter is left as it
// is, so the edited person may drop out of view.
func (m *Manager) SetPerson(id person.Id, edited person.Person) (person.Person, error) {
	return m.book.SetPerson(id, edited)
}

// DeletePerson removes the person stored under id together with its
// relations and returns it.
func (m *Manager) DeletePerson(id person.Id) (person.Person, error) {
	return m.book.RemovePerson(id)
}

// ClearBook empties the address book.
func (m *Manager) ClearBook() {
	m.book.Clear()
	m.ClearFilter()
}

// HasRelatedIdTuple reports whether t is recorded.
func (m *Manager) HasRelatedIdTuple(t person.IdTuple) bool {
	return m.book.HasRelatedIdTuple(t)
}

// AddRelatedIdTuple records t. Both ids must be stored.
func (m *Manager) AddRelatedIdTuple(t person.IdTuple) error {
	return m.book.AddRelatedIdTuple(t)
}

// RemoveRelatedIdTuple forgets t; it does nothing when t is absent.
func (m *Manager) RemoveRelatedIdTuple(t person.IdTuple) {
	m.book.RemoveRelatedIdTuple(t)
}

// RelatedIds returns the ids related to id, in ascending order.
func (m *Manager) RelatedIds(id person.Id) []person.Id {
	return m.book.RelatedIds(id)
}

// ClearFilter shows every person again.
func (m *Manager) ClearFilter() {
	m.active = filter.NoFilter()
}

// StackFilters narrows the current view by adding p to the active filter.
func (m *Manager) StackFilters(p filter.Predicate) {
	m.active = m.active.Add(p)
}

// UpdateFilteredPersonList replaces the active filter by one holding only p.
func (m *Manager) UpdateFilteredPersonList(p filter.Predicate) {
	m.active = filter.NoFilter().Add(p)
}

// ActiveFilter returns the filter currently applied.
func (m *Manager) ActiveFilter() *filter.Filter {
	return m.active
}

// FilteredPersons returns, in book order, the persons passing the active
// filter. The slice is a copy.
func (m *Manager) FilteredPersons() []person.Person {
	out := []person.Person{}
	for _, p := range m.book.Persons() {
		if m.active.Test(p) {
			out = append(out, p)
		}
	}
	return out
}
