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

// Package book implements the address book aggregate: the ordered list of
// persons and the set of relations between them.
//
// A Book assigns ids, rejects duplicate persons and keeps relations
// consistent with the person list: removing a person drops every relation
// that mentions it. Every mutation bumps Revision, which callers compare to
// decide whether the book needs saving.
//
// Book is not safe for concurrent use.
package book

import (
	stderrors "errors"
	"fmt"
	"sort"

	"dirpx.dev/netconnect/nccore/model"
	"dirpx.dev/netconnect/nccore/model/person"
)

var (
	// ErrPersonNotFound is returned when no person has the requested id.
	ErrPersonNotFound = stderrors.New("person not found")

	// ErrDuplicatePerson is returned when adding or editing would create
	// two persons with the same name.
	ErrDuplicatePerson = stderrors.New("person already exists")

	// ErrDuplicateId is returned when restoring a person whose id is taken.
	ErrDuplicateId = stderrors.New("id already in use")
)

// Book is the address book.
type Book struct {
	persons   []person.Person
	relations map[person.IdTuple]struct{}
	revision  uint64

	// lastId is the highest id ever assigned. It survives deletions and
	// Clear, so an id never names two different persons.
	lastId person.Id
}

var _ model.Model = (*Book)(nil)

// New returns an empty book.
func New() *Book {
	return &Book{relations: make(map[person.IdTuple]struct{})}
}

// Revision returns a counter that changes on every mutation.
func (b *Book) Revision() uint64 {
	return b.revision
}

func (b *Book) touch() {
	b.revision++
}

// Len returns the number of persons.
func (b *Book) Len() int {
	return len(b.persons)
}

// Persons returns a copy of the person list in insertion order.
func (b *Book) Persons() []person.Person {
	return append([]person.Person{}, b.persons...)
}

func (b *Book) indexOf(id person.Id) int {
	for i, p := range b.persons {
		if p.Id == id {
			return i
		}
	}
	return -1
}

// Person returns the person with the given id.
func (b *Book) Person(id person.Id) (person.Person, bool) {
	i := b.indexOf(id)
	if i < 0 {
		return person.Person{}, false
	}
	return b.persons[i], true
}

// HasId reports whether a person has the given id.
func (b *Book) HasId(id person.Id) bool {
	return b.indexOf(id) >= 0
}

// HasPerson reports whether a person with the same identity as p exists.
func (b *Book) HasPerson(p person.Person) bool {
	for _, x := range b.persons {
		if x.IsSamePerson(p) {
			return true
		}
	}
	return false
}

// LastId returns the highest id the book has ever assigned or restored.
func (b *Book) LastId() person.Id {
	return b.lastId
}

func (b *Book) nextId() person.Id {
	last := b.lastId
	for _, p := range b.persons {
		if p.Id > last {
			last = p.Id
		}
	}
	return last + 1
}

// AddPerson stores p under a fresh id and returns the stored person. Any id
// already on p is ignored.
func (b *Book) AddPerson(p person.Person) (person.Person, error) {
	if b.HasPerson(p) {
		return person.Person{}, ErrDuplicatePerson
	}

	stored := p.WithId(b.nextId())
	if err := stored.Validate(); err != nil {
		return person.Person{}, err
	}

	b.persons = append(b.persons, stored)
	b.lastId = stored.Id
	b.touch()
	return stored, nil
}

// Restore stores p under its own id. It is used when loading a saved book.
func (b *Book) Restore(p person.Person) error {
	if err := p.Id.Validate(); err != nil {
		return fmt.Errorf("restore %s: %w", p.Name, err)
	}
	if b.HasId(p.Id) {
		return fmt.Errorf("restore %s: %w: %d", p.Name, ErrDuplicateId, p.Id)
	}
	if b.HasPerson(p) {
		return fmt.Errorf("restore %s: %w", p.Name, ErrDuplicatePerson)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("restore %s: %w", p.Name, err)
	}

	b.persons = append(b.persons, p.WithId(p.Id))
	if p.Id > b.lastId {
		b.lastId = p.Id
	}
	b.touch()
	return nil
}

// SetPerson replaces the person with the given id by edited, keeping the id
// and the position in the list. The edited person may keep its own name but
// must not take the name of another person.
func (b *Book) SetPerson(id person.Id, edited person.Person) (person.Person, error) {
	i := b.indexOf(id)
	if i < 0 {
		return person.Person{}, fmt.Errorf("%w: %d", ErrPersonNotFound, id)
	}

	for j, x := range b.persons {
		if j != i && x.IsSamePerson(edited) {
			return person.Person{}, ErrDuplicatePerson
		}
	}

	stored := edited.WithId(id)
	if err := stored.Validate(); err != nil {
		return person.Person{}, err
	}

	b.persons[i] = stored
	b.touch()
	return stored, nil
}

// RemovePerson deletes the person with the given id and every relation
// that mentions it, returning the removed person.
func (b *Book) RemovePerson(id person.Id) (person.Person, error) {
	i := b.indexOf(id)
	if i < 0 {
		return person.Person{}, fmt.Errorf("%w: %d", ErrPersonNotFound, id)
	}

	removed := b.persons[i]
	b.persons = append(b.persons[:i:i], b.persons[i+1:]...)
	for t := range b.relations {
		if t.Contains(id) {
			delete(b.relations, t)
		}
	}
	b.touch()
	return removed, nil
}

// Clear removes every person and relation. Ids assigned before the clear
// are not handed out again.
func (b *Book) Clear() {
	b.persons = nil
	b.relations = make(map[person.IdTuple]struct{})
	b.touch()
}

// HasRelatedIdTuple reports whether the relation t is recorded.
func (b *Book) HasRelatedIdTuple(t person.IdTuple) bool {
	_, ok := b.relations[t]
	return ok
}

// AddRelatedIdTuple records t. Both ends must be persons of the book.
// Adding a relation that already exists is a no-op.
func (b *Book) AddRelatedIdTuple(t person.IdTuple) error {
	for _, id := range []person.Id{t.First(), t.Second()} {
		if !b.HasId(id) {
			return fmt.Errorf("%w: %d", ErrPersonNotFound, id)
		}
	}
	if b.HasRelatedIdTuple(t) {
		return nil
	}
	b.relations[t] = struct{}{}
	b.touch()
	return nil
}

// RemoveRelatedIdTuple forgets t. Removing an absent relation is a no-op.
func (b *Book) RemoveRelatedIdTuple(t person.IdTuple) {
	if !b.HasRelatedIdTuple(t) {
		return
	}
	delete(b.relations, t)
	b.touch()
}

// RelatedIdTuples returns every relation, sorted.
func (b *Book) RelatedIdTuples() []person.IdTuple {
	out := make([]person.IdTuple, 0, len(b.relations))
	for t := range b.relations {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// RelatedIds returns the ids related to id, sorted.
func (b *Book) RelatedIds(id person.Id) []person.Id {
	var out []person.Id
	for t := range b.relations {
		if other, ok := t.Other(id); ok {
			out = append(out, other)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Validate checks every person, id and name uniqueness, and that every
// relation joins two existing persons. All problems are reported together.
func (b *Book) Validate() error {
	ptrs := make([]*person.Person, len(b.persons))
	for i := range b.persons {
		ptrs[i] = &b.persons[i]
	}
	if err := model.ValidateAll(ptrs); err != nil {
		return err
	}

	ids := make(map[person.Id]struct{}, len(b.persons))
	names := make(map[person.Name]struct{}, len(b.persons))
	for _, p := range b.persons {
		if p.Id.IsZero() {
			return fmt.Errorf("%s has no id", p.Name)
		}
		if _, ok := ids[p.Id]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateId, p.Id)
		}
		ids[p.Id] = struct{}{}
		if _, ok := names[p.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicatePerson, p.Name)
		}
		names[p.Name] = struct{}{}
	}

	for t := range b.relations {
		if _, ok := ids[t.First()]; !ok {
			return fmt.Errorf("relation %s: %w: %d", t, ErrPersonNotFound, t.First())
		}
		if _, ok := ids[t.Second()]; !ok {
			return fmt.Errorf("relation %s: %w: %d", t, ErrPersonNotFound, t.Second())
		}
	}
	return nil
}

func (b *Book) String() string {
	return fmt.Sprintf("Book{persons=%d relations=%d}", len(b.persons), len(b.relations))
}

func (b *Book) Redacted() string {
	return b.String()
}

func (b *Book) TypeName() string {
	return "Book"
}

func (b *Book) IsZero() bool {
	return len(b.persons) == 0 && len(b.relations) == 0
}
