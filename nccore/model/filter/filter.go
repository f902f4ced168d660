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

package filter

import (
	stderrors "errors"
	"fmt"
	"strings"

	"dirpx.dev/netconnect/nccore/model/person"
)

// ErrNilPredicates is returned by Of when given a nil slice.
var ErrNilPredicates = stderrors.New("filter: predicates must not be nil")

// Filter is an immutable, ordered conjunction of predicates. A person
// passes the filter when it passes every predicate; the empty filter
// passes everyone.
//
// Filters are shared freely: Add returns a new Filter and never touches
// the receiver.
type Filter struct {
	predicates []Predicate
}

var noFilter = &Filter{predicates: []Predicate{}}

// NoFilter returns the shared empty filter. Every call returns the same
// pointer.
func NoFilter() *Filter {
	return noFilter
}

// Of builds a filter from predicates, in order. A nil slice is rejected
// with ErrNilPredicates; an empty one yields NoFilter().
func Of(predicates []Predicate) (*Filter, error) {
	if predicates == nil {
		return nil, ErrNilPredicates
	}
	if len(predicates) == 0 {
		return noFilter, nil
	}
	return &Filter{predicates: append([]Predicate(nil), predicates...)}, nil
}

// Add returns a new filter with p appended.
func (f *Filter) Add(p Predicate) *Filter {
	next := make([]Predicate, 0, len(f.predicates)+1)
	next = append(next, f.predicates...)
	next = append(next, p)
	return &Filter{predicates: next}
}

// Test reports whether x passes every predicate.
func (f *Filter) Test(x person.Person) bool {
	for _, p := range f.predicates {
		if !p.Test(x) {
			return false
		}
	}
	return true
}

// Format renders the predicates as a numbered list:
//
//	1. n/Alice
//	2. t/friends
func (f *Filter) Format() string {
	lines := make([]string, len(f.predicates))
	for i, p := range f.predicates {
		lines[i] = fmt.Sprintf("%d. %s", i+1, p.Format())
	}
	return strings.Join(lines, "\n")
}

// Len returns the number of predicates.
func (f *Filter) Len() int {
	return len(f.predicates)
}

// IsEmpty reports whether the filter has no predicates.
func (f *Filter) IsEmpty() bool {
	return len(f.predicates) == 0
}

// Predicates returns a copy of the predicates in order.
func (f *Filter) Predicates() []Predicate {
	return append([]Predicate{}, f.predicates...)
}

// Equal reports whether both filters hold equal predicates in the same
// order. A nil filter equals only another nil filter.
func (f *Filter) Equal(other *Filter) bool {
	if f == nil || other == nil {
		return f == other
	}
	if len(f.predicates) != len(other.predicates) {
		return false
	}
	for i := range f.predicates {
		if !f.predicates[i].Equal(other.predicates[i]) {
			return false
		}
	}
	return true
}

func (f *Filter) String() string {
	parts := make([]string, len(f.predicates))
	for i, p := range f.predicates {
		parts[i] = p.String()
	}
	return "Filter{filters=[" + strings.Join(parts, ", ") + "]}"
}
