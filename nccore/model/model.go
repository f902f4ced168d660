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

// Package model defines the contracts every NetConnect domain type MUST
// implement: validation, JSON and YAML serialization, safe logging, type
// identification and zero-value detection.
//
// Field value objects (Name, Phone, Email, ...), the Person record, the
// IdTuple relation edge and the address book snapshot all implement Model.
// Sub-packages hold the concrete types:
//
//   - person: field value objects, Role, Person, IdTuple
//   - filter: predicates and their AND-composition
//   - book:   the address book aggregate (persons + relations)
//   - schema: the data file format version
//
// Model types are immutable values unless documented otherwise. Concurrent
// reads are safe; NetConnect executes commands one at a time, so no type in
// this tree synchronizes writes.
//
// The generic helpers in this package (ValidateAll, MustValidate,
// SafeString, ToJSON, ToYAML, FromJSON, FromYAML) are constrained to Model
// and fail at compile time for other types. Field types implement Model
// through their pointer, so pass *T, not T.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all contracts required for
// NetConnect domain types.
//
// Implementations add a compile-time assertion next to the type:
//
//	var _ model.Model = (*Name)(nil)
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// Validate MUST be fast, deterministic and free of side effects. For field
// value objects the returned error is a *errors.ValidationError whose
// message is the fixed constraint text shown to the user, so callers MAY
// surface it verbatim.
//
// Callers SHOULD invoke Validate after reading a data file, after building
// values from command text and before persisting.
type Validatable interface {
	// Validate returns nil if the instance satisfies all invariants.
	Validate() error
}

// Serializable defines the contract for types that round-trip through JSON
// and YAML. The address book data file is YAML; the SQLite backend stores
// persons as JSON payloads.
//
// Marshal methods MUST validate first and refuse to emit invalid values.
// Unmarshal methods MUST validate the decoded value and report failures as
// *errors.UnmarshalError. Use a local type alias inside the methods to avoid
// infinite recursion:
//
//	func (p Person) MarshalJSON() ([]byte, error) {
//	    if err := p.Validate(); err != nil {
//	        return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
//	    }
//	    type person Person
//	    return json.Marshal(person(p))
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide safe string
// representations.
//
// Redacted is used for log output and MUST mask personal details that do
// not help debugging (the local part of an email, digits of a phone number).
// String is the canonical display rendering used in command feedback; it
// MUST NOT be passed to the logger.
type Loggable interface {
	// Redacted returns a representation safe for log files.
	Redacted() string

	// String returns the canonical, human-readable rendering.
	String() string
}

// Identifiable defines the contract for types that report a constant,
// CamelCase type name without a package prefix ("Phone", "Person").
// The name is used in error messages and structured log fields.
type Identifiable interface {
	// TypeName returns the canonical name of the type.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether
// they hold no meaningful data. Optional fields (Remark, Preferences,
// TermsOfService) use IsZero to decide whether they are set.
type ZeroCheckable interface {
	// IsZero reports whether the instance is semantically empty.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for
// value equality. Equal MUST be reflexive, symmetric and transitive and
// compare normalized values.
type Comparable[T any] interface {
	// Equal reports whether the receiver and other hold the same value.
	Equal(other T) bool
}
