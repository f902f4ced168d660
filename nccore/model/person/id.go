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

package person

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"dirpx.dev/netconnect/nccore/errors"
	"dirpx.dev/netconnect/nccore/model"
	"gopkg.in/yaml.v3"
)

// IdConstraints is the message reported for malformed ids.
const IdConstraints = "Ids should be positive integers."

var idRegexp = regexp.MustCompile(`^[0-9]+$`)

// Id is the numeric identifier the address book assigns to every person.
//
// Ids are unique within one address book and are the handle used by edit,
// delete, relate, unrelate and showrelated. The zero value means "not yet
// assigned": a person parsed from an add command carries Id 0 until the
// book stores it.
//
// Ids render without leading zeros, so "i/007" and "i/7" name the same
// person.
type Id int

var _ model.Model = (*Id)(nil)

// NewId returns value as an Id, failing when value is not positive.
func NewId(value int) (Id, error) {
	id := Id(value)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseId parses the decimal text of an id. Surrounding whitespace is
// ignored and leading zeros are dropped.
func ParseId(s string) (Id, error) {
	trimmed := strings.TrimSpace(s)
	if !idRegexp.MatchString(trimmed) {
		return 0, invalid("Id", IdConstraints, s)
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, invalid("Id", IdConstraints, s)
	}
	return NewId(n)
}

// IsValidId reports whether s is the decimal text of a positive id.
func IsValidId(s string) bool {
	_, err := ParseId(s)
	return err == nil
}

// Value returns the numeric value of the id.
func (id Id) Value() int {
	return int(id)
}

// String returns the decimal rendering of the id.
func (id Id) String() string {
	return strconv.Itoa(int(id))
}

// Redacted returns the same as String; ids are not personal data.
func (id Id) Redacted() string {
	return id.String()
}

// TypeName implements model.Identifiable.
func (id Id) TypeName() string {
	return "Id"
}

// IsZero reports whether the id is unassigned.
func (id Id) IsZero() bool {
	return id == 0
}

// Equal reports whether both ids are the same.
func (id Id) Equal(other Id) bool {
	return id == other
}

// Validate reports an error unless the id is positive.
func (id Id) Validate() error {
	if id <= 0 {
		return invalid(id.TypeName(), IdConstraints, int(id))
	}
	return nil
}

// MarshalJSON encodes the id as a JSON number.
func (id Id) MarshalJSON() ([]byte, error) {
	if err := id.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", id.TypeName(), err)
	}
	return json.Marshal(int(id))
}

// UnmarshalJSON decodes a JSON number into the id.
func (id *Id) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return &errors.UnmarshalError{Type: "Id", Data: data, Reason: err.Error()}
	}

	parsed, err := NewId(n)
	if err != nil {
		return &errors.UnmarshalError{Type: "Id", Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}

	*id = parsed
	return nil
}

// MarshalYAML encodes the id as a YAML integer.
func (id Id) MarshalYAML() (interface{}, error) {
	if err := id.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", id.TypeName(), err)
	}
	return int(id), nil
}

// UnmarshalYAML decodes a YAML integer into the id.
func (id *Id) UnmarshalYAML(node *yaml.Node) error {
	var n int
	if err := node.Decode(&n); err != nil {
		return &errors.UnmarshalError{Type: "Id", Data: []byte(node.Value), Reason: err.Error()}
	}

	parsed, err := NewId(n)
	if err != nil {
		return &errors.UnmarshalError{Type: "Id", Data: []byte(node.Value), Reason: fmt.Sprintf("validation failed: %v", err)}
	}

	*id = parsed
	return nil
}
