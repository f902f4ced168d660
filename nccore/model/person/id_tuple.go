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

	"dirpx.dev/netconnect/nccore/errors"
	"dirpx.dev/netconnect/nccore/model"
	"gopkg.in/yaml.v3"
)

// SelfRelationConstraints is the message reported when both ids of a tuple
// are the same.
const SelfRelationConstraints = "A relation needs two different persons."

// IdTuple is an unordered pair of person ids recording that two persons are
// related.
//
// The pair is normalized on construction so that the smaller id comes
// first; IdTuple{1, 2} and IdTuple{2, 1} are therefore the same value and
// the type can be used directly as a map key.
type IdTuple struct {
	first  Id
	second Id
}

var _ model.Model = (*IdTuple)(nil)

// NewIdTuple returns the normalized pair of a and b. Both ids must be valid
// and different.
func NewIdTuple(a, b Id) (IdTuple, error) {
	if err := a.Validate(); err != nil {
		return IdTuple{}, err
	}
	if err := b.Validate(); err != nil {
		return IdTuple{}, err
	}
	if a == b {
		return IdTuple{}, invalid("IdTuple", SelfRelationConstraints, a.Value())
	}
	if b < a {
		a, b = b, a
	}
	return IdTuple{first: a, second: b}, nil
}

// First returns the smaller id.
func (t IdTuple) First() Id { return t.first }

// Second returns the larger id.
func (t IdTuple) Second() Id { return t.second }

// Contains reports whether id is one end of the tuple.
func (t IdTuple) Contains(id Id) bool {
	return t.first == id || t.second == id
}

// Other returns the end of the tuple that is not id. ok is false when id is
// not part of the tuple.
func (t IdTuple) Other(id Id) (other Id, ok bool) {
	switch id {
	case t.first:
		return t.second, true
	case t.second:
		return t.first, true
	default:
		return 0, false
	}
}

// Less orders tuples by first id, then second id.
func (t IdTuple) Less(other IdTuple) bool {
	if t.first != other.first {
		return t.first < other.first
	}
	return t.second < other.second
}

// String renders the tuple as "(1, 2)".
func (t IdTuple) String() string {
	return fmt.Sprintf("(%d, %d)", t.first, t.second)
}

// Redacted returns String; ids are not sensitive.
func (t IdTuple) Redacted() string {
	return t.String()
}

// TypeName returns "IdTuple".
func (t IdTuple) TypeName() string {
	return "IdTuple"
}

// IsZero reports whether t is the zero tuple.
func (t IdTuple) IsZero() bool {
	return t.first == 0 && t.second == 0
}

// Equal reports whether t and other relate the same two ids.
func (t IdTuple) Equal(other IdTuple) bool {
	return t == other
}

// Validate checks both ids and that the first is strictly lower than the
// second. NewIdTuple always yields a valid tuple.
func (t IdTuple) Validate() error {
	if err := t.first.Validate(); err != nil {
		return err
	}
	if err := t.second.Validate(); err != nil {
		return err
	}
	if t.first >= t.second {
		return invalid(t.TypeName(), SelfRelationConstraints, t.String())
	}
	return nil
}

// MarshalJSON encodes the tuple as a two-element array, [1, 2].
func (t IdTuple) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	return json.Marshal([2]int{t.first.Value(), t.second.Value()})
}

func (t *IdTuple) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return &errors.UnmarshalError{Type: "IdTuple", Data: data, Reason: err.Error()}
	}
	parsed, err := NewIdTuple(Id(pair[0]), Id(pair[1]))
	if err != nil {
		return &errors.UnmarshalError{Type: "IdTuple", Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	*t = parsed
	return nil
}

// MarshalYAML encodes the tuple as a flow sequence, [1, 2].
func (t IdTuple) MarshalYAML() (interface{}, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, id := range []Id{t.first, t.second} {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: id.String()})
	}
	return node, nil
}

func (t *IdTuple) UnmarshalYAML(node *yaml.Node) error {
	var pair []int
	if err := node.Decode(&pair); err != nil {
		return &errors.UnmarshalError{Type: "IdTuple", Data: []byte(node.Value), Reason: err.Error()}
	}
	if len(pair) != 2 {
		return &errors.UnmarshalError{Type: "IdTuple", Data: []byte(node.Value), Reason: "expected exactly two ids"}
	}
	parsed, err := NewIdTuple(Id(pair[0]), Id(pair[1]))
	if err != nil {
		return &errors.UnmarshalError{Type: "IdTuple", Data: []byte(node.Value), Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	*t = parsed
	return nil
}
