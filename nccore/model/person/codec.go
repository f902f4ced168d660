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
	"sort"

	"dirpx.dev/netconnect/nccore/errors"
	"gopkg.in/yaml.v3"
)

// The string-backed field types share one encoding: a bare JSON/YAML string
// holding the raw (unrendered) value. These helpers keep the per-type
// Marshal/Unmarshal methods to a single line each.

// checked is the part of model.Model the marshal helpers need. Field types
// satisfy it by value; model.Model itself needs a pointer.
type checked interface {
	Validate() error
	TypeName() string
}

func marshalJSONString(m checked, raw string) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(raw)
}

func marshalYAMLString(m checked, raw string) (interface{}, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return raw, nil
}

func unmarshalJSONString[T any](typeName string, data []byte, parse func(string) (T, error)) (T, error) {
	var zero T

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return zero, &errors.UnmarshalError{Type: typeName, Data: data, Reason: err.Error()}
	}

	v, err := parse(s)
	if err != nil {
		return zero, &errors.UnmarshalError{Type: typeName, Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return v, nil
}

func unmarshalYAMLString[T any](typeName string, node *yaml.Node, parse func(string) (T, error)) (T, error) {
	var zero T

	var s string
	if err := node.Decode(&s); err != nil {
		return zero, &errors.UnmarshalError{Type: typeName, Data: []byte(node.Value), Reason: err.Error()}
	}

	v, err := parse(s)
	if err != nil {
		return zero, &errors.UnmarshalError{Type: typeName, Data: []byte(node.Value), Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return v, nil
}

// sortedSet returns the distinct values of in, sorted. The result is never nil.
func sortedSet[T ~string](in []T) []T {
	seen := make(map[T]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func equalSets[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func invalid(typeName, reason string, value any) error {
	return &errors.ValidationError{Type: typeName, Reason: reason, Value: value}
}
