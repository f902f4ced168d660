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

// Package schema versions the on-disk layout of an address book.
//
// Every data file records the schema Version it was written with. A reader
// accepts a file when Compatible reports true: same major version, and not
// newer than the version this build writes.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"dirpx.dev/netconnect/nccore/errors"
	"dirpx.dev/netconnect/nccore/model"
	bsemver "github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"
)

// Current is the schema version written by this build.
var Current = MustParse("1.0.0")

// Version is a semantic version of the data-file schema.
type Version struct {
	v bsemver.Version
}

var _ model.Model = (*Version)(nil)

// Parse parses a semantic version. A leading "v" is accepted.
func Parse(s string) (Version, error) {
	bv, err := bsemver.Parse(strings.TrimPrefix(strings.TrimSpace(s), "v"))
	if err != nil {
		return Version{}, &errors.ParseError{Type: "Version", Value: s, Err: err}
	}
	return Version{v: bv}, nil
}

// MustParse is like Parse but panics on error. Use it for constants only.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Major returns the major component.
func (v Version) Major() uint64 {
	return v.v.Major
}

// Compatible reports whether data written with other can be read by a
// build that writes v.
func (v Version) Compatible(other Version) bool {
	return other.v.Major == v.v.Major && other.v.LTE(v.v)
}

// Compatible reports whether data written with v can be read by this build.
func Compatible(v Version) bool {
	return Current.Compatible(v)
}

// Compare returns -1, 0 or +1 as v is lower than, equal to or higher than
// other, by semver precedence.
func (v Version) Compare(other Version) int {
	return v.v.Compare(other.v)
}

// Equal reports whether v and other have the same precedence.
func (v Version) Equal(other Version) bool {
	return v.v.EQ(other.v)
}

// String returns the version without a leading "v", e.g. "1.0.0".
func (v Version) String() string {
	return v.v.String()
}

// Redacted returns String; versions are not sensitive.
func (v Version) Redacted() string {
	return v.String()
}

// TypeName returns "Version".
func (v Version) TypeName() string {
	return "Version"
}

// IsZero reports whether v is 0.0.0 with no pre-release or build tags.
func (v Version) IsZero() bool {
	return v.v.EQ(bsemver.Version{}) && len(v.v.Pre) == 0 && len(v.v.Build) == 0
}

// Validate rejects malformed and zero versions.
func (v Version) Validate() error {
	if err := v.v.Validate(); err != nil {
		return &errors.ValidationError{Type: "Version", Reason: err.Error(), Value: v.String()}
	}
	if v.IsZero() {
		return &errors.ValidationError{Type: "Version", Reason: "schema version must not be 0.0.0", Value: v.String()}
	}
	return nil
}

// MarshalJSON encodes v as a JSON string.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON parses a JSON string with Parse.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Version", Data: data, Reason: err.Error()}
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes v as a YAML scalar.
func (v Version) MarshalYAML() (interface{}, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return v.String(), nil
}

// UnmarshalYAML parses a YAML scalar with Parse.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Version", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
