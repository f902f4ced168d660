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
	"regexp"
	"strings"

	"dirpx.dev/netconnect/nccore/model"
	"gopkg.in/yaml.v3"
)

// NameConstraints is the message reported for invalid names.
const NameConstraints = "Names should only contain alphanumeric characters and spaces, and it should not be blank"

// NameRegexp matches a valid name: letters, digits and spaces, starting with
// a letter or digit. Letters outside ASCII are accepted.
var NameRegexp = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)

// Name is a person's display name.
//
// Names are compared exactly (case-sensitive) for equality and duplicate
// detection; keyword search over names is case-insensitive and lives in the
// filter package.
//
// Examples of valid names:
//
//	"Alice Pauline"
//	"Benson Meier"
//	"李明"
//	"R2D2"
type Name string

var _ model.Model = (*Name)(nil)

// ParseName trims s and validates the result.
//
// Example:
//
//	n, err := person.ParseName("  Alice Pauline ")
//	// n == "Alice Pauline"
//
//	_, err = person.ParseName("Alice*")
//	// err.Error() == person.NameConstraints
func ParseName(s string) (Name, error) {
	n := Name(strings.TrimSpace(s))
	if err := n.Validate(); err != nil {
		return "", err
	}
	return n, nil
}

// IsValidName reports whether s, as given, is a valid name.
func IsValidName(s string) bool {
	return NameRegexp.MatchString(s)
}

func (n Name) String() string {
	return string(n)
}

// Redacted returns the name unchanged: names are what users search and
// log lines are useless without them.
func (n Name) Redacted() string {
	return n.String()
}

func (n Name) TypeName() string {
	return "Name"
}

func (n Name) IsZero() bool {
	return n == ""
}

func (n Name) Equal(other Name) bool {
	return n == other
}

// Validate reports a ValidationError carrying NameConstraints when the name
// is blank or contains anything other than letters, digits and spaces.
func (n Name) Validate() error {
	if !IsValidName(string(n)) {
		return invalid(n.TypeName(), NameConstraints, string(n))
	}
	return nil
}

func (n Name) MarshalJSON() ([]byte, error) {
	return marshalJSONString(n, string(n))
}

func (n *Name) UnmarshalJSON(data []byte) error {
	v, err := unmarshalJSONString("Name", data, ParseName)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (n Name) MarshalYAML() (interface{}, error) {
	return marshalYAMLString(n, string(n))
}

func (n *Name) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalYAMLString("Name", node, ParseName)
	if err != nil {
		return err
	}
	*n = v
	return nil
}
