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
	"strings"

	"dirpx.dev/netconnect/nccore/model"
	"gopkg.in/yaml.v3"
)

// AddressConstraints is the message reported for invalid addresses.
const AddressConstraints = "Addresses can take any values, and it should not be blank"

// Address is a free-form postal address. The only rule is that it must not
// be blank; the first character may not be whitespace.
type Address string

var _ model.Model = (*Address)(nil)

// ParseAddress trims s and validates the result.
func ParseAddress(s string) (Address, error) {
	a := Address(strings.TrimSpace(s))
	if err := a.Validate(); err != nil {
		return "", err
	}
	return a, nil
}

// IsValidAddress reports whether s is a valid address.
func IsValidAddress(s string) bool {
	return s != "" && strings.TrimLeft(s, " \t\r\n") == s
}

func (a Address) String() string {
	return string(a)
}

// Redacted hides everything but the first word of the address.
func (a Address) Redacted() string {
	if a == "" {
		return "[empty]"
	}
	first, _, found := strings.Cut(string(a), " ")
	if !found {
		return "***"
	}
	return first + " ***"
}

func (a Address) TypeName() string {
	return "Address"
}

func (a Address) IsZero() bool {
	return a == ""
}

func (a Address) Equal(other Address) bool {
	return a == other
}

func (a Address) Validate() error {
	if !IsValidAddress(string(a)) {
		return invalid(a.TypeName(), AddressConstraints, string(a))
	}
	return nil
}

func (a Address) MarshalJSON() ([]byte, error) {
	return marshalJSONString(a, string(a))
}

func (a *Address) UnmarshalJSON(data []byte) error {
	v, err := unmarshalJSONString("Address", data, ParseAddress)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a Address) MarshalYAML() (interface{}, error) {
	return marshalYAMLString(a, string(a))
}

func (a *Address) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalYAMLString("Address", node, ParseAddress)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
