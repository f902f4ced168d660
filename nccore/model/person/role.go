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
	"strings"

	"dirpx.dev/netconnect/nccore/errors"
	"dirpx.dev/netconnect/nccore/model"
	"gopkg.in/yaml.v3"
)

// Role classifies a person in the address book and decides which
// role-specific details the person carries.
//
// Role is a closed set. The zero value is not a role: a Person whose Role
// is zero fails validation.
type Role int

const (
	// Client is a customer. Clients carry Products and Preferences.
	Client Role = iota + 1

	// Employee is a member of staff. Employees carry Department, JobTitle
	// and Skills.
	Employee

	// Supplier provides goods. Suppliers carry Products and TermsOfService.
	Supplier
)

const (
	ClientStr   = "client"
	EmployeeStr = "employee"
	SupplierStr = "supplier"
)

// RoleConstraints is the message reported for an unknown role word.
const RoleConstraints = "Invalid role specified. Must be one of: client, employee, supplier."

// Roles lists every role in display order.
var Roles = []Role{Client, Employee, Supplier}

// ParseRole parses a role word. Matching ignores case and surrounding
// whitespace, so "Client", " EMPLOYEE " and "supplier" are all accepted.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case ClientStr:
		return Client, nil
	case EmployeeStr:
		return Employee, nil
	case SupplierStr:
		return Supplier, nil
	default:
		return 0, &errors.ParseError{Type: "Role", Value: s, Reason: RoleConstraints}
	}
}

func (r Role) String() string {
	switch r {
	case Client:
		return ClientStr
	case Employee:
		return EmployeeStr
	case Supplier:
		return SupplierStr
	default:
		return "unknown"
	}
}

// Title returns the capitalised role word used in display text, "Client".
func (r Role) Title() string {
	s := r.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

func (r Role) Valid() bool {
	return r == Client || r == Employee || r == Supplier
}

func (r Role) TypeName() string {
	return "Role"
}

func (r Role) Redacted() string {
	return r.String()
}

func (r Role) IsZero() bool {
	return r == 0
}

func (r Role) Equal(other Role) bool {
	return r == other
}

func (r Role) Validate() error {
	if !r.Valid() {
		return &errors.ValidationError{
			Type:   "Role",
			Reason: RoleConstraints,
			Value:  int(r),
		}
	}
	return nil
}

func (r Role) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, &errors.MarshalError{Type: "Role", Value: int(r)}
	}
	return []byte(`"` + r.String() + `"`), nil
}

func (r *Role) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Role", Data: data, Reason: "empty data"}
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Role", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Role) MarshalYAML() (interface{}, error) {
	if !r.Valid() {
		return nil, &errors.MarshalError{Type: "Role", Value: int(r)}
	}
	return r.String(), nil
}

func (r *Role) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Role", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, &errors.MarshalError{Type: "Role", Value: int(r)}
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

var _ model.Model = (*Role)(nil)
