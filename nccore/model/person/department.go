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

// Unset is the sentinel stored for an optional Department or JobTitle that
// was not given. It is valid and renders as the empty string.
const Unset = "-"

// DepartmentConstraints is the message reported for invalid departments.
const DepartmentConstraints = "Department should only contain alphanumeric characters and spaces, and it should not be blank"

// Department is the organisational unit of an employee.
//
// A Department is either alphanumeric text with spaces (same shape as
// Name) or the Unset sentinel "-". The sentinel renders as "" so that
// employees without a department display cleanly.
type Department string

var _ model.Model = (*Department)(nil)

// UnsetDepartment is the default department of a newly added employee.
const UnsetDepartment Department = Unset

// ParseDepartment trims s and validates the result.
func ParseDepartment(s string) (Department, error) {
	d := Department(strings.TrimSpace(s))
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// IsValidDepartment reports whether s is a valid department or the sentinel.
func IsValidDepartment(s string) bool {
	return s == Unset || NameRegexp.MatchString(s)
}

// String returns the department, or "" for the sentinel.
func (d Department) String() string {
	if d == UnsetDepartment {
		return ""
	}
	return string(d)
}

// Raw returns the stored value, sentinel included.
func (d Department) Raw() string {
	return string(d)
}

// IsUnset reports whether the department holds the sentinel.
func (d Department) IsUnset() bool {
	return d == UnsetDepartment
}

func (d Department) Redacted() string {
	return d.String()
}

func (d Department) TypeName() string {
	return "Department"
}

func (d Department) IsZero() bool {
	return d == ""
}

func (d Department) Equal(other Department) bool {
	return d == other
}

func (d Department) Validate() error {
	if !IsValidDepartment(string(d)) {
		return invalid(d.TypeName(), DepartmentConstraints, string(d))
	}
	return nil
}

func (d Department) MarshalJSON() ([]byte, error) {
	return marshalJSONString(d, string(d))
}

func (d *Department) UnmarshalJSON(data []byte) error {
	v, err := unmarshalJSONString("Department", data, ParseDepartment)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Department) MarshalYAML() (interface{}, error) {
	return marshalYAMLString(d, string(d))
}

func (d *Department) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalYAMLString("Department", node, ParseDepartment)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
