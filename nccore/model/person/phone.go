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
	"fmt"
	"regexp"
	"strings"

	"dirpx.dev/netconnect/nccore/model"
	"gopkg.in/yaml.v3"
)

const (
	// PhoneMinLength is the minimum number of digits in a phone number.
	PhoneMinLength = 3

	// PhoneMaxLength is the maximum number of digits in a phone number
	// (the E.164 limit).
	PhoneMaxLength = 15
)

// PhoneConstraints is the message reported for invalid phone numbers.
var PhoneConstraints = fmt.Sprintf(
	"Phone numbers should only contain numbers, and it should be between %d and %d digits long",
	PhoneMinLength, PhoneMaxLength)

var phoneRegexp = regexp.MustCompile(fmt.Sprintf(`^[0-9]{%d,%d}$`, PhoneMinLength, PhoneMaxLength))

// Phone is a phone number made of digits only.
type Phone string

var _ model.Model = (*Phone)(nil)

// ParsePhone trims s and validates the result.
func ParsePhone(s string) (Phone, error) {
	p := Phone(strings.TrimSpace(s))
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// IsValidPhone reports whether s is a valid phone number.
func IsValidPhone(s string) bool {
	return phoneRegexp.MatchString(s)
}

func (p Phone) String() string {
	return string(p)
}

// Redacted keeps only the last two digits: "94351253" -> "******53".
func (p Phone) Redacted() string {
	if len(p) <= 2 {
		return strings.Repeat("*", len(p))
	}
	return strings.Repeat("*", len(p)-2) + string(p[len(p)-2:])
}

func (p Phone) TypeName() string {
	return "Phone"
}

func (p Phone) IsZero() bool {
	return p == ""
}

func (p Phone) Equal(other Phone) bool {
	return p == other
}

func (p Phone) Validate() error {
	if !IsValidPhone(string(p)) {
		return invalid(p.TypeName(), PhoneConstraints, string(p))
	}
	return nil
}

func (p Phone) MarshalJSON() ([]byte, error) {
	return marshalJSONString(p, string(p))
}

func (p *Phone) UnmarshalJSON(data []byte) error {
	v, err := unmarshalJSONString("Phone", data, ParsePhone)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p Phone) MarshalYAML() (interface{}, error) {
	return marshalYAMLString(p, string(p))
}

func (p *Phone) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalYAMLString("Phone", node, ParsePhone)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
