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

// Remark, TermsOfService and Preferences are optional free text. Any value
// is accepted, including the empty string, which means "not set".

// Remark is a free-text note attached to any person.
type Remark string

// TermsOfService records the terms agreed with a supplier.
type TermsOfService string

// Preferences records what a client prefers.
type Preferences string

var (
	_ model.Model = (*Remark)(nil)
	_ model.Model = (*TermsOfService)(nil)
	_ model.Model = (*Preferences)(nil)
)

// ParseRemark trims s. It never fails; the error is kept for symmetry with
// the other Parse functions.
func ParseRemark(s string) (Remark, error) {
	return Remark(strings.TrimSpace(s)), nil
}

func ParseTermsOfService(s string) (TermsOfService, error) {
	return TermsOfService(strings.TrimSpace(s)), nil
}

func ParsePreferences(s string) (Preferences, error) {
	return Preferences(strings.TrimSpace(s)), nil
}

func redactText(s string) string {
	if s == "" {
		return ""
	}
	return "[redacted]"
}

func (r Remark) String() string          { return string(r) }
func (r Remark) Redacted() string        { return redactText(string(r)) }
func (r Remark) TypeName() string        { return "Remark" }
func (r Remark) IsZero() bool            { return r == "" }
func (r Remark) Equal(other Remark) bool { return r == other }
func (r Remark) Validate() error         { return nil }

func (r Remark) MarshalJSON() ([]byte, error) {
	return marshalJSONString(r, string(r))
}

func (r *Remark) UnmarshalJSON(data []byte) error {
	v, err := unmarshalJSONString("Remark", data, ParseRemark)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r Remark) MarshalYAML() (interface{}, error) {
	return marshalYAMLString(r, string(r))
}

func (r *Remark) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalYAMLString("Remark", node, ParseRemark)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (t TermsOfService) String() string                  { return string(t) }
func (t TermsOfService) Redacted() string                { return redactText(string(t)) }
func (t TermsOfService) TypeName() string                { return "TermsOfService" }
func (t TermsOfService) IsZero() bool                    { return t == "" }
func (t TermsOfService) Equal(other TermsOfService) bool { return t == other }
func (t TermsOfService) Validate() error                 { return nil }

func (t TermsOfService) MarshalJSON() ([]byte, error) {
	return marshalJSONString(t, string(t))
}

func (t *TermsOfService) UnmarshalJSON(data []byte) error {
	v, err := unmarshalJSONString("TermsOfService", data, ParseTermsOfService)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t TermsOfService) MarshalYAML() (interface{}, error) {
	return marshalYAMLString(t, string(t))
}

func (t *TermsOfService) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalYAMLString("TermsOfService", node, ParseTermsOfService)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (p Preferences) String() string               { return string(p) }
func (p Preferences) Redacted() string             { return redactText(string(p)) }
func (p Preferences) TypeName() string             { return "Preferences" }
func (p Preferences) IsZero() bool                 { return p == "" }
func (p Preferences) Equal(other Preferences) bool { return p == other }
func (p Preferences) Validate() error              { return nil }

func (p Preferences) MarshalJSON() ([]byte, error) {
	return marshalJSONString(p, string(p))
}

func (p *Preferences) UnmarshalJSON(data []byte) error {
	v, err := unmarshalJSONString("Preferences", data, ParsePreferences)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p Preferences) MarshalYAML() (interface{}, error) {
	return marshalYAMLString(p, string(p))
}

func (p *Preferences) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalYAMLString("Preferences", node, ParsePreferences)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
