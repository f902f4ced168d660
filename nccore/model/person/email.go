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

// EmailMaxLength is the maximum length of an email address in bytes
// (RFC 5321).
const EmailMaxLength = 254

// EmailConstraints is the message reported for invalid email addresses.
const EmailConstraints = "Emails should be of the format local-part@domain " +
	"and adhere to the following constraints:\n" +
	"1. The local-part should only contain alphanumeric characters and these special characters, excluding " +
	"the parentheses, (+_.-). The local-part may not start or end with any special characters.\n" +
	"2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels " +
	"separated by periods.\n" +
	"The domain name must:\n" +
	"    - have each domain label start and end with alphanumeric characters\n" +
	"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."

const (
	emailLocalFmt  = `[A-Za-z0-9](?:[A-Za-z0-9+_.-]*[A-Za-z0-9])?`
	emailLabelFmt  = `[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?`
	emailDomainFmt = emailLabelFmt + `(?:\.` + emailLabelFmt + `)*`
)

var emailRegexp = regexp.MustCompile(`^` + emailLocalFmt + `@` + emailDomainFmt + `$`)

// Email is a contact email address of the shape local-part@domain.
//
// Single-label domains ("amy@x") are accepted: NetConnect is often used
// with addresses on internal mail hosts.
type Email string

var _ model.Model = (*Email)(nil)

// ParseEmail trims s and validates the result.
func ParseEmail(s string) (Email, error) {
	e := Email(strings.TrimSpace(s))
	if err := e.Validate(); err != nil {
		return "", err
	}
	return e, nil
}

// IsValidEmail reports whether s is a valid email address.
func IsValidEmail(s string) bool {
	return len(s) <= EmailMaxLength && emailRegexp.MatchString(s)
}

func (e Email) String() string {
	return string(e)
}

// Redacted masks the local part: "alice@example.com" -> "a***@example.com".
func (e Email) Redacted() string {
	return redactEmail(string(e))
}

func redactEmail(email string) string {
	if email == "" {
		return "[empty]"
	}

	at := strings.Index(email, "@")
	if at <= 0 {
		return "[invalid]"
	}

	return email[:1] + "***" + email[at:]
}

func (e Email) TypeName() string {
	return "Email"
}

func (e Email) IsZero() bool {
	return e == ""
}

func (e Email) Equal(other Email) bool {
	return e == other
}

func (e Email) Validate() error {
	if !IsValidEmail(string(e)) {
		return invalid(e.TypeName(), EmailConstraints, string(e))
	}
	return nil
}

func (e Email) MarshalJSON() ([]byte, error) {
	return marshalJSONString(e, string(e))
}

func (e *Email) UnmarshalJSON(data []byte) error {
	v, err := unmarshalJSONString("Email", data, ParseEmail)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func (e Email) MarshalYAML() (interface{}, error) {
	return marshalYAMLString(e, string(e))
}

func (e *Email) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalYAMLString("Email", node, ParseEmail)
	if err != nil {
		return err
	}
	*e = v
	return nil
}
