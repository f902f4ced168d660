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

package person_test

import (
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"dirpx.dev/netconnect/nccore/errors"
	"dirpx.dev/netconnect/nccore/model/person"
	"gopkg.in/yaml.v3"
)

func TestParseId(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    person.Id
		wantErr bool
	}{
		{"simple", "1", 1, false},
		{"large", "12345", 12345, false},
		{"leading zeros", "007", 7, false},
		{"surrounding spaces", "  3 ", 3, false},

		{"zero", "0", 0, true},
		{"negative", "-1", 0, true},
		{"empty", "", 0, true},
		{"letters", "abc", 0, true},
		{"mixed", "1a", 0, true},
		{"decimal", "1.5", 0, true},
		{"overflow", strings.Repeat("9", 40), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := person.ParseId(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseId(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if err.Error() != person.IdConstraints {
					t.Errorf("ParseId(%q) error = %q, want %q", tt.input, err.Error(), person.IdConstraints)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseId(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestId_JSON(t *testing.T) {
	data, err := json.Marshal(person.Id(42))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != "42" {
		t.Errorf("Marshal() = %s, want 42", data)
	}

	var id person.Id
	if err := json.Unmarshal([]byte("7"), &id); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if id != 7 {
		t.Errorf("Unmarshal() = %d, want 7", id)
	}

	if err := json.Unmarshal([]byte("0"), &id); err == nil {
		t.Error("Unmarshal(0) expected error")
	}
	if _, err := json.Marshal(person.Id(0)); err == nil {
		t.Error("Marshal(0) expected error")
	}
}

func TestName_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"single word", "Alice", false},
		{"two words", "Alice Pauline", false},
		{"digits only", "12345", false},
		{"alphanumeric", "R2D2", false},
		{"long", "David Roger Jackson Ray Jr 2nd", false},
		{"non latin", "李明", false},
		{"accented", "José Ñúñez", false},

		{"empty", "", true},
		{"spaces only", "   ", true},
		{"leading space", " Alice", true},
		{"asterisk", "Alice*", true},
		{"hyphen", "Mary-Jane", true},
		{"punctuation", "^", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := person.Name(tt.value).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Name(%q).Validate() error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && err.Error() != person.NameConstraints {
				t.Errorf("error = %q, want %q", err.Error(), person.NameConstraints)
			}
		})
	}
}

func TestParseName_Trims(t *testing.T) {
	got, err := person.ParseName("  Alice Pauline  ")
	if err != nil {
		t.Fatalf("ParseName() error = %v", err)
	}
	if got != "Alice Pauline" {
		t.Errorf("ParseName() = %q, want %q", got, "Alice Pauline")
	}
}

func TestPhone_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"minimum length", "911", false},
		{"typical", "93121534", false},
		{"maximum length", strings.Repeat("1", 15), false},

		{"empty", "", true},
		{"too short", "91", true},
		{"too long", strings.Repeat("1", 16), true},
		{"letters", "phone", true},
		{"mixed", "9011p041", true},
		{"spaces", "9312 1534", true},
		{"plus sign", "+6591234567", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := person.Phone(tt.value).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Phone(%q).Validate() error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestPhone_Redacted(t *testing.T) {
	tests := []struct {
		value person.Phone
		want  string
	}{
		{"94351253", "******53"},
		{"911", "*11"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			if got := tt.value.Redacted(); got != tt.want {
				t.Errorf("Redacted() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmail_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"simple", "alice@example.com", false},
		{"single label domain", "amy@x", false},
		{"plus in local", "a+b@example.com", false},
		{"dot in local", "first.last@example.com", false},
		{"hyphen in domain", "peter@my-domain.org", false},
		{"numeric", "123@145", false},
		{"single char local", "a@bc", false},
		{"subdomains", "e1234567@u.nus.edu", false},

		{"empty", "", true},
		{"missing at", "aliceexample.com", true},
		{"missing local", "@example.com", true},
		{"missing domain", "alice@", true},
		{"local starts with special", "-alice@example.com", true},
		{"local ends with special", "alice.@example.com", true},
		{"label ends with hyphen", "alice@example-.com", true},
		{"domain ends with dot", "alice@example.", true},
		{"space", "alice @example.com", true},
		{"double at", "alice@@example.com", true},
		{"too long", strings.Repeat("a", 250) + "@x.io", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := person.Email(tt.value).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Email(%q).Validate() error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && err.Error() != person.EmailConstraints {
				t.Errorf("error = %q, want EmailConstraints", err.Error())
			}
		})
	}
}

func TestEmail_Redacted(t *testing.T) {
	tests := []struct {
		value person.Email
		want  string
	}{
		{"alice@example.com", "a***@example.com"},
		{"b@x", "b***@x"},
		{"", "[empty]"},
		{"noatsign", "[invalid]"},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			if got := tt.value.Redacted(); got != tt.want {
				t.Errorf("Redacted() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddress_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"typical", "123, Jurong West Ave 6, #08-111", false},
		{"single char", "-", false},
		{"symbols", "Blk 456, Den Road, #01-355", false},

		{"empty", "", true},
		{"leading space", " 123 Street", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := person.Address(tt.value).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Address(%q).Validate() error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}

	if _, err := person.ParseAddress("   "); err == nil || err.Error() != person.AddressConstraints {
		t.Errorf("ParseAddress(blank) error = %v, want %q", err, person.AddressConstraints)
	}
}

func TestFreeText_AcceptsAnything(t *testing.T) {
	for _, s := range []string{"", "likes coffee", "!@#$%^&*()", "multi\nline"} {
		r, err := person.ParseRemark(s)
		if err != nil {
			t.Errorf("ParseRemark(%q) error = %v", s, err)
		}
		if err := r.Validate(); err != nil {
			t.Errorf("Remark(%q).Validate() error = %v", s, err)
		}
		if err := person.TermsOfService(s).Validate(); err != nil {
			t.Errorf("TermsOfService(%q).Validate() error = %v", s, err)
		}
		if err := person.Preferences(s).Validate(); err != nil {
			t.Errorf("Preferences(%q).Validate() error = %v", s, err)
		}
	}
}

func TestRemark_MarshalEmpty(t *testing.T) {
	data, err := json.Marshal(person.Remark(""))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `""` {
		t.Errorf("Marshal() = %s, want \"\"", data)
	}
}

func TestTag_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"word", "friends", false},
		{"digits", "2024", false},
		{"mixed", "vip1", false},

		{"empty", "", true},
		{"space", "best friend", true},
		{"hash", "#friends", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := person.Tag(tt.value).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Tag(%q).Validate() error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && err.Error() != person.TagConstraints {
				t.Errorf("error = %q, want %q", err.Error(), person.TagConstraints)
			}
		})
	}
}

func TestParseTags(t *testing.T) {
	tags, err := person.ParseTags([]string{"owesMoney", "friends", "friends", " colleagues "})
	if err != nil {
		t.Fatalf("ParseTags() error = %v", err)
	}
	want := person.Tags{"colleagues", "friends", "owesMoney"}
	if !tags.Equal(want) {
		t.Errorf("ParseTags() = %v, want %v", tags, want)
	}
	if got := tags.String(); got != "[colleagues][friends][owesMoney]" {
		t.Errorf("String() = %q", got)
	}
	if !tags.Contains("friends") || tags.Contains("family") {
		t.Error("Contains() mismatch")
	}

	empty, err := person.ParseTags(nil)
	if err != nil {
		t.Fatalf("ParseTags(nil) error = %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("ParseTags(nil) = %#v, want empty non-nil", empty)
	}

	if _, err := person.ParseTags([]string{"ok", "not ok"}); err == nil {
		t.Error("ParseTags() with invalid tag expected error")
	}
}

func TestParseSkills(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		want    person.Skills
		wantErr bool
	}{
		{"none", nil, person.Skills{}, false},
		{"single", []string{"Go"}, person.Skills{"Go"}, false},
		{"split on spaces", []string{"SQL Go  Rust"}, person.Skills{"Go", "Rust", "SQL"}, false},
		{"several values deduplicated", []string{"Go", "Go SQL"}, person.Skills{"Go", "SQL"}, false},

		{"symbol", []string{"C++"}, nil, true},
		{"hyphen", []string{"front-end"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := person.ParseSkills(tt.values)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSkills() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if err.Error() != person.SkillsConstraints {
					t.Errorf("error = %q, want %q", err.Error(), person.SkillsConstraints)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseSkills() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseProducts(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		want    person.Products
		wantErr bool
	}{
		{"none", nil, person.Products{}, false},
		{"with spaces", []string{"office chairs", "desks"}, person.Products{"desks", "office chairs"}, false},
		{"trimmed", []string{"  paper "}, person.Products{"paper"}, false},

		{"blank", []string{" "}, nil, true},
		{"symbol", []string{"paper & ink"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := person.ParseProducts(tt.values)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseProducts() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if err.Error() != person.ProductsConstraints {
					t.Errorf("error = %q, want %q", err.Error(), person.ProductsConstraints)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseProducts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFieldErrors_AreValidationErrors(t *testing.T) {
	_, err := person.ParseEmail("nope")
	var ve *errors.ValidationError
	if !stderrors.As(err, &ve) {
		t.Fatalf("error %T is not a *errors.ValidationError", err)
	}
	if ve.Type != "Email" {
		t.Errorf("ValidationError.Type = %q, want Email", ve.Type)
	}
}

func TestName_YAMLRoundTrip(t *testing.T) {
	data, err := yaml.Marshal(person.Name("Alice Pauline"))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got person.Name
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got != "Alice Pauline" {
		t.Errorf("round trip = %q", got)
	}

	if err := yaml.Unmarshal([]byte(`"Alice*"`), &got); err == nil {
		t.Error("Unmarshal(invalid) expected error")
	}
}
