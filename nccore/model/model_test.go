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

package model_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"dirpx.dev/netconnect/nccore/model"
	"gopkg.in/yaml.v3"
)

// card is a minimal Model used to exercise the generic helpers.
type card struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

func (c card) Validate() error {
	if c.Name == "" {
		return errors.New("name required")
	}
	if !strings.Contains(c.Email, "@") {
		return errors.New("email required")
	}
	return nil
}

func (c card) TypeName() string { return "card" }

func (c card) IsZero() bool { return c.Name == "" && c.Email == "" }

func (c card) Redacted() string {
	at := strings.IndexByte(c.Email, '@')
	if at <= 0 {
		return "card{Name:" + c.Name + ", Email:[invalid]}"
	}
	return "card{Name:" + c.Name + ", Email:" + c.Email[:1] + "***" + c.Email[at:] + "}"
}

func (c card) String() string { return "card{Name:" + c.Name + ", Email:" + c.Email + "}" }

func (c card) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias card
	return json.Marshal(alias(c))
}

func (c *card) UnmarshalJSON(data []byte) error {
	type alias card
	if err := json.Unmarshal(data, (*alias)(c)); err != nil {
		return err
	}
	return c.Validate()
}

func (c card) MarshalYAML() (interface{}, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias card
	return alias(c), nil
}

func (c *card) UnmarshalYAML(node *yaml.Node) error {
	type alias card
	if err := node.Decode((*alias)(c)); err != nil {
		return err
	}
	return c.Validate()
}

var _ model.Model = (*card)(nil)

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name    string
		cards   []*card
		wantErr bool
	}{
		{"nil slice", nil, false},
		{"all valid", []*card{{"Alice", "alice@example.com"}, {"Bob", "bob@example.com"}}, false},
		{"one invalid", []*card{{"Alice", "alice@example.com"}, {"", "x@example.com"}}, true},
		{"all invalid", []*card{{}, {Name: "Bob"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.ValidateAll(tt.cards)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAll() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAll_ReportsEveryFailure(t *testing.T) {
	err := model.ValidateAll([]*card{{}, {"Alice", "alice@example.com"}, {Name: "Bob"}})
	if err == nil {
		t.Fatal("ValidateAll() expected error")
	}
	for _, want := range []string{"model[0] (card)", "model[2] (card)"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("ValidateAll() error %q does not mention %s", err, want)
		}
	}
	if strings.Contains(err.Error(), "model[1]") {
		t.Errorf("ValidateAll() error %q mentions the valid element", err)
	}
}

func TestMustValidate(t *testing.T) {
	valid := &card{"Alice", "alice@example.com"}
	if got := model.MustValidate(valid); got != valid {
		t.Errorf("MustValidate() = %v, want %v", got, valid)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustValidate() did not panic on invalid model")
		}
	}()
	model.MustValidate(&card{})
}

func TestSafeString(t *testing.T) {
	c := &card{"Alice", "alice@example.com"}

	if got := model.SafeString(c, false); strings.Contains(got, "alice@") {
		t.Errorf("SafeString(safe) leaked email: %q", got)
	}
	if got := model.SafeString(c, true); !strings.Contains(got, "alice@example.com") {
		t.Errorf("SafeString(unsafe) = %q, want full email", got)
	}
}

func TestJSONHelpers(t *testing.T) {
	original := &card{"Alice", "alice@example.com"}

	data, err := model.ToJSON(original)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	decoded := &card{}
	if err := model.FromJSON(data, &decoded); err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if *decoded != *original {
		t.Errorf("JSON round-trip = %v, want %v", decoded, original)
	}

	if _, err := model.ToJSON(&card{}); err == nil {
		t.Error("ToJSON() should fail on invalid model")
	}
	invalid := &card{}
	if err := model.FromJSON([]byte(`{"name":"Bob"}`), &invalid); err == nil {
		t.Error("FromJSON() should fail when validation fails")
	}
}

func TestYAMLHelpers(t *testing.T) {
	original := &card{"Alice", "alice@example.com"}

	data, err := model.ToYAML(original)
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	decoded := &card{}
	if err := model.FromYAML(data, &decoded); err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	if *decoded != *original {
		t.Errorf("YAML round-trip = %v, want %v", decoded, original)
	}

	if _, err := model.ToYAML(&card{}); err == nil {
		t.Error("ToYAML() should fail on invalid model")
	}
	invalid := &card{}
	if err := model.FromYAML([]byte("email: bob@example.com"), &invalid); err == nil {
		t.Error("FromYAML() should fail when validation fails")
	}
}
