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

package filter_test

import (
	"testing"

	"dirpx.dev/netconnect/nccore/model/filter"
	"dirpx.dev/netconnect/nccore/testutil"
)

func TestIdContainsDigits(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		id   int
		want bool
	}{
		{"exact", []string{"1"}, 1, true},
		{"one of several", []string{"3", "12"}, 12, true},
		{"leading zeros", []string{"007"}, 7, true},

		{"prefix is not enough", []string{"1"}, 12, false},
		{"suffix is not enough", []string{"2"}, 12, false},
		{"not a number", []string{"one"}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testutil.NewClientBuilder().WithId(tt.id).Build()
			if got := filter.IdContainsDigits(tt.ids...).Test(p); got != tt.want {
				t.Errorf("Test(id=%d) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestPhoneContainsDigits(t *testing.T) {
	tests := []struct {
		name   string
		digits []string
		phone  string
		want   bool
	}{
		{"full number", []string{"94351253"}, "94351253", true},
		{"partial", []string{"9435"}, "94351253", true},
		{"one of several", []string{"1111", "1253"}, "94351253", true},

		{"no match", []string{"8888"}, "94351253", false},
		{"blank", []string{" "}, "94351253", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testutil.NewClientBuilder().WithPhone(tt.phone).Build()
			if got := filter.PhoneContainsDigits(tt.digits...).Test(p); got != tt.want {
				t.Errorf("Test(%s) = %v, want %v", tt.phone, got, tt.want)
			}
		})
	}
}

func TestRoleMatchesKeywords(t *testing.T) {
	client := testutil.NewClientBuilder().Build()
	employee := testutil.NewEmployeeBuilder().Build()

	if !filter.RoleMatchesKeywords("CLIENT").Test(client) {
		t.Error("CLIENT should match a client")
	}
	if filter.RoleMatchesKeywords("client").Test(employee) {
		t.Error("client should not match an employee")
	}
	if filter.RoleMatchesKeywords("cli").Test(client) {
		t.Error("role matching is by whole word")
	}
	if !filter.RoleMatchesKeywords("supplier", "employee").Test(employee) {
		t.Error("second keyword should match")
	}
}

func TestRemarkContainsKeywords(t *testing.T) {
	p := testutil.NewClientBuilder().WithRemark("Prefers Email contact").Build()
	empty := testutil.NewClientBuilder().Build()

	if !filter.RemarkContainsKeywords("email").Test(p) {
		t.Error("remark keyword should match case-insensitively")
	}
	if filter.RemarkContainsKeywords("phone").Test(p) {
		t.Error("unrelated keyword matched")
	}
	if filter.RemarkContainsKeywords("email").Test(empty) {
		t.Error("empty remark matched")
	}
}

func TestPredicate_Equal(t *testing.T) {
	a := filter.NameContainsKeywords("first", "second")

	if !a.Equal(filter.NameContainsKeywords("first", "second")) {
		t.Error("same kind and tokens should be equal")
	}
	if a.Equal(filter.NameContainsKeywords("second", "first")) {
		t.Error("token order matters")
	}
	if a.Equal(filter.TagsContainsKeywords("first", "second")) {
		t.Error("different kinds should not be equal")
	}
}

func TestPredicate_TokensIsCopy(t *testing.T) {
	keywords := []string{"Alice"}
	p := filter.NameContainsKeywords(keywords...)
	keywords[0] = "Bob"

	tokens := p.Tokens()
	tokens[0] = "Carl"

	if got := p.Format(); got != "n/Alice" {
		t.Errorf("Format() = %q, predicate shares memory with caller", got)
	}
}

func TestKind_Prefix(t *testing.T) {
	tests := []struct {
		kind filter.Kind
		want string
	}{
		{filter.NameKeywords, "n/"},
		{filter.TagKeywords, "t/"},
		{filter.IdDigits, "i/"},
		{filter.PhoneDigits, "p/"},
		{filter.RoleKeywords, "r/"},
		{filter.RemarkKeywords, "rm/"},
		{filter.Kind(0), ""},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Prefix(); got != tt.want {
				t.Errorf("Prefix() = %q, want %q", got, tt.want)
			}
		})
	}
}
