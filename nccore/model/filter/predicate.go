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

// Package filter holds the person predicates used by find, findnum,
// showrelated and unrelate, and the Filter that combines them.
//
// A Predicate is a closed variant: its Kind selects the person field under
// test and its tokens are the keywords or digits to look for. Matching is
// case-insensitive via Unicode case folding.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"dirpx.dev/netconnect/nccore/model/person"
	"golang.org/x/text/cases"
)

// Kind selects the person field a Predicate tests.
type Kind int

const (
	// NameKeywords matches when the name contains a keyword.
	NameKeywords Kind = iota + 1

	// TagKeywords matches when any tag contains a keyword.
	TagKeywords

	// IdDigits matches when the id equals one of the listed ids.
	IdDigits

	// PhoneDigits matches when the phone number contains a digit string.
	PhoneDigits

	// RoleKeywords matches when the role word equals a keyword.
	RoleKeywords

	// RemarkKeywords matches when the remark contains a keyword.
	RemarkKeywords
)

// Prefix returns the command-line prefix that introduces the kind, "n/".
func (k Kind) Prefix() string {
	switch k {
	case NameKeywords:
		return "n/"
	case TagKeywords:
		return "t/"
	case IdDigits:
		return "i/"
	case PhoneDigits:
		return "p/"
	case RoleKeywords:
		return "r/"
	case RemarkKeywords:
		return "rm/"
	default:
		return ""
	}
}

func (k Kind) String() string {
	switch k {
	case NameKeywords:
		return "NameContainsKeywords"
	case TagKeywords:
		return "TagsContainsKeywords"
	case IdDigits:
		return "IdContainsDigits"
	case PhoneDigits:
		return "PhoneContainsDigits"
	case RoleKeywords:
		return "RoleMatchesKeywords"
	case RemarkKeywords:
		return "RemarkContainsKeywords"
	default:
		return "unknown"
	}
}

// Predicate is a pure test over a person. The zero Predicate matches
// nothing.
type Predicate struct {
	kind   Kind
	tokens []string
}

func newPredicate(kind Kind, tokens []string) Predicate {
	return Predicate{kind: kind, tokens: append([]string(nil), tokens...)}
}

// NameContainsKeywords matches persons whose name contains any keyword.
func NameContainsKeywords(keywords ...string) Predicate {
	return newPredicate(NameKeywords, keywords)
}

// TagsContainsKeywords matches persons with a tag containing any keyword.
func TagsContainsKeywords(keywords ...string) Predicate {
	return newPredicate(TagKeywords, keywords)
}

// IdContainsDigits matches persons whose id is one of ids. Each id is the
// decimal text of an id; text that is not a number never matches.
func IdContainsDigits(ids ...string) Predicate {
	return newPredicate(IdDigits, ids)
}

// PhoneContainsDigits matches persons whose phone contains any digit string.
func PhoneContainsDigits(digits ...string) Predicate {
	return newPredicate(PhoneDigits, digits)
}

// RoleMatchesKeywords matches persons whose role is one of the keywords.
func RoleMatchesKeywords(keywords ...string) Predicate {
	return newPredicate(RoleKeywords, keywords)
}

// RemarkContainsKeywords matches persons whose remark contains any keyword.
func RemarkContainsKeywords(keywords ...string) Predicate {
	return newPredicate(RemarkKeywords, keywords)
}

// Kind returns the variant of the predicate.
func (p Predicate) Kind() Kind {
	return p.kind
}

// Tokens returns a copy of the predicate's keywords or digits.
func (p Predicate) Tokens() []string {
	return append([]string(nil), p.tokens...)
}

// Test reports whether x satisfies the predicate: at least one non-empty
// token must match the field selected by the kind.
func (p Predicate) Test(x person.Person) bool {
	for _, token := range p.tokens {
		if strings.TrimSpace(token) == "" {
			continue
		}
		if p.match(x, token) {
			return true
		}
	}
	return false
}

func (p Predicate) match(x person.Person, token string) bool {
	switch p.kind {
	case NameKeywords:
		return containsFold(x.Name.String(), token)
	case TagKeywords:
		for _, t := range x.Tags {
			if containsFold(t.Name(), token) {
				return true
			}
		}
		return false
	case IdDigits:
		n, err := strconv.Atoi(strings.TrimSpace(token))
		return err == nil && n == x.Id.Value()
	case PhoneDigits:
		return strings.Contains(x.Phone.String(), strings.TrimSpace(token))
	case RoleKeywords:
		return fold(strings.TrimSpace(token)) == x.Role.String()
	case RemarkKeywords:
		return containsFold(x.Remark.String(), token)
	default:
		return false
	}
}

func fold(s string) string {
	return cases.Fold().String(s)
}

func containsFold(s, substr string) bool {
	return strings.Contains(fold(s), fold(substr))
}

// Format renders the predicate the way it was typed, "n/Alice Bob".
func (p Predicate) Format() string {
	return p.kind.Prefix() + strings.Join(p.tokens, " ")
}

// String renders the predicate for logs and debugging,
// "NameContainsKeywords{keywords=[Alice]}".
func (p Predicate) String() string {
	return fmt.Sprintf("%s{keywords=[%s]}", p.kind, strings.Join(p.tokens, ", "))
}

// Equal reports whether both predicates have the same kind and tokens.
func (p Predicate) Equal(other Predicate) bool {
	if p.kind != other.kind || len(p.tokens) != len(other.tokens) {
		return false
	}
	for i := range p.tokens {
		if p.tokens[i] != other.tokens[i] {
			return false
		}
	}
	return true
}
