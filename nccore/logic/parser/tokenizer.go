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

package parser

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/netconnect/nccore/errors"
	"dirpx.dev/netconnect/nccore/logic/command"
)

// Prefix marks the start of a field value in command arguments, e.g. "n/".
type Prefix string

const (
	PrefixName           Prefix = "n/"
	PrefixPhone          Prefix = "p/"
	PrefixEmail          Prefix = "e/"
	PrefixAddress        Prefix = "a/"
	PrefixTag            Prefix = "t/"
	PrefixRemark         Prefix = "rm/"
	PrefixRole           Prefix = "r/"
	PrefixPreferences    Prefix = "pref/"
	PrefixProducts       Prefix = "pr/"
	PrefixDepartment     Prefix = "dept/"
	PrefixJobTitle       Prefix = "job/"
	PrefixTermsOfService Prefix = "tos/"
	PrefixSkills         Prefix = "skills/"
	PrefixId             Prefix = "i/"
)

func (p Prefix) String() string { return string(p) }

// ArgumentMultimap maps each prefix to the values that followed it, in the
// order they appeared. Text before the first prefix is the preamble.
type ArgumentMultimap struct {
	values   map[Prefix][]string
	preamble string
}

// Value returns the last value given for p.
func (a ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := a.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p, or nil.
func (a ArgumentMultimap) AllValues(p Prefix) []string {
	vs := a.values[p]
	if len(vs) == 0 {
		return nil
	}
	out := make([]string, len(vs))
	copy(out, vs)
	return out
}

// Has reports whether p was given at least once.
func (a ArgumentMultimap) Has(p Prefix) bool {
	return len(a.values[p]) > 0
}

// HasAll reports whether every prefix was given.
func (a ArgumentMultimap) HasAll(ps ...Prefix) bool {
	for _, p := range ps {
		if !a.Has(p) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one of the prefixes was given.
func (a ArgumentMultimap) HasAny(ps ...Prefix) bool {
	for _, p := range ps {
		if a.Has(p) {
			return true
		}
	}
	return false
}

// Preamble returns the trimmed text before the first prefix.
func (a ArgumentMultimap) Preamble() string {
	return a.preamble
}

// VerifyNoDuplicatePrefixesFor fails when any of the single-valued
// prefixes was given more than once.
func (a ArgumentMultimap) VerifyNoDuplicatePrefixesFor(ps ...Prefix) error {
	var dups []string
	for _, p := range ps {
		if len(a.values[p]) > 1 {
			dups = append(dups, p.String())
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return &errors.ParseError{
		Type:   "arguments",
		Value:  strings.Join(dups, " "),
		Reason: command.MessageDuplicateFields + strings.Join(dups, " "),
	}
}

type position struct {
	prefix Prefix
	start  int
}

// Tokenize splits args on the given prefixes. A prefix is recognized only
// at the start of args or right after whitespace, so "e/a@b.com" inside an
// address does not start a new field unless a space precedes it.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	var found []position
	for _, p := range prefixes {
		for i := 0; i < len(args); {
			j := strings.Index(args[i:], string(p))
			if j < 0 {
				break
			}
			at := i + j
			if atBoundary(args, at) {
				found = append(found, position{prefix: p, start: at})
			}
			i = at + len(p)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].start < found[j].start })

	out := ArgumentMultimap{values: make(map[Prefix][]string)}
	end := len(args)
	if len(found) > 0 {
		end = found[0].start
	}
	out.preamble = strings.TrimSpace(args[:end])

	for i, pos := range found {
		stop := len(args)
		if i+1 < len(found) {
			stop = found[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : stop])
		out.values[pos.prefix] = append(out.values[pos.prefix], value)
	}
	return out
}

func atBoundary(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return unicode.IsSpace(r)
}
