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

// TagConstraints is the message reported for invalid tags.
const TagConstraints = "Tags names should be alphanumeric"

var tagRegexp = regexp.MustCompile(`^[\p{L}\p{N}]+$`)

// Tag is a single alphanumeric label such as "friends" or "vip".
type Tag string

var _ model.Model = (*Tag)(nil)

// ParseTag trims s and validates the result.
func ParseTag(s string) (Tag, error) {
	t := Tag(strings.TrimSpace(s))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// IsValidTag reports whether s is a valid tag name.
func IsValidTag(s string) bool {
	return tagRegexp.MatchString(s)
}

// String renders the tag in brackets, "[friends]".
func (t Tag) String() string {
	return "[" + string(t) + "]"
}

// Name returns the bare tag name.
func (t Tag) Name() string {
	return string(t)
}

func (t Tag) Redacted() string {
	return t.String()
}

func (t Tag) TypeName() string {
	return "Tag"
}

func (t Tag) IsZero() bool {
	return t == ""
}

func (t Tag) Equal(other Tag) bool {
	return t == other
}

func (t Tag) Validate() error {
	if !IsValidTag(string(t)) {
		return invalid(t.TypeName(), TagConstraints, string(t))
	}
	return nil
}

func (t Tag) MarshalJSON() ([]byte, error) {
	return marshalJSONString(t, string(t))
}

func (t *Tag) UnmarshalJSON(data []byte) error {
	v, err := unmarshalJSONString("Tag", data, ParseTag)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t Tag) MarshalYAML() (interface{}, error) {
	return marshalYAMLString(t, string(t))
}

func (t *Tag) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalYAMLString("Tag", node, ParseTag)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Tags is a sorted set of distinct tags. Build one with ParseTags or
// NewTags so the ordering holds.
type Tags []Tag

// NewTags returns the distinct tags of in, sorted.
func NewTags(in ...Tag) Tags {
	return Tags(sortedSet(in))
}

// ParseTags parses every raw value into a Tag and returns the resulting set.
// The first invalid value fails the whole parse.
func ParseTags(values []string) (Tags, error) {
	tags := make([]Tag, 0, len(values))
	for _, v := range values {
		t, err := ParseTag(v)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return NewTags(tags...), nil
}

// Contains reports whether the set holds t.
func (ts Tags) Contains(t Tag) bool {
	for _, x := range ts {
		if x == t {
			return true
		}
	}
	return false
}

// Names returns the bare tag names in set order.
func (ts Tags) Names() []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Name()
	}
	return out
}

// String renders the set as concatenated bracketed names, "[colleagues][friends]".
func (ts Tags) String() string {
	var b strings.Builder
	for _, t := range ts {
		b.WriteString(t.String())
	}
	return b.String()
}

// Validate checks every tag in the set.
func (ts Tags) Validate() error {
	for _, t := range ts {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (ts Tags) Equal(other Tags) bool {
	return equalSets(ts, other)
}
