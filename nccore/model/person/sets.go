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
)

const (
	// SkillsConstraints is the message reported for invalid skills.
	SkillsConstraints = "Skills should only contain alphanumeric characters and spaces"

	// ProductsConstraints is the message reported for invalid product names.
	ProductsConstraints = "Products should only contain alphanumeric characters and spaces, and it should not be blank"
)

// Skills is the sorted set of an employee's skills. Each skill is a single
// alphanumeric word; "Go SQL" given as one value yields two skills.
type Skills []string

// ParseSkills splits every value on whitespace and validates each word.
func ParseSkills(values []string) (Skills, error) {
	words := make([]string, 0, len(values))
	for _, v := range values {
		for _, w := range strings.Fields(v) {
			if !tagRegexp.MatchString(w) {
				return nil, invalid("Skills", SkillsConstraints, v)
			}
			words = append(words, w)
		}
	}
	return Skills(sortedSet(words)), nil
}

// IsValidSkills reports whether s is a single alphanumeric word.
func IsValidSkills(s string) bool {
	return tagRegexp.MatchString(s)
}

func (s Skills) Contains(skill string) bool {
	for _, x := range s {
		if x == skill {
			return true
		}
	}
	return false
}

func (s Skills) Validate() error {
	for _, w := range s {
		if !IsValidSkills(w) {
			return invalid("Skills", SkillsConstraints, w)
		}
	}
	return nil
}

// String renders the set as "[Go, SQL]".
func (s Skills) String() string {
	return "[" + strings.Join(s, ", ") + "]"
}

func (s Skills) Equal(other Skills) bool {
	return equalSets(s, other)
}

// Products is the sorted set of products a client buys or a supplier sells.
// Product names may contain spaces.
type Products []string

// ParseProducts trims and validates every value.
func ParseProducts(values []string) (Products, error) {
	names := make([]string, 0, len(values))
	for _, v := range values {
		name := strings.TrimSpace(v)
		if !IsValidProduct(name) {
			return nil, invalid("Products", ProductsConstraints, v)
		}
		names = append(names, name)
	}
	return Products(sortedSet(names)), nil
}

// IsValidProduct reports whether s is a valid product name.
func IsValidProduct(s string) bool {
	return NameRegexp.MatchString(s)
}

func (p Products) Contains(product string) bool {
	for _, x := range p {
		if x == product {
			return true
		}
	}
	return false
}

func (p Products) Validate() error {
	for _, name := range p {
		if !IsValidProduct(name) {
			return invalid("Products", ProductsConstraints, name)
		}
	}
	return nil
}

// String renders the set as "[bread, milk]".
func (p Products) String() string {
	return "[" + strings.Join(p, ", ") + "]"
}

func (p Products) Equal(other Products) bool {
	return equalSets(p, other)
}
