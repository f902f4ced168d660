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

package book

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/netconnect/nccore/errors"
	"dirpx.dev/netconnect/nccore/model/person"
	"dirpx.dev/netconnect/nccore/model/schema"
	"gopkg.in/yaml.v3"
)

// Snapshot is the serialized form of a Book.
//
// LastId records the highest id ever assigned. It may exceed every id in
// Persons after deletions; older documents without it fall back to the
// highest id present.
type Snapshot struct {
	Version   schema.Version   `json:"version" yaml:"version"`
	LastId    person.Id        `json:"lastId,omitempty" yaml:"lastId,omitempty"`
	Persons   []person.Person  `json:"persons" yaml:"persons"`
	Relations []person.IdTuple `json:"relations" yaml:"relations"`
}

// Snapshot returns the current contents of the book, stamped with
// schema.Current.
func (b *Book) Snapshot() Snapshot {
	return Snapshot{
		Version:   schema.Current,
		LastId:    b.lastId,
		Persons:   b.Persons(),
		Relations: b.RelatedIdTuples(),
	}
}

// FromSnapshot rebuilds a book. The snapshot's version must be compatible
// with this build and its contents must validate.
func FromSnapshot(s Snapshot) (*Book, error) {
	if !schema.Compatible(s.Version) {
		return nil, fmt.Errorf("unsupported schema version %s (this build reads %d.x up to %s)",
			s.Version, schema.Current.Major(), schema.Current)
	}

	b := New()
	for _, p := range s.Persons {
		if err := b.Restore(p); err != nil {
			return nil, err
		}
	}
	for _, t := range s.Relations {
		if err := b.AddRelatedIdTuple(t); err != nil {
			return nil, fmt.Errorf("relation %s: %w", t, err)
		}
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	if s.LastId > b.lastId {
		b.lastId = s.LastId
	}
	b.revision = 0
	return b, nil
}

// adopt makes b a copy of a freshly loaded book, revision included.
func (b *Book) adopt(loaded *Book) {
	*b = *loaded
}

func (b *Book) MarshalJSON() ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", b.TypeName(), err)
	}
	return json.Marshal(b.Snapshot())
}

func (b *Book) UnmarshalJSON(data []byte) error {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Book", Data: data, Reason: err.Error()}
	}
	loaded, err := FromSnapshot(s)
	if err != nil {
		return &errors.UnmarshalError{Type: "Book", Data: data, Reason: err.Error()}
	}
	b.adopt(loaded)
	return nil
}

func (b *Book) MarshalYAML() (interface{}, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", b.TypeName(), err)
	}
	return b.Snapshot(), nil
}

func (b *Book) UnmarshalYAML(node *yaml.Node) error {
	var s Snapshot
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Book", Data: []byte(node.Value), Reason: err.Error()}
	}
	loaded, err := FromSnapshot(s)
	if err != nil {
		return &errors.UnmarshalError{Type: "Book", Reason: err.Error()}
	}
	b.adopt(loaded)
	return nil
}
