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

package command

import (
	stderrors "errors"
	"fmt"

	"dirpx.dev/netconnect/nccore/model/book"
	"dirpx.dev/netconnect/nccore/model/person"
)

// AddCommand adds a person to the address book.
type AddCommand struct {
	Person person.Person
}

// Execute stores the person under a fresh id. A person with the same name
// must not exist already.
func (c *AddCommand) Execute(m Model) (Result, error) {
	if m.HasPerson(c.Person) {
		return Result{}, fail(MessageDuplicatePerson)
	}

	stored, err := m.AddPerson(c.Person)
	if err != nil {
		if stderrors.Is(err, book.ErrDuplicatePerson) {
			return Result{}, failWith(err, MessageDuplicatePerson)
		}
		return Result{}, failWith(err, "%s", err.Error())
	}
	return changed(MessageAddSuccess, stored), nil
}

func (c *AddCommand) String() string {
	return fmt.Sprintf("AddCommand{toAdd=%s}", c.Person.Redacted())
}
