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
	"fmt"

	"dirpx.dev/netconnect/nccore/model/person"
)

// DeleteCommand removes a person, and every relation it takes part in.
type DeleteCommand struct {
	Id person.Id
}

func (c *DeleteCommand) Execute(m Model) (Result, error) {
	if !m.HasId(c.Id) {
		return Result{}, fail(MessageInvalidPersonId, c.Id.Value())
	}

	removed, err := m.DeletePerson(c.Id)
	if err != nil {
		return Result{}, failWith(err, MessageInvalidPersonId, c.Id.Value())
	}
	return changed(MessageDeleteSuccess, removed), nil
}

func (c *DeleteCommand) String() string {
	return fmt.Sprintf("DeleteCommand{id=%d}", c.Id)
}
