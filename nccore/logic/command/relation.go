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

// requireIds fails with MessageInvalidPersonId for the first id m does not
// know.
func requireIds(m Model, ids ...person.Id) error {
	for _, id := range ids {
		if !m.HasId(id) {
			return fail(MessageInvalidPersonId, id.Value())
		}
	}
	return nil
}

// RelateCommand records a relation between two persons and shows them.
type RelateCommand struct {
	First, Second person.Id
}

func (c *RelateCommand) Execute(m Model) (Result, error) {
	if c.First == c.Second {
		return Result{}, fail(MessageCannotRelateItself)
	}
	if err := requireIds(m, c.First, c.Second); err != nil {
		return Result{}, err
	}

	tuple, err := person.NewIdTuple(c.First, c.Second)
	if err != nil {
		return Result{}, failWith(err, "%s", err.Error())
	}
	if m.HasRelatedIdTuple(tuple) {
		return Result{}, fail(MessageRelationExists)
	}
	if err := m.AddRelatedIdTuple(tuple); err != nil {
		return Result{}, failWith(err, "%s", err.Error())
	}

	m.ClearFilter()
	m.StackFilters(idsPredicate(c.First, c.Second))
	return Feedback(MessageRelateSuccess, tuple), nil
}

func (c *RelateCommand) String() string {
	return fmt.Sprintf("RelateCommand{ids=[%d, %d]}", c.First, c.Second)
}

// UnrelateCommand removes the relation between two persons and shows them.
//
// When both ids are the same the active filter is cleared before the
// command fails; every other failure leaves the model untouched.
type UnrelateCommand struct {
	First, Second person.Id
}

func (c *UnrelateCommand) Execute(m Model) (Result, error) {
	if c.First == c.Second {
		m.ClearFilter()
		return Result{}, fail(MessageCannotUnrelateItself)
	}
	if err := requireIds(m, c.First, c.Second); err != nil {
		return Result{}, err
	}

	tuple, err := person.NewIdTuple(c.First, c.Second)
	if err != nil {
		return Result{}, failWith(err, "%s", err.Error())
	}
	if !m.HasRelatedIdTuple(tuple) {
		return Result{}, fail(MessageRelationNotExists)
	}
	m.RemoveRelatedIdTuple(tuple)

	m.ClearFilter()
	m.StackFilters(idsPredicate(c.First, c.Second))
	return Feedback(MessageUnrelateSuccess, tuple), nil
}

func (c *UnrelateCommand) String() string {
	return fmt.Sprintf("UnrelateCommand{ids=[%d, %d]}", c.First, c.Second)
}

// ShowRelatedCommand lists the persons related to one person.
type ShowRelatedCommand struct {
	Id person.Id
}

func (c *ShowRelatedCommand) Execute(m Model) (Result, error) {
	if err := requireIds(m, c.Id); err != nil {
		return Result{}, err
	}

	m.UpdateFilteredPersonList(idsPredicate(m.RelatedIds(c.Id)...))
	return listed(m), nil
}

func (c *ShowRelatedCommand) String() string {
	return fmt.Sprintf("ShowRelatedCommand{id=%d}", c.Id)
}
