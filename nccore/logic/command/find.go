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

	"dirpx.dev/netconnect/nccore/model/filter"
)

// FindCommand narrows the listed persons. Successive finds stack: each one
// adds its predicate to the active filter.
type FindCommand struct {
	Predicate filter.Predicate
}

func (c *FindCommand) Execute(m Model) (Result, error) {
	m.StackFilters(c.Predicate)
	return listed(m), nil
}

func (c *FindCommand) String() string {
	return fmt.Sprintf("FindCommand{predicate=%s}", c.Predicate)
}

// FindNumCommand lists the persons whose phone number contains any of the
// given digit groups. Unlike FindCommand it replaces the active filter.
type FindNumCommand struct {
	Predicate filter.Predicate
}

func (c *FindNumCommand) Execute(m Model) (Result, error) {
	m.UpdateFilteredPersonList(c.Predicate)
	return listed(m), nil
}

func (c *FindNumCommand) String() string {
	return fmt.Sprintf("FindNumCommand{predicate=%s}", c.Predicate)
}
