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

package testutil

import (
	"dirpx.dev/netconnect/nccore/model/book"
	"dirpx.dev/netconnect/nccore/model/person"
)

// Typical persons, with ids 1 to 7 in list order.
var (
	Alice = NewClientBuilder().WithId(1).WithName("Alice Pauline").
		WithAddress("123, Jurong West Ave 6, #08-111").WithEmail("alice@example.com").
		WithPhone("94351253").WithRemark("likes coffee").WithTags("friends").
		WithProducts("office chairs").WithPreferences("delivery on Mondays").Build()

	Benson = NewEmployeeBuilder().WithId(2).WithName("Benson Meier").
		WithAddress("311, Clementi Ave 2, #02-25").WithEmail("johnd@example.com").
		WithPhone("98765432").WithTags("owesMoney", "friends").
		WithDepartment("Sales").WithJobTitle("Account Manager").WithSkills("negotiation", "Excel").Build()

	Carl = NewSupplierBuilder().WithId(3).WithName("Carl Kurz").
		WithPhone("95352563").WithEmail("heinz@example.com").WithAddress("wall street").
		WithProducts("paper", "ink").WithTermsOfService("net 30").Build()

	Daniel = NewClientBuilder().WithId(4).WithName("Daniel Meier").
		WithPhone("87652533").WithEmail("cornelia@example.com").WithAddress("10th street").
		WithTags("friends").Build()

	Elle = NewEmployeeBuilder().WithId(5).WithName("Elle Meyer").
		WithPhone("9482224").WithEmail("werner@example.com").WithAddress("michegan ave").Build()

	Fiona = NewSupplierBuilder().WithId(6).WithName("Fiona Kunz").
		WithPhone("9482427").WithEmail("lydia@example.com").WithAddress("little tokyo").Build()

	George = NewClientBuilder().WithId(7).WithName("George Best").
		WithPhone("9482442").WithEmail("anna@example.com").WithAddress("4th street").Build()
)

// Manually added persons, not in the typical book.
var (
	Hoon = NewClientBuilder().WithName("Hoon Meier").WithPhone("8482424").
		WithEmail("stefan@example.com").WithAddress("little india").Build()

	Ida = NewEmployeeBuilder().WithName("Ida Mueller").WithPhone("8482131").
		WithEmail("hans@example.com").WithAddress("chicago ave").Build()

	Amy = NewClientBuilder().WithName("Amy Bee").WithPhone("11111111").
		WithEmail("amy@example.com").WithAddress("Block 312, Amy Street 1").WithTags("friend").Build()

	Bob = NewSupplierBuilder().WithName("Bob Choo").WithPhone("22222222").
		WithEmail("bob@example.com").WithAddress("Block 123, Bobby Street 3").
		WithTags("husband", "friend").WithProducts("rice").Build()
)

// KeywordMatchingMeier matches Benson and Daniel by name.
const KeywordMatchingMeier = "Meier"

// TypicalPersons returns copies of the seven typical persons in id order.
func TypicalPersons() []person.Person {
	return []person.Person{Alice, Benson, Carl, Daniel, Elle, Fiona, George}
}

// TypicalBook returns a book holding the typical persons and no relations.
func TypicalBook() *book.Book {
	b := book.New()
	for _, p := range TypicalPersons() {
		if err := b.Restore(p); err != nil {
			panic(err)
		}
	}
	return b
}
