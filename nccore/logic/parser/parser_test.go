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

package parser_test

import (
	stderrors "errors"
	"testing"

	"dirpx.dev/netconnect/nccore/errors"
	"dirpx.dev/netconnect/nccore/logic/command"
	"dirpx.dev/netconnect/nccore/logic/parser"
	"dirpx.dev/netconnect/nccore/model/filter"
	"dirpx.dev/netconnect/nccore/model/person"
	"dirpx.dev/netconnect/nccore/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireParseError(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.IsParse(err), "want *errors.ParseError, got %T", err)
	assert.EqualError(t, err, message)
}

func invalidFormat(usage string) string {
	return "Invalid command format! \n" + usage
}

func TestParse_Dispatch(t *testing.T) {
	tests := []struct {
		input string
		want  command.Command
	}{
		{"clear", command.ClearCommand{}},
		{"list", command.ListCommand{}},
		{"list extra words", command.ListCommand{}},
		{"help", command.HelpCommand{}},
		{"exit", command.ExitCommand{}},
		{"  delete i/3  ", &command.DeleteCommand{Id: 3}},
		{"relate i/1 i/2", &command.RelateCommand{First: 1, Second: 2}},
		{"unrelate i/4 i/12", &command.UnrelateCommand{First: 4, Second: 12}},
		{"showrelated i/7", &command.ShowRelatedCommand{Id: 7}},
		{"export", &command.ExportCommand{}},
		{"export clients", &command.ExportCommand{Filename: "clients.csv"}},
		{"export out.txt", &command.ExportCommand{Filename: "out.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parser.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", invalidFormat(command.UsageHelp)},
		{"frobnicate", command.MessageUnknownCommand},
		{"LIST", command.MessageUnknownCommand},
		{"delete", invalidFormat(command.UsageDelete)},
		{"delete 3", invalidFormat(command.UsageDelete)},
		{"delete i/1 i/2", invalidFormat(command.UsageDelete)},
		{"delete i/0", person.IdConstraints},
		{"delete i/abc", person.IdConstraints},
		{"relate i/1", invalidFormat(command.UsageRelate)},
		{"unrelate i/1 i/2 i/3", invalidFormat(command.UsageUnrelate)},
		{"unrelate x i/1 i/2", invalidFormat(command.UsageUnrelate)},
		{"showrelated", invalidFormat(command.UsageShowRelated)},
		{"findnum", invalidFormat(command.UsageFindNum)},
		{"export a b", invalidFormat(command.UsageExport)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := parser.Parse(tt.input)
			requireParseError(t, err, tt.want)
		})
	}
}

func TestParse_Add(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  person.Person
	}{
		{
			"client with every field",
			"add n/Alice Pauline p/94351253 e/alice@example.com a/123, Jurong West Ave 6, #08-111 " +
				"r/CLIENT rm/likes coffee t/friends pr/office chairs pref/delivery on Mondays",
			testutil.Alice,
		},
		{
			"employee defaults",
			"add n/Elle Meyer p/9482224 e/werner@example.com a/michegan ave r/employee",
			testutil.Elle,
		},
		{
			"supplier with products",
			"add n/Bob Choo p/22222222 e/bob@example.com a/Block 123, Bobby Street 3 r/supplier " +
				"t/husband t/friend pr/rice",
			testutil.Bob,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.input)
			require.NoError(t, err)

			add, ok := got.(*command.AddCommand)
			require.True(t, ok, "got %T", got)
			assert.True(t, add.Person.Equal(tt.want), "got %s\nwant %s", add.Person, tt.want)
		})
	}
}

func TestParse_AddEmployeeFields(t *testing.T) {
	got, err := parser.Parse("add n/Benson Meier p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25 " +
		"r/employee t/owesMoney t/friends dept/Sales job/Account Manager skills/negotiation Excel")
	require.NoError(t, err)

	p := got.(*command.AddCommand).Person
	assert.True(t, p.Equal(testutil.Benson), "got %s", p)
}

func TestParse_AddRoleForeignFields(t *testing.T) {
	const base = "add n/Amy p/123 e/amy@x a/Clementi "

	tests := []struct {
		name string
		args string
		want string
	}{
		{"client with department", "r/client pr/5 dept/Sales", command.MessageInvalidClientProperty},
		{"client with skills", "r/client skills/java", command.MessageInvalidClientProperty},
		{"client with terms", "r/client tos/net 30", command.MessageInvalidClientProperty},
		{"employee with products", "r/employee pr/pens", command.MessageInvalidEmployeeProperty},
		{"employee with preferences", "r/employee pref/none", command.MessageInvalidEmployeeProperty},
		{"supplier with job title", "r/supplier job/Boss", command.MessageInvalidSupplierProperty},
		{"supplier with preferences", "r/supplier pref/none", command.MessageInvalidSupplierProperty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(base + tt.args)
			requireParseError(t, err, tt.want)
		})
	}
}

func TestParse_AddFailures(t *testing.T) {
	const valid = "n/Amy p/123 e/amy@x a/Clementi"

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"missing role", "add " + valid, invalidFormat(command.UsageAdd)},
		{"missing name", "add p/123 e/amy@x a/Clementi r/client", invalidFormat(command.UsageAdd)},
		{"preamble", "add hello " + valid + " r/client", invalidFormat(command.UsageAdd)},
		{"unknown role", "add " + valid + " r/manager", person.RoleConstraints},
		{"duplicate name", "add n/Bob " + valid + " r/client",
			"Multiple values specified for the following single-valued field(s): n/"},
		{"bad name", "add n/Amy* p/123 e/amy@x a/Clementi r/client", person.NameConstraints},
		{"bad phone", "add n/Amy p/12 e/amy@x a/Clementi r/client", person.PhoneConstraints},
		{"bad email", "add n/Amy p/123 e/amy a/Clementi r/client", person.EmailConstraints},
		{"bad tag", "add " + valid + " r/client t/best friend", person.TagConstraints},
		{"bad department", "add " + valid + " r/employee dept/R&D", person.DepartmentConstraints},
		{"bad skill", "add " + valid + " r/employee skills/c++", person.SkillsConstraints},
		{"bad product", "add " + valid + " r/supplier pr/ ", person.ProductsConstraints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.input)
			requireParseError(t, err, tt.want)
		})
	}
}

func TestParse_AddWrapsValidationError(t *testing.T) {
	_, err := parser.Parse("add n/Amy p/12 e/amy@x a/Clementi r/client")

	var ve *errors.ValidationError
	require.True(t, stderrors.As(err, &ve), "validation failure should be the cause")
	assert.Equal(t, "Phone", ve.Type)
}

func TestParse_Edit(t *testing.T) {
	got, err := parser.Parse("edit i/2 p/91234567 t/ dept/Marketing skills/go sql")
	require.NoError(t, err)

	edit, ok := got.(*command.EditCommand)
	require.True(t, ok)
	assert.Equal(t, person.Id(2), edit.Id)

	d := edit.Descriptor
	require.NotNil(t, d.Phone)
	assert.Equal(t, person.Phone("91234567"), *d.Phone)
	require.NotNil(t, d.Tags)
	assert.Empty(t, *d.Tags, "empty t/ clears the tags")
	require.NotNil(t, d.Department)
	assert.Equal(t, person.Department("Marketing"), *d.Department)
	require.NotNil(t, d.Skills)
	assert.True(t, d.Skills.Equal(person.Skills{"go", "sql"}))
	assert.Nil(t, d.Name)
	assert.Nil(t, d.Products)
}

func TestParse_EditFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no id", "edit p/91234567", invalidFormat(command.UsageEdit)},
		{"preamble", "edit 1 p/91234567", invalidFormat(command.UsageEdit)},
		{"nothing to edit", "edit i/1", command.MessageNotEdited},
		{"role", "edit i/1 r/employee", command.MessageRoleNotEditable},
		{"bad phone", "edit i/1 p/phone", person.PhoneConstraints},
		{"two ids", "edit i/1 i/2 p/123",
			"Multiple values specified for the following single-valued field(s): i/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.input)
			requireParseError(t, err, tt.want)
		})
	}
}

func TestParse_Find(t *testing.T) {
	tests := []struct {
		input string
		want  filter.Predicate
	}{
		{"find n/alice  bob", filter.NameContainsKeywords("alice", "bob")},
		{"find t/friends", filter.TagsContainsKeywords("friends")},
		{"find i/1 2", filter.IdContainsDigits("1", "2")},
		{"find p/9435", filter.PhoneContainsDigits("9435")},
		{"find r/Client", filter.RoleMatchesKeywords("Client")},
		{"find rm/coffee", filter.RemarkContainsKeywords("coffee")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parser.Parse(tt.input)
			require.NoError(t, err)

			find, ok := got.(*command.FindCommand)
			require.True(t, ok)
			assert.True(t, find.Predicate.Equal(tt.want), "got %s", find.Predicate)
		})
	}
}

func TestParse_FindFailures(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"find", invalidFormat(command.UsageFind)},
		{"find alice", invalidFormat(command.UsageFind)},
		{"find n/", invalidFormat(command.UsageFind)},
		{"find n/alice t/friends", invalidFormat(command.UsageFind)},
		{"find n/alice n/bob", invalidFormat(command.UsageFind)},
		{"find i/one", person.IdConstraints},
		{"find r/boss", person.RoleConstraints},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := parser.Parse(tt.input)
			requireParseError(t, err, tt.want)
		})
	}
}

func TestParse_FindNum(t *testing.T) {
	got, err := parser.Parse("findnum 94351253   9482224")
	require.NoError(t, err)

	findnum, ok := got.(*command.FindNumCommand)
	require.True(t, ok)
	assert.True(t, findnum.Predicate.Equal(filter.PhoneContainsDigits("94351253", "9482224")))
}
