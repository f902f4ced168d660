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
	"strings"

	"dirpx.dev/netconnect/nccore/model/person"
)

// Command words.
const (
	WordAdd         = "add"
	WordEdit        = "edit"
	WordDelete      = "delete"
	WordClear       = "clear"
	WordList        = "list"
	WordFind        = "find"
	WordFindNum     = "findnum"
	WordRelate      = "relate"
	WordUnrelate    = "unrelate"
	WordShowRelated = "showrelated"
	WordExport      = "export"
	WordHelp        = "help"
	WordExit        = "exit"
)

// Messages shared by several commands and by the parser.
const (
	MessageUnknownCommand          = "Unknown command"
	MessageInvalidCommandFormat    = "Invalid command format! \n%s"
	MessageInvalidPersonId         = "The person id provided does not exist: %d"
	MessagePersonsListedOverview   = "%d persons listed!"
	MessageDuplicateFields         = "Multiple values specified for the following single-valued field(s): "
	MessageDuplicatePerson         = "This person already exists in the address book"
	MessageInvalidClientProperty   = "Invalid client property."
	MessageInvalidEmployeeProperty = "Invalid employee property."
	MessageInvalidSupplierProperty = "Invalid supplier property."
	MessageCannotRelateItself      = "Cannot relate a person to themselves."
	MessageCannotUnrelateItself    = "Cannot unrelate a person from themselves."
	MessageRelationExists          = "Relation already exists."
	MessageRelationNotExists       = "Relation does not exist."
)

// Messages of individual commands.
const (
	MessageAddSuccess       = "New person added: %s"
	MessageEditSuccess      = "Edited Person: %s"
	MessageNotEdited        = "At least one field to edit must be provided."
	MessageRoleNotEditable  = "Role cannot be edited."
	MessageDeleteSuccess    = "Deleted Person: %s"
	MessageClearSuccess     = "Address book has been cleared!"
	MessageListSuccess      = "Listed all persons"
	MessageRelateSuccess    = "Successfully related %s"
	MessageUnrelateSuccess  = "Successfully unrelated %s"
	MessageExportSuccess    = "Exported %d persons to %s"
	MessageExportFailure    = "Could not export persons: %v"
	MessageExitAcknowledged = "Exiting NetConnect as requested ..."
)

// Usage strings, shown on format errors and by help.
const (
	UsageAdd = WordAdd + ": Adds a person to the address book. " +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS r/ROLE [rm/REMARK] [t/TAG]...\n" +
		"Clients may add [pr/PRODUCT]... [pref/PREFERENCES], " +
		"employees [dept/DEPARTMENT] [job/JOB_TITLE] [skills/SKILLS]..., " +
		"suppliers [pr/PRODUCT]... [tos/TERMS_OF_SERVICE]\n" +
		"Example: " + WordAdd + " n/John Doe p/98765432 e/johnd@example.com " +
		"a/311, Clementi Ave 2, #02-25 r/client t/friends pr/office chairs"

	UsageEdit = WordEdit + ": Edits the details of the person identified by the id. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: i/ID [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [rm/REMARK] [t/TAG]... " +
		"[pr/PRODUCT]... [pref/PREFERENCES] [dept/DEPARTMENT] [job/JOB_TITLE] " +
		"[skills/SKILLS]... [tos/TERMS_OF_SERVICE]\n" +
		"Example: " + WordEdit + " i/1 p/91234567 e/johndoe@example.com"

	UsageDelete = WordDelete + ": Deletes the person identified by the id.\n" +
		"Parameters: i/ID\n" +
		"Example: " + WordDelete + " i/1"

	UsageClear = WordClear + ": Deletes every person and relation."

	UsageList = WordList + ": Lists all persons."

	UsageFind = WordFind + ": Narrows the listed persons to those matching the criterion. " +
		"Keywords are case-insensitive; repeated finds stack.\n" +
		"Parameters: exactly one of n/KEYWORD... t/TAG... i/ID... p/DIGITS... r/ROLE... rm/KEYWORD...\n" +
		"Example: " + WordFind + " n/alice bob"

	UsageFindNum = WordFindNum + ": Lists persons whose phone number contains any of the digit groups.\n" +
		"Parameters: DIGITS [MORE_DIGITS]...\n" +
		"Example: " + WordFindNum + " 9435 8765"

	UsageRelate = WordRelate + ": Relates the two specified persons.\n" +
		"Parameters: i/ID_1 i/ID_2\n" +
		"Example: " + WordRelate + " i/4 i/12"

	UsageUnrelate = WordUnrelate + ": Unrelates the two specified persons. " +
		"The ids provided must exist.\n" +
		"Parameters: i/ID_1 i/ID_2\n" +
		"Example: " + WordUnrelate + " i/4 i/12"

	UsageShowRelated = WordShowRelated + ": Lists the persons related to the specified person.\n" +
		"Parameters: i/ID\n" +
		"Example: " + WordShowRelated + " i/1"

	UsageExport = WordExport + ": Exports the listed persons to a CSV file.\n" +
		"Parameters: [FILENAME]\n" +
		"Example: " + WordExport + " clients.csv"

	UsageHelp = WordHelp + ": Shows usage of every command."

	UsageExit = WordExit + ": Exits the application."
)

// Usages lists the usage of every command in help order.
var Usages = []string{
	UsageAdd, UsageEdit, UsageDelete, UsageClear, UsageList, UsageFind,
	UsageFindNum, UsageRelate, UsageUnrelate, UsageShowRelated,
	UsageExport, UsageHelp, UsageExit,
}

// HelpText is the text shown by the help command.
var HelpText = strings.Join(Usages, "\n\n")

// InvalidProperty returns the message for a field that does not belong to
// the given role.
func InvalidProperty(r person.Role) string {
	switch r {
	case person.Client:
		return MessageInvalidClientProperty
	case person.Employee:
		return MessageInvalidEmployeeProperty
	case person.Supplier:
		return MessageInvalidSupplierProperty
	default:
		return person.RoleConstraints
	}
}
