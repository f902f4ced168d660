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
	"strings"

	"dirpx.dev/netconnect/nccore/errors"
	"dirpx.dev/netconnect/nccore/model/book"
	"dirpx.dev/netconnect/nccore/model/person"
)

// EditPersonDescriptor holds the fields an edit replaces. A nil field is
// left unchanged. Set fields replace the whole set; a non-nil empty set
// clears it.
type EditPersonDescriptor struct {
	Name    *person.Name
	Phone   *person.Phone
	Email   *person.Email
	Address *person.Address
	Remark  *person.Remark
	Tags    *person.Tags

	Products       *person.Products
	Preferences    *person.Preferences
	Department     *person.Department
	JobTitle       *person.JobTitle
	Skills         *person.Skills
	TermsOfService *person.TermsOfService
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditPersonDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil ||
		d.Remark != nil || d.Tags != nil || d.Products != nil || d.Preferences != nil ||
		d.Department != nil || d.JobTitle != nil || d.Skills != nil || d.TermsOfService != nil
}

// foreignTo reports whether the descriptor sets a field persons of role r
// do not have.
func (d EditPersonDescriptor) foreignTo(r person.Role) bool {
	switch r {
	case person.Client:
		return d.Department != nil || d.JobTitle != nil || d.Skills != nil || d.TermsOfService != nil
	case person.Employee:
		return d.Products != nil || d.Preferences != nil || d.TermsOfService != nil
	case person.Supplier:
		return d.Department != nil || d.JobTitle != nil || d.Skills != nil || d.Preferences != nil
	default:
		return true
	}
}

// Apply returns p with the descriptor's fields replaced. It fails when a
// field does not belong to p's role.
func (d EditPersonDescriptor) Apply(p person.Person) (person.Person, error) {
	if d.foreignTo(p.Role) {
		return person.Person{}, fail("%s", InvalidProperty(p.Role))
	}

	base := p.Base
	setIf(&base.Name, d.Name)
	setIf(&base.Phone, d.Phone)
	setIf(&base.Email, d.Email)
	setIf(&base.Address, d.Address)
	setIf(&base.Remark, d.Remark)
	setIf(&base.Tags, d.Tags)

	switch p.Role {
	case person.Client:
		c := *p.Client
		setIf(&c.Products, d.Products)
		setIf(&c.Preferences, d.Preferences)
		return person.NewClient(base, c.Products, c.Preferences)
	case person.Employee:
		e := *p.Employee
		setIf(&e.Department, d.Department)
		setIf(&e.JobTitle, d.JobTitle)
		setIf(&e.Skills, d.Skills)
		return person.NewEmployee(base, e.Department, e.JobTitle, e.Skills)
	default:
		s := *p.Supplier
		setIf(&s.Products, d.Products)
		setIf(&s.TermsOfService, d.TermsOfService)
		return person.NewSupplier(base, s.Products, s.TermsOfService)
	}
}

// String lists the edited fields. Values are not shown.
func (d EditPersonDescriptor) String() string {
	var fields []string
	add := func(set bool, name string) {
		if set {
			fields = append(fields, name)
		}
	}
	add(d.Name != nil, "name")
	add(d.Phone != nil, "phone")
	add(d.Email != nil, "email")
	add(d.Address != nil, "address")
	add(d.Remark != nil, "remark")
	add(d.Tags != nil, "tags")
	add(d.Products != nil, "products")
	add(d.Preferences != nil, "preferences")
	add(d.Department != nil, "department")
	add(d.JobTitle != nil, "jobTitle")
	add(d.Skills != nil, "skills")
	add(d.TermsOfService != nil, "termsOfService")
	return "{" + strings.Join(fields, ", ") + "}"
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// EditCommand edits the person with the given id.
type EditCommand struct {
	Id         person.Id
	Descriptor EditPersonDescriptor
}

func (c *EditCommand) Execute(m Model) (Result, error) {
	if !c.Descriptor.IsAnyFieldEdited() {
		return Result{}, fail(MessageNotEdited)
	}

	current, ok := m.Person(c.Id)
	if !ok {
		return Result{}, fail(MessageInvalidPersonId, c.Id.Value())
	}

	edited, err := c.Descriptor.Apply(current)
	if err != nil {
		if errors.IsCommand(err) {
			return Result{}, err
		}
		return Result{}, failWith(err, "%s", err.Error())
	}
	if !current.IsSamePerson(edited) && m.HasPerson(edited) {
		return Result{}, fail(MessageDuplicatePerson)
	}

	stored, err := m.SetPerson(c.Id, edited)
	if err != nil {
		if stderrors.Is(err, book.ErrDuplicatePerson) {
			return Result{}, failWith(err, MessageDuplicatePerson)
		}
		return Result{}, failWith(err, "%s", err.Error())
	}

	m.ClearFilter()
	return changed(MessageEditSuccess, stored), nil
}

func (c *EditCommand) String() string {
	return fmt.Sprintf("EditCommand{id=%d, edit=%s}", c.Id, c.Descriptor)
}
