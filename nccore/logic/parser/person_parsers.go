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

package parser

import (
	"dirpx.dev/netconnect/nccore/errors"
	"dirpx.dev/netconnect/nccore/logic/command"
	"dirpx.dev/netconnect/nccore/model/person"
)

var personPrefixes = []Prefix{
	PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag, PrefixRemark,
	PrefixRole, PrefixPreferences, PrefixProducts, PrefixDepartment, PrefixJobTitle,
	PrefixTermsOfService, PrefixSkills,
}

var singleValued = []Prefix{
	PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixRemark, PrefixRole,
	PrefixPreferences, PrefixDepartment, PrefixJobTitle, PrefixTermsOfService,
}

// foreignPrefixes lists, per role, the prefixes its persons do not have.
var foreignPrefixes = map[person.Role][]Prefix{
	person.Client:   {PrefixDepartment, PrefixJobTitle, PrefixSkills, PrefixTermsOfService},
	person.Employee: {PrefixProducts, PrefixPreferences, PrefixTermsOfService},
	person.Supplier: {PrefixDepartment, PrefixJobTitle, PrefixSkills, PrefixPreferences},
}

func parseAdd(args string) (command.Command, error) {
	a := Tokenize(args, personPrefixes...)
	if !a.HasAll(PrefixName, PrefixAddress, PrefixPhone, PrefixEmail, PrefixRole) || a.Preamble() != "" {
		return nil, invalidFormat(command.UsageAdd)
	}
	if err := a.VerifyNoDuplicatePrefixesFor(singleValued...); err != nil {
		return nil, err
	}

	var (
		base person.Base
		err  error
	)
	name, _ := a.Value(PrefixName)
	if base.Name, err = person.ParseName(name); err != nil {
		return nil, field(err)
	}
	phone, _ := a.Value(PrefixPhone)
	if base.Phone, err = person.ParsePhone(phone); err != nil {
		return nil, field(err)
	}
	email, _ := a.Value(PrefixEmail)
	if base.Email, err = person.ParseEmail(email); err != nil {
		return nil, field(err)
	}
	address, _ := a.Value(PrefixAddress)
	if base.Address, err = person.ParseAddress(address); err != nil {
		return nil, field(err)
	}
	remark, _ := a.Value(PrefixRemark)
	if base.Remark, err = person.ParseRemark(remark); err != nil {
		return nil, field(err)
	}
	if base.Tags, err = person.ParseTags(a.AllValues(PrefixTag)); err != nil {
		return nil, field(err)
	}

	raw, _ := a.Value(PrefixRole)
	role, err := person.ParseRole(raw)
	if err != nil {
		return nil, field(err)
	}
	if a.HasAny(foreignPrefixes[role]...) {
		return nil, invalidProperty(role)
	}

	p, err := buildPerson(role, base, a)
	if err != nil {
		return nil, field(err)
	}
	return &command.AddCommand{Person: p}, nil
}

// buildPerson creates the role's person from base and the role-specific
// prefixes, defaulting every absent one.
func buildPerson(role person.Role, base person.Base, a ArgumentMultimap) (person.Person, error) {
	switch role {
	case person.Client:
		products, err := person.ParseProducts(a.AllValues(PrefixProducts))
		if err != nil {
			return person.Person{}, err
		}
		raw, _ := a.Value(PrefixPreferences)
		prefs, err := person.ParsePreferences(raw)
		if err != nil {
			return person.Person{}, err
		}
		return person.NewClient(base, products, prefs)

	case person.Employee:
		dept := person.UnsetDepartment
		if raw, ok := a.Value(PrefixDepartment); ok {
			d, err := person.ParseDepartment(raw)
			if err != nil {
				return person.Person{}, err
			}
			dept = d
		}
		job := person.UnsetJobTitle
		if raw, ok := a.Value(PrefixJobTitle); ok {
			j, err := person.ParseJobTitle(raw)
			if err != nil {
				return person.Person{}, err
			}
			job = j
		}
		skills, err := person.ParseSkills(a.AllValues(PrefixSkills))
		if err != nil {
			return person.Person{}, err
		}
		return person.NewEmployee(base, dept, job, skills)

	default:
		products, err := person.ParseProducts(a.AllValues(PrefixProducts))
		if err != nil {
			return person.Person{}, err
		}
		raw, _ := a.Value(PrefixTermsOfService)
		terms, err := person.ParseTermsOfService(raw)
		if err != nil {
			return person.Person{}, err
		}
		return person.NewSupplier(base, products, terms)
	}
}

func invalidProperty(role person.Role) error {
	return &errors.ParseError{Type: "command", Value: role.String(), Reason: command.InvalidProperty(role)}
}

func parseEdit(args string) (command.Command, error) {
	a := Tokenize(args, append([]Prefix{PrefixId}, personPrefixes...)...)
	if !a.Has(PrefixId) || a.Preamble() != "" {
		return nil, invalidFormat(command.UsageEdit)
	}
	if a.Has(PrefixRole) {
		return nil, &errors.ParseError{Type: "command", Reason: command.MessageRoleNotEditable}
	}
	if err := a.VerifyNoDuplicatePrefixesFor(append([]Prefix{PrefixId}, singleValued...)...); err != nil {
		return nil, err
	}

	raw, _ := a.Value(PrefixId)
	id, err := person.ParseId(raw)
	if err != nil {
		return nil, field(err)
	}

	f := &fields{args: a}
	d := command.EditPersonDescriptor{
		Name:           one(f, PrefixName, person.ParseName),
		Phone:          one(f, PrefixPhone, person.ParsePhone),
		Email:          one(f, PrefixEmail, person.ParseEmail),
		Address:        one(f, PrefixAddress, person.ParseAddress),
		Remark:         one(f, PrefixRemark, person.ParseRemark),
		Tags:           set(f, PrefixTag, person.ParseTags),
		Products:       set(f, PrefixProducts, person.ParseProducts),
		Preferences:    one(f, PrefixPreferences, person.ParsePreferences),
		Department:     one(f, PrefixDepartment, person.ParseDepartment),
		JobTitle:       one(f, PrefixJobTitle, person.ParseJobTitle),
		Skills:         set(f, PrefixSkills, person.ParseSkills),
		TermsOfService: one(f, PrefixTermsOfService, person.ParseTermsOfService),
	}
	if f.err != nil {
		return nil, f.err
	}

	if !d.IsAnyFieldEdited() {
		return nil, &errors.ParseError{Type: "command", Reason: command.MessageNotEdited}
	}
	return &command.EditCommand{Id: id, Descriptor: d}, nil
}
