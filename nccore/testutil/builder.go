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

// Package testutil provides person fixtures shared by the tests of the
// model, state, logic and storage packages.
package testutil

import (
	"dirpx.dev/netconnect/nccore/model"
	"dirpx.dev/netconnect/nccore/model/person"
)

const (
	DefaultName    = "Amy Bee"
	DefaultPhone   = "85355255"
	DefaultEmail   = "amy@gmail.com"
	DefaultAddress = "123, Jurong West Ave 6, #08-111"
)

// PersonBuilder assembles a Person field by field. The zero-argument
// constructors start from a valid default person of the given role.
//
// Build panics when the result is invalid; builders are for fixtures only.
type PersonBuilder struct {
	p person.Person
}

func newBuilder(role person.Role) *PersonBuilder {
	b := &PersonBuilder{p: person.Person{
		Role: role,
		Base: person.Base{
			Name:    DefaultName,
			Phone:   DefaultPhone,
			Email:   DefaultEmail,
			Address: DefaultAddress,
			Tags:    person.Tags{},
		},
	}}

	switch role {
	case person.Client:
		b.p.Client = &person.ClientDetails{Products: person.Products{}}
	case person.Employee:
		b.p.Employee = &person.EmployeeDetails{
			Department: person.UnsetDepartment,
			JobTitle:   person.UnsetJobTitle,
			Skills:     person.Skills{},
		}
	case person.Supplier:
		b.p.Supplier = &person.SupplierDetails{Products: person.Products{}}
	}
	return b
}

// NewClientBuilder starts a client named Amy Bee.
func NewClientBuilder() *PersonBuilder { return newBuilder(person.Client) }

// NewEmployeeBuilder starts an employee named Amy Bee.
func NewEmployeeBuilder() *PersonBuilder { return newBuilder(person.Employee) }

// NewSupplierBuilder starts a supplier named Amy Bee.
func NewSupplierBuilder() *PersonBuilder { return newBuilder(person.Supplier) }

// From starts a builder from a copy of p.
func From(p person.Person) *PersonBuilder {
	b := &PersonBuilder{p: p.WithId(p.Id)}
	return b
}

func (b *PersonBuilder) WithId(id int) *PersonBuilder {
	b.p.Id = person.Id(id)
	return b
}

func (b *PersonBuilder) WithName(name string) *PersonBuilder {
	b.p.Name = person.Name(name)
	return b
}

func (b *PersonBuilder) WithPhone(phone string) *PersonBuilder {
	b.p.Phone = person.Phone(phone)
	return b
}

func (b *PersonBuilder) WithEmail(email string) *PersonBuilder {
	b.p.Email = person.Email(email)
	return b
}

func (b *PersonBuilder) WithAddress(address string) *PersonBuilder {
	b.p.Address = person.Address(address)
	return b
}

func (b *PersonBuilder) WithRemark(remark string) *PersonBuilder {
	b.p.Remark = person.Remark(remark)
	return b
}

// WithTags replaces the tags.
func (b *PersonBuilder) WithTags(tags ...string) *PersonBuilder {
	ts := make([]person.Tag, len(tags))
	for i, t := range tags {
		ts[i] = person.Tag(t)
	}
	b.p.Tags = person.NewTags(ts...)
	return b
}

// WithProducts replaces the products of a client or supplier.
func (b *PersonBuilder) WithProducts(products ...string) *PersonBuilder {
	switch {
	case b.p.Client != nil:
		b.p.Client.Products = person.Products(products)
	case b.p.Supplier != nil:
		b.p.Supplier.Products = person.Products(products)
	}
	return b
}

func (b *PersonBuilder) WithPreferences(preferences string) *PersonBuilder {
	if b.p.Client != nil {
		b.p.Client.Preferences = person.Preferences(preferences)
	}
	return b
}

func (b *PersonBuilder) WithDepartment(department string) *PersonBuilder {
	if b.p.Employee != nil {
		b.p.Employee.Department = person.Department(department)
	}
	return b
}

func (b *PersonBuilder) WithJobTitle(jobTitle string) *PersonBuilder {
	if b.p.Employee != nil {
		b.p.Employee.JobTitle = person.JobTitle(jobTitle)
	}
	return b
}

func (b *PersonBuilder) WithSkills(skills ...string) *PersonBuilder {
	if b.p.Employee != nil {
		b.p.Employee.Skills = person.Skills(skills)
	}
	return b
}

func (b *PersonBuilder) WithTermsOfService(terms string) *PersonBuilder {
	if b.p.Supplier != nil {
		b.p.Supplier.TermsOfService = person.TermsOfService(terms)
	}
	return b
}

// Build returns the assembled person with its sets normalized.
func (b *PersonBuilder) Build() person.Person {
	p := b.p.WithId(b.p.Id)
	return *model.MustValidate(&p)
}
