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

package person

import (
	"encoding/json"
	"fmt"
	"strings"

	"dirpx.dev/netconnect/nccore/errors"
	"dirpx.dev/netconnect/nccore/model"
	"gopkg.in/yaml.v3"
)

// Base holds the fields every person has regardless of role.
type Base struct {
	Name    Name    `json:"name" yaml:"name"`
	Phone   Phone   `json:"phone" yaml:"phone"`
	Email   Email   `json:"email" yaml:"email"`
	Address Address `json:"address" yaml:"address"`
	Remark  Remark  `json:"remark,omitempty" yaml:"remark,omitempty"`
	Tags    Tags    `json:"tags" yaml:"tags"`
}

// ClientDetails holds the fields only clients have.
type ClientDetails struct {
	Products    Products    `json:"products" yaml:"products"`
	Preferences Preferences `json:"preferences,omitempty" yaml:"preferences,omitempty"`
}

// EmployeeDetails holds the fields only employees have.
type EmployeeDetails struct {
	Department Department `json:"department" yaml:"department"`
	JobTitle   JobTitle   `json:"jobTitle" yaml:"jobTitle"`
	Skills     Skills     `json:"skills" yaml:"skills"`
}

// SupplierDetails holds the fields only suppliers have.
type SupplierDetails struct {
	Products       Products       `json:"products" yaml:"products"`
	TermsOfService TermsOfService `json:"termsOfService,omitempty" yaml:"termsOfService,omitempty"`
}

// Person is one contact in the address book.
//
// A Person is a tagged union over Role: it always carries the shared Base
// fields, and exactly one of Client, Employee or Supplier is non-nil, the
// one matching Role. Validate enforces this.
//
// Persons are values. Equal compares every field except Id, so a person
// and its stored copy (which has an Id assigned) are equal. Duplicate
// detection uses the weaker IsSamePerson, which compares names only.
//
// Id is zero until the person is stored in a book.
type Person struct {
	Id   Id   `json:"id,omitempty" yaml:"id,omitempty"`
	Role Role `json:"role" yaml:"role"`
	Base `yaml:",inline"`

	Client   *ClientDetails   `json:"client,omitempty" yaml:"client,omitempty"`
	Employee *EmployeeDetails `json:"employee,omitempty" yaml:"employee,omitempty"`
	Supplier *SupplierDetails `json:"supplier,omitempty" yaml:"supplier,omitempty"`
}

var _ model.Model = (*Person)(nil)

// NewClient builds a client from base and the client-only fields.
func NewClient(base Base, products Products, preferences Preferences) (Person, error) {
	p := Person{
		Role:   Client,
		Base:   base,
		Client: &ClientDetails{Products: products, Preferences: preferences},
	}
	return p.validated()
}

// NewEmployee builds an employee from base and the employee-only fields.
// Pass UnsetDepartment or UnsetJobTitle when the value is unknown.
func NewEmployee(base Base, department Department, jobTitle JobTitle, skills Skills) (Person, error) {
	p := Person{
		Role:     Employee,
		Base:     base,
		Employee: &EmployeeDetails{Department: department, JobTitle: jobTitle, Skills: skills},
	}
	return p.validated()
}

// NewSupplier builds a supplier from base and the supplier-only fields.
func NewSupplier(base Base, products Products, terms TermsOfService) (Person, error) {
	p := Person{
		Role:     Supplier,
		Base:     base,
		Supplier: &SupplierDetails{Products: products, TermsOfService: terms},
	}
	return p.validated()
}

func (p Person) validated() (Person, error) {
	p.normalize()
	if err := p.Validate(); err != nil {
		return Person{}, err
	}
	return p, nil
}

// normalize turns every set into its sorted, de-duplicated form and copies
// the details so the receiver shares no memory with its source.
func (p *Person) normalize() {
	p.Tags = NewTags(p.Tags...)
	if p.Client != nil {
		c := *p.Client
		c.Products = Products(sortedSet(c.Products))
		p.Client = &c
	}
	if p.Employee != nil {
		e := *p.Employee
		e.Skills = Skills(sortedSet(e.Skills))
		p.Employee = &e
	}
	if p.Supplier != nil {
		s := *p.Supplier
		s.Products = Products(sortedSet(s.Products))
		p.Supplier = &s
	}
}

// WithId returns a copy of p carrying id.
func (p Person) WithId(id Id) Person {
	p.normalize()
	p.Id = id
	return p
}

// Products returns the products of a client or supplier, nil otherwise.
func (p Person) Products() Products {
	switch {
	case p.Client != nil:
		return p.Client.Products
	case p.Supplier != nil:
		return p.Supplier.Products
	default:
		return nil
	}
}

// IsSamePerson reports whether other has the same name as p. This is the
// identity used to reject duplicates.
func (p Person) IsSamePerson(other Person) bool {
	return p.Name.Equal(other.Name)
}

// Equal reports whether p and other hold the same field values. Id is not
// compared.
func (p Person) Equal(other Person) bool {
	if p.Role != other.Role ||
		p.Name != other.Name ||
		p.Phone != other.Phone ||
		p.Email != other.Email ||
		p.Address != other.Address ||
		p.Remark != other.Remark ||
		!p.Tags.Equal(other.Tags) {
		return false
	}

	switch p.Role {
	case Client:
		a, b := p.Client, other.Client
		if a == nil || b == nil {
			return a == b
		}
		return a.Products.Equal(b.Products) && a.Preferences == b.Preferences
	case Employee:
		a, b := p.Employee, other.Employee
		if a == nil || b == nil {
			return a == b
		}
		return a.Department == b.Department && a.JobTitle == b.JobTitle && a.Skills.Equal(b.Skills)
	case Supplier:
		a, b := p.Supplier, other.Supplier
		if a == nil || b == nil {
			return a == b
		}
		return a.Products.Equal(b.Products) && a.TermsOfService == b.TermsOfService
	default:
		return true
	}
}

// Validate checks every field and the role/details pairing. All field
// failures are reported together.
func (p Person) Validate() error {
	if err := p.Role.Validate(); err != nil {
		return err
	}

	fields := []model.Model{&p.Name, &p.Phone, &p.Email, &p.Address, &p.Remark}
	if err := model.ValidateAll(fields); err != nil {
		return err
	}
	if err := p.Tags.Validate(); err != nil {
		return err
	}

	if !p.Id.IsZero() {
		if err := p.Id.Validate(); err != nil {
			return err
		}
	}

	return p.validateDetails()
}

func (p Person) validateDetails() error {
	present := 0
	for _, set := range []bool{p.Client != nil, p.Employee != nil, p.Supplier != nil} {
		if set {
			present++
		}
	}
	if present != 1 {
		return &errors.ValidationError{
			Type:   "Person",
			Field:  "Role",
			Reason: fmt.Sprintf("a %s must carry exactly its own role details", p.Role),
			Value:  present,
		}
	}

	switch p.Role {
	case Client:
		if p.Client == nil {
			return mismatch(p.Role)
		}
		return p.Client.Products.Validate()
	case Employee:
		if p.Employee == nil {
			return mismatch(p.Role)
		}
		if err := model.ValidateAll([]model.Model{&p.Employee.Department, &p.Employee.JobTitle}); err != nil {
			return err
		}
		return p.Employee.Skills.Validate()
	case Supplier:
		if p.Supplier == nil {
			return mismatch(p.Role)
		}
		return p.Supplier.Products.Validate()
	}
	return nil
}

func mismatch(r Role) error {
	return &errors.ValidationError{
		Type:   "Person",
		Field:  "Role",
		Reason: fmt.Sprintf("a %s must carry %s details", r, r),
		Value:  r.String(),
	}
}

// String renders the person on one line, the form used in command
// feedback:
//
//	Alice Pauline; Phone: 94351253; Email: alice@example.com; Address: 123, Jurong West Ave 6; Role: Client; Remark: ; Tags: [friends]; Products: [bread]; Preferences: ...
func (p Person) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; Phone: %s; Email: %s; Address: %s; Role: %s; Remark: %s; Tags: %s",
		p.Name, p.Phone, p.Email, p.Address, p.roleTitle(), p.Remark, p.Tags)

	switch {
	case p.Client != nil:
		fmt.Fprintf(&b, "; Products: %s; Preferences: %s", p.Client.Products, p.Client.Preferences)
	case p.Employee != nil:
		fmt.Fprintf(&b, "; Department: %s; Job Title: %s; Skills: %s",
			p.Employee.Department, p.Employee.JobTitle, p.Employee.Skills)
	case p.Supplier != nil:
		fmt.Fprintf(&b, "; Products: %s; Terms of Service: %s", p.Supplier.Products, p.Supplier.TermsOfService)
	}
	return b.String()
}

// Format is an alias for String kept for call sites that read better with it.
func (p Person) Format() string {
	return p.String()
}

func (p Person) roleTitle() string {
	if !p.Role.Valid() {
		return "unknown"
	}
	return p.Role.Title()
}

// Redacted renders the person for logs: contact details are masked.
func (p Person) Redacted() string {
	return fmt.Sprintf("Person{id=%d role=%s name=%s phone=%s email=%s}",
		p.Id, p.Role, p.Name, p.Phone.Redacted(), p.Email.Redacted())
}

func (p Person) TypeName() string {
	return "Person"
}

func (p Person) IsZero() bool {
	return p.Id == 0 && p.Role == 0 && p.Name == "" &&
		p.Client == nil && p.Employee == nil && p.Supplier == nil
}

func (p Person) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	type alias Person
	return json.Marshal(alias(p))
}

func (p *Person) UnmarshalJSON(data []byte) error {
	type alias Person
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	v := Person(a)
	v.normalize()
	if err := v.Validate(); err != nil {
		return &errors.UnmarshalError{Type: "Person", Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	*p = v
	return nil
}

func (p Person) MarshalYAML() (interface{}, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	type alias Person
	return alias(p), nil
}

func (p *Person) UnmarshalYAML(node *yaml.Node) error {
	type alias Person
	var a alias
	if err := node.Decode(&a); err != nil {
		return err
	}
	v := Person(a)
	v.normalize()
	if err := v.Validate(); err != nil {
		return &errors.UnmarshalError{Type: "Person", Data: []byte(node.Value), Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	*p = v
	return nil
}
