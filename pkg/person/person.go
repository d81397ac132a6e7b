// Package person models the contacts tracked by the address book.
package person

import (
	"fmt"
	"strings"

	"tableflip.dev/weddingbook/pkg/wedding"
)

// Person is an immutable contact. Edits and tag changes return a new Person
// that replaces the old one in the address book.
type Person struct {
	name    Name
	phone   Phone
	email   Email
	role    Role
	address Address
	tags    []Tag
}

// New builds a person from already validated fields. Duplicate tags are
// dropped.
func New(name Name, phone Phone, email Email, role Role, address Address, tags ...Tag) *Person {
	return &Person{
		name:    name,
		phone:   phone,
		email:   email,
		role:    role,
		address: address,
		tags:    tagSet(tags),
	}
}

func (p *Person) Name() Name       { return p.name }
func (p *Person) Phone() Phone     { return p.phone }
func (p *Person) Email() Email     { return p.email }
func (p *Person) Role() Role       { return p.role }
func (p *Person) Address() Address { return p.address }

// Tags returns a copy of the tag set ordered by wedding ID.
func (p *Person) Tags() []Tag {
	out := make([]Tag, len(p.tags))
	copy(out, p.tags)
	return out
}

// HasTag reports whether the person is tagged with the wedding.
func (p *Person) HasTag(id wedding.ID) bool {
	for _, t := range p.tags {
		if t.Wedding == id {
			return true
		}
	}
	return false
}

// WithTag returns a copy of p carrying t as well.
func (p *Person) WithTag(t Tag) *Person {
	return New(p.name, p.phone, p.email, p.role, p.address, append(p.Tags(), t)...)
}

// WithoutTag returns a copy of p without the tag for the wedding.
func (p *Person) WithoutTag(id wedding.ID) *Person {
	kept := make([]Tag, 0, len(p.tags))
	for _, t := range p.tags {
		if t.Wedding != id {
			kept = append(kept, t)
		}
	}
	return New(p.name, p.phone, p.email, p.role, p.address, kept...)
}

// Changes lists the fields an edit replaces. Nil fields are kept.
type Changes struct {
	Name    *Name
	Phone   *Phone
	Email   *Email
	Role    *Role
	Address *Address
	Tags    *[]Tag
}

// Any reports whether at least one field is set.
func (c Changes) Any() bool {
	return c.Name != nil || c.Phone != nil || c.Email != nil || c.Role != nil || c.Address != nil || c.Tags != nil
}

// Edit returns a copy of p with the changes applied.
func (p *Person) Edit(c Changes) *Person {
	out := *p
	if c.Name != nil {
		out.name = *c.Name
	}
	if c.Phone != nil {
		out.phone = *c.Phone
	}
	if c.Email != nil {
		out.email = *c.Email
	}
	if c.Role != nil {
		out.role = *c.Role
	}
	if c.Address != nil {
		out.address = *c.Address
	}
	if c.Tags != nil {
		out.tags = tagSet(*c.Tags)
	} else {
		out.tags = p.Tags()
	}
	return &out
}

// IsSame reports whether both persons share a normalized name. This is the
// identity used for duplicate detection; other fields may differ.
func (p *Person) IsSame(other *Person) bool {
	if p == nil || other == nil {
		return p == other
	}
	return NormalizeName(string(p.name)) == NormalizeName(string(other.name))
}

// Equal is full equality over every field and the tag set.
func (p *Person) Equal(other *Person) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.name != other.name || p.phone != other.phone || p.email != other.email ||
		p.role != other.role || p.address != other.address || len(p.tags) != len(other.tags) {
		return false
	}
	for i := range p.tags {
		if p.tags[i] != other.tags[i] {
			return false
		}
	}
	return true
}

func (p *Person) String() string {
	tags := make([]string, len(p.tags))
	for i, t := range p.tags {
		tags[i] = t.String()
	}
	return fmt.Sprintf("%s; Phone: %s; Email: %s; Role: %s; Address: %s; Tags: [%s]",
		p.name, p.phone, p.email, p.role, p.address, strings.Join(tags, ", "))
}
