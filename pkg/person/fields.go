package person

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidField is returned when a person attribute fails validation.
var ErrInvalidField = errors.New("invalid person field")

// Name is a person's name as entered. Identity uses NormalizeName.
type Name string

// Phone is a phone number made of digits only.
type Phone string

// Email is an address of the form local@domain.
type Email string

// Role describes how a person relates to a wedding (e.g. Guest, Florist).
type Role string

// Address is a free-form postal address.
type Address string

// ParseName accepts letters, digits and spaces.
func ParseName(raw string) (Name, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: name must not be blank", ErrInvalidField)
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			return "", fmt.Errorf("%w: name %q should only contain letters, digits and spaces", ErrInvalidField, raw)
		}
	}
	return Name(s), nil
}

// ParsePhone accepts at least three digits.
func ParsePhone(raw string) (Phone, error) {
	s := strings.TrimSpace(raw)
	if len(s) < 3 {
		return "", fmt.Errorf("%w: phone %q should be at least 3 digits long", ErrInvalidField, raw)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: phone %q should only contain digits", ErrInvalidField, raw)
		}
	}
	return Phone(s), nil
}

// ParseEmail accepts local@domain where neither part is blank and the domain
// has no whitespace.
func ParseEmail(raw string) (Email, error) {
	s := strings.TrimSpace(raw)
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || domain == "" || strings.ContainsAny(s, " \t") || strings.Contains(domain, "@") {
		return "", fmt.Errorf("%w: email %q should be of the format local-part@domain", ErrInvalidField, raw)
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return "", fmt.Errorf("%w: email %q has a malformed domain", ErrInvalidField, raw)
	}
	return Email(s), nil
}

// ParseRole accepts any non-blank text.
func ParseRole(raw string) (Role, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: role must not be blank", ErrInvalidField)
	}
	return Role(s), nil
}

// ParseAddress accepts any non-blank text.
func ParseAddress(raw string) (Address, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: address must not be blank", ErrInvalidField)
	}
	return Address(s), nil
}

// NormalizeName trims, lower-cases and collapses runs of whitespace to a
// single space. Normalizing twice is the same as normalizing once.
func NormalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
