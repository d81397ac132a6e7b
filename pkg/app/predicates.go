package app

import (
	"strings"

	"tableflip.dev/weddingbook/pkg/collection"
	"tableflip.dev/weddingbook/pkg/person"
	"tableflip.dev/weddingbook/pkg/wedding"
)

// TaggedWith shows persons tagged with the wedding.
func TaggedWith(id wedding.ID) collection.Predicate[*person.Person] {
	return func(p *person.Person) bool {
		return p.HasTag(id)
	}
}

// NameOrRoleContains shows persons whose name or role contains any of the
// keywords, ignoring case.
func NameOrRoleContains(keywords []string) collection.Predicate[*person.Person] {
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			lowered = append(lowered, k)
		}
	}
	return func(p *person.Person) bool {
		name := strings.ToLower(string(p.Name()))
		role := strings.ToLower(string(p.Role()))
		for _, k := range lowered {
			if strings.Contains(name, k) || strings.Contains(role, k) {
				return true
			}
		}
		return false
	}
}

// OnDate shows weddings taking place on the given day.
func OnDate(d wedding.Date) collection.Predicate[*wedding.Wedding] {
	return func(w *wedding.Wedding) bool {
		return w.Date().SameDay(d)
	}
}

// ByWeddingID orders weddings by the number in their ID.
func ByWeddingID(a, b *wedding.Wedding) int {
	return a.ID().Number() - b.ID().Number()
}

// ByWeddingDate orders weddings by calendar date.
func ByWeddingDate(a, b *wedding.Wedding) int {
	return a.Date().Time().Compare(b.Date().Time())
}
