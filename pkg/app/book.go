package app

import (
	"fmt"

	"tableflip.dev/weddingbook/pkg/collection"
	"tableflip.dev/weddingbook/pkg/person"
	"tableflip.dev/weddingbook/pkg/wedding"
)

// AddressBook exclusively owns the person and wedding collections and the
// sequence wedding IDs are drawn from.
type AddressBook struct {
	persons  *collection.UniqueList[*person.Person]
	weddings *collection.UniqueList[*wedding.Wedding]
	ids      wedding.Sequence
}

// NewAddressBook returns an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		persons:  collection.NewUniqueList[*person.Person](),
		weddings: collection.NewUniqueList[*wedding.Wedding](),
	}
}

// Snapshot is the full content of an address book, in insertion order. It is
// what the persistence layer saves and loads.
type Snapshot struct {
	Persons  []*person.Person
	Weddings []*wedding.Wedding
}

// Snapshot copies out both collections.
func (b *AddressBook) Snapshot() Snapshot {
	return Snapshot{
		Persons:  b.persons.Items(),
		Weddings: b.weddings.Items(),
	}
}

// Restore replaces both collections with the snapshot. Wedding IDs must be
// unique; the ID sequence is advanced past every restored ID. Tags pointing at
// weddings missing from the snapshot are dropped.
func (b *AddressBook) Restore(s Snapshot) error {
	known := make(map[wedding.ID]bool, len(s.Weddings))
	for _, w := range s.Weddings {
		if known[w.ID()] {
			return fmt.Errorf("app.AddressBook.Restore: wedding %s: %w", w.ID(), collection.ErrDuplicateEntity)
		}
		known[w.ID()] = true
	}

	persons := make([]*person.Person, 0, len(s.Persons))
	for _, p := range s.Persons {
		for _, t := range p.Tags() {
			if !known[t.Wedding] {
				p = p.WithoutTag(t.Wedding)
			}
		}
		persons = append(persons, p)
	}

	b.weddings.Reset(s.Weddings)
	b.persons.Reset(persons)
	for id := range known {
		b.ids.Observe(id)
	}
	return nil
}
