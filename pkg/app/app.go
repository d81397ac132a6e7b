package app

import (
	"errors"
	"fmt"

	"tableflip.dev/weddingbook/pkg/collection"
	"tableflip.dev/weddingbook/pkg/person"
	"tableflip.dev/weddingbook/pkg/wedding"
)

var (
	// ErrWeddingNotFound is returned when no wedding has the requested ID.
	ErrWeddingNotFound = errors.New("wedding not found")

	// ErrDuplicateTag is returned when a person already carries the tag.
	ErrDuplicateTag = errors.New("person is already tagged with this wedding")

	// ErrNotTagged is returned when removing a tag the person does not carry.
	ErrNotTagged = errors.New("person is not tagged with this wedding")
)

// SortMode selects the ordering of the wedding view.
type SortMode int

const (
	// SortByID orders weddings by the number in their ID.
	SortByID SortMode = iota
	// SortByDate orders weddings by calendar date, oldest first.
	SortByDate
)

func (m SortMode) String() string {
	if m == SortByDate {
		return "date"
	}
	return "id"
}

// Service is the surface commands operate on. It wraps the address book and
// owns the state behind the live views: the person predicate, the wedding
// predicate and the wedding sort mode. UIs and CLIs share it.
type Service struct {
	book     *AddressBook
	persons  *collection.FilteredView[*person.Person]
	weddings *collection.SortedView[*wedding.Wedding]
	sortMode SortMode
}

// New returns a Service over an empty address book.
func New() *Service {
	return NewWithBook(NewAddressBook())
}

// NewWithBook returns a Service over book with both views showing
// everything, weddings ordered by ID.
func NewWithBook(book *AddressBook) *Service {
	s := &Service{
		book:     book,
		persons:  collection.NewFilteredView(book.persons),
		weddings: collection.NewSortedView(collection.NewFilteredView(book.weddings)),
	}
	s.SortWeddings(SortByID)
	return s
}

// Persons returns the live person view. The same view is returned on every
// call.
func (s *Service) Persons() *collection.FilteredView[*person.Person] {
	return s.persons
}

// Weddings returns the live, sorted wedding view. The same view is returned
// on every call.
func (s *Service) Weddings() *collection.SortedView[*wedding.Wedding] {
	return s.weddings
}

// FilterPersons changes the person predicate. Nil shows everyone.
func (s *Service) FilterPersons(p collection.Predicate[*person.Person]) {
	s.persons.SetPredicate(p)
}

// FilterWeddings changes the wedding predicate. Nil shows every wedding.
func (s *Service) FilterWeddings(p collection.Predicate[*wedding.Wedding]) {
	s.weddings.Filtered().SetPredicate(p)
}

// SortWeddings changes the wedding ordering.
func (s *Service) SortWeddings(mode SortMode) {
	s.sortMode = mode
	switch mode {
	case SortByDate:
		s.weddings.SetComparator(ByWeddingDate)
	default:
		s.weddings.SetComparator(ByWeddingID)
	}
}

// SortMode returns the current wedding ordering.
func (s *Service) SortMode() SortMode {
	return s.sortMode
}

// PersonCount returns the number of persons regardless of the predicate.
func (s *Service) PersonCount() int {
	return s.book.persons.Len()
}

// WeddingCount returns the number of weddings regardless of the predicate.
func (s *Service) WeddingCount() int {
	return s.book.weddings.Len()
}

// HasPerson reports whether a person with the same identity exists.
func (s *Service) HasPerson(p *person.Person) bool {
	return s.book.persons.Contains(p)
}

// AddPerson adds p unless someone with the same identity exists.
func (s *Service) AddPerson(p *person.Person) error {
	if err := s.book.persons.Add(p); err != nil {
		return fmt.Errorf("app.Service.AddPerson: %w", err)
	}
	return nil
}

// AddPersonForce adds p even if someone with the same identity exists.
func (s *Service) AddPersonForce(p *person.Person) {
	s.book.persons.AddForce(p)
}

// SetPerson replaces target with edited, refusing an identity clash with
// another person.
func (s *Service) SetPerson(target, edited *person.Person) error {
	if err := s.book.persons.Set(target, edited); err != nil {
		return fmt.Errorf("app.Service.SetPerson: %w", err)
	}
	return nil
}

// SetPersonForce replaces target with edited without the identity check.
func (s *Service) SetPersonForce(target, edited *person.Person) error {
	if err := s.book.persons.SetForce(target, edited); err != nil {
		return fmt.Errorf("app.Service.SetPersonForce: %w", err)
	}
	return nil
}

// DeletePerson removes target.
func (s *Service) DeletePerson(target *person.Person) error {
	if err := s.book.persons.Remove(target); err != nil {
		return fmt.Errorf("app.Service.DeletePerson: %w", err)
	}
	return nil
}

// ClearPersons removes every person. Weddings are kept.
func (s *Service) ClearPersons() {
	s.book.persons.Reset(nil)
}

// HasWedding reports whether a wedding describing the same event exists.
func (s *Service) HasWedding(w *wedding.Wedding) bool {
	return s.book.weddings.Contains(w)
}

// WeddingByID looks up a wedding regardless of the wedding predicate.
func (s *Service) WeddingByID(id wedding.ID) (*wedding.Wedding, bool) {
	for _, w := range s.book.weddings.Items() {
		if w.ID() == id {
			return w, true
		}
	}
	return nil, false
}

// NextWeddingID allocates the ID for a new wedding.
func (s *Service) NextWeddingID() (wedding.ID, error) {
	id, err := s.book.ids.Next()
	if err != nil {
		return 0, fmt.Errorf("app.Service.NextWeddingID: %w", err)
	}
	return id, nil
}

// AddWedding adds w unless the same event exists.
func (s *Service) AddWedding(w *wedding.Wedding) error {
	if _, ok := s.WeddingByID(w.ID()); ok {
		return fmt.Errorf("app.Service.AddWedding: wedding %s: %w", w.ID(), collection.ErrDuplicateEntity)
	}
	if err := s.book.weddings.Add(w); err != nil {
		return fmt.Errorf("app.Service.AddWedding: %w", err)
	}
	s.book.ids.Observe(w.ID())
	return nil
}

// SetWedding replaces target with edited, refusing a clash with another
// wedding.
func (s *Service) SetWedding(target, edited *wedding.Wedding) error {
	if err := s.book.weddings.Set(target, edited); err != nil {
		return fmt.Errorf("app.Service.SetWedding: %w", err)
	}
	return nil
}

// DeleteWedding removes target and strips its tag from every person.
func (s *Service) DeleteWedding(target *wedding.Wedding) error {
	if err := s.book.weddings.Remove(target); err != nil {
		return fmt.Errorf("app.Service.DeleteWedding: %w", err)
	}
	s.RemoveTagFromAll(target.ID())
	return nil
}

// TagPerson tags target with the wedding and returns the replacement person.
func (s *Service) TagPerson(target *person.Person, id wedding.ID) (*person.Person, error) {
	if _, ok := s.WeddingByID(id); !ok {
		return nil, fmt.Errorf("app.Service.TagPerson: %s: %w", id, ErrWeddingNotFound)
	}
	if target.HasTag(id) {
		return nil, fmt.Errorf("app.Service.TagPerson: %s: %w", id, ErrDuplicateTag)
	}
	edited := target.WithTag(person.Tag{Wedding: id})
	if err := s.SetPerson(target, edited); err != nil {
		return nil, err
	}
	return edited, nil
}

// UntagPerson removes the wedding's tag from target and returns the
// replacement person.
func (s *Service) UntagPerson(target *person.Person, id wedding.ID) (*person.Person, error) {
	if !target.HasTag(id) {
		return nil, fmt.Errorf("app.Service.UntagPerson: %s: %w", id, ErrNotTagged)
	}
	edited := target.WithoutTag(id)
	if err := s.SetPerson(target, edited); err != nil {
		return nil, err
	}
	return edited, nil
}

// RemoveTagFromAll strips the wedding's tag from every person that carries
// it and returns how many persons changed.
func (s *Service) RemoveTagFromAll(id wedding.ID) int {
	changed := 0
	for _, p := range s.book.persons.Items() {
		if !p.HasTag(id) {
			continue
		}
		// Untagging never changes identity, so the replace cannot clash.
		if err := s.book.persons.SetForce(p, p.WithoutTag(id)); err != nil {
			panic(fmt.Sprintf("app: person vanished while untagging: %v", err))
		}
		changed++
	}
	return changed
}

// Snapshot copies out the address book for saving.
func (s *Service) Snapshot() Snapshot {
	return s.book.Snapshot()
}

// Restore replaces the address book with a loaded snapshot.
func (s *Service) Restore(snap Snapshot) error {
	if err := s.book.Restore(snap); err != nil {
		return fmt.Errorf("app.Service.Restore: %w", err)
	}
	return nil
}
