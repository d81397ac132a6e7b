// Package collection holds the deduplicated entity lists behind the address
// book and the live views rendered from them.
package collection

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateEntity is returned when an entry with the same identity is
	// already present.
	ErrDuplicateEntity = errors.New("duplicate entry")

	// ErrEntityNotFound is returned when the entry to replace or remove is
	// not in the list.
	ErrEntityNotFound = errors.New("entry not found")

	// ErrIndexOutOfRange is returned by views when an index does not address
	// a currently visible entry.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Entity is implemented by the pointer types stored in a UniqueList. IsSame
// is the identity used for duplicate detection; it is weaker than full
// equality.
type Entity[T any] interface {
	comparable
	IsSame(other T) bool
}

// UniqueList keeps entries in insertion order and rejects identity
// duplicates unless the caller forces the insertion. Entries are located by
// reference.
type UniqueList[T Entity[T]] struct {
	items []T
}

// NewUniqueList returns an empty list.
func NewUniqueList[T Entity[T]]() *UniqueList[T] {
	return &UniqueList[T]{}
}

// Contains reports whether an entry with the same identity is present.
func (l *UniqueList[T]) Contains(item T) bool {
	for _, it := range l.items {
		if it.IsSame(item) {
			return true
		}
	}
	return false
}

// Add appends item, failing with ErrDuplicateEntity on an identity clash.
func (l *UniqueList[T]) Add(item T) error {
	if l.Contains(item) {
		return fmt.Errorf("collection.Add: %w", ErrDuplicateEntity)
	}
	l.items = append(l.items, item)
	return nil
}

// AddForce appends item without the identity check.
func (l *UniqueList[T]) AddForce(item T) {
	l.items = append(l.items, item)
}

// Set replaces target with edited in place. It fails with ErrEntityNotFound
// when target is absent and with ErrDuplicateEntity when edited changes
// identity onto another entry already in the list.
func (l *UniqueList[T]) Set(target, edited T) error {
	i := l.indexOf(target)
	if i < 0 {
		return fmt.Errorf("collection.Set: %w", ErrEntityNotFound)
	}
	if !target.IsSame(edited) && l.Contains(edited) {
		return fmt.Errorf("collection.Set: %w", ErrDuplicateEntity)
	}
	l.items[i] = edited
	return nil
}

// SetForce replaces target with edited without the identity check.
func (l *UniqueList[T]) SetForce(target, edited T) error {
	i := l.indexOf(target)
	if i < 0 {
		return fmt.Errorf("collection.SetForce: %w", ErrEntityNotFound)
	}
	l.items[i] = edited
	return nil
}

// Remove deletes target.
func (l *UniqueList[T]) Remove(target T) error {
	i := l.indexOf(target)
	if i < 0 {
		return fmt.Errorf("collection.Remove: %w", ErrEntityNotFound)
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

// Reset replaces every entry. No identity check is done so that duplicates
// accepted earlier by a forced add survive a storage round trip.
func (l *UniqueList[T]) Reset(items []T) {
	l.items = make([]T, len(items))
	copy(l.items, items)
}

// Items returns a copy of the entries in insertion order.
func (l *UniqueList[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of entries.
func (l *UniqueList[T]) Len() int {
	return len(l.items)
}

func (l *UniqueList[T]) indexOf(target T) int {
	for i, it := range l.items {
		if it == target {
			return i
		}
	}
	return -1
}
