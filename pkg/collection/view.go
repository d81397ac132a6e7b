package collection

import (
	"fmt"
	"sort"
)

// Predicate selects the entries a view shows.
type Predicate[T any] func(T) bool

// Compare orders two entries. It returns a negative number when a sorts
// before b, zero when they tie and a positive number otherwise.
type Compare[T any] func(a, b T) int

// FilteredView is a live, read-only projection of a UniqueList. It is
// evaluated on every read, so it always reflects the current predicate over
// the current contents.
type FilteredView[T Entity[T]] struct {
	source    *UniqueList[T]
	predicate Predicate[T]
}

// NewFilteredView returns a view over source showing every entry.
func NewFilteredView[T Entity[T]](source *UniqueList[T]) *FilteredView[T] {
	return &FilteredView[T]{source: source}
}

// SetPredicate changes which entries are visible. A nil predicate shows
// everything.
func (v *FilteredView[T]) SetPredicate(p Predicate[T]) {
	v.predicate = p
}

// Items returns the visible entries in insertion order.
func (v *FilteredView[T]) Items() []T {
	out := make([]T, 0, v.source.Len())
	for _, it := range v.source.items {
		if v.predicate == nil || v.predicate(it) {
			out = append(out, it)
		}
	}
	return out
}

// Len returns the number of visible entries.
func (v *FilteredView[T]) Len() int {
	return len(v.Items())
}

// At returns the visible entry at the zero-based index.
func (v *FilteredView[T]) At(index int) (T, error) {
	return at(v.Items(), index)
}

// SortedView orders the entries of a FilteredView. The comparator can be
// swapped at any time and the change is visible through every reference to
// the view. Sorting is stable, so ties keep insertion order.
type SortedView[T Entity[T]] struct {
	filtered *FilteredView[T]
	compare  Compare[T]
}

// NewSortedView wraps filtered, initially in insertion order.
func NewSortedView[T Entity[T]](filtered *FilteredView[T]) *SortedView[T] {
	return &SortedView[T]{filtered: filtered}
}

// SetComparator changes the ordering. Nil means insertion order.
func (v *SortedView[T]) SetComparator(c Compare[T]) {
	v.compare = c
}

// Filtered returns the underlying filtered view.
func (v *SortedView[T]) Filtered() *FilteredView[T] {
	return v.filtered
}

// Items returns the visible entries in view order.
func (v *SortedView[T]) Items() []T {
	items := v.filtered.Items()
	if v.compare != nil {
		sort.SliceStable(items, func(i, j int) bool {
			return v.compare(items[i], items[j]) < 0
		})
	}
	return items
}

// Len returns the number of visible entries.
func (v *SortedView[T]) Len() int {
	return v.filtered.Len()
}

// At returns the entry at the zero-based index in view order.
func (v *SortedView[T]) At(index int) (T, error) {
	return at(v.Items(), index)
}

func at[T any](items []T, index int) (T, error) {
	if index < 0 || index >= len(items) {
		var zero T
		return zero, fmt.Errorf("%w: %d is not between 1 and %d", ErrIndexOutOfRange, index+1, len(items))
	}
	return items[index], nil
}
