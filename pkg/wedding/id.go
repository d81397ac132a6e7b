package wedding

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxID is the largest wedding ID.
const MaxID ID = math.MaxInt32

// ErrIDsExhausted is returned once every ID up to MaxID has been handed out.
var ErrIDsExhausted = errors.New("no wedding IDs left")

// ID identifies a wedding. The textual form is "W" followed by a positive
// integer, e.g. W12.
type ID int

// ParseID converts the textual form into an ID. Only the syntax is checked,
// not whether a wedding with that ID exists.
func ParseID(raw string) (ID, error) {
	s := strings.TrimSpace(raw)
	if len(s) < 2 || s[0] != 'W' {
		return 0, fmt.Errorf("%w: wedding id %q should be W followed by a positive number", ErrInvalidField, raw)
	}
	digits := s[1:]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: wedding id %q should be W followed by a positive number", ErrInvalidField, raw)
		}
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: wedding id %q should be W followed by a positive number", ErrInvalidField, raw)
	}
	if n > int64(MaxID) {
		return 0, fmt.Errorf("%w: wedding id %q is larger than %s", ErrInvalidField, raw, MaxID)
	}
	return ID(n), nil
}

// MustID parses the input and panics on error. Intended for tests.
func MustID(raw string) ID {
	id, err := ParseID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

// Number returns the numeric suffix of the ID.
func (id ID) Number() int {
	return int(id)
}

func (id ID) String() string {
	return "W" + strconv.Itoa(int(id))
}

// Sequence hands out wedding IDs. Freshly allocated IDs are never reused and
// always exceed every ID the sequence has observed.
type Sequence struct {
	next int64
}

// Next allocates a new ID. It fails once MaxID has been handed out or
// observed.
func (s *Sequence) Next() (ID, error) {
	if s.next < 1 {
		s.next = 1
	}
	if s.next > int64(MaxID) {
		return 0, ErrIDsExhausted
	}
	id := ID(s.next)
	s.next++
	return id, nil
}

// Observe records an ID restored from storage so later allocations never
// collide with it.
func (s *Sequence) Observe(id ID) {
	if n := int64(id) + 1; n > s.next {
		s.next = n
	}
}
