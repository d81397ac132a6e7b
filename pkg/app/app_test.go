package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/weddingbook/pkg/collection"
	"tableflip.dev/weddingbook/pkg/person"
	"tableflip.dev/weddingbook/pkg/wedding"
)

func newPerson(name, role string, tags ...person.Tag) *person.Person {
	return person.New(person.Name(name), "91234567", "a@x.com", person.Role(role), "123 St", tags...)
}

func addWedding(t *testing.T, s *Service, name, date string) *wedding.Wedding {
	t.Helper()
	id, err := s.NextWeddingID()
	require.NoError(t, err)
	w, err := wedding.New(id, name, wedding.MustDate(date), "Hall")
	require.NoError(t, err)
	require.NoError(t, s.AddWedding(w))
	return w
}

func weddingNames(ws []*wedding.Wedding) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.Name()
	}
	return out
}

func TestService_AddPerson_Duplicate(t *testing.T) {
	s := New()
	require.NoError(t, s.AddPerson(newPerson("Alice", "Guest")))

	err := s.AddPerson(newPerson("  alice ", "Host"))
	require.ErrorIs(t, err, collection.ErrDuplicateEntity)
	assert.Equal(t, 1, s.PersonCount())

	s.AddPersonForce(newPerson("  alice ", "Host"))
	assert.Equal(t, 2, s.PersonCount())
}

func TestService_DeleteWedding_RemovesTags(t *testing.T) {
	s := New()
	w1 := addWedding(t, s, "One", "20-Feb-2026")
	w2 := addWedding(t, s, "Two", "21-Feb-2026")
	require.NoError(t, s.AddPerson(newPerson("Alice", "Guest", person.Tag{Wedding: w1.ID()}, person.Tag{Wedding: w2.ID()})))
	require.NoError(t, s.AddPerson(newPerson("Bob", "Guest", person.Tag{Wedding: w1.ID()})))
	require.NoError(t, s.AddPerson(newPerson("Carol", "Guest")))

	require.NoError(t, s.DeleteWedding(w1))

	for _, p := range s.Persons().Items() {
		assert.False(t, p.HasTag(w1.ID()), "%s still tagged", p.Name())
	}
	alice, err := s.Persons().At(0)
	require.NoError(t, err)
	assert.True(t, alice.HasTag(w2.ID()))
	assert.Equal(t, 1, s.WeddingCount())

	assert.ErrorIs(t, s.DeleteWedding(w1), collection.ErrEntityNotFound)
}

func TestService_TagAndUntag(t *testing.T) {
	s := New()
	w := addWedding(t, s, "One", "20-Feb-2026")
	alice := newPerson("Alice", "Guest")
	require.NoError(t, s.AddPerson(alice))

	tagged, err := s.TagPerson(alice, w.ID())
	require.NoError(t, err)
	assert.True(t, tagged.HasTag(w.ID()))

	_, err = s.TagPerson(tagged, w.ID())
	assert.ErrorIs(t, err, ErrDuplicateTag)

	_, err = s.TagPerson(tagged, wedding.MustID("W99"))
	assert.ErrorIs(t, err, ErrWeddingNotFound)

	untagged, err := s.UntagPerson(tagged, w.ID())
	require.NoError(t, err)
	_, err = s.UntagPerson(untagged, w.ID())
	assert.ErrorIs(t, err, ErrNotTagged)
}

func TestService_SortModeLiveUpdate(t *testing.T) {
	s := New()
	held := s.Weddings()
	addWedding(t, s, "Late", "20-Dec-2026")
	addWedding(t, s, "Early", "01-Jan-2026")

	assert.Equal(t, []string{"Late", "Early"}, weddingNames(held.Items()))

	s.SortWeddings(SortByDate)
	assert.Equal(t, SortByDate, s.SortMode())
	addWedding(t, s, "Middle", "15-Jun-2026")
	assert.Same(t, held, s.Weddings())
	assert.Equal(t, []string{"Early", "Middle", "Late"}, weddingNames(held.Items()))

	s.SortWeddings(SortByID)
	assert.Equal(t, []string{"Late", "Early", "Middle"}, weddingNames(held.Items()))
}

func TestService_SortByDate_StableOnTies(t *testing.T) {
	s := New()
	s.SortWeddings(SortByDate)
	addWedding(t, s, "First", "20-Feb-2026")
	addWedding(t, s, "Earlier", "19-Feb-2026")
	addWedding(t, s, "Second", "2026-02-20")

	assert.Equal(t, []string{"Earlier", "First", "Second"}, weddingNames(s.Weddings().Items()))
}

func TestService_Filters(t *testing.T) {
	s := New()
	w := addWedding(t, s, "One", "20-Feb-2026")
	addWedding(t, s, "Two", "21-Feb-2026")
	require.NoError(t, s.AddPerson(newPerson("Alice Tan", "Guest", person.Tag{Wedding: w.ID()})))
	require.NoError(t, s.AddPerson(newPerson("Bob", "Florist")))

	s.FilterPersons(TaggedWith(w.ID()))
	assert.Equal(t, 1, s.Persons().Len())

	s.FilterPersons(NameOrRoleContains([]string{"FLOR"}))
	got, err := s.Persons().At(0)
	require.NoError(t, err)
	assert.Equal(t, person.Name("Bob"), got.Name())

	s.FilterPersons(nil)
	assert.Equal(t, 2, s.Persons().Len())

	s.FilterWeddings(OnDate(wedding.MustDate("2026-02-21")))
	assert.Equal(t, []string{"Two"}, weddingNames(s.Weddings().Items()))
	s.FilterWeddings(nil)
	assert.Equal(t, 2, s.Weddings().Len())
}

func TestService_RestoreAdvancesIDs(t *testing.T) {
	s := New()
	restored, err := wedding.New(wedding.MustID("W50"), "Old", wedding.MustDate("01-Jan-2025"), "Hall")
	require.NoError(t, err)

	require.NoError(t, s.Restore(Snapshot{
		Persons:  []*person.Person{newPerson("Alice", "Guest", person.Tag{Wedding: 50}, person.Tag{Wedding: 7})},
		Weddings: []*wedding.Wedding{restored},
	}))

	next, err := s.NextWeddingID()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, next.Number(), 51)
	alice, err := s.Persons().At(0)
	require.NoError(t, err)
	assert.True(t, alice.HasTag(50))
	assert.False(t, alice.HasTag(7), "dangling tag dropped")
}

func TestService_RestoreRejectsDuplicateIDs(t *testing.T) {
	s := New()
	a, _ := wedding.New(3, "A", wedding.MustDate("01-Jan-2025"), "Hall")
	b, _ := wedding.New(3, "B", wedding.MustDate("02-Jan-2025"), "Hall")

	err := s.Restore(Snapshot{Weddings: []*wedding.Wedding{a, b}})
	assert.ErrorIs(t, err, collection.ErrDuplicateEntity)
}

func TestService_ClearPersonsKeepsWeddings(t *testing.T) {
	s := New()
	addWedding(t, s, "One", "20-Feb-2026")
	require.NoError(t, s.AddPerson(newPerson("Alice", "Guest")))

	s.ClearPersons()
	assert.Zero(t, s.PersonCount())
	assert.Equal(t, 1, s.WeddingCount())
}

func TestService_RestoreMaxIDExhaustsSequence(t *testing.T) {
	s := New()
	last, err := wedding.New(wedding.MaxID, "Last", wedding.MustDate("01-Jan-2025"), "Hall")
	require.NoError(t, err)
	require.NoError(t, s.Restore(Snapshot{Weddings: []*wedding.Wedding{last}}))

	_, err = s.NextWeddingID()
	require.ErrorIs(t, err, wedding.ErrIDsExhausted)
}
