package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/weddingbook/pkg/person"
	"tableflip.dev/weddingbook/pkg/runner"
	"tableflip.dev/weddingbook/pkg/wedding"
)

func TestTokenize(t *testing.T) {
	args := tokenize("3 n/Alice Tan e/alice@a.com t/W1 t/W2", prefixName, prefixEmail, prefixAddress, prefixTag)

	assert.Equal(t, "3", args.preamble)
	name, ok := args.value(prefixName)
	require.True(t, ok)
	assert.Equal(t, "Alice Tan", name)
	email, _ := args.value(prefixEmail)
	assert.Equal(t, "alice@a.com", email)
	assert.False(t, args.has(prefixAddress))
	assert.Equal(t, []string{"W1", "W2"}, args.all(prefixTag))
}

func TestTokenize_PrefixMustFollowSpace(t *testing.T) {
	args := tokenize("n/Data/a/b", prefixName, prefixAddress)
	name, _ := args.value(prefixName)
	assert.Equal(t, "Data/a/b", name)
	assert.False(t, args.has(prefixAddress))
}

func TestTokenizeFreeText_KeepsRepeatedPrefixInValue(t *testing.T) {
	args := tokenizeFreeText("w/W1 d/Call florist w/ roses", prefixDescription, prefixWedding, prefixDescription)
	assert.Equal(t, []string{"W1"}, args.all(prefixWedding))
	desc, _ := args.value(prefixDescription)
	assert.Equal(t, "Call florist w/ roses", desc)

	args = tokenizeFreeText("d/Book DJ w/W2", prefixDescription, prefixWedding, prefixDescription)
	id, _ := args.value(prefixWedding)
	assert.Equal(t, "W2", id)
	desc, _ = args.value(prefixDescription)
	assert.Equal(t, "Book DJ", desc)
}

func TestParse_AddTaskDescriptionWithPrefix(t *testing.T) {
	cmd, err := New().Parse("addTask w/W1 d/Call florist w/ roses")
	require.NoError(t, err)

	add, ok := cmd.(*runner.AddTask)
	require.True(t, ok)
	assert.Equal(t, wedding.ID(1), add.Wedding)
	assert.Equal(t, "Call florist w/ roses", add.Description)
}

func TestParse_Add(t *testing.T) {
	cmd, err := New().Parse("add n/Alice p/91234567 e/alice@a.com r/Guest a/123 St t/W2 t/W1")
	require.NoError(t, err)

	add, ok := cmd.(*runner.Add)
	require.True(t, ok)
	assert.Equal(t, person.Name("Alice"), add.Person.Name())
	assert.Equal(t, person.Role("Guest"), add.Person.Role())
	assert.Equal(t, []person.Tag{{Wedding: 1}, {Wedding: 2}}, add.Person.Tags())
}

func TestParse_AddMissingField(t *testing.T) {
	_, err := New().Parse("add n/Alice p/91234567 e/alice@a.com r/Guest")
	require.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "Usage: add")
}

func TestParse_AddInvalidField(t *testing.T) {
	_, err := New().Parse("add n/Alice p/12ab e/alice@a.com r/Guest a/123 St")
	require.ErrorIs(t, err, person.ErrInvalidField)
}

func TestParse_Edit(t *testing.T) {
	cmd, err := New().Parse("edit 2 p/99999999")
	require.NoError(t, err)

	edit := cmd.(*runner.Edit)
	assert.Equal(t, 1, edit.Index)
	require.NotNil(t, edit.Changes.Phone)
	assert.Equal(t, person.Phone("99999999"), *edit.Changes.Phone)
	assert.Nil(t, edit.Changes.Name)
	assert.Nil(t, edit.Changes.Tags)
}

func TestParse_EditEmptyTagClearsTags(t *testing.T) {
	cmd, err := New().Parse("edit 1 t/")
	require.NoError(t, err)

	edit := cmd.(*runner.Edit)
	require.NotNil(t, edit.Changes.Tags)
	assert.Empty(t, *edit.Changes.Tags)
}

func TestParse_EditNeedsAField(t *testing.T) {
	_, err := New().Parse("edit 1")
	require.ErrorIs(t, err, ErrParse)
}

func TestParse_Index(t *testing.T) {
	tests := []struct {
		line string
		ok   bool
	}{
		{"delete 1", true},
		{"delete 0", false},
		{"delete -1", false},
		{"delete one", false},
		{"delete", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, err := New().Parse(tt.line)
			if !tt.ok {
				require.ErrorIs(t, err, ErrParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0, cmd.(*runner.Delete).Index)
		})
	}
}

func TestParse_TagAndUntag(t *testing.T) {
	cmd, err := New().Parse("tag 3 W2")
	require.NoError(t, err)
	assert.Equal(t, &runner.Tag{Index: 2, Wedding: 2}, cmd)

	cmd, err = New().Parse("untag 1 w/W4")
	require.NoError(t, err)
	assert.Equal(t, &runner.Untag{Index: 0, Wedding: 4}, cmd)

	_, err = New().Parse("tag 1 X2")
	require.ErrorIs(t, err, wedding.ErrInvalidField)
}

func TestParse_Weddings(t *testing.T) {
	cmd, err := New().Parse("addWedding n/Tan Lee d/20-Feb-2026 l/Raffles Hotel")
	require.NoError(t, err)
	add := cmd.(*runner.AddWedding)
	assert.Equal(t, "Tan Lee", add.Name)
	assert.Equal(t, "20-Feb-2026", add.Date.String())
	assert.Equal(t, "Raffles Hotel", add.Location)

	cmd, err = New().Parse("editWedding W3 l/Marina Bay")
	require.NoError(t, err)
	edit := cmd.(*runner.EditWedding)
	assert.Equal(t, wedding.ID(3), edit.ID)
	assert.Nil(t, edit.Name)
	assert.Nil(t, edit.Date)
	require.NotNil(t, edit.Location)
	assert.Equal(t, "Marina Bay", *edit.Location)

	cmd, err = New().Parse("listWeddingByDate d/2026-02-20")
	require.NoError(t, err)
	assert.True(t, cmd.(*runner.ListWeddingByDate).Date.SameDay(wedding.MustDate("20-Feb-2026")))

	_, err = New().Parse("addWedding n/Tan Lee d/someday l/Hall")
	require.ErrorIs(t, err, wedding.ErrInvalidField)
}

func TestParse_Tasks(t *testing.T) {
	cmd, err := New().Parse("addTask w/W1 d/Book DJ")
	require.NoError(t, err)
	assert.Equal(t, &runner.AddTask{Wedding: 1, Description: "Book DJ"}, cmd)

	cmd, err = New().Parse("mark w/W1 i/2")
	require.NoError(t, err)
	assert.Equal(t, &runner.MarkTask{Wedding: 1, Index: 1}, cmd)

	cmd, err = New().Parse("unmark w/W1 i/1")
	require.NoError(t, err)
	assert.Equal(t, &runner.UnmarkTask{Wedding: 1, Index: 0}, cmd)

	cmd, err = New().Parse("deleteTask w/W2 i/1")
	require.NoError(t, err)
	assert.Equal(t, &runner.DeleteTask{Wedding: 2, Index: 0}, cmd)

	cmd, err = New().Parse("listTask w/W2")
	require.NoError(t, err)
	assert.Equal(t, &runner.ListTask{Wedding: 2}, cmd)

	_, err = New().Parse("mark w/W1")
	require.ErrorIs(t, err, ErrParse)
}

func TestParse_NoArgumentCommands(t *testing.T) {
	for _, word := range []string{"clear", "list", "listWedding", "sortWID", "sortWDate", "y", "help", "exit"} {
		t.Run(word, func(t *testing.T) {
			cmd, err := New().Parse(word)
			require.NoError(t, err)
			assert.Equal(t, word, cmd.Keyword())
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	_, err := New().Parse("launch rockets")
	require.ErrorIs(t, err, ErrParse)

	_, err = New().Parse("   ")
	require.ErrorIs(t, err, ErrParse)
}

func TestUsages_CoverEveryKeyword(t *testing.T) {
	for _, u := range Usages() {
		assert.NotEmpty(t, usage(u.Keyword), u.Keyword)
	}
	assert.Len(t, Usages(), 24)
}
