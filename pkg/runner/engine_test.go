package runner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/weddingbook/pkg/app"
	"tableflip.dev/weddingbook/pkg/collection"
	"tableflip.dev/weddingbook/pkg/parser"
	"tableflip.dev/weddingbook/pkg/person"
	"tableflip.dev/weddingbook/pkg/runner"
	"tableflip.dev/weddingbook/pkg/wedding"
)

func newEngine(opts ...runner.Option) *runner.Engine {
	opts = append([]runner.Option{runner.WithParser(parser.New())}, opts...)
	return runner.NewEngine(app.New(), opts...)
}

func run(t *testing.T, e *runner.Engine, line string) runner.Result {
	t.Helper()
	res, err := e.ExecuteLine(line)
	require.NoError(t, err, line)
	return res
}

func names(ps []*person.Person) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p.Name())
	}
	return out
}

func TestEngine_DuplicateAddNeedsConfirmation(t *testing.T) {
	e := newEngine()
	run(t, e, "add n/Alice p/91234567 e/a@x.com r/Guest a/123 St")

	res := run(t, e, "add n/alice  p/99999999 e/b@x.com r/Guest a/456 St")
	assert.True(t, res.NeedsConfirmation)
	assert.False(t, res.RefreshView)
	assert.Equal(t, 1, e.Service().PersonCount())
	require.NotNil(t, e.Session().Pending())

	res = run(t, e, "y")
	assert.True(t, res.RefreshView)
	assert.Equal(t, []string{"Alice", "alice"}, names(e.Service().Persons().Items()))
	assert.Nil(t, e.Session().Pending())
}

func TestEngine_DeleteWeddingEmptiesView(t *testing.T) {
	e := newEngine()
	run(t, e, "add n/Bob p/91234567 e/b@x.com r/Guest a/1 St")
	run(t, e, "addWedding n/X d/20-Feb-2026 l/Hall")
	require.Equal(t, 1, e.Service().Weddings().Len())

	run(t, e, "deleteWedding W1")
	assert.Equal(t, 0, e.Service().Weddings().Len())
	assert.Equal(t, 1, e.Service().Persons().Len())
}

func TestEngine_ClearNeedsConfirmation(t *testing.T) {
	e := newEngine()
	run(t, e, "add n/Alice p/91234567 e/a@x.com r/Guest a/123 St")
	run(t, e, "addWedding n/X d/20-Feb-2026 l/Hall")

	res := run(t, e, "clear")
	assert.True(t, res.NeedsConfirmation)
	assert.Equal(t, 1, e.Service().PersonCount())

	res = run(t, e, "y")
	assert.Equal(t, "Address book has been cleared!", res.Feedback)
	assert.Equal(t, 0, e.Service().PersonCount())
	assert.Equal(t, 1, e.Service().WeddingCount())
}

func TestEngine_ClearEmptyBookRunsImmediately(t *testing.T) {
	e := newEngine()
	res := run(t, e, "clear")
	assert.False(t, res.NeedsConfirmation)
	assert.True(t, res.RefreshView)
}

func TestEngine_TaskLifecycle(t *testing.T) {
	e := newEngine()
	run(t, e, "addWedding n/X d/20-Feb-2026 l/Hall")
	run(t, e, "addTask w/W1 d/Book DJ")
	run(t, e, "mark w/W1 i/1")

	res := run(t, e, "listTask w/W1")
	assert.Contains(t, res.Feedback, "1. [X] Book DJ")
	assert.False(t, res.RefreshView)

	run(t, e, "unmark w/W1 i/1")
	res = run(t, e, "listTask w/W1")
	assert.Contains(t, res.Feedback, "1. [ ] Book DJ")

	run(t, e, "deleteTask w/W1 i/1")
	res = run(t, e, "listTask w/W1")
	assert.Equal(t, "There are no tasks for W1.", res.Feedback)

	_, err := e.ExecuteLine("mark w/W1 i/1")
	require.ErrorIs(t, err, wedding.ErrInvalidIndex)
}

func TestEngine_TagTwiceFails(t *testing.T) {
	e := newEngine()
	run(t, e, "add n/Alice p/91234567 e/a@x.com r/Guest a/123 St")
	run(t, e, "addWedding n/X d/20-Feb-2026 l/Hall")
	run(t, e, "tag 1 W1")
	before := e.Service().Persons().Items()[0]

	_, err := e.ExecuteLine("tag 1 W1")
	require.ErrorIs(t, err, app.ErrDuplicateTag)
	assert.Same(t, before, e.Service().Persons().Items()[0])
}

func TestEngine_TagUnknownWedding(t *testing.T) {
	e := newEngine()
	run(t, e, "add n/Alice p/91234567 e/a@x.com r/Guest a/123 St")

	_, err := e.ExecuteLine("tag 1 W9")
	require.ErrorIs(t, err, app.ErrWeddingNotFound)

	_, err = e.ExecuteLine("add n/Bob p/91234567 e/b@x.com r/Guest a/1 St t/W9")
	require.ErrorIs(t, err, app.ErrWeddingNotFound)
	assert.Equal(t, 1, e.Service().PersonCount())
}

func TestEngine_ConfirmWithoutPending(t *testing.T) {
	e := newEngine()
	_, err := e.ExecuteLine("y")
	require.ErrorIs(t, err, runner.ErrNoPendingCommand)
}

func TestEngine_ConfirmAppliesAtMostOnce(t *testing.T) {
	e := newEngine()
	run(t, e, "add n/Alice p/91234567 e/a@x.com r/Guest a/123 St")
	run(t, e, "add n/Alice p/99999999 e/b@x.com r/Guest a/456 St")
	run(t, e, "y")

	_, err := e.ExecuteLine("y")
	require.ErrorIs(t, err, runner.ErrNoPendingCommand)
	assert.Equal(t, 2, e.Service().PersonCount())
}

func TestEngine_OtherInputDiscardsPending(t *testing.T) {
	e := newEngine()
	run(t, e, "add n/Alice p/91234567 e/a@x.com r/Guest a/123 St")
	run(t, e, "add n/Alice p/99999999 e/b@x.com r/Guest a/456 St")

	run(t, e, "list")
	assert.Nil(t, e.Session().Pending())

	_, err := e.ExecuteLine("y")
	require.ErrorIs(t, err, runner.ErrNoPendingCommand)
	assert.Equal(t, 1, e.Service().PersonCount())
}

func TestEngine_ParseFailureDiscardsPending(t *testing.T) {
	e := newEngine()
	run(t, e, "add n/Alice p/91234567 e/a@x.com r/Guest a/123 St")
	run(t, e, "clear")

	_, err := e.ExecuteLine("nonsense")
	require.ErrorIs(t, err, parser.ErrParse)
	assert.Nil(t, e.Session().Pending())
}

func TestEngine_KeepPendingPolicy(t *testing.T) {
	e := newEngine(runner.WithPendingPolicy(runner.KeepPending))
	run(t, e, "add n/Alice p/91234567 e/a@x.com r/Guest a/123 St")
	run(t, e, "clear")

	run(t, e, "list")
	require.NotNil(t, e.Session().Pending())

	run(t, e, "y")
	assert.Equal(t, 0, e.Service().PersonCount())
}

func TestEngine_NewerConfirmationReplacesOlder(t *testing.T) {
	e := newEngine(runner.WithPendingPolicy(runner.KeepPending))
	run(t, e, "add n/Alice p/91234567 e/a@x.com r/Guest a/123 St")
	run(t, e, "add n/Alice p/99999999 e/b@x.com r/Guest a/456 St")
	run(t, e, "clear")

	run(t, e, "y")
	assert.Equal(t, 0, e.Service().PersonCount())
}

type stubCommand struct {
	confirm bool
}

func (*stubCommand) Keyword() string       { return "stub" }
func (*stubCommand) Force() runner.Command { return nil }
func (c *stubCommand) Execute(*runner.Env) (runner.Result, error) {
	return runner.Result{NeedsConfirmation: c.confirm}, nil
}

func TestEngine_ConfirmNotForceable(t *testing.T) {
	e := newEngine()
	_, err := e.Execute(&stubCommand{confirm: true})
	require.NoError(t, err)

	_, err = e.ExecuteLine("y")
	require.ErrorIs(t, err, runner.ErrNotForceable)
	assert.Nil(t, e.Session().Pending())
}

func TestEngine_EditBranches(t *testing.T) {
	e := newEngine()
	run(t, e, "add n/Alice p/91234567 e/a@x.com r/Guest a/123 St")
	run(t, e, "add n/Bob p/91234567 e/b@x.com r/Guest a/456 St")

	// Unchanged identity applies directly.
	res := run(t, e, "edit 1 p/88888888")
	assert.True(t, res.RefreshView)
	assert.Equal(t, person.Phone("88888888"), e.Service().Persons().Items()[0].Phone())

	// Identical values are rejected.
	_, err := e.ExecuteLine("edit 1 p/88888888")
	require.ErrorIs(t, err, runner.ErrNoChange)

	// Renaming onto another person asks first.
	res = run(t, e, "edit 2 n/alice")
	assert.True(t, res.NeedsConfirmation)
	assert.Equal(t, []string{"Alice", "Bob"}, names(e.Service().Persons().Items()))

	run(t, e, "y")
	assert.Equal(t, []string{"Alice", "alice"}, names(e.Service().Persons().Items()))
}

func TestEngine_ForcedEditTargetsOriginalPerson(t *testing.T) {
	e := newEngine(runner.WithPendingPolicy(runner.KeepPending))
	run(t, e, "add n/Alice p/91234567 e/a@x.com r/Guest a/123 St")
	run(t, e, "add n/Bob p/91234567 e/b@x.com r/Guest a/456 St")
	run(t, e, "add n/Carol p/91234567 e/c@x.com r/Guest a/789 St")

	run(t, e, "edit 2 n/Alice")
	// Bob is no longer at index 2 of the view once it is filtered.
	run(t, e, "find Carol")

	run(t, e, "y")
	run(t, e, "list")
	assert.Equal(t, []string{"Alice", "Alice", "Carol"}, names(e.Service().Persons().Items()))
}

func TestEngine_FindAndFilter(t *testing.T) {
	e := newEngine()
	run(t, e, "addWedding n/X d/20-Feb-2026 l/Hall")
	run(t, e, "add n/Alice p/91234567 e/a@x.com r/Guest a/123 St t/W1")
	run(t, e, "add n/Bob p/91234567 e/b@x.com r/Florist a/456 St")

	run(t, e, "find florist")
	assert.Equal(t, []string{"Bob"}, names(e.Service().Persons().Items()))

	run(t, e, "filter W1")
	assert.Equal(t, []string{"Alice"}, names(e.Service().Persons().Items()))

	run(t, e, "list")
	assert.Equal(t, 2, e.Service().Persons().Len())

	_, err := e.ExecuteLine("filter W7")
	require.ErrorIs(t, err, app.ErrWeddingNotFound)
}

func TestEngine_AddWeddingDuplicateKeepsIDs(t *testing.T) {
	e := newEngine()
	run(t, e, "addWedding n/X d/20-Feb-2026 l/Hall")

	_, err := e.ExecuteLine("addWedding n/X d/2026-02-20 l/Hall")
	require.ErrorIs(t, err, collection.ErrDuplicateEntity)

	run(t, e, "addWedding n/Y d/21-Feb-2026 l/Hall")
	_, ok := e.Service().WeddingByID(2)
	assert.True(t, ok)
}

func TestEngine_EditWedding(t *testing.T) {
	e := newEngine()
	run(t, e, "addWedding n/X d/20-Feb-2026 l/Hall")
	run(t, e, "addWedding n/Y d/21-Feb-2026 l/Hall")

	run(t, e, "editWedding W1 l/Garden")
	w, _ := e.Service().WeddingByID(1)
	assert.Equal(t, "Garden", w.Location())

	_, err := e.ExecuteLine("editWedding W1 l/Garden")
	require.ErrorIs(t, err, runner.ErrNoChange)

	_, err = e.ExecuteLine("editWedding W2 n/X d/20-Feb-2026 l/Garden")
	require.ErrorIs(t, err, collection.ErrDuplicateEntity)

	_, err = e.ExecuteLine("editWedding W5 l/Garden")
	require.ErrorIs(t, err, app.ErrWeddingNotFound)
}

func TestEngine_SortAndListByDate(t *testing.T) {
	e := newEngine()
	run(t, e, "addWedding n/Late d/20-Mar-2026 l/Hall")
	run(t, e, "addWedding n/Early d/20-Jan-2026 l/Hall")
	view := e.Service().Weddings()

	run(t, e, "sortWDate")
	first, err := view.At(0)
	require.NoError(t, err)
	assert.Equal(t, "Early", first.Name())

	run(t, e, "sortWID")
	first, _ = view.At(0)
	assert.Equal(t, "Late", first.Name())

	run(t, e, "listWeddingByDate d/20-Jan-2026")
	assert.Equal(t, 1, view.Len())

	run(t, e, "listWedding")
	assert.Equal(t, 2, view.Len())
}

func TestEngine_HelpAndExit(t *testing.T) {
	e := newEngine()
	res := run(t, e, "help")
	assert.True(t, res.ShowHelp)
	assert.False(t, res.Exit)

	res = run(t, e, "exit")
	assert.True(t, res.Exit)
	assert.False(t, res.RefreshView)
}

func TestEngine_InvalidIndex(t *testing.T) {
	e := newEngine()
	run(t, e, "add n/Alice p/91234567 e/a@x.com r/Guest a/123 St")

	_, err := e.ExecuteLine("delete 3")
	require.ErrorIs(t, err, collection.ErrIndexOutOfRange)
	assert.Equal(t, 1, e.Service().PersonCount())
}

func TestEngine_ErrorsAreWordedForUsers(t *testing.T) {
	e := newEngine()
	run(t, e, "add n/Alice p/91234567 e/a@x.com r/Guest a/123 St")
	run(t, e, "addWedding n/X d/20-Feb-2026 l/Hall")
	run(t, e, "addWedding n/Y d/21-Feb-2026 l/Hall")
	run(t, e, "tag 1 W1")

	cases := map[string]string{
		"tag 1 W1":                            "Alice is already tagged with W1",
		"tag 1 W9":                            "wedding W9 does not exist",
		"untag 1 W2":                          "Alice is not tagged with W2",
		"editWedding W2 n/X d/20-Feb-2026":    "another wedding already has these details",
		"addWedding n/X d/20-Feb-2026 l/Hall": "this wedding already exists in the address book",
		"deleteWedding W7":                    "wedding W7 does not exist",
	}
	for line, want := range cases {
		_, err := e.ExecuteLine(line)
		require.Error(t, err, line)
		assert.Equal(t, want, err.Error(), line)
		assert.NotContains(t, err.Error(), "app.Service", line)
		assert.NotContains(t, err.Error(), "collection.", line)
	}

	_, err := e.ExecuteLine("tag 1 W1")
	require.ErrorIs(t, err, app.ErrDuplicateTag)
}

func TestEngine_ForcedEditOfReplacedPerson(t *testing.T) {
	e := newEngine(runner.WithPendingPolicy(runner.KeepPending))
	run(t, e, "add n/Alice p/91234567 e/a@x.com r/Guest a/123 St")
	run(t, e, "add n/Bob p/91234567 e/b@x.com r/Guest a/456 St")

	res := run(t, e, "edit 2 n/Alice")
	require.True(t, res.NeedsConfirmation)
	// Bob is replaced while the rename waits.
	run(t, e, "edit 2 p/88888888")

	_, err := e.ExecuteLine("y")
	require.ErrorIs(t, err, collection.ErrEntityNotFound)
	assert.Equal(t, "the person being edited has changed, please re-run edit", err.Error())
	assert.Equal(t, []string{"Alice", "Bob"}, names(e.Service().Persons().Items()))
	assert.Nil(t, e.Session().Pending())
}

func TestEngine_AddWeddingAfterLastID(t *testing.T) {
	e := newEngine()
	last, err := wedding.New(wedding.MaxID, "Last", wedding.MustDate("01-Jan-2025"), "Hall")
	require.NoError(t, err)
	require.NoError(t, e.Service().Restore(app.Snapshot{Weddings: []*wedding.Wedding{last}}))

	_, err = e.ExecuteLine("addWedding n/Tan Lee d/20-Feb-2026 l/Raffles Hotel")
	require.ErrorIs(t, err, wedding.ErrIDsExhausted)
	assert.Contains(t, err.Error(), "no more weddings can be added")
	assert.Equal(t, 1, e.Service().WeddingCount())
}
