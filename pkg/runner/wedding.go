package runner

import (
	"fmt"

	"tableflip.dev/weddingbook/pkg/app"
	"tableflip.dev/weddingbook/pkg/collection"
	"tableflip.dev/weddingbook/pkg/wedding"
)

// AddWedding creates a wedding with the next free ID. The same event cannot
// be added twice.
type AddWedding struct {
	unforceable
	Name     string
	Date     wedding.Date
	Location string
}

func (*AddWedding) Keyword() string { return KeywordAddWedding }

func (c *AddWedding) Execute(env *Env) (Result, error) {
	// IsSame ignores the ID. A rejected add must not consume one.
	candidate, err := wedding.New(1, c.Name, c.Date, c.Location)
	if err != nil {
		return Result{}, err
	}
	if env.Service.HasWedding(candidate) {
		return Result{}, fail(collection.ErrDuplicateEntity, "this wedding already exists in the address book")
	}
	id, err := env.Service.NextWeddingID()
	if err != nil {
		return Result{}, fail(err, "no more weddings can be added, every ID up to %s is taken", wedding.MaxID)
	}
	w, err := wedding.New(id, c.Name, c.Date, c.Location)
	if err != nil {
		return Result{}, err
	}
	if err := env.Service.AddWedding(w); err != nil {
		return Result{}, fail(err, "this wedding already exists in the address book")
	}
	return Result{Feedback: fmt.Sprintf("New wedding added: %s %s", w.ID(), w), RefreshView: true}, nil
}

// EditWedding replaces the details of an existing wedding, keeping its ID and
// tasks. Nil fields are kept.
type EditWedding struct {
	unforceable
	ID       wedding.ID
	Name     *string
	Date     *wedding.Date
	Location *string
}

func (*EditWedding) Keyword() string { return KeywordEditWedding }

func (c *EditWedding) Execute(env *Env) (Result, error) {
	target, err := lookupWedding(env, c.ID)
	if err != nil {
		return Result{}, err
	}
	name, date, location := target.Name(), target.Date(), target.Location()
	if c.Name != nil {
		name = *c.Name
	}
	if c.Date != nil {
		date = *c.Date
	}
	if c.Location != nil {
		location = *c.Location
	}
	edited, err := target.WithDetails(name, date, location)
	if err != nil {
		return Result{}, err
	}
	if edited.Equal(target) && edited.Date().String() == target.Date().String() {
		return Result{}, ErrNoChange
	}
	if err := env.Service.SetWedding(target, edited); err != nil {
		return Result{}, fail(err, "another wedding already has these details")
	}
	return Result{Feedback: fmt.Sprintf("Edited wedding: %s %s", edited.ID(), edited), RefreshView: true}, nil
}

// DeleteWedding removes a wedding and its tag from every person.
type DeleteWedding struct {
	unforceable
	ID wedding.ID
}

func (*DeleteWedding) Keyword() string { return KeywordDeleteWedding }

func (c *DeleteWedding) Execute(env *Env) (Result, error) {
	target, err := lookupWedding(env, c.ID)
	if err != nil {
		return Result{}, err
	}
	if err := env.Service.DeleteWedding(target); err != nil {
		return Result{}, fail(err, "could not delete %s, the wedding has changed", target.ID())
	}
	return Result{Feedback: fmt.Sprintf("Deleted wedding: %s %s", target.ID(), target), RefreshView: true}, nil
}

// ListWedding shows every wedding in the current sort order.
type ListWedding struct {
	unforceable
}

func (*ListWedding) Keyword() string { return KeywordListWedding }

func (*ListWedding) Execute(env *Env) (Result, error) {
	env.Service.FilterWeddings(nil)
	return Result{Feedback: "Listed all weddings", RefreshView: true}, nil
}

// ListWeddingByDate narrows the wedding view to one day.
type ListWeddingByDate struct {
	unforceable
	Date wedding.Date
}

func (*ListWeddingByDate) Keyword() string { return KeywordListWeddingByDate }

func (c *ListWeddingByDate) Execute(env *Env) (Result, error) {
	env.Service.FilterWeddings(app.OnDate(c.Date))
	return Result{
		Feedback:    fmt.Sprintf("%d wedding(s) on %s", env.Service.Weddings().Len(), c.Date),
		RefreshView: true,
	}, nil
}

// SortWeddingByID orders the wedding view by ID.
type SortWeddingByID struct {
	unforceable
}

func (*SortWeddingByID) Keyword() string { return KeywordSortWeddingByID }

func (*SortWeddingByID) Execute(env *Env) (Result, error) {
	env.Service.SortWeddings(app.SortByID)
	return Result{Feedback: "Sorted weddings by ID", RefreshView: true}, nil
}

// SortWeddingByDate orders the wedding view by date.
type SortWeddingByDate struct {
	unforceable
}

func (*SortWeddingByDate) Keyword() string { return KeywordSortWeddingByDate }

func (*SortWeddingByDate) Execute(env *Env) (Result, error) {
	env.Service.SortWeddings(app.SortByDate)
	return Result{Feedback: "Sorted weddings by date", RefreshView: true}, nil
}

func lookupWedding(env *Env, id wedding.ID) (*wedding.Wedding, error) {
	w, ok := env.Service.WeddingByID(id)
	if !ok {
		return nil, fail(app.ErrWeddingNotFound, "wedding %s does not exist", id)
	}
	return w, nil
}
