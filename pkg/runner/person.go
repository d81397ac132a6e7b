package runner

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/weddingbook/pkg/app"
	"tableflip.dev/weddingbook/pkg/collection"
	"tableflip.dev/weddingbook/pkg/person"
	"tableflip.dev/weddingbook/pkg/wedding"
)

// Add inserts a person. If someone with the same name exists it asks for
// confirmation instead; the force variant adds the duplicate.
type Add struct {
	Person *person.Person
	force  bool
}

func (*Add) Keyword() string { return KeywordAdd }

func (c *Add) Force() Command {
	return &Add{Person: c.Person, force: true}
}

func (c *Add) Execute(env *Env) (Result, error) {
	if err := requireWeddings(env.Service, c.Person.Tags()); err != nil {
		return Result{}, err
	}
	if !c.force && env.Service.HasPerson(c.Person) {
		return Result{
			Feedback:          fmt.Sprintf("A person named %q already exists. Add %s anyway? (y to confirm)", c.Person.Name(), c.Person.Name()),
			NeedsConfirmation: true,
		}, nil
	}
	if c.force {
		env.Service.AddPersonForce(c.Person)
	} else if err := env.Service.AddPerson(c.Person); err != nil {
		return Result{}, fail(err, "a person named %q already exists", c.Person.Name())
	}
	return Result{Feedback: "New person added: " + c.Person.String(), RefreshView: true}, nil
}

// Edit replaces the person at Index in the person view. An edit that renames
// the person onto someone else asks for confirmation; the force variant
// applies it anyway.
type Edit struct {
	Index   int
	Changes person.Changes

	force  bool
	target *person.Person
}

func (*Edit) Keyword() string { return KeywordEdit }

func (c *Edit) Force() Command {
	return &Edit{Index: c.Index, Changes: c.Changes, force: true, target: c.target}
}

func (c *Edit) Execute(env *Env) (Result, error) {
	target := c.target
	if target == nil {
		p, err := env.Service.Persons().At(c.Index)
		if err != nil {
			return Result{}, fmt.Errorf("the person index provided is invalid: %w", err)
		}
		target = p
	}
	if c.Changes.Tags != nil {
		if err := requireWeddings(env.Service, *c.Changes.Tags); err != nil {
			return Result{}, err
		}
	}

	edited := target.Edit(c.Changes)
	if edited.Equal(target) {
		return Result{}, ErrNoChange
	}

	if !c.force {
		if !target.IsSame(edited) && env.Service.HasPerson(edited) {
			// The force variant edits this person, not whatever sits at Index
			// by then.
			c.target = target
			return Result{
				Feedback:          fmt.Sprintf("Another person named %q already exists. Apply the edit anyway? (y to confirm)", edited.Name()),
				NeedsConfirmation: true,
			}, nil
		}
		if err := env.Service.SetPerson(target, edited); err != nil {
			return Result{}, fail(err, "could not edit %s, another person named %q already exists", target.Name(), edited.Name())
		}
		return Result{Feedback: "Edited person: " + edited.String(), RefreshView: true}, nil
	}

	if err := env.Service.SetPersonForce(target, edited); err != nil {
		if errors.Is(err, collection.ErrDuplicateEntity) {
			panic(fmt.Sprintf("runner: forced edit hit a uniqueness check: %v", err))
		}
		if errors.Is(err, collection.ErrEntityNotFound) {
			return Result{}, fail(err, "the person being edited has changed, please re-run edit")
		}
		return Result{}, err
	}
	return Result{Feedback: "Edited person: " + edited.String(), RefreshView: true}, nil
}

// Delete removes the person at Index in the person view.
type Delete struct {
	unforceable
	Index int
}

func (*Delete) Keyword() string { return KeywordDelete }

func (c *Delete) Execute(env *Env) (Result, error) {
	target, err := env.Service.Persons().At(c.Index)
	if err != nil {
		return Result{}, fmt.Errorf("the person index provided is invalid: %w", err)
	}
	if err := env.Service.DeletePerson(target); err != nil {
		return Result{}, fail(err, "could not delete %s, the person has changed", target.Name())
	}
	return Result{Feedback: "Deleted person: " + target.String(), RefreshView: true}, nil
}

// Clear removes every person. A non-empty address book asks for
// confirmation first.
type Clear struct {
	force bool
}

func (*Clear) Keyword() string { return KeywordClear }

func (*Clear) Force() Command { return &Clear{force: true} }

func (c *Clear) Execute(env *Env) (Result, error) {
	if n := env.Service.PersonCount(); !c.force && n > 0 {
		return Result{
			Feedback:          fmt.Sprintf("This will delete all %d person(s). Are you sure? (y to confirm)", n),
			NeedsConfirmation: true,
		}, nil
	}
	env.Service.ClearPersons()
	return Result{Feedback: "Address book has been cleared!", RefreshView: true}, nil
}

// List shows every person.
type List struct {
	unforceable
}

func (*List) Keyword() string { return KeywordList }

func (*List) Execute(env *Env) (Result, error) {
	env.Service.FilterPersons(nil)
	return Result{Feedback: "Listed all persons", RefreshView: true}, nil
}

// Find narrows the person view to names or roles containing any keyword.
type Find struct {
	unforceable
	Keywords []string
}

func (*Find) Keyword() string { return KeywordFind }

func (c *Find) Execute(env *Env) (Result, error) {
	env.Service.FilterPersons(app.NameOrRoleContains(c.Keywords))
	return Result{
		Feedback:    fmt.Sprintf("%d person(s) listed for %s", env.Service.Persons().Len(), strings.Join(c.Keywords, " ")),
		RefreshView: true,
	}, nil
}

// Filter narrows the person view to those tagged with a wedding.
type Filter struct {
	unforceable
	Wedding wedding.ID
}

func (*Filter) Keyword() string { return KeywordFilter }

func (c *Filter) Execute(env *Env) (Result, error) {
	if _, ok := env.Service.WeddingByID(c.Wedding); !ok {
		return Result{}, fail(app.ErrWeddingNotFound, "wedding %s does not exist", c.Wedding)
	}
	env.Service.FilterPersons(app.TaggedWith(c.Wedding))
	return Result{
		Feedback:    fmt.Sprintf("%d person(s) tagged with %s", env.Service.Persons().Len(), c.Wedding),
		RefreshView: true,
	}, nil
}

// Tag tags the person at Index with a wedding that must exist.
type Tag struct {
	unforceable
	Index   int
	Wedding wedding.ID
}

func (*Tag) Keyword() string { return KeywordTag }

func (c *Tag) Execute(env *Env) (Result, error) {
	target, err := env.Service.Persons().At(c.Index)
	if err != nil {
		return Result{}, fmt.Errorf("the person index provided is invalid: %w", err)
	}
	edited, err := env.Service.TagPerson(target, c.Wedding)
	switch {
	case errors.Is(err, app.ErrWeddingNotFound):
		return Result{}, fail(err, "wedding %s does not exist", c.Wedding)
	case errors.Is(err, app.ErrDuplicateTag):
		return Result{}, fail(err, "%s is already tagged with %s", target.Name(), c.Wedding)
	case err != nil:
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("Tagged %s with %s", edited.Name(), c.Wedding), RefreshView: true}, nil
}

// Untag removes a wedding tag from the person at Index.
type Untag struct {
	unforceable
	Index   int
	Wedding wedding.ID
}

func (*Untag) Keyword() string { return KeywordUntag }

func (c *Untag) Execute(env *Env) (Result, error) {
	target, err := env.Service.Persons().At(c.Index)
	if err != nil {
		return Result{}, fmt.Errorf("the person index provided is invalid: %w", err)
	}
	edited, err := env.Service.UntagPerson(target, c.Wedding)
	switch {
	case errors.Is(err, app.ErrNotTagged):
		return Result{}, fail(err, "%s is not tagged with %s", target.Name(), c.Wedding)
	case err != nil:
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("Removed tag %s from %s", c.Wedding, edited.Name()), RefreshView: true}, nil
}

func requireWeddings(s *app.Service, tags []person.Tag) error {
	for _, t := range tags {
		if _, ok := s.WeddingByID(t.Wedding); !ok {
			return fail(app.ErrWeddingNotFound, "wedding %s does not exist", t.Wedding)
		}
	}
	return nil
}
