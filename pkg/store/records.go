package store

import (
	"tableflip.dev/weddingbook/pkg/app"
	"tableflip.dev/weddingbook/pkg/person"
	"tableflip.dev/weddingbook/pkg/wedding"
)

// PersonRecord is the stored form of a person. Tags are wedding IDs in text
// form.
type PersonRecord struct {
	Name    string   `json:"name" yaml:"name"`
	Phone   string   `json:"phone" yaml:"phone"`
	Email   string   `json:"email" yaml:"email"`
	Role    string   `json:"role" yaml:"role"`
	Address string   `json:"address" yaml:"address"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// TaskRecord is the stored form of a wedding task.
type TaskRecord struct {
	Description string `json:"description" yaml:"description"`
	Done        bool   `json:"done" yaml:"done"`
}

// WeddingRecord is the stored form of a wedding and its tasks.
type WeddingRecord struct {
	ID       string       `json:"id" yaml:"id"`
	Name     string       `json:"name" yaml:"name"`
	Date     string       `json:"date" yaml:"date"`
	Location string       `json:"location" yaml:"location"`
	Tasks    []TaskRecord `json:"tasks,omitempty" yaml:"tasks,omitempty"`
}

func fromPerson(p *person.Person) PersonRecord {
	r := PersonRecord{
		Name:    string(p.Name()),
		Phone:   string(p.Phone()),
		Email:   string(p.Email()),
		Role:    string(p.Role()),
		Address: string(p.Address()),
	}
	for _, t := range p.Tags() {
		r.Tags = append(r.Tags, t.String())
	}
	return r
}

// toPerson runs every field through the same validation as user input.
func (r PersonRecord) toPerson() (*person.Person, error) {
	name, err := person.ParseName(r.Name)
	if err != nil {
		return nil, err
	}
	phone, err := person.ParsePhone(r.Phone)
	if err != nil {
		return nil, err
	}
	email, err := person.ParseEmail(r.Email)
	if err != nil {
		return nil, err
	}
	role, err := person.ParseRole(r.Role)
	if err != nil {
		return nil, err
	}
	address, err := person.ParseAddress(r.Address)
	if err != nil {
		return nil, err
	}
	tags := make([]person.Tag, 0, len(r.Tags))
	for _, raw := range r.Tags {
		t, err := person.ParseTag(raw)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return person.New(name, phone, email, role, address, tags...), nil
}

func fromWedding(w *wedding.Wedding) WeddingRecord {
	r := WeddingRecord{
		ID:       w.ID().String(),
		Name:     w.Name(),
		Date:     w.Date().String(),
		Location: w.Location(),
	}
	for _, t := range w.Tasks() {
		r.Tasks = append(r.Tasks, TaskRecord{Description: t.Description, Done: t.Done})
	}
	return r
}

func (r WeddingRecord) toWedding() (*wedding.Wedding, error) {
	id, err := wedding.ParseID(r.ID)
	if err != nil {
		return nil, err
	}
	date, err := wedding.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	tasks := make([]*wedding.Task, 0, len(r.Tasks))
	for _, tr := range r.Tasks {
		t, err := wedding.NewTask(tr.Description)
		if err != nil {
			return nil, err
		}
		t.Done = tr.Done
		tasks = append(tasks, t)
	}
	return wedding.New(id, r.Name, date, r.Location, tasks...)
}

// Export is the plain, serializable form of an address book.
type Export struct {
	Persons  []PersonRecord  `json:"persons" yaml:"persons"`
	Weddings []WeddingRecord `json:"weddings" yaml:"weddings"`
}

// NewExport converts a snapshot into its serializable form.
func NewExport(snap app.Snapshot) Export {
	e := Export{
		Persons:  make([]PersonRecord, 0, len(snap.Persons)),
		Weddings: make([]WeddingRecord, 0, len(snap.Weddings)),
	}
	for _, p := range snap.Persons {
		e.Persons = append(e.Persons, fromPerson(p))
	}
	for _, w := range snap.Weddings {
		e.Weddings = append(e.Weddings, fromWedding(w))
	}
	return e
}
