// Package mcp provides the Model Context Protocol server integration for
// weddingbook.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"tableflip.dev/weddingbook/pkg/app"
	"tableflip.dev/weddingbook/pkg/person"
	"tableflip.dev/weddingbook/pkg/runner"
	"tableflip.dev/weddingbook/pkg/store"
	"tableflip.dev/weddingbook/pkg/wedding"
)

// Service runs MCP requests against one engine. Requests may arrive
// concurrently; they are executed one at a time.
type Service struct {
	mu          sync.Mutex
	engine      *runner.Engine
	persistence store.Persistence
}

// PersonDTO is a transport-friendly projection of a person. Index is the
// 1-based position commands such as edit and tag refer to.
type PersonDTO struct {
	Index    int      `json:"index"`
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	Address  string   `json:"address"`
	Weddings []string `json:"weddings,omitempty"`
}

// TaskDTO is a transport-friendly projection of a wedding task.
type TaskDTO struct {
	Index       int    `json:"index"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// WeddingDTO is a transport-friendly projection of a wedding.
type WeddingDTO struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Date     string    `json:"date"`
	Location string    `json:"location"`
	Tasks    []TaskDTO `json:"tasks,omitempty"`
}

// ResultDTO is the outcome of an executed command.
type ResultDTO struct {
	Command           string `json:"command"`
	Feedback          string `json:"feedback"`
	NeedsConfirmation bool   `json:"needsConfirmation"`
	Saved             bool   `json:"saved"`
}

// NewService builds a service over engine. Persistence may be nil, in which
// case changes are kept in memory only.
func NewService(engine *runner.Engine, p store.Persistence) *Service {
	return &Service{engine: engine, persistence: p}
}

// Execute runs one command line. With confirm set, a command that asks for
// confirmation is confirmed right away.
func (s *Service) Execute(ctx context.Context, line string, confirm bool) (*ResultDTO, error) {
	if s.engine == nil {
		return nil, errors.New("engine is not configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.engine.ExecuteLine(line)
	if err != nil {
		return nil, err
	}
	if res.NeedsConfirmation && confirm {
		if res, err = s.engine.ExecuteLine(runner.KeywordConfirm); err != nil {
			return nil, err
		}
	}
	if res.Exit {
		return nil, errors.New("exit is not available over MCP")
	}

	dto := &ResultDTO{Command: line, Feedback: res.Feedback, NeedsConfirmation: res.NeedsConfirmation}
	if res.RefreshView && s.persistence != nil {
		if err := s.persistence.Save(ctx, s.engine.Service().Snapshot()); err != nil {
			return nil, fmt.Errorf("saving address book: %w", err)
		}
		dto.Saved = true
	}
	return dto, nil
}

// Persons returns the current person view.
func (s *Service) Persons(_ context.Context) []PersonDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.engine.Service().Persons().Items()
	out := make([]PersonDTO, 0, len(items))
	for i, p := range items {
		out = append(out, toPersonDTO(i, p))
	}
	return out
}

// Weddings returns the current wedding view in its sort order.
func (s *Service) Weddings(_ context.Context) []WeddingDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.engine.Service().Weddings().Items()
	out := make([]WeddingDTO, 0, len(items))
	for _, w := range items {
		out = append(out, toWeddingDTO(w))
	}
	return out
}

// Wedding looks up one wedding by its textual ID, regardless of the view.
func (s *Service) Wedding(_ context.Context, raw string) (*WeddingDTO, error) {
	id, err := wedding.ParseID(raw)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.engine.Service().WeddingByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", app.ErrWeddingNotFound, id)
	}
	dto := toWeddingDTO(w)
	return &dto, nil
}

// Pending reports the keyword of the command awaiting confirmation, if any.
func (s *Service) Pending() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cmd := s.engine.Session().Pending(); cmd != nil {
		return cmd.Keyword(), true
	}
	return "", false
}

func toPersonDTO(i int, p *person.Person) PersonDTO {
	dto := PersonDTO{
		Index:   i + 1,
		Name:    string(p.Name()),
		Phone:   string(p.Phone()),
		Email:   string(p.Email()),
		Role:    string(p.Role()),
		Address: string(p.Address()),
	}
	for _, t := range p.Tags() {
		dto.Weddings = append(dto.Weddings, t.String())
	}
	return dto
}

func toWeddingDTO(w *wedding.Wedding) WeddingDTO {
	dto := WeddingDTO{
		ID:       w.ID().String(),
		Name:     w.Name(),
		Date:     w.Date().String(),
		Location: w.Location(),
	}
	for i, t := range w.Tasks() {
		dto.Tasks = append(dto.Tasks, TaskDTO{Index: i + 1, Description: t.Description, Done: t.Done})
	}
	return dto
}
