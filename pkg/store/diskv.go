package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/weddingbook/pkg/app"
	"tableflip.dev/weddingbook/pkg/person"
	"tableflip.dev/weddingbook/pkg/wedding"
)

// ErrCorrupt is returned when a stored record cannot be turned back into an
// entity.
var ErrCorrupt = errors.New("store: corrupt record")

// Persistence saves and loads the whole address book.
type Persistence interface {
	// Load returns the saved address book. Nothing saved loads as empty.
	Load(ctx context.Context) (app.Snapshot, error)
	// Save replaces the saved address book with snap.
	Save(ctx context.Context, snap app.Snapshot) error
}

const (
	keyPersons  = "book-persons"
	keyWeddings = "book-weddings"
)

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath, log: slog.Default().With("store", basePath)}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	log      *slog.Logger
}

func (p *persistence) Load(ctx context.Context) (app.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return app.Snapshot{}, err
	}

	var persons []PersonRecord
	if err := p.read(keyPersons, &persons); err != nil {
		return app.Snapshot{}, err
	}
	var weddings []WeddingRecord
	if err := p.read(keyWeddings, &weddings); err != nil {
		return app.Snapshot{}, err
	}

	snap := app.Snapshot{
		Persons:  make([]*person.Person, 0, len(persons)),
		Weddings: make([]*wedding.Wedding, 0, len(weddings)),
	}
	for i, r := range weddings {
		w, err := r.toWedding()
		if err != nil {
			return app.Snapshot{}, fmt.Errorf("%w: wedding %d: %v", ErrCorrupt, i+1, err)
		}
		snap.Weddings = append(snap.Weddings, w)
	}
	for i, r := range persons {
		per, err := r.toPerson()
		if err != nil {
			return app.Snapshot{}, fmt.Errorf("%w: person %d: %v", ErrCorrupt, i+1, err)
		}
		snap.Persons = append(snap.Persons, per)
	}
	p.log.Debug("loaded address book", "persons", len(snap.Persons), "weddings", len(snap.Weddings))
	return snap, nil
}

func (p *persistence) Save(ctx context.Context, snap app.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e := NewExport(snap)
	if err := p.write(keyWeddings, e.Weddings); err != nil {
		return err
	}
	if err := p.write(keyPersons, e.Persons); err != nil {
		return err
	}
	p.log.Debug("saved address book", "persons", len(e.Persons), "weddings", len(e.Weddings))
	return nil
}

func (p *persistence) read(key string, into any) error {
	if !p.d.Has(key) {
		return nil
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("store: read %s: %w", key, err)
	}
	if len(val) == 0 {
		return nil
	}
	if err := json.Unmarshal(val, into); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return nil
}

func (p *persistence) write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
