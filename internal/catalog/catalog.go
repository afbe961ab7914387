// ============================================================================
// chemformula - Chemical formula toolkit
// ============================================================================
//
// Package:     catalog
// Description: Persistent catalog of named, validated chemical formulas
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package catalog stores named formulas. Every entry is validated by
// building it against an element table before it is written, so reading
// an entry back always yields a buildable formula for that table.
package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/chemformula/foundation/core/error"
	"github.com/msto63/chemformula/internal/elements"
	"github.com/msto63/chemformula/internal/formula"
)

// Entry is a catalog record
type Entry struct {
	ID        uuid.UUID `yaml:"id"`
	Name      string    `yaml:"name"`
	Text      string    `yaml:"formula"`
	Charge    int       `yaml:"charge,omitempty"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Formula builds the entry's formula against table (nil means the
// embedded IUPAC table)
func (e *Entry) Formula(table *elements.Table) (*formula.Formula, error) {
	return formula.Build(e.Text, formula.Options{
		Charge: e.Charge,
		Name:   e.Name,
		Table:  table,
	})
}

// Store defines the interface for catalog persistence
type Store interface {
	// Add validates and stores e. A zero ID and CreatedAt are filled in.
	Add(ctx context.Context, e *Entry) error
	Get(ctx context.Context, id uuid.UUID) (*Entry, error)
	GetByName(ctx context.Context, name string) (*Entry, error)
	// List returns all entries ordered by name
	List(ctx context.Context) ([]*Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Close() error
}

// Resolve finds an entry by ID when ref parses as a UUID, by name otherwise
func Resolve(ctx context.Context, s Store, ref string) (*Entry, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return s.Get(ctx, id)
	}
	return s.GetByName(ctx, ref)
}

// prepare validates e against table and fills in ID and CreatedAt
func prepare(e *Entry, table *elements.Table) error {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return mdwerror.New("catalog entry needs a name").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("catalog.Add")
	}

	if _, err := e.Formula(table); err != nil {
		return formula.Wrap(err, "catalog.Add", e.Text).
			WithDetail("name", e.Name)
	}

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}
	return nil
}

func notFound(key string, value interface{}) *mdwerror.Error {
	return mdwerror.Newf("catalog entry not found: %v", value).
		WithCode(mdwerror.CodeNotFound).
		WithDetail(key, value)
}

func duplicate(name string) *mdwerror.Error {
	return mdwerror.Newf("catalog entry %q already exists", name).
		WithCode(mdwerror.CodeDuplicateEntry).
		WithDetail("name", name)
}

func duplicateID(id uuid.UUID) *mdwerror.Error {
	return mdwerror.Newf("catalog entry with id %s already exists", id).
		WithCode(mdwerror.CodeDuplicateEntry).
		WithDetail("id", id.String())
}

// batchAdder is implemented by stores that can add several prepared
// entries at once, storing either all of them or none
type batchAdder interface {
	addAll(ctx context.Context, entries []*Entry) error
}
