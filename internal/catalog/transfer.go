package catalog

import (
	"context"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/chemformula/foundation/core/error"
	"github.com/msto63/chemformula/internal/elements"
	"github.com/msto63/chemformula/pkg/core/version"
)

// document is the YAML layout of an exported catalog
type document struct {
	Version  int      `yaml:"version"`
	Formulas []*Entry `yaml:"formulas"`
}

// Export writes all entries of s as YAML
func Export(ctx context.Context, s Store, w io.Writer) error {
	entries, err := s.List(ctx)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []*Entry{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Version: version.CatalogSchema, Formulas: entries}); err != nil {
		return mdwerror.Wrap(err, "failed to encode catalog").WithCode(mdwerror.CodeInternal)
	}
	return enc.Close()
}

// Import reads a YAML export and adds its entries to s. All entries are
// validated against table and checked for name and ID clashes before the
// first one is added, so either every entry is stored or none is. It
// returns the number of entries added.
func Import(ctx context.Context, s Store, r io.Reader, table *elements.Table) (int, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return 0, mdwerror.Wrap(err, "failed to decode catalog").WithCode(mdwerror.CodeImportError)
	}
	if doc.Version > version.CatalogSchema {
		return 0, mdwerror.Newf("unsupported catalog version %d", doc.Version).
			WithCode(mdwerror.CodeImportError).
			WithDetail("version", doc.Version)
	}

	names := make(map[string]bool, len(doc.Formulas))
	ids := make(map[uuid.UUID]bool, len(doc.Formulas))
	for i, e := range doc.Formulas {
		if e == nil {
			return 0, importError(mdwerror.New("empty entry"), i)
		}
		givenID := e.ID != uuid.Nil
		if err := prepare(e, table); err != nil {
			return 0, importError(err, i)
		}

		if names[e.Name] {
			return 0, importError(duplicate(e.Name), i)
		}
		names[e.Name] = true
		if _, err := s.GetByName(ctx, e.Name); err == nil {
			return 0, importError(duplicate(e.Name), i)
		} else if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			return 0, err
		}

		if ids[e.ID] {
			return 0, importError(duplicateID(e.ID), i)
		}
		ids[e.ID] = true
		if !givenID {
			continue
		}
		if _, err := s.Get(ctx, e.ID); err == nil {
			return 0, importError(duplicateID(e.ID), i)
		} else if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			return 0, err
		}
	}

	if b, ok := s.(batchAdder); ok {
		if err := b.addAll(ctx, doc.Formulas); err != nil {
			return 0, mdwerror.Wrap(err, "catalog import failed").WithCode(mdwerror.CodeImportError)
		}
		return len(doc.Formulas), nil
	}

	for i, e := range doc.Formulas {
		if err := s.Add(ctx, e); err != nil {
			return i, importError(err, i)
		}
	}
	return len(doc.Formulas), nil
}

func importError(err error, index int) *mdwerror.Error {
	return mdwerror.Wrap(err, "catalog import failed").
		WithCode(mdwerror.CodeImportError).
		WithDetail("entry", index)
}
