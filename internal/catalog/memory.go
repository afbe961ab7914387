package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/msto63/chemformula/internal/elements"
)

// MemoryStore is an in-memory Store for tests and throwaway sessions
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*Entry
	table   *elements.Table
}

// NewMemoryStore creates an empty in-memory store validating against table
func NewMemoryStore(table *elements.Table) *MemoryStore {
	return &MemoryStore{
		entries: make(map[uuid.UUID]*Entry),
		table:   table,
	}
}

// Add validates and stores a copy of e
func (s *MemoryStore) Add(ctx context.Context, e *Entry) error {
	if err := prepare(e, s.table); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.conflict(e); err != nil {
		return err
	}
	stored := *e
	s.entries[e.ID] = &stored
	return nil
}

// addAll stores prepared entries after checking all of them
func (s *MemoryStore) addAll(ctx context.Context, entries []*Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range entries {
		if err := s.conflict(e); err != nil {
			return err
		}
	}
	for _, e := range entries {
		stored := *e
		s.entries[e.ID] = &stored
	}
	return nil
}

func (s *MemoryStore) conflict(e *Entry) error {
	if _, ok := s.entries[e.ID]; ok {
		return duplicateID(e.ID)
	}
	for _, existing := range s.entries {
		if existing.Name == e.Name {
			return duplicate(e.Name)
		}
	}
	return nil
}

// Get retrieves an entry by ID
func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, notFound("id", id.String())
	}
	out := *e
	return &out, nil
}

// GetByName retrieves an entry by name
func (s *MemoryStore) GetByName(ctx context.Context, name string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if e.Name == name {
			out := *e
			return &out, nil
		}
	}
	return nil, notFound("name", name)
}

// List returns all entries ordered by name
func (s *MemoryStore) List(ctx context.Context) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out := *e
		entries = append(entries, &out)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Delete removes an entry by ID
func (s *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return notFound("id", id.String())
	}
	delete(s.entries, id)
	return nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}
