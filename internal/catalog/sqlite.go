package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/chemformula/foundation/core/error"
	mdwlog "github.com/msto63/chemformula/foundation/core/log"
	"github.com/msto63/chemformula/internal/elements"
	"github.com/msto63/chemformula/pkg/core/version"
)

// Config holds configuration for the SQLite store
type Config struct {
	Path        string
	BusyTimeout time.Duration

	// Table validates added entries; nil means the embedded IUPAC table
	Table  *elements.Table
	Logger *mdwlog.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Path:        "./data/catalog.db",
		BusyTimeout: 5 * time.Second,
	}
}

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	table  *elements.Table
	logger *mdwlog.Logger
}

// Open opens (and creates if needed) the catalog database at cfg.Path
func Open(cfg Config) (*SQLiteStore, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, dbError(err, "failed to create directory").WithDetail("path", dir)
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=%d",
		cfg.Path, cfg.BusyTimeout.Milliseconds())
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, dbError(err, "failed to open database").WithDetail("path", cfg.Path)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = mdwlog.GetDefault()
	}

	store := &SQLiteStore{
		db:     db,
		table:  cfg.Table,
		logger: logger.WithFields(mdwlog.Fields{"component": "catalog", "path": cfg.Path}),
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, dbError(err, "failed to initialize schema").WithDetail("path", cfg.Path)
	}

	store.logger.Debug("Catalog opened")
	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS formulas (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		formula TEXT NOT NULL,
		charge INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_formulas_created ON formulas(created_at);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", version.CatalogSchema))
	return err
}

// Add validates and inserts an entry
func (s *SQLiteStore) Add(ctx context.Context, e *Entry) error {
	if err := prepare(e, s.table); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := insertEntry(ctx, s.db, e); err != nil {
		return err
	}
	s.logAdded(e)
	return nil
}

// addAll inserts prepared entries in one transaction
func (s *SQLiteStore) addAll(ctx context.Context, entries []*Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return dbError(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	for _, e := range entries {
		if err := insertEntry(ctx, tx, e); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return dbError(err, "failed to commit catalog import")
	}

	for _, e := range entries {
		s.logAdded(e)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func insertEntry(ctx context.Context, db execer, e *Entry) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO formulas (id, name, formula, charge, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, e.ID.String(), e.Name, e.Text, e.Charge, e.CreatedAt)
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintPrimaryKey:
			return duplicateID(e.ID)
		case sqlite3.ErrConstraintUnique:
			return duplicate(e.Name)
		}
	}
	return dbError(err, "failed to add catalog entry").WithDetail("name", e.Name)
}

func (s *SQLiteStore) logAdded(e *Entry) {
	s.logger.Debug("Catalog entry added", mdwlog.Fields{
		"id":      e.ID.String(),
		"name":    e.Name,
		"formula": e.Text,
	})
}

// Get retrieves an entry by ID
func (s *SQLiteStore) Get(ctx context.Context, id uuid.UUID) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, formula, charge, created_at
		FROM formulas WHERE id = ?
	`, id.String())

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("id", id.String())
	}
	if err != nil {
		return nil, dbError(err, "failed to get catalog entry")
	}
	return e, nil
}

// GetByName retrieves an entry by its unique name
func (s *SQLiteStore) GetByName(ctx context.Context, name string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, formula, charge, created_at
		FROM formulas WHERE name = ?
	`, name)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("name", name)
	}
	if err != nil {
		return nil, dbError(err, "failed to get catalog entry")
	}
	return e, nil
}

// List returns all entries ordered by name
func (s *SQLiteStore) List(ctx context.Context) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, formula, charge, created_at
		FROM formulas
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, dbError(err, "failed to list catalog")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, dbError(err, "failed to scan catalog entry")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to list catalog")
	}

	return entries, nil
}

// Delete removes an entry by ID
func (s *SQLiteStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM formulas WHERE id = ?`, id.String())
	if err != nil {
		return dbError(err, "failed to delete catalog entry")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return dbError(err, "failed to delete catalog entry")
	}
	if rows == 0 {
		return notFound("id", id.String())
	}

	s.logger.Debug("Catalog entry deleted", mdwlog.Fields{"id": id.String()})
	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row scanner) (*Entry, error) {
	var (
		e  Entry
		id string
	)
	if err := row.Scan(&id, &e.Name, &e.Text, &e.Charge, &e.CreatedAt); err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid entry id %q: %w", id, err)
	}
	e.ID = parsed
	e.CreatedAt = e.CreatedAt.UTC()
	return &e, nil
}

func dbError(err error, message string) *mdwerror.Error {
	return mdwerror.Wrap(err, message).WithCode(mdwerror.CodeDatabaseError)
}
