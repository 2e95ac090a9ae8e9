package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/kennyvt/kennyvt.github.io/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
	"github.com/kennyvt/kennyvt.github.io/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CorpusStore = (*Store)(nil)

// Store keeps the corpus in a SQLite database file.
//
// The database is opened lazily. Only Save creates a missing file; Load of
// a missing file fails with domain.ErrNotFound.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	path   string
	closed bool
}

// NewStore returns a store for the database at path. An existing file is
// opened and migrated immediately; a missing one is left alone until Save.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("database path: %w", domain.ErrInvalidInput)
	}

	s := &Store{path: path}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := s.open(); err != nil {
			return nil, err
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("checking database: %w", err)
	}

	return s, nil
}

// open connects to the database file and applies pending migrations.
// Callers hold mu or own s exclusively.
func (s *Store) open() error {
	db, err := sql.Open("sqlite", s.path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	s.db = db
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		s.db = nil
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// conn returns the open database, creating it first when create is set.
func (s *Store) conn(create bool) (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, fmt.Errorf("%s: database is closed", s.path)
	}
	if s.db != nil {
		return s.db, nil
	}

	if create {
		if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	} else if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", s.path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("checking database: %w", err)
	}

	if err := s.open(); err != nil {
		return nil, err
	}
	return s.db, nil
}

// Close closes the database connection, if one was opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Save replaces the stored corpus in a single transaction.
func (s *Store) Save(ctx context.Context, corpus domain.Corpus) (err error) {
	if err = ctx.Err(); err != nil {
		return err
	}

	db, err := s.conn(true)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM documents`); err != nil {
		return fmt.Errorf("clearing documents: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO documents (position, title, path, content)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, doc := range corpus {
		if _, err = stmt.ExecContext(ctx, i, doc.Title, doc.Path, nullString(doc.Content)); err != nil {
			return fmt.Errorf("inserting document %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Load returns every document in build order. It fails with
// domain.ErrNotFound when the database file does not exist.
func (s *Store) Load(ctx context.Context) (domain.Corpus, error) {
	db, err := s.conn(false)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT title, path, content
		FROM documents
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	corpus := domain.Corpus{}
	for rows.Next() {
		var doc domain.Document
		var content sql.NullString
		if err := rows.Scan(&doc.Title, &doc.Path, &content); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		doc.Content = content.String
		corpus = append(corpus, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}

	return corpus, nil
}

// migrate runs all pending up migrations and records their versions.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_documents.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if err := s.apply(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

func (s *Store) apply(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(script); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	return tx.Commit()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
