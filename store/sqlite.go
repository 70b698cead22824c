package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver

	"github.com/katalvlaran/phylotree/newick"
	"github.com/katalvlaran/phylotree/tree"
)

const treesSchema = `
CREATE TABLE IF NOT EXISTS trees (
    name       TEXT PRIMARY KEY,
    newick     TEXT NOT NULL,
    leaves     INTEGER NOT NULL,
    height     INTEGER NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// storedFormat keeps every label and length.
const storedFormat = newick.AllNamesLengths

// Open opens a SQLite database using the modernc.org/sqlite driver.
// Pass a file path, or ":memory:" for a private in-memory database; the
// latter is pinned to one connection so every query sees the same data.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if dsn == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	return db, nil
}

// EnsureSchema creates the trees table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, treesSchema)
	return err
}

// Entry summarizes one stored tree.
type Entry struct {
	Name   string
	Leaves int
	Height int
}

// SQLiteStore keeps named trees in a SQLite table as format-3 Newick text,
// alongside their leaf count and height.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps db and ensures the schema exists.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, ErrNilDB
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("store: ensure schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Put inserts or replaces the tree stored under name.
func (s *SQLiteStore) Put(ctx context.Context, name string, t *tree.Tree) error {
	if name == "" {
		return ErrEmptyName
	}
	text, err := newick.String(t, storedFormat)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO trees(name, newick, leaves, height) VALUES(?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
    newick = excluded.newick,
    leaves = excluded.leaves,
    height = excluded.height,
    updated_at = CURRENT_TIMESTAMP`,
		name, text, t.Len(), t.Height())

	return err
}

// Get parses and returns the tree stored under name.
func (s *SQLiteStore) Get(ctx context.Context, name string) (*tree.Tree, error) {
	var text string
	err := s.db.QueryRowContext(ctx, `SELECT newick FROM trees WHERE name = ?`, name).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	return newick.Parse(text)
}

// List returns every stored tree ordered by name.
func (s *SQLiteStore) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, leaves, height FROM trees ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Leaves, &e.Height); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Delete removes the tree stored under name.
func (s *SQLiteStore) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM trees WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return nil
}
