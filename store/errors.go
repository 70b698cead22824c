package store

import "errors"

var (
	// ErrIO indicates that a path could not be read or written.
	ErrIO = errors.New("store: i/o failure")

	// ErrNotFound indicates a tree name unknown to a SQLiteStore.
	ErrNotFound = errors.New("store: tree not found")

	// ErrNilDB indicates a nil *sql.DB passed to NewSQLiteStore.
	ErrNilDB = errors.New("store: db is nil")

	// ErrEmptyName indicates an empty tree name.
	ErrEmptyName = errors.New("store: tree name is empty")
)
