// Package store persists trees as Newick text.
//
// It includes:
//   - Load / Save: a single tree from a file path or an inline string, and back
//   - Loader: Load behind an LRU cache of parsed trees (hashicorp/golang-lru)
//   - SQLiteStore: named trees in a SQLite table (modernc.org/sqlite)
//
// Load decides between a path and inline notation by checking whether the
// source names an existing file; only the first line of a file is read.
// Filesystem failures are wrapped in ErrIO and never retried. Parse errors
// from the newick package pass through unchanged.
package store
