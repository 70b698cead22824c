package store

import (
	"fmt"
	"os"
	"strconv"

	lru "github.com/hashicorp/golang-lru"

	"github.com/katalvlaran/phylotree/tree"
)

// DefaultCacheSize is the number of parsed trees a Loader keeps by default.
const DefaultCacheSize = 128

// Loader wraps Load with an LRU cache of parsed trees. Every call returns a
// fresh Clone, so callers may mutate the result freely. Files are keyed by
// path, size and modification time, so edits on disk are picked up.
//
// A Loader is safe for concurrent use.
type Loader struct {
	cache *lru.Cache
}

// NewLoader returns a Loader caching up to size trees; size <= 0 selects
// DefaultCacheSize.
func NewLoader(size int) (*Loader, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("store: loader cache: %w", err)
	}

	return &Loader{cache: c}, nil
}

// Load returns the tree for source, parsing it on a cache miss.
func (l *Loader) Load(source string) (*tree.Tree, error) {
	key := cacheKey(source)
	if v, ok := l.cache.Get(key); ok {
		return v.(*tree.Tree).Clone(), nil
	}

	t, err := Load(source)
	if err != nil {
		return nil, err
	}
	l.cache.Add(key, t.Clone())

	return t, nil
}

// Len returns the number of cached trees.
func (l *Loader) Len() int {
	return l.cache.Len()
}

// Purge drops every cached tree.
func (l *Loader) Purge() {
	l.cache.Purge()
}

func cacheKey(source string) string {
	info, err := os.Stat(source)
	if err != nil || !info.Mode().IsRegular() {
		return "inline:" + source
	}

	return "file:" + source + "@" + strconv.FormatInt(info.Size(), 10) +
		"@" + strconv.FormatInt(info.ModTime().UnixNano(), 10)
}
