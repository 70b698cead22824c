package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phylotree/store"
)

func TestLoader_CachesAndClones(t *testing.T) {
	l, err := store.NewLoader(2)
	require.NoError(t, err)

	first, err := l.Load("((a,b),c);")
	require.NoError(t, err)
	assert.Equal(t, 1, l.Len())

	// mutating a returned tree must not leak into the cache
	require.NoError(t, first.Root().Child(0).Detach())

	second, err := l.Load("((a,b),c);")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, second.LeafLabels())
	assert.NotSame(t, first.Root(), second.Root())
	assert.Equal(t, 1, l.Len())
}

func TestLoader_Eviction(t *testing.T) {
	l, err := store.NewLoader(2)
	require.NoError(t, err)
	for _, s := range []string{"(a,b);", "(c,d);", "(e,f);"} {
		_, err := l.Load(s)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, l.Len())

	l.Purge()
	assert.Zero(t, l.Len())
}

func TestLoader_ErrorsAreNotCached(t *testing.T) {
	l, err := store.NewLoader(0)
	require.NoError(t, err)
	_, err = l.Load("(a,b;")
	require.Error(t, err)
	assert.Zero(t, l.Len())
}

func TestLoader_FileChangesInvalidate(t *testing.T) {
	l, err := store.NewLoader(4)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "t.nwk")
	require.NoError(t, os.WriteFile(path, []byte("(a,b);\n"), 0o644))
	tr, err := l.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, tr.Len())

	require.NoError(t, os.WriteFile(path, []byte("((a,b),c);\n"), 0o644))
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))

	tr, err = l.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, 2, l.Len())
}
