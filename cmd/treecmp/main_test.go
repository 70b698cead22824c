package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phylotree/store"
)

const (
	t1 = "((((a,b),c),d),(e,(f,g)));"
	t2 = "((((a,b),c),e),(d,(f,g)));"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), args, &out)

	return out.String(), err
}

func TestRF(t *testing.T) {
	out, err := runCmd(t, "rf", t1, t2)
	require.NoError(t, err)
	assert.Equal(t, "4 10\n", out)

	out, err = runCmd(t, "rf", "-normalized", t1, t2)
	require.NoError(t, err)
	assert.Equal(t, "0.4\n", out)

	out, err = runCmd(t, "rf", "-rooted", t1, t2)
	require.NoError(t, err)
	assert.Equal(t, "2 8\n", out)
}

func TestConsensus(t *testing.T) {
	out, err := runCmd(t, "consensus", t1, t2)
	require.NoError(t, err)
	assert.Equal(t, "(d,e,(f,g),(c,(a,b)));\n", out)

	path := filepath.Join(t.TempDir(), "c.nwk")
	out, err = runCmd(t, "consensus", "-o", path, t1, t2)
	require.NoError(t, err)
	assert.Empty(t, out)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "(d,e,(f,g),(c,(a,b)));", string(raw))
}

func TestStats(t *testing.T) {
	out, err := runCmd(t, "stats", "((a:1,b:2):0.5,c:3);")
	require.NoError(t, err)
	assert.Equal(t, "leaves: 3\nheight: 2\nlength: 6.5\nsplits: 1\n", out)
}

func TestDatabaseCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "trees.db")

	_, err := runCmd(t, "-db", db, "put", "first", t1)
	require.NoError(t, err)
	_, err = runCmd(t, "-db", db, "put", "second", "(x:1,y:2);")
	require.NoError(t, err)

	out, err := runCmd(t, "-db", db, "list")
	require.NoError(t, err)
	assert.Equal(t, "first\t7\t4\nsecond\t2\t1\n", out)

	out, err = runCmd(t, "-db", db, "get", "second")
	require.NoError(t, err)
	assert.Equal(t, "(x:1,y:2);\n", out)

	out, err = runCmd(t, "-db", db, "rf", "db:first", t2)
	require.NoError(t, err)
	assert.Equal(t, "4 10\n", out)

	_, err = runCmd(t, "-db", db, "rm", "first")
	require.NoError(t, err)
	_, err = runCmd(t, "-db", db, "get", "first")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"bogus"},
		{"rf", t1},
		{"stats"},
		{"put", "only-name"},
		{"rm"},
	} {
		_, err := runCmd(t, args...)
		assert.ErrorIs(t, err, errUsage, "args %q", args)
	}
}
