package newick_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phylotree/newick"
	"github.com/katalvlaran/phylotree/tree"
)

func TestParse_Structure(t *testing.T) {
	tr, err := newick.Parse("(A,B,(C,D)E)F;")
	require.NoError(t, err)

	root := tr.Root()
	assert.Equal(t, "F", root.Label)
	assert.Equal(t, 3, root.NumChildren())
	assert.Equal(t, []string{"A", "B", "C", "D"}, tr.LeafLabels())
	assert.Equal(t, "E", root.Child(2).Label)
	assert.Equal(t, 2, tr.Height())
}

func TestParse_Lengths(t *testing.T) {
	tr, err := newick.Parse("(A:0.1,B:0.2,(C:0.3,D:0.4):0.5);")
	require.NoError(t, err)

	root := tr.Root()
	assert.Equal(t, "", root.Label)
	assert.InDelta(t, 0.1, root.Child(0).Length, 1e-12)
	assert.InDelta(t, 0.5, root.Child(2).Length, 1e-12)
	assert.InDelta(t, 0.4, root.Child(2).Child(1).Length, 1e-12)
	assert.InDelta(t, 1.5, tr.TotalBranchLength(), 1e-12)
}

func TestParse_Whitespace(t *testing.T) {
	tr, err := newick.Parse(" ( a ,\tb : 2 ) r ;\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tr.LeafLabels())
	assert.Equal(t, "r", tr.Root().Label)
	assert.Equal(t, 2.0, tr.Root().Child(1).Length)
}

func TestParse_Degenerate(t *testing.T) {
	single, err := newick.Parse("a:3;")
	require.NoError(t, err)
	assert.Equal(t, "a", single.Root().Label)
	assert.True(t, single.Root().IsLeaf())
	assert.Equal(t, 1, single.Len())

	unnamed, err := newick.Parse("(,(,));")
	require.NoError(t, err)
	assert.Equal(t, 3, unnamed.Len())
	assert.False(t, unnamed.HasLeafNames())

	trailing, err := newick.Parse("(a,);")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", ""}, trailing.LeafLabels())
}

func TestParse_Errors(t *testing.T) {
	bad := map[string]string{
		"unbalanced open":      "(a,b;",
		"unbalanced close":     "(a,b));",
		"empty list":           "();",
		"nested empty list":    "(a,());",
		"empty length":         "(a:,b);",
		"non-numeric length":   "(a:x,b);",
		"negative length":      "(a:-1,b);",
		"infinite length":      "(a:Inf,b);",
		"double colon":         "(a:1:2,b);",
		"trailing content":     "(a,b);x",
		"missing terminator":   "(a,b)",
		"empty input":          "",
		"terminator only":      ";",
		"two roots":            "(a)(b);",
		"comma at top level":   "a,b;",
		"label then list":      "(a,b)c(d);",
		"leaf then list":       "(a(b,c));",
		"second tree in parse": "(a,b);(c,d);",
	}
	for name, in := range bad {
		t.Run(name, func(t *testing.T) {
			tr, err := newick.Parse(in)
			assert.Nil(t, tr)
			assert.ErrorIs(t, err, newick.ErrParse)
		})
	}
}

func TestParse_ErrorOffset(t *testing.T) {
	_, err := newick.Parse("(a,b));")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset 5")
}

// buildRich returns ((a:1,b:2.5)x:0.5,c:3)r with every field set.
func buildRich() *tree.Tree {
	root := tree.NewNode("r", 9)
	x := root.AddChild("x", 0.5)
	x.AddChild("a", 1)
	x.AddChild("b", 2.5)
	root.AddChild("c", 3)
	return tree.New(root)
}

func TestString_Formats(t *testing.T) {
	tr := buildRich()
	want := map[newick.Format]string{
		newick.LeafNames:        "((a,b),c);",
		newick.LeafNamesLengths: "((a:1,b:2.5):0.5,c:3);",
		newick.AllNames:         "((a,b)x,c)r;",
		newick.AllNamesLengths:  "((a:1,b:2.5)x:0.5,c:3)r;",
	}
	for f, s := range want {
		got, err := newick.String(tr, f)
		require.NoError(t, err, f.String())
		assert.Equal(t, s, got, f.String())
	}

	_, err := newick.String(tr, newick.Format(4))
	assert.ErrorIs(t, err, newick.ErrFormat)
	assert.False(t, newick.Format(-1).Valid())
}

func TestString_SingleNodeOmitsRootLength(t *testing.T) {
	tr := tree.New(tree.NewNode("solo", 4))
	got, err := newick.String(tr, newick.AllNamesLengths)
	require.NoError(t, err)
	assert.Equal(t, "solo;", got)
}

// TestRoundTrip writes with every format, parses back and checks that the
// re-serialized text is identical and that omitted fields came back empty.
func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"((a:1,b:2.5)x:0.5,c:3)r;",
		"((((a,b),c),d),(e,(f,g)));",
		"(,(,:0.25)y:1e-07);",
		"(a:0.1,b:0.2,(c:0.3,d:0.4,e:12)f:0.5)root;",
	}
	formats := []newick.Format{newick.LeafNames, newick.LeafNamesLengths, newick.AllNames, newick.AllNamesLengths}
	for _, in := range inputs {
		orig, err := newick.Parse(in)
		require.NoError(t, err, in)
		for _, f := range formats {
			s, err := newick.String(orig, f)
			require.NoError(t, err)
			back, err := newick.Parse(s)
			require.NoError(t, err, s)
			again, err := newick.String(back, f)
			require.NoError(t, err)
			assert.Equal(t, s, again, "%s with %s", in, f)
			assert.Equal(t, orig.LeafLabels(), back.LeafLabels())
			assert.Equal(t, orig.Height(), back.Height())

			for n := range back.LevelOrder() {
				if !f.Lengths() {
					assert.Zero(t, n.Length)
				}
				if !f.InternalNames() && !n.IsLeaf() {
					assert.Empty(t, n.Label)
				}
			}
		}
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newick.Write(&buf, buildRich(), newick.AllNames))
	assert.Equal(t, "((a,b)x,c)r;", buf.String())
	assert.ErrorIs(t, newick.Write(&buf, buildRich(), 7), newick.ErrFormat)
}

func TestReader_ReadAll(t *testing.T) {
	r := newick.NewReader(strings.NewReader("(A,B,(X,Y)C)ROOT;\n(A,B,C)ROOT;\n\n"))
	trees, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, trees, 2)
	assert.Equal(t, []string{"A", "B", "X", "Y"}, trees[0].LeafLabels())
	assert.Equal(t, "ROOT", trees[1].Root().Label)
}

func TestReader_Errors(t *testing.T) {
	r := newick.NewReader(strings.NewReader("(a,b);(c,d)"))
	trees, err := r.ReadAll()
	assert.Nil(t, trees)
	assert.ErrorIs(t, err, newick.ErrParse)

	empty := newick.NewReader(strings.NewReader("  \n"))
	trees, err = empty.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, trees)
}
