// Package phylotree is a toolkit for rooted, multifurcating phylogenetic
// trees: building and editing them, reading and writing Newick notation,
// and comparing trees through their bipartitions.
//
// Everything lives in subpackages:
//
//	tree/          Node and Tree primitives, traversals, LCA search, polytomy resolution, unrooting
//	newick/        Newick parser, writer and multi-tree Reader (formats 0–3)
//	bipartition/   split extraction, tree reconstruction, strict consensus, Robinson–Foulds distance
//	store/         Newick files, a cached Loader and a SQLite-backed tree store
//	cmd/treecmp    command-line front end for the comparisons above
//
// Quick ASCII example:
//
//	        root
//	       /    \
//	     ab      c
//	    /  \
//	   a    b
//
//	is written ((a,b)ab,c)root; and carries the split {a,b}|{c}.
//
//	go get github.com/katalvlaran/phylotree
package phylotree
