/*
Package newick reads and writes trees in the bracketed Newick notation.

A node is either a `label[:length]` leaf token or a parenthesised,
comma-separated list of child expressions followed by an optional
`label[:length]`; the outermost expression ends with ';'. All whitespace is
removed before parsing, so labels cannot contain blanks. Comments and quoted
labels are not implemented.

	(A:0.1,B:0.2,(C:0.3,D:0.4)E:0.5)F;

Writing is controlled by a Format code:

	LeafNames         0  leaf names only
	LeafNamesLengths  1  leaf names and branch lengths
	AllNames          2  leaf and internal names
	AllNamesLengths   3  leaf and internal names and branch lengths

The root's own branch length is never written. Parsing the output of a given
format reproduces an isomorphic tree carrying exactly the fields that format
emits.
*/
package newick
