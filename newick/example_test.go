package newick_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/phylotree/newick"
)

func ExampleParse() {
	t, err := newick.Parse("((a:1,b:2)ab:0.5,c:3)root;")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(t.LeafLabels(), t.Height())

	for _, f := range []newick.Format{newick.LeafNames, newick.AllNamesLengths} {
		s, _ := newick.String(t, f)
		fmt.Println(s)
	}

	// Output:
	// [a b c] 2
	// ((a,b),c);
	// ((a:1,b:2)ab:0.5,c:3)root;
}

func ExampleReader() {
	r := newick.NewReader(strings.NewReader("(a,b);\n((c,d),e);\n"))
	trees, _ := r.ReadAll()
	for _, t := range trees {
		fmt.Println(t.Len())
	}

	// Output:
	// 2
	// 3
}
