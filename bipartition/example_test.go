package bipartition_test

import (
	"fmt"

	"github.com/katalvlaran/phylotree/bipartition"
	"github.com/katalvlaran/phylotree/newick"
)

// ExampleStrictConsensus collapses the disagreement about d and e into a
// polytomy at the root.
func ExampleStrictConsensus() {
	t1, _ := newick.Parse("((((a,b),c),d),(e,(f,g)));")
	t2, _ := newick.Parse("((((a,b),c),e),(d,(f,g)));")

	c, err := bipartition.StrictConsensus(t1, t2)
	if err != nil {
		fmt.Println(err)
		return
	}
	s, _ := newick.String(c, newick.LeafNames)
	fmt.Println(s)

	// Output:
	// (d,e,(f,g),(c,(a,b)));
}

func ExampleRobinsonFoulds() {
	t1, _ := newick.Parse("((a,b),c,(d,e));")
	t2, _ := newick.Parse("((a,b),e,(c,d));")

	score, maxScore := bipartition.RobinsonFoulds(t1, t2, false)
	fmt.Println(score, maxScore, bipartition.Normalized(score, maxScore))

	// Output:
	// 2 4 0.5
}
