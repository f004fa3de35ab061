package transform_test

import (
	"fmt"

	"github.com/matzehuels/newick/pkg/newick"
	"github.com/matzehuels/newick/pkg/tree/transform"
)

func ExampleResolvePolytomies() {
	root, _ := newick.Parse("((A,B),(C,D),E)R;")
	transform.ResolvePolytomies(root)
	fmt.Println(newick.Format(root))
	// Output:
	// ((A,B),((C,D),E):0)R
}

func ExampleRemoveRedundantNodes() {
	root, _ := newick.Parse("(A:1,(B:2)C:0.5)D;")
	transform.RemoveRedundantNodes(root, true)
	fmt.Println(newick.Format(root))
	// Output:
	// (A:1,B:2.5)D
}

func ExamplePruneByNames() {
	root, _ := newick.Parse("((A,B)C,(D,E)F)R;")
	transform.PruneByNames(root, []string{"A", "D"}, true)
	fmt.Println(newick.Format(root))
	// Output:
	// ((A)C,(D)F)R
}
