package transform

import "github.com/matzehuels/newick/pkg/tree"

// ResolvePolytomies inserts zero-length synthetic nodes until no node in the
// tree rooted at root has more than two children. It returns the number of
// synthetic nodes inserted.
func ResolvePolytomies(root *tree.Node) int {
	inserted := 0
	root.Visit(tree.PreOrder, func(n *tree.Node) {
		rest := n.Children()[1:]
		synthetic := tree.NewWithLength("", 0)
		for _, c := range rest {
			synthetic.AddChild(c)
		}
		n.AddChild(synthetic)
		inserted++
	}, isPolytomy)
	return inserted
}

func isPolytomy(n *tree.Node) bool { return n.NumChildren() > 2 }
