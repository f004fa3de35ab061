package transform

import "github.com/matzehuels/newick/pkg/tree"

func Normalize(root *tree.Node) *tree.Node {
	RemoveRedundantNodes(root, true)
	ResolvePolytomies(root)
	return root
}
