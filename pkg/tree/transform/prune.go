package transform

import "github.com/matzehuels/newick/pkg/tree"

// Prune removes nodes from the tree rooted at root and returns how many
// nodes were detached.
//
// With inverse false, every node in targets is detached together with its
// subtree. With inverse true, every leaf that is not in targets is detached,
// including internal nodes that become leaves while pruning. The root is
// never removed, even if it matches.
func Prune(root *tree.Node, targets []*tree.Node, inverse bool) int {
	return prune(root, tree.InSet(targets...), inverse)
}

// PruneByNames is [Prune] with the targets selected by name.
func PruneByNames(root *tree.Node, names []string, inverse bool) int {
	return prune(root, tree.NameIn(names...), inverse)
}

func prune(root *tree.Node, target tree.Predicate, inverse bool) int {
	match := target
	if inverse {
		match = tree.And(tree.IsLeaf, tree.Not(target))
	}

	removed := 0
	root.Visit(tree.PostOrder, func(n *tree.Node) {
		n.Detach()
		removed++
	}, tree.And(tree.HasParent, match))
	return removed
}
