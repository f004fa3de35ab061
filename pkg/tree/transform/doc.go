// Package transform provides structural transformations of trees.
//
// # Overview
//
// All transformations mutate the tree in place and return the number of
// nodes they removed or inserted. None of them fails: arguments that do not
// match anything in the tree (for example pruning a node from another tree)
// are no-ops.
//
// # Pruning
//
// [Prune] detaches the given nodes, or with inverse set, every leaf that is
// not among them. It runs over a post-order walk, so internal nodes that
// become leaves during an inverse prune are themselves removed when reached.
// The root is never removed. [PruneByNames] selects the nodes by name.
//
// # Polytomy Resolution
//
// [ResolvePolytomies] makes every node at most binary. A node with k > 2
// children keeps its first child and receives one synthetic, unnamed,
// zero-length node holding the other k-1 children in their original order:
//
//	Before: R -> (A, B, C, D)
//	After:  R -> (A, s1 -> (B, s2 -> (C, D)))
//
// The synthetic node is revisited by the same pre-order walk, which yields
// an unbalanced "broom" rather than a balanced split.
//
// The moved children keep their relative order. Moving them by repeatedly
// popping the last child would reverse it, so "((A,B),(C,D),E)R;" resolves
// to "((A,B),((C,D),E):0)R;" and not "((A,B),(E,(C,D)):0)R;".
//
// # Redundant Nodes
//
// [RemoveRedundantNodes] collapses chains of single-child nodes. The
// surviving child takes the collapsed node's place among the grandparent's
// children and, if lengths are preserved, the sum of both lengths. When the
// redundant node is the root, the root object is kept and takes over the
// child's children (and length).
//
// # Normalization
//
// [Normalize] removes redundant nodes and then resolves polytomies, giving
// a fully resolved binary tree with the minimum number of internal nodes.
package transform
