// Package tree provides the rooted, ordered tree model used by the newick
// parser, serializer and transformations.
//
// # Overview
//
// A [Node] is a vertex with an optional name, an optional branch length to
// its parent, an optional opaque comment and an ordered list of children.
// Every node except a root keeps a non-owning back-reference to its parent.
// Ownership runs strictly from parent to child: detaching a subtree from its
// parent makes it collectible once no other reference to it remains.
//
// A [Forest] is an ordered sequence of independent roots, as produced by
// parsing text that contains several ';'-terminated trees.
//
// # Invariants
//
// The mutation methods ([Node.AddChild], [Node.RemoveChild],
// [Node.ReplaceChild], [Node.Detach], [Node.TakeChildren]) keep the following
// invariants:
//
//  1. The structure is acyclic and connected.
//  2. A node with parent p appears exactly once in p's children.
//  3. Exactly one node of a connected tree has no parent: the root.
//  4. A leaf is a node with zero children; leaf-ness is derived, never stored.
//
// [Validate] checks them for trees that were assembled by other means.
//
// # Traversal
//
// [Node.Walk] returns an iterator in one of two orders:
//
//   - [PreOrder]: a node, then each child subtree in child order. This is
//     the default order. Children are read after the node has been yielded,
//     so a loop body may restructure the current node's children and the
//     walk follows the new structure.
//   - [PostOrder]: each node after all of its descendants. Every node keeps a
//     snapshot queue of its not-yet-visited children, so a loop body may
//     detach the yielded node, or move it elsewhere, without disturbing the walk.
//
// Both orders use explicit stacks; stack usage does not grow with tree depth.
//
// [Node.Visit] runs an [Action] on every node matching a [Predicate] and is
// the primitive beneath the clearing helpers and the transformations in the
// [transform] subpackage.
//
// # Concurrency
//
// Nodes are not safe for concurrent use. All operations mutate the shared
// structure in place; callers must serialize access to a tree externally.
//
// [transform]: github.com/matzehuels/newick/pkg/tree/transform
package tree
