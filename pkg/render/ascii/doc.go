// Package ascii draws trees as multi-line text using box-drawing glyphs.
//
// # Layout
//
// Every node is laid out from its children's already rendered blocks: the
// blocks are stacked with one separator row between siblings, a vertical
// connector joins the first and last child's anchor rows, and the node's own
// branch and label sit on the anchor row halfway between them. Labels are
// padded to a single column width computed from the longest visible label
// in the tree plus a fixed margin.
//
//	        ┌─A
//	    ┌─C─┤
//	    │   └─B
//	──J─┤       ┌─D
//	    │   ┌─F─┤
//	    │   │   └─E
//	    └─I─┤
//	        ├─G
//	        └─H
//
// # Options
//
// [Options.Strict] replaces the box-drawing glyphs with plain characters
// ('-', '|', '/', '\', '+'). [Options.HideInternal] omits the labels of
// internal nodes; leaf labels are always shown.
//
// The layout walks the tree with [tree.PostOrder] and keeps only the blocks
// of nodes whose parent has not been laid out yet, so deep trees do not
// grow the call stack.
//
// [tree.PostOrder]: github.com/matzehuels/newick/pkg/tree.PostOrder
package ascii
