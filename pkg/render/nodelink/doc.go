// Package nodelink renders phylogenetic trees as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// named nodes appear as boxes connected by arrows from parent to child. It is
// an alternative to the text renderer in [ascii] when a picture is preferred.
//
// # Usage
//
// Convert a tree to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(root, nodelink.Options{Lengths: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Lengths: label each edge with the child's branch length
//   - Detailed: add comments and lengths to node labels
//
// # DOT Format
//
// The [ToDOT] function emits one digraph per tree. Node identifiers are
// pre-order indexes ("n0" is the root), so the output is stable for a given
// tree regardless of naming. Unnamed internal nodes are drawn as points.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is required.
//
// [ascii]: github.com/matzehuels/newick/pkg/render/ascii
package nodelink
