// Package render groups the tree visualizations.
//
// # Overview
//
// Two renderers are provided:
//
//   - [ascii]: box-drawing text art for terminals and logs
//   - [nodelink]: Graphviz DOT export and in-process SVG rendering
//
// Both take a *tree.Node and never modify it.
//
//	text := ascii.Render(root, ascii.Options{})
//	dot := nodelink.ToDOT(root, nodelink.Options{Lengths: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [ascii]: github.com/matzehuels/newick/pkg/render/ascii
// [nodelink]: github.com/matzehuels/newick/pkg/render/nodelink
package render
