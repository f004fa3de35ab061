package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/newick/pkg/newick"
	"github.com/matzehuels/newick/pkg/tree"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Lengths labels every edge with the branch length of its child node.
	// Edges into nodes without a length stay unlabeled.
	Lengths bool

	// Detailed includes comments and branch lengths in node labels.
	// When false, only the node name is shown.
	Detailed bool
}

// ToDOT converts a tree to Graphviz DOT format for node-link visualization.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Nodes are identified by their pre-order index. Unnamed internal nodes are
// rendered as points so that only labeled taxa take up space.
func ToDOT(root *tree.Node, opts Options) string {
	ids := make(map[*tree.Node]string)
	for n := range root.Walk(tree.PreOrder) {
		ids[n] = "n" + strconv.Itoa(len(ids))
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.05\"];\n")
	buf.WriteString("  edge [arrowsize=0.6];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	for n := range root.Walk(tree.PreOrder) {
		fmt.Fprintf(&buf, "  %s [%s];\n", ids[n], strings.Join(fmtAttrs(n, fmtLabel(n, opts.Detailed)), ", "))
	}

	buf.WriteString("\n")
	for n := range root.Walk(tree.PreOrder) {
		for _, c := range n.Children() {
			fmt.Fprintf(&buf, "  %s -> %s", ids[n], ids[c])
			if l, ok := c.Length(); ok && opts.Lengths {
				fmt.Fprintf(&buf, " [label=%q]", newick.FormatLength(l))
			}
			buf.WriteString(";\n")
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *tree.Node, detailed bool) string {
	if !detailed {
		return n.Name
	}

	parts := []string{n.Name}
	if n.Comment != "" {
		parts = append(parts, "["+n.Comment+"]")
	}
	if l, ok := n.Length(); ok {
		parts = append(parts, "length: "+newick.FormatLength(l))
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(n *tree.Node, label string) []string {
	if n.Name == "" && !n.IsLeaf() {
		return []string{`label=""`, "shape=point", "width=0.06"}
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if !n.IsLeaf() {
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
