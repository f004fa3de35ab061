package ascii

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matzehuels/newick/pkg/tree"
)

const (
	glyphHorizontal  = '─'
	glyphVertical    = '│'
	glyphCornerTop   = '┌'
	glyphCornerBelow = '└'

	labelMargin = 4 // columns added to the longest visible label
)

// Options configures text rendering.
type Options struct {
	// Strict uses plain characters instead of box-drawing glyphs.
	Strict bool
	// HideInternal omits the labels of internal nodes.
	HideInternal bool
}

var (
	plainGlyphs = strings.NewReplacer(
		"─", "-",
		"│", "|",
		"┌", "/",
		"└", "\\",
		"├", "|",
		"┤", "|",
		"┼", "+",
	)

	// junctions are applied in order; later rules see earlier results.
	junctions = [][2]string{
		{"─│", "─┤"},
		{"│─", "├"},
		{"┤─", "┼"},
	}
)

// block is a rendered subtree and the row its own branch is drawn on.
type block struct {
	lines  [][]rune
	anchor int
}

// Render draws the subtree rooted at root.
func Render(root *tree.Node, opts Options) string {
	width := labelWidth(root, opts)
	pad := []rune(strings.Repeat(" ", width-1))

	blocks := make(map[*tree.Node]*block)
	for n := range root.Walk(tree.PostOrder) {
		if n.IsLeaf() {
			blocks[n] = &block{lines: [][]rune{branchLabel(glyphHorizontal, n.Name)}}
			continue
		}
		blocks[n] = layout(n, blocks, pad, opts)
	}

	var out []string
	for _, l := range blocks[root].lines {
		line := string(l)
		if connectorOnly(line) {
			continue
		}
		out = append(out, finish(line, opts.Strict))
	}
	return strings.Join(out, "\n")
}

// labelWidth returns the column width used for every label.
func labelWidth(root *tree.Node, opts Options) int {
	longest := 0
	for n := range root.Walk(tree.PreOrder) {
		if n.Name == "" || (opts.HideInternal && !n.IsLeaf()) {
			continue
		}
		longest = max(longest, utf8.RuneCountInString(n.Name))
	}
	return longest + labelMargin
}

// layout stacks the children's blocks of n and consumes them.
func layout(n *tree.Node, blocks map[*tree.Node]*block, pad []rune, opts Options) *block {
	k := n.NumChildren()
	var rows [][]rune
	anchors := make([]int, 0, k)
	for i := 0; i < k; i++ {
		c := n.Child(i)
		cb := blocks[c]
		delete(blocks, c)

		cb.lines[cb.anchor][0] = branchGlyph(i, k)
		anchors = append(anchors, cb.anchor+len(rows))
		rows = append(rows, cb.lines...)
		rows = append(rows, nil)
	}
	rows = rows[:len(rows)-1]

	lo, hi := anchors[0], anchors[len(anchors)-1]
	mid := (lo + hi) / 2
	for r := range rows {
		prefix := slices.Clone(pad)
		if r > lo && r < hi {
			prefix = append(prefix, glyphVertical)
		}
		if r == mid {
			last := prefix[len(prefix)-1]
			for i := range prefix {
				prefix[i] = glyphHorizontal
			}
			prefix[len(prefix)-1] = last
		}
		rows[r] = append(prefix, rows[r]...)
	}

	if !opts.HideInternal {
		stem := rows[mid]
		label := branchLabel(stem[0], n.Name)
		if len(stem) > len(label) {
			label = append(label, stem[len(label):]...)
		}
		rows[mid] = label
	}
	return &block{lines: rows, anchor: mid}
}

// branchLabel returns the glyph followed by a horizontal stroke and name.
func branchLabel(glyph rune, name string) []rune {
	return append([]rune{glyph, glyphHorizontal}, []rune(name)...)
}

// branchGlyph picks the glyph joining child i of k to its parent's connector.
func branchGlyph(i, k int) rune {
	switch {
	case k == 1:
		return glyphHorizontal
	case i == 0:
		return glyphCornerTop
	case i == k-1:
		return glyphCornerBelow
	default:
		return glyphHorizontal
	}
}

// connectorOnly reports whether line holds nothing but blanks and vertical bars.
func connectorOnly(line string) bool {
	hasSpace, hasBar := false, false
	for _, r := range line {
		switch r {
		case ' ':
			hasSpace = true
		case glyphVertical:
			hasBar = true
		default:
			return false
		}
	}
	return hasSpace && hasBar
}

// finish tightens connectors, merges junction glyphs and optionally
// substitutes plain characters.
func finish(line string, strict bool) string {
	line = tighten(line)
	for _, j := range junctions {
		line = strings.ReplaceAll(line, j[0], j[1])
	}
	if strict {
		line = plainGlyphs.Replace(line)
	}
	return line
}

// tighten drops one blank from every run of blanks that sits between a
// vertical bar and a corner or another bar.
func tighten(line string) string {
	s := []rune(line)
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); i++ {
		out = append(out, s[i])
		if s[i] != glyphVertical {
			continue
		}
		j := i + 1
		for j < len(s) && unicode.IsSpace(s[j]) {
			j++
		}
		if j > i+1 && j < len(s) && (s[j] == glyphCornerTop || s[j] == glyphCornerBelow || s[j] == glyphVertical) {
			out = append(out, s[i+2:j]...)
			i = j - 1
		}
	}
	return string(out)
}
