package newick

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/matzehuels/newick/pkg/tree"
)

// Format renders the subtree rooted at n without a trailing ';'.
func Format(n *tree.Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

// FormatForest renders every tree of f, joined by ";\n", with a final ';'.
func FormatForest(f tree.Forest) string {
	var b strings.Builder
	for i, root := range f {
		if i > 0 {
			b.WriteString(";\n")
		}
		writeNode(&b, root)
	}
	b.WriteByte(';')
	return b.String()
}

// FormatLength renders a branch length in its shortest decimal form.
func FormatLength(l float64) string {
	return strconv.FormatFloat(l, 'f', -1, 64)
}

type writeFrame struct {
	node *tree.Node
	next int
}

func writeNode(b *strings.Builder, root *tree.Node) {
	stack := arraystack.New()
	stack.Push(&writeFrame{node: root})
	for !stack.Empty() {
		v, _ := stack.Peek()
		top := v.(*writeFrame)
		n := top.node
		k := n.NumChildren()
		if top.next < k {
			if top.next == 0 {
				b.WriteByte('(')
			} else {
				b.WriteByte(',')
			}
			child := n.Child(top.next)
			top.next++
			stack.Push(&writeFrame{node: child})
			continue
		}
		if k > 0 {
			b.WriteByte(')')
		}
		writeLabel(b, n)
		stack.Pop()
	}
}

func writeLabel(b *strings.Builder, n *tree.Node) {
	b.WriteString(n.Name)
	if n.Comment != "" {
		b.WriteByte('[')
		b.WriteString(n.Comment)
		b.WriteByte(']')
	}
	if l, ok := n.Length(); ok {
		b.WriteByte(':')
		b.WriteString(FormatLength(l))
	}
}
