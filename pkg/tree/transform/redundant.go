package transform

import "github.com/matzehuels/newick/pkg/tree"

// RemoveRedundantNodes collapses every node below root that has exactly one
// child, attaching the child to its grandparent. If preserveLengths is set,
// the collapsed node's length is added to the child's. It returns the number
// of nodes removed.
//
// A single-child root cannot be replaced, so it takes over its child's
// children instead, keeping its own name.
func RemoveRedundantNodes(root *tree.Node, preserveLengths bool) int {
	removed := 0
	for n := range root.Walk(tree.PostOrder) {
		for n != root && n.Parent() != nil && n.Parent().NumChildren() == 1 {
			father := n.Parent()
			if preserveLengths {
				addLength(n, father)
			}
			removed++

			if father == root || father.Parent() == nil {
				kids := n.TakeChildren()
				father.RemoveChild(n)
				for _, k := range kids {
					father.AddChild(k)
				}
				if preserveLengths {
					copyLength(father, n)
				}
				break
			}
			father.Parent().ReplaceChild(father, n)
		}
	}
	return removed
}

// addLength adds src's length to dst's. Two absent lengths stay absent.
func addLength(dst, src *tree.Node) {
	ls, okS := src.Length()
	if !okS {
		return
	}
	ld, _ := dst.Length()
	dst.SetLength(ld + ls)
}

func copyLength(dst, src *tree.Node) {
	if l, ok := src.Length(); ok {
		dst.SetLength(l)
	} else {
		dst.ClearLength()
	}
}
