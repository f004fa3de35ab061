package tree

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	errs "github.com/matzehuels/newick/pkg/errors"
)

// Validate checks that root is a root and that the structure below it is a
// proper tree: every child points back at the node listing it, and no node
// is reachable twice (which also rules out cycles). It returns an error with
// code INVALID_TREE describing the first violation found.
func Validate(root *Node) error {
	if root == nil {
		return errs.New(errs.ErrCodeInvalidTree, "nil root")
	}
	if root.parent != nil {
		return errs.New(errs.ErrCodeInvalidTree, "root %s has a parent", root)
	}
	seen := map[*Node]bool{root: true}
	stack := arraystack.New()
	stack.Push(root)
	for !stack.Empty() {
		v, _ := stack.Pop()
		n := v.(*Node)
		for _, c := range n.children {
			if c == nil {
				return errs.New(errs.ErrCodeInvalidTree, "nil child under %s", n)
			}
			if c.parent != n {
				return errs.New(errs.ErrCodeInvalidTree, "child %s of %s has a different parent", c, n)
			}
			if seen[c] {
				return errs.New(errs.ErrCodeInvalidTree, "node %s is reachable more than once", c)
			}
			seen[c] = true
			stack.Push(c)
		}
	}
	return nil
}
