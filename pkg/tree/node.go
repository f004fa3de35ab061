package tree

import (
	"fmt"
	"slices"
)

// Node is a vertex of a rooted ordered tree.
//
// The zero value is a valid unnamed leaf without a length. Name and Comment
// are plain fields; an empty string means absent. Length, children and the
// parent back-reference are managed through methods so that the tree
// invariants hold.
type Node struct {
	Name    string // Label, empty if absent
	Comment string // Opaque comment text, empty if absent

	length    float64
	hasLength bool

	children []*Node
	parent   *Node // non-owning back-reference, nil for a root
}

// New creates a detached node with the given name and no length.
func New(name string) *Node {
	return &Node{Name: name}
}

// NewWithLength creates a detached node with the given name and branch length.
func NewWithLength(name string, length float64) *Node {
	return &Node{Name: name, length: length, hasLength: true}
}

// Length returns the branch length to the parent and whether it is set.
// An unset length means "not specified"; it is never defaulted to zero.
func (n *Node) Length() (float64, bool) { return n.length, n.hasLength }

// HasLength reports whether a branch length is set.
func (n *Node) HasLength() bool { return n.hasLength }

// SetLength sets the branch length.
func (n *Node) SetLength(length float64) {
	n.length = length
	n.hasLength = true
}

// ClearLength removes the branch length.
func (n *Node) ClearLength() {
	n.length = 0
	n.hasLength = false
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the ordered child list.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// NumChildren returns the number of children.
func (n *Node) NumChildren() int { return len(n.children) }

// Child returns the i-th child. It panics if i is out of range.
func (n *Node) Child(i int) *Node { return n.children[i] }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Root follows parent references up to the root of n's tree.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// AddChild appends c to n's children. If c already has a parent it is
// detached from it first.
//
// AddChild panics if c is n or one of n's ancestors, since the result would
// no longer be a tree.
func (n *Node) AddChild(c *Node) {
	n.mustNotCycle(c)
	c.Detach()
	c.parent = n
	n.children = append(n.children, c)
}

// RemoveChild detaches c from n and reports whether c was a child of n.
func (n *Node) RemoveChild(c *Node) bool {
	i := slices.Index(n.children, c)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	c.parent = nil
	return true
}

// ReplaceChild puts repl into old's position among n's children and
// detaches old. repl is detached from its current parent first, which may
// be old itself. It reports false, leaving the tree unchanged, if old is not
// a child of n.
func (n *Node) ReplaceChild(old, repl *Node) bool {
	if old == repl {
		return slices.Contains(n.children, old)
	}
	if !slices.Contains(n.children, old) {
		return false
	}
	n.mustNotCycle(repl)
	repl.Detach()
	i := slices.Index(n.children, old)
	n.children[i] = repl
	repl.parent = n
	old.parent = nil
	return true
}

// Detach removes n from its parent's children. It is a no-op for a root.
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// TakeChildren detaches and returns all children of n in order.
func (n *Node) TakeChildren() []*Node {
	kids := n.children
	n.children = nil
	for _, c := range kids {
		c.parent = nil
	}
	return kids
}

// String returns a short debugging form such as Node("A").
func (n *Node) String() string {
	return fmt.Sprintf("Node(%q)", n.Name)
}

func (n *Node) mustNotCycle(c *Node) {
	for a := n; a != nil; a = a.parent {
		if a == c {
			panic("tree: adding node as a descendant of itself")
		}
	}
}

// Forest is an ordered sequence of independent roots.
type Forest []*Node

// Count returns the total number of nodes in all trees of the forest.
func (f Forest) Count() int {
	total := 0
	for _, r := range f {
		total += r.Count()
	}
	return total
}
