package tree

// Leaves returns the leaves of the subtree rooted at n in pre-order.
func (n *Node) Leaves() []*Node {
	var out []*Node
	for x := range n.Walk(PreOrder) {
		if x.IsLeaf() {
			out = append(out, x)
		}
	}
	return out
}

// LeafNames returns the names of the leaves in pre-order. Unnamed leaves
// contribute an empty string.
func (n *Node) LeafNames() []string {
	leaves := n.Leaves()
	names := make([]string, len(leaves))
	for i, l := range leaves {
		names[i] = l.Name
	}
	return names
}

// Find returns the first node in pre-order with the given name, or nil.
func (n *Node) Find(name string) *Node {
	for x := range n.Walk(PreOrder) {
		if x.Name == name {
			return x
		}
	}
	return nil
}

// IsBinary reports whether every node of the subtree has zero or two children.
func (n *Node) IsBinary() bool {
	for x := range n.Walk(PreOrder) {
		if k := len(x.children); k != 0 && k != 2 {
			return false
		}
	}
	return true
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	c := 0
	for range n.Walk(PreOrder) {
		c++
	}
	return c
}

// Depth returns the number of edges on the longest path from n down to a leaf.
func (n *Node) Depth() int {
	depth := make(map[*Node]int)
	for x := range n.Walk(PostOrder) {
		d := 0
		for _, c := range x.children {
			d = max(d, depth[c]+1)
			delete(depth, c)
		}
		depth[x] = d
	}
	return depth[n]
}

// ClearNames unsets the name of every node in the subtree.
func (n *Node) ClearNames() { n.Visit(PreOrder, clearName, nil) }

// ClearInternalNames unsets the name of every non-leaf node in the subtree.
func (n *Node) ClearInternalNames() { n.Visit(PreOrder, clearName, IsInternal) }

// ClearLeafNames unsets the name of every leaf in the subtree.
func (n *Node) ClearLeafNames() { n.Visit(PreOrder, clearName, IsLeaf) }

// ClearLengths unsets the branch length of every node in the subtree.
func (n *Node) ClearLengths() { n.Visit(PreOrder, (*Node).ClearLength, nil) }

// ClearComments unsets the comment of every node in the subtree.
func (n *Node) ClearComments() { n.Visit(PreOrder, func(x *Node) { x.Comment = "" }, nil) }

func clearName(n *Node) { n.Name = "" }
