package tree

import (
	"iter"
	"slices"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Order selects the traversal order of [Node.Walk].
type Order int

const (
	// PreOrder yields a node before its children, children in order.
	PreOrder Order = iota
	// PostOrder yields a node after all of its descendants.
	PostOrder
)

// String returns the order name.
func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	default:
		return "unknown"
	}
}

// Predicate selects nodes.
type Predicate func(*Node) bool

// Action mutates or inspects a node.
type Action func(*Node)

// Walk returns an iterator over the subtree rooted at n. Every node is
// yielded exactly once. See the package documentation for the mutation
// guarantees of each order.
func (n *Node) Walk(order Order) iter.Seq[*Node] {
	if order == PostOrder {
		return n.postorder
	}
	return n.preorder
}

func (n *Node) preorder(yield func(*Node) bool) {
	stack := arraystack.New()
	stack.Push(n)
	for !stack.Empty() {
		v, _ := stack.Pop()
		cur := v.(*Node)
		if !yield(cur) {
			return
		}
		for i := len(cur.children) - 1; i >= 0; i-- {
			stack.Push(cur.children[i])
		}
	}
}

// postFrame is a node on the post-order frontier together with the queue of
// its children that have not been visited yet.
type postFrame struct {
	node    *Node
	pending []*Node
}

func (n *Node) postorder(yield func(*Node) bool) {
	stack := arraystack.New()
	stack.Push(&postFrame{node: n, pending: slices.Clone(n.children)})
	for !stack.Empty() {
		v, _ := stack.Peek()
		top := v.(*postFrame)
		if len(top.pending) == 0 {
			stack.Pop()
			if !yield(top.node) {
				return
			}
			continue
		}
		next := top.pending[0]
		top.pending = top.pending[1:]
		stack.Push(&postFrame{node: next, pending: slices.Clone(next.children)})
	}
}

// Visit runs action on every node of the subtree rooted at n for which pred
// holds, in the given order. A nil pred matches every node.
func (n *Node) Visit(order Order, action Action, pred Predicate) {
	for node := range n.Walk(order) {
		if pred == nil || pred(node) {
			action(node)
		}
	}
}

// IsLeaf matches nodes without children.
func IsLeaf(n *Node) bool { return n.IsLeaf() }

// IsInternal matches nodes with at least one child.
func IsInternal(n *Node) bool { return !n.IsLeaf() }

// HasParent matches every node except a root.
func HasParent(n *Node) bool { return n.parent != nil }

// Not negates a predicate.
func Not(p Predicate) Predicate {
	return func(n *Node) bool { return !p(n) }
}

// And matches nodes for which all predicates hold.
func And(ps ...Predicate) Predicate {
	return func(n *Node) bool {
		for _, p := range ps {
			if !p(n) {
				return false
			}
		}
		return true
	}
}

// Or matches nodes for which at least one predicate holds.
func Or(ps ...Predicate) Predicate {
	return func(n *Node) bool {
		for _, p := range ps {
			if p(n) {
				return true
			}
		}
		return false
	}
}

// InSet matches the given nodes by identity.
func InSet(nodes ...*Node) Predicate {
	set := make(map[*Node]struct{}, len(nodes))
	for _, x := range nodes {
		set[x] = struct{}{}
	}
	return func(n *Node) bool {
		_, ok := set[n]
		return ok
	}
}

// NameIn matches nodes whose name is one of names. Unnamed nodes never match.
func NameIn(names ...string) Predicate {
	set := make(map[string]struct{}, len(names))
	for _, s := range names {
		set[s] = struct{}{}
	}
	return func(n *Node) bool {
		if n.Name == "" {
			return false
		}
		_, ok := set[n.Name]
		return ok
	}
}
