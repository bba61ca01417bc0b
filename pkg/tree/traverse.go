package tree

import (
	"fmt"
	"iter"
	"strings"
)

// Order selects the order in which a traversal visits nodes.
type Order int

const (
	// PreOrder visits a node before its children.
	PreOrder Order = iota
	// PostOrder visits a node after its children.
	PostOrder
	// LevelOrder visits nodes breadth-first, level by level.
	LevelOrder
	// Upwards visits the node, then each ancestor up to the root.
	Upwards
	// InOrder visits the first child's subtree, the node, then the remaining
	// children's subtrees. For binary trees this is the classic inorder walk.
	InOrder
)

var orderNames = [...]string{"preorder", "postorder", "levelorder", "upwards", "inorder"}

// String returns the lowercase name of the order ("preorder", ...).
func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return fmt.Sprintf("order(%d)", int(o))
	}
	return orderNames[o]
}

// ParseOrder converts a name to an Order. Matching is case-insensitive.
// Returns ErrUnsupported naming the input for unknown orders.
func ParseOrder(s string) (Order, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range orderNames {
		if n == name {
			return Order(i), nil
		}
	}
	return 0, fmt.Errorf("%w: traversal order %q", ErrUnsupported, s)
}

// Traverse returns a lazy sequence over the subtree rooted at the node (or
// the upward chain for [Upwards]) in the given order. The sequence is finite
// and restartable: each call produces a fresh walk.
//
// Unknown orders yield an empty sequence; use [ParseOrder] when the order
// comes from user input.
func (n *Node[T]) Traverse(order Order) iter.Seq[*Node[T]] {
	return n.TraverseUntil(order, nil)
}

// TraverseUntil is [Node.Traverse] with an optional stop predicate. When stop
// returns true for a node, the traversal ends at that point without yielding
// that node.
func (n *Node[T]) TraverseUntil(order Order, stop Predicate[T]) iter.Seq[*Node[T]] {
	switch order {
	case PreOrder:
		return func(yield func(*Node[T]) bool) { n.preorder(yield, stop) }
	case PostOrder:
		return func(yield func(*Node[T]) bool) { n.postorder(yield, stop) }
	case LevelOrder:
		return func(yield func(*Node[T]) bool) { n.levelorder(yield, stop) }
	case Upwards:
		return func(yield func(*Node[T]) bool) { n.upwards(yield, stop) }
	case InOrder:
		return func(yield func(*Node[T]) bool) { n.inorder(yield, stop) }
	default:
		return func(yield func(*Node[T]) bool) {}
	}
}

// PreOrder yields the node, then each child's subtree in order.
func (n *Node[T]) PreOrder() iter.Seq[*Node[T]] { return n.Traverse(PreOrder) }

// PostOrder yields each child's subtree in order, then the node.
func (n *Node[T]) PostOrder() iter.Seq[*Node[T]] { return n.Traverse(PostOrder) }

// LevelOrder yields the subtree breadth-first via a FIFO queue seeded with
// the node.
func (n *Node[T]) LevelOrder() iter.Seq[*Node[T]] { return n.Traverse(LevelOrder) }

// UpwardsChain yields the node, its parent, and so on until a parentless
// node has been yielded.
func (n *Node[T]) UpwardsChain() iter.Seq[*Node[T]] { return n.Traverse(Upwards) }

// InOrderSeq yields the generalized inorder walk of the subtree.
func (n *Node[T]) InOrderSeq() iter.Seq[*Node[T]] { return n.Traverse(InOrder) }

// preorder reports false when the walk was cut short, either by the stop
// predicate or by the consumer.
func (n *Node[T]) preorder(yield func(*Node[T]) bool, stop Predicate[T]) bool {
	if stop != nil && stop(n) {
		return false
	}
	if !yield(n) {
		return false
	}
	for _, c := range n.children {
		if !c.preorder(yield, stop) {
			return false
		}
	}
	return true
}

func (n *Node[T]) postorder(yield func(*Node[T]) bool, stop Predicate[T]) bool {
	if stop != nil && stop(n) {
		return false
	}
	for _, c := range n.children {
		if !c.postorder(yield, stop) {
			return false
		}
	}
	return yield(n)
}

func (n *Node[T]) levelorder(yield func(*Node[T]) bool, stop Predicate[T]) bool {
	queue := []*Node[T]{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if stop != nil && stop(cur) {
			return false
		}
		if !yield(cur) {
			return false
		}
		queue = append(queue, cur.children...)
	}
	return true
}

func (n *Node[T]) upwards(yield func(*Node[T]) bool, stop Predicate[T]) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if stop != nil && stop(cur) {
			return false
		}
		if !yield(cur) {
			return false
		}
	}
	return true
}

func (n *Node[T]) inorder(yield func(*Node[T]) bool, stop Predicate[T]) bool {
	if stop != nil && stop(n) {
		return false
	}
	if len(n.children) > 0 {
		if !n.children[0].inorder(yield, stop) {
			return false
		}
	}
	if !yield(n) {
		return false
	}
	if len(n.children) > 1 {
		for _, c := range n.children[1:] {
			if !c.inorder(yield, stop) {
				return false
			}
		}
	}
	return true
}
