package tree

import (
	"fmt"
	"slices"
)

// unbounded marks a node without a configured child capacity.
const unbounded = -1

// Predicate selects nodes during searches and traversal stops.
type Predicate[T any] func(*Node[T]) bool

// Node is a vertex in a generic ordered multi-way tree. It carries an
// optional identity value, a back-reference to its parent, and an ordered
// sequence of children. Child order is insertion order and is significant for
// all traversals.
//
// Two nodes are the same node only if they are the same *Node pointer.
// Identity values are payload, never used for node comparison — use
// [Node.IsSiblingOf], [Node.IsAncestorOf] and friends for the relational
// predicates instead.
//
// Node is not safe for concurrent use without external synchronization.
// Traversing a node while another goroutine mutates the same tree has
// undefined results.
type Node[T any] struct {
	identity    T
	hasIdentity bool
	parent      *Node[T]
	children    []*Node[T]
	limit       int // maximum children, unbounded when negative
}

// New creates a detached node carrying the given identity.
func New[T any](identity T) *Node[T] {
	return &Node[T]{identity: identity, hasIdentity: true, limit: unbounded}
}

// NewEmpty creates a detached node without an identity. An empty node is
// distinguished from a node holding the zero value of T.
func NewEmpty[T any]() *Node[T] {
	return &Node[T]{limit: unbounded}
}

// Identity returns the node's identity and whether one is set.
func (n *Node[T]) Identity() (T, bool) { return n.identity, n.hasIdentity }

// SetIdentity assigns an identity to the node.
func (n *Node[T]) SetIdentity(identity T) {
	n.identity = identity
	n.hasIdentity = true
}

// ClearIdentity removes the node's identity, making it an empty node.
func (n *Node[T]) ClearIdentity() {
	var zero T
	n.identity = zero
	n.hasIdentity = false
}

// HasIdentity reports whether the node carries an identity value.
func (n *Node[T]) HasIdentity() bool { return n.hasIdentity }

// IsEmpty reports whether the node carries no identity value.
func (n *Node[T]) IsEmpty() bool { return !n.hasIdentity }

// Parent returns the node's parent, or nil for a root.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// HasParent reports whether the node is attached to a parent.
func (n *Node[T]) HasParent() bool { return n.parent != nil }

// IsRoot reports whether the node has no parent.
func (n *Node[T]) IsRoot() bool { return n.parent == nil }

// Children returns a copy of the ordered child sequence. Mutating the
// returned slice does not affect the node; the elements are the live child
// nodes.
func (n *Node[T]) Children() []*Node[T] { return slices.Clone(n.children) }

// Child returns the child at index i and true, or nil and false when the
// index is out of range.
func (n *Node[T]) Child(i int) (*Node[T], bool) {
	if i < 0 || i >= len(n.children) {
		return nil, false
	}
	return n.children[i], true
}

// ChildCount returns the number of direct children.
func (n *Node[T]) ChildCount() int { return len(n.children) }

// HasChildren reports whether the node has at least one child.
func (n *Node[T]) HasChildren() bool { return len(n.children) > 0 }

// IsLeaf reports whether the node has no children.
func (n *Node[T]) IsLeaf() bool { return len(n.children) == 0 }

// IsBranch reports whether the node has at least one child.
func (n *Node[T]) IsBranch() bool { return len(n.children) > 0 }

// IsInternal is an alias for [Node.IsBranch].
func (n *Node[T]) IsInternal() bool { return n.IsBranch() }

// MaxChildren returns the configured child capacity and whether one is set.
func (n *Node[T]) MaxChildren() (int, bool) {
	if n.limit < 0 {
		return 0, false
	}
	return n.limit, true
}

// SetMaxChildren bounds the number of children the node may hold.
// Returns ErrInvalidConfiguration when max is negative or below the current
// child count; the node is left unmodified in that case.
func (n *Node[T]) SetMaxChildren(max int) error {
	if max < 0 {
		return fmt.Errorf("%w: negative max children %d", ErrInvalidConfiguration, max)
	}
	if max < len(n.children) {
		return fmt.Errorf("%w: max children %d below current count %d",
			ErrInvalidConfiguration, max, len(n.children))
	}
	n.limit = max
	return nil
}

// ClearMaxChildren removes the child capacity bound.
func (n *Node[T]) ClearMaxChildren() { n.limit = unbounded }

// canAttach validates that child may become a child of n without violating
// structural invariants. It performs no mutation.
func (n *Node[T]) canAttach(child *Node[T], incoming int) error {
	if child == nil {
		return fmt.Errorf("%w: nil child", ErrInvalidConfiguration)
	}
	if n.limit >= 0 && len(n.children)+incoming > n.limit {
		return fmt.Errorf("%w: limit %d", ErrCapacityExceeded, n.limit)
	}
	if child.parent != nil {
		return ErrAlreadyAttached
	}
	// Attaching self or any ancestor of n would close a cycle.
	for a := n; a != nil; a = a.parent {
		if a == child {
			return ErrCycle
		}
	}
	return nil
}

// AddChild appends child to the node's ordered children and sets its parent
// reference, atomically. It fails without mutating state when the capacity
// bound is reached (ErrCapacityExceeded), when child already has a parent
// (ErrAlreadyAttached), or when child is the node itself or one of its
// ancestors (ErrCycle).
func (n *Node[T]) AddChild(child *Node[T]) error {
	if err := n.canAttach(child, 1); err != nil {
		return err
	}
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// AddChildren appends all given nodes in order. The capacity check runs
// against the combined post-insert count and every candidate is validated
// before any mutation, so the operation is all-or-nothing. Passing the same
// node twice in one call is rejected.
func (n *Node[T]) AddChildren(children ...*Node[T]) error {
	if n.limit >= 0 && len(n.children)+len(children) > n.limit {
		return fmt.Errorf("%w: limit %d", ErrCapacityExceeded, n.limit)
	}
	for i, c := range children {
		if err := n.canAttach(c, len(children)); err != nil {
			return err
		}
		if slices.Index(children[:i], c) >= 0 {
			return fmt.Errorf("%w: duplicate child in batch", ErrAlreadyAttached)
		}
	}
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return nil
}

// RemoveChild detaches child from the node: its parent reference is cleared
// and it is removed from the ordered sequence, preserving the relative order
// of the remaining children. Returns ErrNotFound when child is not a direct
// child.
func (n *Node[T]) RemoveChild(child *Node[T]) error {
	i := slices.Index(n.children, child)
	if i < 0 {
		return ErrNotFound
	}
	child.parent = nil
	n.children = slices.Delete(n.children, i, i+1)
	return nil
}

// ClearChildren detaches every child, clearing each child's parent reference,
// then empties the sequence.
func (n *Node[T]) ClearChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

// Prune is an alias for [Node.ClearChildren].
func (n *Node[T]) Prune() { n.ClearChildren() }

// Clear detaches every child and removes the node's identity.
func (n *Node[T]) Clear() {
	n.ClearChildren()
	n.ClearIdentity()
}

// Move atomically reparents child under n: the destination is validated
// first (capacity, cycles), then the child is detached from its current
// parent and appended here. On failure nothing changes.
func (n *Node[T]) Move(child *Node[T]) error {
	if child == nil {
		return fmt.Errorf("%w: nil child", ErrInvalidConfiguration)
	}
	if child.parent == n {
		return nil
	}
	if n.limit >= 0 && len(n.children) >= n.limit {
		return fmt.Errorf("%w: limit %d", ErrCapacityExceeded, n.limit)
	}
	for a := n; a != nil; a = a.parent {
		if a == child {
			return ErrCycle
		}
	}
	if p := child.parent; p != nil {
		if err := p.RemoveChild(child); err != nil {
			return err
		}
	}
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// Clone returns a deep copy of the subtree rooted at the node. The copy is
// detached: its root has no parent regardless of the receiver's.
func (n *Node[T]) Clone() *Node[T] {
	c := &Node[T]{identity: n.identity, hasIdentity: n.hasIdentity, limit: n.limit}
	for _, child := range n.children {
		cc := child.Clone()
		cc.parent = c
		c.children = append(c.children, cc)
	}
	return c
}

// Ancestors returns the node's ancestors ordered from parent to root.
// Empty for a root.
func (n *Node[T]) Ancestors() []*Node[T] {
	var out []*Node[T]
	for a := n.parent; a != nil; a = a.parent {
		out = append(out, a)
	}
	return out
}

// Descendants returns every node below the receiver in preorder, excluding
// the receiver itself.
func (n *Node[T]) Descendants() []*Node[T] {
	var out []*Node[T]
	for d := range n.PreOrder() {
		if d != n {
			out = append(out, d)
		}
	}
	return out
}

// Siblings returns the other children of the node's parent, preserving
// order. Empty for a root.
func (n *Node[T]) Siblings() []*Node[T] {
	if n.parent == nil {
		return nil
	}
	out := make([]*Node[T], 0, len(n.parent.children)-1)
	for _, c := range n.parent.children {
		if c != n {
			out = append(out, c)
		}
	}
	return out
}

// Leaves returns the leaves of the subtree rooted at the node, in
// depth-first order. A leaf node returns itself.
func (n *Node[T]) Leaves() []*Node[T] {
	var out []*Node[T]
	for d := range n.PreOrder() {
		if d.IsLeaf() {
			out = append(out, d)
		}
	}
	return out
}

// Depth returns the number of edges between the node and its root.
// A root has depth 0.
func (n *Node[T]) Depth() int {
	d := 0
	for a := n.parent; a != nil; a = a.parent {
		d++
	}
	return d
}

// Height returns the number of edges on the longest downward path from the
// node to a leaf. A leaf has height 0.
func (n *Node[T]) Height() int {
	h := 0
	for _, c := range n.children {
		if ch := c.Height() + 1; ch > h {
			h = ch
		}
	}
	return h
}

// Size returns the number of nodes in the subtree rooted at the node,
// including the node itself.
func (n *Node[T]) Size() int {
	s := 1
	for _, c := range n.children {
		s += c.Size()
	}
	return s
}

// IsAncestorOf reports whether the node appears on other's upward chain.
// A node is not its own ancestor.
func (n *Node[T]) IsAncestorOf(other *Node[T]) bool {
	if other == nil {
		return false
	}
	for a := other.parent; a != nil; a = a.parent {
		if a == n {
			return true
		}
	}
	return false
}

// IsDescendantOf reports whether other appears on the node's upward chain.
func (n *Node[T]) IsDescendantOf(other *Node[T]) bool {
	if other == nil {
		return false
	}
	return other.IsAncestorOf(n)
}

// IsSiblingOf reports whether both nodes share the same parent reference.
// Two distinct roots (both parentless) count as siblings; a node is not a
// sibling of itself.
func (n *Node[T]) IsSiblingOf(other *Node[T]) bool {
	if other == nil || other == n {
		return false
	}
	return n.parent == other.parent
}

// LowestCommonAncestor returns the deepest node that is an ancestor of, or
// equal to, both the receiver and other. It builds the receiver's
// ancestors-including-self set and returns the first node on other's upward
// chain (including other) found in it. Returns ErrNoCommonAncestor when the
// nodes belong to different trees.
//
// The receiver itself is returned when other lives in its subtree, and
// n.LowestCommonAncestor(n) == n.
func (n *Node[T]) LowestCommonAncestor(other *Node[T]) (*Node[T], error) {
	if other == nil {
		return nil, fmt.Errorf("%w: nil node", ErrInvalidConfiguration)
	}
	seen := make(map[*Node[T]]struct{})
	for a := n; a != nil; a = a.parent {
		seen[a] = struct{}{}
	}
	for a := other; a != nil; a = a.parent {
		if _, ok := seen[a]; ok {
			return a, nil
		}
	}
	return nil, ErrNoCommonAncestor
}

// PathTo returns the unique simple path from the node to other through their
// lowest common ancestor: the upward chain from the receiver up to (but
// excluding) the LCA, the LCA itself, then the reversed upward chain from
// other. Returns ErrNoCommonAncestor when no path exists.
func (n *Node[T]) PathTo(other *Node[T]) ([]*Node[T], error) {
	lca, err := n.LowestCommonAncestor(other)
	if err != nil {
		return nil, err
	}
	var path []*Node[T]
	for a := n; a != lca; a = a.parent {
		path = append(path, a)
	}
	path = append(path, lca)
	var down []*Node[T]
	for a := other; a != lca; a = a.parent {
		down = append(down, a)
	}
	slices.Reverse(down)
	return append(path, down...), nil
}

// DistanceTo returns the number of edges on the path between the two nodes.
// The distance from a node to itself is 0.
func (n *Node[T]) DistanceTo(other *Node[T]) (int, error) {
	path, err := n.PathTo(other)
	if err != nil {
		return 0, err
	}
	return len(path) - 1, nil
}
