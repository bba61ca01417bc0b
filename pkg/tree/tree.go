package tree

import (
	"fmt"
	"iter"
)

// Tree roots a [Node] and offers root-relative traversal, search, bulk
// relational queries, subtree extraction and mutation forwarding. A Tree
// always has a non-nil root: a tree "without identity" is a tree whose root
// is an empty node, never a nil root.
//
// Tree carries one piece of mutable configuration, the default traversal
// order used when a search does not name one. It has no other internal state.
//
// Like Node, Tree is owned by one logical owner at a time; concurrent
// mutation must be serialized externally.
type Tree[T any] struct {
	root         *Node[T]
	defaultOrder Order
}

// TreeOption configures a Tree during construction.
type TreeOption[T any] func(*Tree[T]) error

// WithMaxChildren bounds the root's child count, validated against the
// root's existing children.
func WithMaxChildren[T any](max int) TreeOption[T] {
	return func(t *Tree[T]) error {
		return t.root.SetMaxChildren(max)
	}
}

// WithDefaultOrder sets the traversal order used when a query omits one.
// The default is [PreOrder].
func WithDefaultOrder[T any](order Order) TreeOption[T] {
	return func(t *Tree[T]) error {
		t.defaultOrder = order
		return nil
	}
}

// NewTree adopts root as the tree's root. Returns ErrInvalidConfiguration
// for a nil root.
func NewTree[T any](root *Node[T], opts ...TreeOption[T]) (*Tree[T], error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil root", ErrInvalidConfiguration)
	}
	t := &Tree[T]{root: root, defaultOrder: PreOrder}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// NewTreeOf wraps a fresh root node carrying the given identity.
func NewTreeOf[T any](identity T) *Tree[T] {
	return &Tree[T]{root: New(identity), defaultOrder: PreOrder}
}

// Root returns the tree's root node. Never nil.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// DefaultOrder returns the traversal order used when a query omits one.
func (t *Tree[T]) DefaultOrder() Order { return t.defaultOrder }

// SetDefaultOrder changes the traversal order used when a query omits one.
func (t *Tree[T]) SetDefaultOrder(order Order) { t.defaultOrder = order }

// Size returns the number of nodes in the tree.
func (t *Tree[T]) Size() int { return t.root.Size() }

// Height returns the number of edges on the longest root-to-leaf path.
func (t *Tree[T]) Height() int { return t.root.Height() }

// Leaves returns the tree's leaves in depth-first order.
func (t *Tree[T]) Leaves() []*Node[T] { return t.root.Leaves() }

// Traverse walks the tree in the given order starting at from. A nil from
// starts at the root.
func (t *Tree[T]) Traverse(from *Node[T], order Order) iter.Seq[*Node[T]] {
	return t.TraverseUntil(from, order, nil)
}

// TraverseUntil is [Tree.Traverse] with a stop predicate; the traversal ends
// before yielding the first node for which stop returns true.
func (t *Tree[T]) TraverseUntil(from *Node[T], order Order, stop Predicate[T]) iter.Seq[*Node[T]] {
	if from == nil {
		from = t.root
	}
	return from.TraverseUntil(order, stop)
}

// findConfig collects the optional knobs of Find and FindAll.
type findConfig struct {
	order    Order
	orderSet bool
	limit    int // < 0 means unbounded
	offset   int
}

// FindOption adjusts a search.
type FindOption func(*findConfig)

// WithOrder runs the search in the given traversal order instead of the
// tree's default.
func WithOrder(order Order) FindOption {
	return func(c *findConfig) {
		c.order = order
		c.orderSet = true
	}
}

// WithLimit caps the number of matches FindAll returns.
func WithLimit(limit int) FindOption {
	return func(c *findConfig) { c.limit = limit }
}

// WithOffset skips the first offset matches.
func WithOffset(offset int) FindOption {
	return func(c *findConfig) { c.offset = offset }
}

func (t *Tree[T]) searchConfig(opts []FindOption) findConfig {
	c := findConfig{order: t.defaultOrder, limit: -1}
	for _, opt := range opts {
		opt(&c)
	}
	if !c.orderSet {
		c.order = t.defaultOrder
	}
	return c
}

// Find returns the first node, in the configured traversal order starting at
// the root, for which pred holds. Returns ErrNoMatch when nothing matches.
func (t *Tree[T]) Find(pred Predicate[T], opts ...FindOption) (*Node[T], error) {
	c := t.searchConfig(opts)
	for n := range t.root.Traverse(c.order) {
		if pred(n) {
			return n, nil
		}
	}
	return nil, ErrNoMatch
}

// FindAll returns the matching nodes in traversal order, skipping the first
// offset matches and capping the result at limit matches when configured.
func (t *Tree[T]) FindAll(pred Predicate[T], opts ...FindOption) []*Node[T] {
	c := t.searchConfig(opts)
	var out []*Node[T]
	skipped := 0
	for n := range t.root.Traverse(c.order) {
		if !pred(n) {
			continue
		}
		if skipped < c.offset {
			skipped++
			continue
		}
		if c.limit >= 0 && len(out) >= c.limit {
			break
		}
		out = append(out, n)
	}
	return out
}

// ContainsNode reports whether n is reachable upward to the tree's root.
func (t *Tree[T]) ContainsNode(n *Node[T]) bool {
	for a := n; a != nil; a = a.parent {
		if a == t.root {
			return true
		}
	}
	return false
}

// ContainsSubtree reports whether other's root appears as a node of this
// tree. The test is reference identity over a level-order walk, not a deep
// structural comparison.
func (t *Tree[T]) ContainsSubtree(other *Tree[T]) bool {
	if other == nil {
		return false
	}
	for n := range t.root.LevelOrder() {
		if n == other.root {
			return true
		}
	}
	return false
}

// Equal reports mutual subtree containment: both trees share the same root
// node. Value equality of contents is deliberately not part of the relation.
func (t *Tree[T]) Equal(other *Tree[T]) bool {
	return t.ContainsSubtree(other) && other.ContainsSubtree(t)
}

// IsSubtreeOf reports whether this tree's root is a node of other.
func (t *Tree[T]) IsSubtreeOf(other *Tree[T]) bool {
	return other != nil && other.ContainsSubtree(t)
}

// IsSupertreeOf reports whether other's root is a node of this tree.
func (t *Tree[T]) IsSupertreeOf(other *Tree[T]) bool {
	return t.ContainsSubtree(other)
}

// Subtree resolves ref to a single node of this tree and returns a new Tree
// wrapping it. The subtree shares storage with the receiver — it is a view,
// not a copy, and its root keeps its parent link into the enclosing tree.
// Returns ErrNodeNotInTree when the node is not reachable from the root.
func (t *Tree[T]) Subtree(ref Ref[T]) (*Tree[T], error) {
	n, err := t.resolveOne(ref, t.defaultOrder)
	if err != nil {
		return nil, err
	}
	return &Tree[T]{root: n, defaultOrder: t.defaultOrder}, nil
}

// AddBranch resolves source (root when zero) and attaches child to it via
// [Node.AddChild]. Resolution failures are returned as-is: a predicate that
// matches nothing fails with ErrNoMatch rather than defaulting to the root.
func (t *Tree[T]) AddBranch(child *Node[T], source Ref[T]) error {
	parent, err := t.resolveOne(source, t.defaultOrder)
	if err != nil {
		return err
	}
	return parent.AddChild(child)
}

// AddBranches attaches all children to the resolved source, all-or-nothing.
func (t *Tree[T]) AddBranches(children []*Node[T], source Ref[T]) error {
	parent, err := t.resolveOne(source, t.defaultOrder)
	if err != nil {
		return err
	}
	return parent.AddChildren(children...)
}

// RemoveBranch resolves child to a single node and detaches it from its
// parent. When source is the zero Ref the child's own parent is used;
// detaching a root fails with ErrNotFound. A non-zero source must resolve to
// the child's actual parent.
func (t *Tree[T]) RemoveBranch(child Ref[T], source Ref[T]) error {
	n, err := t.resolveOne(child, t.defaultOrder)
	if err != nil {
		return err
	}
	if source.isZero() {
		if n.parent == nil {
			return ErrNotFound
		}
		return n.parent.RemoveChild(n)
	}
	parent, err := t.resolveOne(source, t.defaultOrder)
	if err != nil {
		return err
	}
	return parent.RemoveChild(n)
}
