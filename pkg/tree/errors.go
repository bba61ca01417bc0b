package tree

import "errors"

var (
	// ErrCapacityExceeded is returned by [Node.AddChild], [Node.AddChildren]
	// and [Node.Move] when attaching would push the child count past the
	// configured maximum. The node is left unmodified.
	ErrCapacityExceeded = errors.New("maximum number of children exceeded")

	// ErrNotFound is returned by [Node.RemoveChild] when the node is not a
	// direct child of the receiver.
	ErrNotFound = errors.New("node is not a child")

	// ErrAlreadyAttached is returned by [Node.AddChild] and [Node.AddChildren]
	// when the candidate child already has a parent. Reparenting requires an
	// explicit [Node.RemoveChild] first, or the atomic [Node.Move].
	ErrAlreadyAttached = errors.New("node already has a parent")

	// ErrCycle is returned when attaching a node to itself or to one of its
	// own descendants, which would make the structure cyclic.
	ErrCycle = errors.New("attachment would create a cycle")

	// ErrNoCommonAncestor is returned by [Node.LowestCommonAncestor],
	// [Node.PathTo] and [Node.DistanceTo] when the two nodes do not share an
	// ancestor, i.e. they belong to different trees.
	ErrNoCommonAncestor = errors.New("nodes do not share a common ancestor")

	// ErrNoMatch is returned by [Tree.Find] and by reference resolution when
	// a predicate matches no node in the tree.
	ErrNoMatch = errors.New("no node matches")

	// ErrNodeNotInTree is returned by [Tree.Subtree] and by reference
	// resolution when a literal node is not reachable from the tree's root.
	ErrNodeNotInTree = errors.New("node is not part of the tree")

	// ErrInvalidConfiguration is returned for invalid structural
	// configuration: a negative child capacity, a capacity below the current
	// child count, or a nil root.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrUnsupported is returned when an operation names an unknown traversal
	// order or aggregate. The error message includes the offending name.
	ErrUnsupported = errors.New("unsupported operation")
)
