package tree

import "fmt"

// refKind discriminates the Ref variants.
type refKind int

const (
	refRoot refKind = iota // zero value, resolves to the tree root
	refNode
	refNodes
	refWhere
)

// Ref names one or more nodes of a tree for query and mutation APIs. It is a
// tagged variant: a literal node, an explicit list of nodes, or a predicate
// resolved through the tree's search. The zero Ref resolves to the root.
//
// Resolution is explicit and fail-fast: a predicate that matches nothing
// resolves with ErrNoMatch, and a literal node outside the tree with
// ErrNodeNotInTree — queries never silently fall back to the root when a
// reference was supplied.
type Ref[T any] struct {
	kind  refKind
	node  *Node[T]
	nodes []*Node[T]
	pred  Predicate[T]
}

// At references a single concrete node.
func At[T any](n *Node[T]) Ref[T] { return Ref[T]{kind: refNode, node: n} }

// AtAll references an explicit list of nodes.
func AtAll[T any](nodes ...*Node[T]) Ref[T] { return Ref[T]{kind: refNodes, nodes: nodes} }

// Where references the nodes matching pred, resolved in the tree's default
// traversal order (or the order passed at the call site).
func Where[T any](pred Predicate[T]) Ref[T] { return Ref[T]{kind: refWhere, pred: pred} }

// Resolve returns every node the reference names, in a deterministic order:
// literal references keep their given order, predicate references follow the
// traversal order.
func (t *Tree[T]) Resolve(ref Ref[T], order Order) ([]*Node[T], error) {
	switch ref.kind {
	case refRoot:
		return []*Node[T]{t.root}, nil
	case refNode:
		if ref.node == nil {
			return nil, fmt.Errorf("%w: nil node reference", ErrInvalidConfiguration)
		}
		if !t.ContainsNode(ref.node) {
			return nil, ErrNodeNotInTree
		}
		return []*Node[T]{ref.node}, nil
	case refNodes:
		if len(ref.nodes) == 0 {
			return nil, fmt.Errorf("%w: empty node list reference", ErrInvalidConfiguration)
		}
		for _, n := range ref.nodes {
			if n == nil {
				return nil, fmt.Errorf("%w: nil node reference", ErrInvalidConfiguration)
			}
			if !t.ContainsNode(n) {
				return nil, ErrNodeNotInTree
			}
		}
		return ref.nodes, nil
	case refWhere:
		matches := t.FindAll(ref.pred, WithOrder(order))
		if len(matches) == 0 {
			return nil, ErrNoMatch
		}
		return matches, nil
	default:
		return nil, fmt.Errorf("%w: unknown reference kind %d", ErrUnsupported, ref.kind)
	}
}

// resolveOne resolves a reference that must name exactly one node. Predicate
// references resolve to their first match in traversal order; explicit lists
// must have length one.
func (t *Tree[T]) resolveOne(ref Ref[T], order Order) (*Node[T], error) {
	if ref.kind == refWhere {
		return t.Find(ref.pred, WithOrder(order))
	}
	nodes, err := t.Resolve(ref, order)
	if err != nil {
		return nil, err
	}
	if len(nodes) != 1 {
		return nil, fmt.Errorf("%w: reference names %d nodes, want exactly one",
			ErrInvalidConfiguration, len(nodes))
	}
	return nodes[0], nil
}

// isZero reports whether the reference is the zero Ref (the root default).
func (r Ref[T]) isZero() bool { return r.kind == refRoot }
