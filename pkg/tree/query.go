package tree

import (
	"fmt"
	"strings"
)

// Aggregate folds a distance matrix into a single value.
type Aggregate int

const (
	// AggregateMin keeps the smallest pairwise distance.
	AggregateMin Aggregate = iota
	// AggregateMax keeps the largest pairwise distance.
	AggregateMax
	// AggregateMean averages all pairwise distances.
	AggregateMean
)

var aggregateNames = [...]string{"min", "max", "mean"}

// String returns the lowercase name of the aggregate.
func (a Aggregate) String() string {
	if a < 0 || int(a) >= len(aggregateNames) {
		return fmt.Sprintf("aggregate(%d)", int(a))
	}
	return aggregateNames[a]
}

// ParseAggregate converts a name to an Aggregate. "avg" is accepted as an
// alias for "mean". Returns ErrUnsupported naming the input otherwise.
func ParseAggregate(s string) (Aggregate, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "avg" {
		return AggregateMean, nil
	}
	for i, n := range aggregateNames {
		if n == name {
			return Aggregate(i), nil
		}
	}
	return 0, fmt.Errorf("%w: aggregate %q", ErrUnsupported, s)
}

// LCA returns the lowest common ancestor of every node named by the given
// references. The n-ary form reduces pairwise: lca(a, b, c) =
// lca(lca(a, b), c), which is well-defined because the binary LCA of two
// nodes in one tree is again a node of that tree. With a single reference
// naming a single node, that node is its own LCA.
//
// Returns ErrNoCommonAncestor when any two resolved nodes belong to
// different trees, and the resolution error when a reference fails.
func (t *Tree[T]) LCA(refs ...Ref[T]) (*Node[T], error) {
	if len(refs) == 0 {
		return nil, fmt.Errorf("%w: no references given", ErrInvalidConfiguration)
	}
	var nodes []*Node[T]
	for _, ref := range refs {
		resolved, err := t.Resolve(ref, t.defaultOrder)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, resolved...)
	}
	acc := nodes[0]
	for _, n := range nodes[1:] {
		next, err := acc.LowestCommonAncestor(n)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}

// Path resolves each side to a single node and returns the simple path
// between them through their lowest common ancestor.
func (t *Tree[T]) Path(a, b Ref[T]) ([]*Node[T], error) {
	from, to, err := t.resolvePair(a, b)
	if err != nil {
		return nil, err
	}
	return from.PathTo(to)
}

// Distance resolves each side to a single node and returns the edge count of
// the path between them.
func (t *Tree[T]) Distance(a, b Ref[T]) (int, error) {
	from, to, err := t.resolvePair(a, b)
	if err != nil {
		return 0, err
	}
	return from.DistanceTo(to)
}

// DistanceMatrix resolves both sides to node sets and returns the pairwise
// distance matrix m where m[i][j] is the distance from the i-th node of a to
// the j-th node of b. When both sides resolve to the same nodes in the same
// order, only the upper triangle (j >= i) is computed and the lower triangle
// is mirrored.
func (t *Tree[T]) DistanceMatrix(a, b Ref[T]) ([][]int, error) {
	as, err := t.Resolve(a, t.defaultOrder)
	if err != nil {
		return nil, err
	}
	bs, err := t.Resolve(b, t.defaultOrder)
	if err != nil {
		return nil, err
	}

	m := make([][]int, len(as))
	for i := range m {
		m[i] = make([]int, len(bs))
	}

	if sameNodes(as, bs) {
		for i := range as {
			for j := i; j < len(bs); j++ {
				d, err := as[i].DistanceTo(bs[j])
				if err != nil {
					return nil, err
				}
				m[i][j] = d
				m[j][i] = d
			}
		}
		return m, nil
	}

	for i := range as {
		for j := range bs {
			d, err := as[i].DistanceTo(bs[j])
			if err != nil {
				return nil, err
			}
			m[i][j] = d
		}
	}
	return m, nil
}

// AggregateDistance folds the pairwise distance matrix of the two references
// into a single value using the given aggregate.
func (t *Tree[T]) AggregateDistance(a, b Ref[T], agg Aggregate) (float64, error) {
	m, err := t.DistanceMatrix(a, b)
	if err != nil {
		return 0, err
	}
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, fmt.Errorf("%w: empty distance matrix", ErrInvalidConfiguration)
	}

	switch agg {
	case AggregateMin:
		best := m[0][0]
		for _, row := range m {
			for _, d := range row {
				if d < best {
					best = d
				}
			}
		}
		return float64(best), nil
	case AggregateMax:
		best := m[0][0]
		for _, row := range m {
			for _, d := range row {
				if d > best {
					best = d
				}
			}
		}
		return float64(best), nil
	case AggregateMean:
		sum, count := 0, 0
		for _, row := range m {
			for _, d := range row {
				sum += d
				count++
			}
		}
		return float64(sum) / float64(count), nil
	default:
		return 0, fmt.Errorf("%w: aggregate %v", ErrUnsupported, agg)
	}
}

// resolvePair resolves both references to single nodes.
func (t *Tree[T]) resolvePair(a, b Ref[T]) (*Node[T], *Node[T], error) {
	from, err := t.resolveOne(a, t.defaultOrder)
	if err != nil {
		return nil, nil, err
	}
	to, err := t.resolveOne(b, t.defaultOrder)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

// sameNodes reports whether the two slices hold identical nodes in the same
// order, enabling the symmetric-matrix shortcut.
func sameNodes[T any](as, bs []*Node[T]) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
