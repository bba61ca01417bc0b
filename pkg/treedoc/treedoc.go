package treedoc

import (
	"fmt"

	"github.com/matzehuels/treekit/pkg/tree"
)

// Document is the canonical serialization format for trees: a recursive
// record carrying an optional identity, the ordered child records and an
// optional child capacity. It is used for files, API payloads and storage.
//
// The format is human-readable and round-trip faithful: building a tree from
// a document and converting it back produces an identical document.
type Document[T any] struct {
	Identity    *T            `json:"identity,omitempty" bson:"identity,omitempty"`
	Children    []Document[T] `json:"children,omitempty" bson:"children,omitempty"`
	MaxChildren *int          `json:"max_children,omitempty" bson:"max_children,omitempty"`
}

// FromNode converts the subtree rooted at n to its document form.
func FromNode[T any](n *tree.Node[T]) Document[T] {
	var d Document[T]
	if id, ok := n.Identity(); ok {
		d.Identity = &id
	}
	if limit, ok := n.MaxChildren(); ok {
		d.MaxChildren = &limit
	}
	for _, c := range n.Children() {
		d.Children = append(d.Children, FromNode(c))
	}
	return d
}

// FromTree converts a whole tree to its document form.
func FromTree[T any](t *tree.Tree[T]) Document[T] {
	return FromNode(t.Root())
}

// Clone returns a deep copy of the document: identity and capacity pointers
// and every child slice are duplicated, so mutating one document's structure
// never affects the other. Identity values themselves are copied by
// assignment.
func (d Document[T]) Clone() Document[T] {
	var cp Document[T]
	if d.Identity != nil {
		id := *d.Identity
		cp.Identity = &id
	}
	if d.MaxChildren != nil {
		limit := *d.MaxChildren
		cp.MaxChildren = &limit
	}
	if d.Children != nil {
		cp.Children = make([]Document[T], len(d.Children))
		for i, c := range d.Children {
			cp.Children[i] = c.Clone()
		}
	}
	return cp
}

// Build rebuilds the linked node structure described by the document,
// returning its root. Parent references are set top-down as children are
// attached, so every structural invariant of [tree.Node] holds for the
// result. A document whose max_children is below its child count fails with
// tree.ErrCapacityExceeded.
func (d Document[T]) Build() (*tree.Node[T], error) {
	return d.build(nil)
}

// BuildUnder is [Document.Build] with the resulting root attached to an
// already-constructed parent node. Only the top-level document may name a
// parent this way; nested records always attach to their enclosing record.
func (d Document[T]) BuildUnder(parent *tree.Node[T]) (*tree.Node[T], error) {
	if parent == nil {
		return nil, fmt.Errorf("%w: nil parent", tree.ErrInvalidConfiguration)
	}
	return d.build(parent)
}

func (d Document[T]) build(parent *tree.Node[T]) (*tree.Node[T], error) {
	var n *tree.Node[T]
	if d.Identity != nil {
		n = tree.New(*d.Identity)
	} else {
		n = tree.NewEmpty[T]()
	}
	// Capacity applies before children attach so over-full documents fail.
	if d.MaxChildren != nil {
		if err := n.SetMaxChildren(*d.MaxChildren); err != nil {
			return nil, err
		}
	}
	if parent != nil {
		if err := parent.AddChild(n); err != nil {
			return nil, err
		}
	}
	for i, c := range d.Children {
		if _, err := c.build(n); err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
	}
	return n, nil
}

// NewTree builds the document and wraps the result in a [tree.Tree].
func (d Document[T]) NewTree(opts ...tree.TreeOption[T]) (*tree.Tree[T], error) {
	root, err := d.Build()
	if err != nil {
		return nil, err
	}
	return tree.NewTree(root, opts...)
}
