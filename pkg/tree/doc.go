// Package tree provides a generic, ordered, multi-way tree built from linked
// [Node] values and a [Tree] wrapper with search, bulk relational queries and
// subtree operations.
//
// # Overview
//
// A [Node] owns an optional identity payload, a back-reference to its parent
// and an ordered, mutable sequence of children. Child order is insertion
// order and is significant: preorder, postorder, inorder and level-order
// traversals all depend on it. The structure is kept acyclic by construction:
// attaching a node that already has a parent, or that is an ancestor of the
// attachment point, fails without mutating state.
//
// # Basic Usage
//
// Build a tree bottom-up through [Node.AddChild] and wrap it in a [Tree],
// or start from an identity with [NewTreeOf]:
//
//	root := tree.New("root")
//	left, right := tree.New("left"), tree.New("right")
//	root.AddChild(left)
//	root.AddChild(right)
//	t, _ := tree.NewTree(root)
//
//	for n := range t.Root().PreOrder() {
//		// root, left, right
//	}
//
// # Traversal
//
// Traversals are lazy, finite, restartable pull-based sequences
// ([iter.Seq]). Each call produces a fresh walk, and an optional stop
// predicate ends a walk before yielding the first node it matches. Five
// orders are supported: [PreOrder], [PostOrder], [LevelOrder], [Upwards] and
// the generalized [InOrder].
//
// # Identity vs. Node Equality
//
// Two nodes are the same node only when they are the same pointer. Identity
// values are payload: the package never compares them, so T carries no
// comparability constraint. Relationship predicates ([Node.IsSiblingOf],
// [Node.IsAncestorOf], [Node.IsDescendantOf]) are separate, explicitly named
// queries rather than overloaded equality.
//
// # References
//
// Tree-level APIs that take a "node" accept a [Ref]: a literal node ([At]),
// a list ([AtAll]) or a predicate ([Where]) resolved through the tree's
// search in a configurable traversal order. The zero Ref means the root.
// Resolution is fail-fast: a predicate matching nothing is an error, never a
// silent fallback.
//
// # Concurrency
//
// Trees have no internal synchronization. A Tree and its nodes are owned by
// one logical owner at a time; concurrent mutation, or traversal concurrent
// with mutation, has undefined results and must be serialized externally.
package tree
