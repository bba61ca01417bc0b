// Package pkg provides the core libraries for Treekit.
//
// # Overview
//
// Treekit builds, queries, and renders ordered multi-way trees. The pkg
// directory is organized into four main areas:
//
//  1. [tree] - The tree data structure (nodes, traversal, ancestry queries)
//  2. [treedoc] - JSON/BSON serialization of trees
//  3. [render] - Text and Graphviz diagram output
//  4. [store] - Named tree persistence (file, memory, Redis, MongoDB)
//
// # Architecture
//
// The typical data flow through Treekit:
//
//	JSON document
//	     ↓
//	[treedoc] package (decode + rebuild)
//	     ↓
//	[tree] package (traversal, search, ancestry queries)
//	     ↓
//	[render] package (text diagram, DOT/SVG/PNG)
//
// # Quick Start
//
// Build a tree, query it, and render a diagram:
//
//	import (
//	    "github.com/matzehuels/treekit/pkg/render"
//	    "github.com/matzehuels/treekit/pkg/tree"
//	)
//
//	// 1. Build the tree
//	root := tree.New("root")
//	a, b := tree.New("a"), tree.New("b")
//	_ = root.AddChildren(a, b)
//	t, _ := tree.NewTree(root)
//
//	// 2. Query it
//	anc, _ := t.LCA(tree.At(a), tree.At(b))
//	d, _ := t.Distance(tree.At(a), tree.At(b))
//
//	// 3. Render it
//	fmt.Print(render.Text(t.Root(), render.TextOptions[string]{}))
//
// # Main Packages
//
// [tree] - Generic ordered trees. Nodes carry an optional identity, keep
// children in insertion order, and enforce optional capacity limits.
// Traversals are restartable iterators (pre-order, post-order, level-order,
// upwards, in-order); queries cover search, lowest common ancestors, paths,
// and distances.
//
// [treedoc] - The JSON document form of a tree, with file import/export.
// The same types carry bson tags for MongoDB storage.
//
// [render] - Box-drawing text diagrams (lipgloss) and Graphviz node-link
// diagrams (DOT, SVG, PNG).
//
// [store] - Named tree records with backend implementations for files,
// memory, Redis, and MongoDB.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...       # All tests
//	go test ./pkg/tree/...  # Specific package
//	go test -run Example    # Examples only
//
// [tree]: https://pkg.go.dev/github.com/matzehuels/treekit/pkg/tree
// [treedoc]: https://pkg.go.dev/github.com/matzehuels/treekit/pkg/treedoc
// [render]: https://pkg.go.dev/github.com/matzehuels/treekit/pkg/render
// [store]: https://pkg.go.dev/github.com/matzehuels/treekit/pkg/store
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/treekit/pkg/buildinfo
package pkg
