// Package render turns trees into human-readable output.
//
// # Overview
//
// This package renders a [tree.Node] subtree in two styles:
//
//   - Box-drawing text diagrams via [Text], optionally colored with lipgloss
//   - Graphviz node-link diagrams via [ToDOT], rendered to SVG or PNG
//
// # Text Diagrams
//
// [Text] prints one node per line with box-drawing guides, children in
// order. Labels default to the identity's string form ("(empty)" for
// identity-less nodes) and can be customized per call:
//
//	fmt.Print(render.Text(t.Root(), render.TextOptions[string]{Color: true}))
//
// # Node-Link Diagrams
//
// [ToDOT] emits Graphviz DOT with synthetic pre-order node IDs, so
// identities need not be unique. [RenderSVG] and [RenderPNG] rasterize the
// DOT string with the embedded Graphviz engine:
//
//	dot := render.ToDOT(t.Root(), render.DOTOptions[string]{Detailed: true})
//	svg, err := render.RenderSVG(dot)
//
// [tree.Node]: github.com/matzehuels/treekit/pkg/tree
package render
