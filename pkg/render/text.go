package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/treekit/pkg/tree"
)

// Styles for colored text output.
var (
	styleRoot   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleBranch = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	styleLeaf   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleGuide  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// emptyLabel names nodes without an identity in diagrams.
const emptyLabel = "(empty)"

// TextOptions configures the text diagram.
type TextOptions[T any] struct {
	// Label derives a node's display label. Defaults to the fmt.Sprint of
	// the identity, or "(empty)" for identity-less nodes.
	Label func(*tree.Node[T]) string
	// Color renders the diagram with lipgloss styles when true.
	Color bool
}

// Label returns the display label for n, falling back to the default.
func (o TextOptions[T]) label(n *tree.Node[T]) string {
	if o.Label != nil {
		return o.Label(n)
	}
	return DefaultLabel(n)
}

// DefaultLabel is the fallback node label: the identity's string form, or
// "(empty)" when the node carries none.
func DefaultLabel[T any](n *tree.Node[T]) string {
	id, ok := n.Identity()
	if !ok {
		return emptyLabel
	}
	return fmt.Sprint(id)
}

// Text renders the subtree rooted at root as a box-drawing diagram, one node
// per line, children in order:
//
//	root
//	├── a
//	│   └── aa
//	└── b
func Text[T any](root *tree.Node[T], opts TextOptions[T]) string {
	var b strings.Builder
	writeNode(&b, root, "", true, true, opts)
	return b.String()
}

func writeNode[T any](b *strings.Builder, n *tree.Node[T], prefix string, isRoot, isLast bool, opts TextOptions[T]) {
	label := opts.label(n)
	if opts.Color {
		switch {
		case isRoot:
			label = styleRoot.Render(label)
		case n.IsLeaf():
			label = styleLeaf.Render(label)
		default:
			label = styleBranch.Render(label)
		}
	}

	if isRoot {
		b.WriteString(label)
		b.WriteByte('\n')
	} else {
		guide := "├── "
		if isLast {
			guide = "└── "
		}
		if opts.Color {
			guide = styleGuide.Render(guide)
		}
		b.WriteString(prefix)
		b.WriteString(guide)
		b.WriteString(label)
		b.WriteByte('\n')
	}

	children := n.Children()
	for i, c := range children {
		childPrefix := prefix
		if !isRoot {
			bar := "│   "
			if isLast {
				bar = "    "
			}
			if opts.Color {
				bar = styleGuide.Render(bar)
			}
			childPrefix += bar
		}
		writeNode(b, c, childPrefix, false, i == len(children)-1, opts)
	}
}
