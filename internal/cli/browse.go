package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treekit/pkg/render"
	"github.com/matzehuels/treekit/pkg/tree"
)

// Browser styles
var (
	browseSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	browseNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	browseDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// newBrowseCmd creates the browse command for interactive tree exploration.
func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [file]",
		Short: "Explore a tree interactively",
		Long:  `Browse opens a tree document in an interactive terminal view. Use the arrow keys (or hjkl) to move, expand, and collapse nodes; q quits.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())

			t, err := loadTree(args[0], cfg)
			if err != nil {
				return err
			}

			_, err = tea.NewProgram(newBrowseModel(t)).Run()
			return err
		},
	}
}

// =============================================================================
// BrowseModel - Interactive tree exploration
// =============================================================================

// browseRow is one visible line of the tree view.
type browseRow struct {
	node  *tree.Node[string]
	depth int
}

// browseModel is the bubbletea model for tree exploration.
type browseModel struct {
	tree     *tree.Tree[string]
	expanded map[*tree.Node[string]]bool
	rows     []browseRow
	cursor   int
	height   int
	offset   int
}

// newBrowseModel creates a browse model with the root's children expanded.
func newBrowseModel(t *tree.Tree[string]) browseModel {
	m := browseModel{
		tree:     t,
		expanded: map[*tree.Node[string]]bool{t.Root(): true},
		height:   20,
	}
	m.rebuild()
	return m
}

// rebuild recomputes the visible rows from the expansion state.
func (m *browseModel) rebuild() {
	m.rows = m.rows[:0]
	m.appendRows(m.tree.Root(), 0)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
}

func (m *browseModel) appendRows(n *tree.Node[string], depth int) {
	m.rows = append(m.rows, browseRow{node: n, depth: depth})
	if !m.expanded[n] {
		return
	}
	for _, c := range n.Children() {
		m.appendRows(c, depth+1)
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height - 3 // room for header and footer
		if m.height < 1 {
			m.height = 1
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "right", "l", "enter":
			n := m.rows[m.cursor].node
			if n.HasChildren() && !m.expanded[n] {
				m.expanded[n] = true
				m.rebuild()
			}
		case "left", "h":
			n := m.rows[m.cursor].node
			if m.expanded[n] {
				delete(m.expanded, n)
				m.rebuild()
			} else if parent := n.Parent(); parent != nil {
				// Jump to the parent when the node is already collapsed.
				for i, row := range m.rows {
					if row.node == parent {
						m.cursor = i
						if m.cursor < m.offset {
							m.offset = m.cursor
						}
						break
					}
				}
			}
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("treekit · %d nodes", m.tree.Size())))
	b.WriteString("\n")

	end := min(m.offset+m.height, len(m.rows))
	for i := m.offset; i < end; i++ {
		row := m.rows[i]

		marker := "  "
		if row.node.HasChildren() {
			marker = "▸ "
			if m.expanded[row.node] {
				marker = "▾ "
			}
		}

		line := strings.Repeat("  ", row.depth) + marker + render.DefaultLabel(row.node)
		if max, ok := row.node.MaxChildren(); ok {
			if row.node.ChildCount() >= max {
				line += " " + StyleWarning.Render("!")
			} else {
				line += " " + StyleSuccess.Render("*")
			}
		}
		if row.node.HasChildren() && !m.expanded[row.node] {
			line += browseDimStyle.Render(fmt.Sprintf(" (%d)", row.node.Size()-1))
		}

		style := browseNormalStyle
		if i == m.cursor {
			style = browseSelectedStyle
			line = "› " + line
		} else {
			line = "  " + line
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString(browseDimStyle.Render(fmt.Sprintf("↑/↓ move · →/← expand/collapse · q quit · %s room, %s at capacity",
		StyleSuccess.Render("*"), StyleWarning.Render("!"))))
	b.WriteString("\n")
	return b.String()
}
