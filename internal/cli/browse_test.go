package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/treekit/pkg/tree"
)

// browseFixture returns:
//
//	root
//	├── a
//	│   └── aa
//	└── b
func browseFixture(t *testing.T) *tree.Tree[string] {
	t.Helper()

	root := tree.New("root")
	a := tree.New("a")
	b := tree.New("b")
	aa := tree.New("aa")

	if err := root.AddChildren(a, b); err != nil {
		t.Fatalf("AddChildren: %v", err)
	}
	if err := a.AddChild(aa); err != nil {
		t.Fatalf("AddChild: %v", err)
	}

	tr, err := tree.NewTree(root)
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	return tr
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{}
}

func update(m browseModel, keys ...string) browseModel {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(browseModel)
	}
	return m
}

func TestBrowseModelInitialRows(t *testing.T) {
	m := newBrowseModel(browseFixture(t))

	// Root expanded: root, a, b visible; aa hidden behind collapsed a.
	if len(m.rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(m.rows))
	}
	ids := make([]string, len(m.rows))
	for i, row := range m.rows {
		ids[i], _ = row.node.Identity()
	}
	if ids[0] != "root" || ids[1] != "a" || ids[2] != "b" {
		t.Errorf("rows = %v, want [root a b]", ids)
	}
}

func TestBrowseModelExpandCollapse(t *testing.T) {
	m := newBrowseModel(browseFixture(t))

	m = update(m, "down", "right")
	if len(m.rows) != 4 {
		t.Fatalf("after expand len(rows) = %d, want 4", len(m.rows))
	}

	m = update(m, "left")
	if len(m.rows) != 3 {
		t.Fatalf("after collapse len(rows) = %d, want 3", len(m.rows))
	}
}

func TestBrowseModelCursorBounds(t *testing.T) {
	m := newBrowseModel(browseFixture(t))

	m = update(m, "up")
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 (clamped at top)", m.cursor)
	}

	m = update(m, "down", "down", "down", "down")
	if m.cursor != len(m.rows)-1 {
		t.Errorf("cursor = %d, want %d (clamped at bottom)", m.cursor, len(m.rows)-1)
	}
}

func TestBrowseModelCollapseJumpsToParent(t *testing.T) {
	m := newBrowseModel(browseFixture(t))

	// Move to leaf b (already collapsed) and press left: cursor jumps to root.
	m = update(m, "down", "down", "left")
	id, _ := m.rows[m.cursor].node.Identity()
	if id != "root" {
		t.Errorf("cursor node = %q, want root", id)
	}
}

func TestBrowseModelQuit(t *testing.T) {
	m := newBrowseModel(browseFixture(t))

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
}

func TestBrowseModelView(t *testing.T) {
	m := newBrowseModel(browseFixture(t))

	view := m.View()
	for _, want := range []string{"root", "a", "b", "4 nodes", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "aa") {
		t.Errorf("View() shows collapsed node aa:\n%s", view)
	}
}

func TestBrowseModelViewCapacityMarkers(t *testing.T) {
	tr := browseFixture(t)

	// a holds one child of two allowed, b is full at zero.
	a, err := tr.Find(func(n *tree.Node[string]) bool { id, _ := n.Identity(); return id == "a" })
	if err != nil {
		t.Fatalf("Find a: %v", err)
	}
	b, err := tr.Find(func(n *tree.Node[string]) bool { id, _ := n.Identity(); return id == "b" })
	if err != nil {
		t.Fatalf("Find b: %v", err)
	}
	if err := a.SetMaxChildren(2); err != nil {
		t.Fatalf("SetMaxChildren: %v", err)
	}
	if err := b.SetMaxChildren(0); err != nil {
		t.Fatalf("SetMaxChildren: %v", err)
	}

	view := newBrowseModel(tr).View()
	if !strings.Contains(view, "a *") {
		t.Errorf("View() missing room marker for a:\n%s", view)
	}
	if !strings.Contains(view, "b !") {
		t.Errorf("View() missing capacity marker for b:\n%s", view)
	}
}
