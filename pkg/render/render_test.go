package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/treekit/pkg/tree"
)

// buildSample returns:
//
//	root
//	├── a
//	│   ├── aa
//	│   └── ab
//	└── b
func buildSample(t *testing.T) *tree.Node[string] {
	t.Helper()

	root := tree.New("root")
	a := tree.New("a")
	b := tree.New("b")
	aa := tree.New("aa")
	ab := tree.New("ab")

	for parent, children := range map[*tree.Node[string]][]*tree.Node[string]{
		root: {a, b},
		a:    {aa, ab},
	} {
		if err := parent.AddChildren(children...); err != nil {
			t.Fatalf("AddChildren: %v", err)
		}
	}
	return root
}

func TestText(t *testing.T) {
	root := buildSample(t)

	got := Text(root, TextOptions[string]{})
	want := strings.Join([]string{
		"root",
		"├── a",
		"│   ├── aa",
		"│   └── ab",
		"└── b",
		"",
	}, "\n")

	if got != want {
		t.Errorf("Text() =\n%s\nwant\n%s", got, want)
	}
}

func TestTextSingleNode(t *testing.T) {
	got := Text(tree.New("solo"), TextOptions[string]{})
	if got != "solo\n" {
		t.Errorf("Text() = %q, want %q", got, "solo\n")
	}
}

func TestTextCustomLabel(t *testing.T) {
	root := buildSample(t)

	got := Text(root, TextOptions[string]{
		Label: func(n *tree.Node[string]) string {
			id, _ := n.Identity()
			return strings.ToUpper(id)
		},
	})

	if !strings.Contains(got, "ROOT") || !strings.Contains(got, "AA") {
		t.Errorf("Text() with custom label missing uppercase labels:\n%s", got)
	}
}

func TestDefaultLabelEmpty(t *testing.T) {
	n := tree.NewEmpty[string]()
	if got := DefaultLabel(n); got != "(empty)" {
		t.Errorf("DefaultLabel() = %q, want %q", got, "(empty)")
	}
}

func TestToDOT(t *testing.T) {
	root := buildSample(t)

	dot := ToDOT(root, DOTOptions[string]{})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Errorf("ToDOT() missing digraph header:\n%s", dot)
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Errorf("ToDOT() missing closing brace:\n%s", dot)
	}

	// Five nodes with synthetic pre-order IDs.
	for _, id := range []string{"n0", "n1", "n2", "n3", "n4"} {
		if !strings.Contains(dot, "  "+id+" [") {
			t.Errorf("ToDOT() missing node %s:\n%s", id, dot)
		}
	}

	// Pre-order: root=n0, a=n1, aa=n2, ab=n3, b=n4.
	for _, edge := range []string{"n0 -> n1", "n1 -> n2", "n1 -> n3", "n0 -> n4"} {
		if !strings.Contains(dot, edge) {
			t.Errorf("ToDOT() missing edge %s:\n%s", edge, dot)
		}
	}

	if !strings.Contains(dot, `label="root"`) {
		t.Errorf("ToDOT() missing root label:\n%s", dot)
	}
}

func TestToDOTLeafStyle(t *testing.T) {
	root := buildSample(t)

	dot := ToDOT(root, DOTOptions[string]{})

	if !strings.Contains(dot, `n2 [label="aa", fillcolor=lightgrey];`) {
		t.Errorf("ToDOT() leaf not styled:\n%s", dot)
	}
	if strings.Contains(dot, `n0 [label="root", fillcolor=lightgrey];`) {
		t.Errorf("ToDOT() internal node styled as leaf:\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	root := buildSample(t)

	dot := ToDOT(root, DOTOptions[string]{Detailed: true})

	if !strings.Contains(dot, `label="root\ndepth: 0\nchildren: 2"`) {
		t.Errorf("ToDOT() detailed root label wrong:\n%s", dot)
	}
	if !strings.Contains(dot, `label="aa\ndepth: 2\nchildren: 0"`) {
		t.Errorf("ToDOT() detailed leaf label wrong:\n%s", dot)
	}
}
