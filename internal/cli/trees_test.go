package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/treekit/pkg/tree"
)

const treeJSON = `{
	"identity": "root",
	"children": [
		{"identity": "a", "children": [{"identity": "aa"}]},
		{"identity": "b"}
	]
}`

func writeTreeFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.json")
	if err := os.WriteFile(path, []byte(treeJSON), 0o644); err != nil {
		t.Fatalf("write tree file: %v", err)
	}
	return path
}

func TestLoadTree(t *testing.T) {
	tr, err := loadTree(writeTreeFile(t), DefaultConfig())
	if err != nil {
		t.Fatalf("loadTree() error = %v", err)
	}
	if tr.Size() != 4 {
		t.Errorf("Size() = %d, want 4", tr.Size())
	}
	if tr.DefaultOrder() != tree.PreOrder {
		t.Errorf("DefaultOrder() = %v, want PreOrder", tr.DefaultOrder())
	}
}

func TestLoadTreeConfiguredOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Order = "levelorder"

	tr, err := loadTree(writeTreeFile(t), cfg)
	if err != nil {
		t.Fatalf("loadTree() error = %v", err)
	}
	if tr.DefaultOrder() != tree.LevelOrder {
		t.Errorf("DefaultOrder() = %v, want LevelOrder", tr.DefaultOrder())
	}
}

func TestLoadTreeBadOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Order = "spiral"

	if _, err := loadTree(writeTreeFile(t), cfg); err == nil {
		t.Error("loadTree() with invalid configured order should fail")
	}
}

func TestLoadTreeMissingFile(t *testing.T) {
	if _, err := loadTree(filepath.Join(t.TempDir(), "nope.json"), DefaultConfig()); err == nil {
		t.Error("loadTree() with missing file should fail")
	}
}

func TestByIdentity(t *testing.T) {
	tr, err := loadTree(writeTreeFile(t), DefaultConfig())
	if err != nil {
		t.Fatalf("loadTree() error = %v", err)
	}

	nodes, err := tr.Resolve(byIdentity("aa"), tree.PreOrder)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("len(nodes) = %d, want 1", len(nodes))
	}
	if id, _ := nodes[0].Identity(); id != "aa" {
		t.Errorf("identity = %q, want aa", id)
	}
}

func TestGroupRef(t *testing.T) {
	tr, err := loadTree(writeTreeFile(t), DefaultConfig())
	if err != nil {
		t.Fatalf("loadTree() error = %v", err)
	}

	nodes, err := tr.Resolve(groupRef([]string{"a", "b"}), tree.PreOrder)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(nodes) != 2 {
		t.Errorf("len(nodes) = %d, want 2", len(nodes))
	}
}
