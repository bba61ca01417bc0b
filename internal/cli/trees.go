package cli

import (
	"fmt"
	"os"

	"github.com/matzehuels/treekit/pkg/tree"
	"github.com/matzehuels/treekit/pkg/treedoc"
)

// loadDocument reads a tree document from path, or from stdin when path is "-".
func loadDocument(path string) (treedoc.Document[string], error) {
	if path == "-" {
		doc, err := treedoc.ReadJSON[string](os.Stdin)
		if err != nil {
			return doc, fmt.Errorf("read stdin: %w", err)
		}
		return doc, nil
	}
	return treedoc.ImportJSON[string](path)
}

// loadTree reads a tree document from path and rebuilds it, applying the
// configured default traversal order.
func loadTree(path string, cfg Config) (*tree.Tree[string], error) {
	doc, err := loadDocument(path)
	if err != nil {
		return nil, err
	}

	order, err := tree.ParseOrder(cfg.Output.Order)
	if err != nil {
		return nil, fmt.Errorf("config output.order: %w", err)
	}
	return doc.NewTree(tree.WithDefaultOrder[string](order))
}

// byIdentity references the first node whose identity equals id.
func byIdentity(id string) tree.Ref[string] {
	return tree.Where(func(n *tree.Node[string]) bool {
		got, ok := n.Identity()
		return ok && got == id
	})
}
