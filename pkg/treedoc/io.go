package treedoc

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/treekit/pkg/tree"
)

// ReadJSON decodes a document from r.
func ReadJSON[T any](r io.Reader) (Document[T], error) {
	var d Document[T]
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return Document[T]{}, fmt.Errorf("decode tree document: %w", err)
	}
	return d, nil
}

// ImportJSON reads a document from the file at path.
func ImportJSON[T any](path string) (Document[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return Document[T]{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON[T](f)
}

// ImportTree reads a document from the file at path and builds it into a
// tree in one step.
func ImportTree[T any](path string, opts ...tree.TreeOption[T]) (*tree.Tree[T], error) {
	d, err := ImportJSON[T](path)
	if err != nil {
		return nil, err
	}
	t, err := d.NewTree(opts...)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", path, err)
	}
	return t, nil
}

// WriteJSON encodes the document to w, indented for readability.
func WriteJSON[T any](w io.Writer, d Document[T]) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode tree document: %w", err)
	}
	return nil
}

// ExportJSON writes the document to the file at path.
func ExportJSON[T any](path string, d Document[T]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(f, d)
}

// ExportTree converts the tree to its document form and writes it to path.
func ExportTree[T any](path string, t *tree.Tree[T]) error {
	return ExportJSON(path, FromTree(t))
}
