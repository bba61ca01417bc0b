// Package treedoc provides the serialization format for trees.
//
// # JSON Format
//
// A tree is a single recursive record:
//
//	{
//	  "identity": "root",
//	  "max_children": 4,
//	  "children": [
//	    {"identity": "left"},
//	    {"identity": "right", "children": [{"identity": "leaf"}]}
//	  ]
//	}
//
// Every field is optional: a record without "identity" describes an empty
// node, a record without "children" a leaf, and "max_children" bounds the
// record's direct children when present.
//
// # Building and Converting
//
// [Document.Build] reconstructs the linked [tree.Node] structure with parent
// references set top-down; [FromNode] and [FromTree] go the other way. The
// conversion is round-trip faithful: same identities, same shape, same child
// order. [Document.BuildUnder] attaches the rebuilt root to an existing
// parent node — permitted for the top-level record only.
//
// # Files
//
// [ImportJSON]/[ExportJSON] and the reader/writer forms [ReadJSON] and
// [WriteJSON] move documents in and out of files. [ImportTree] and
// [ExportTree] combine the file step with the tree conversion.
//
// The document struct carries bson tags alongside json so stores can persist
// it natively.
package treedoc
