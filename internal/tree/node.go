// Package tree provides the bookmark tree store the repository operates
// on: hierarchical folder/bookmark nodes keyed by opaque string ids, with
// change events for every mutation. Two backends are provided, an
// in-memory store and a SQLite-backed one.
package tree

import "time"

// RootID is the id of the fixed tree root every store is seeded with.
const RootID = "0"

// Node is a single entry in the bookmark tree. A node with an empty URL
// is a folder.
type Node struct {
	ID        string
	ParentID  string // empty for the tree root
	Title     string
	URL       string
	Index     int // position among siblings
	DateAdded time.Time
	Children  []*Node // populated by GetSubtree only, in index order
}

// IsFolder reports whether the node is a folder.
func (n *Node) IsFolder() bool {
	return n.URL == ""
}
