package tree

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store. It backs tests and serves as the
// reference behavior for other backends.
type MemoryStore struct {
	observerHub
	nodes    map[string]*Node    // stored without Children
	children map[string][]string // parent id -> ordered child ids
}

// NewMemoryStore creates a store seeded with the tree root.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		nodes:    make(map[string]*Node),
		children: make(map[string][]string),
	}
	s.nodes[RootID] = &Node{ID: RootID, Title: "Bookmarks", DateAdded: time.Now()}
	return s
}

// Get returns a copy of the node.
func (s *MemoryStore) Get(id string) (*Node, error) {
	n, ok := s.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	return s.copyOf(n), nil
}

// GetChildren returns copies of the direct children in index order.
func (s *MemoryStore) GetChildren(id string) ([]*Node, error) {
	if _, ok := s.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	ids := s.children[id]
	out := make([]*Node, 0, len(ids))
	for _, cid := range ids {
		out = append(out, s.copyOf(s.nodes[cid]))
	}
	return out, nil
}

// GetSubtree returns the node with its full descendant tree populated.
func (s *MemoryStore) GetSubtree(id string) (*Node, error) {
	n, ok := s.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	root := s.copyOf(n)
	s.fillChildren(root)
	return root, nil
}

func (s *MemoryStore) fillChildren(n *Node) {
	for _, cid := range s.children[n.ID] {
		child := s.copyOf(s.nodes[cid])
		s.fillChildren(child)
		n.Children = append(n.Children, child)
	}
}

// Create adds a node under p.ParentID.
func (s *MemoryStore) Create(p CreateParams) (*Node, error) {
	parent, ok := s.nodes[p.ParentID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, p.ParentID)
	}
	if !parent.IsFolder() {
		return nil, fmt.Errorf("parent %s is not a folder", p.ParentID)
	}

	added := p.DateAdded
	if added.IsZero() {
		added = time.Now()
	}
	n := &Node{
		ID:        uuid.New().String(),
		ParentID:  p.ParentID,
		Title:     p.Title,
		URL:       p.URL,
		DateAdded: added,
	}
	s.nodes[n.ID] = n
	s.children[p.ParentID] = append(s.children[p.ParentID], n.ID)

	s.emit(Event{Kind: EventCreated, NodeID: n.ID, ParentID: n.ParentID})
	return s.copyOf(n), nil
}

// Update changes a node's title.
func (s *MemoryStore) Update(id, newTitle string) (*Node, error) {
	n, ok := s.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	n.Title = newTitle

	s.emit(Event{Kind: EventChanged, NodeID: id, ParentID: n.ParentID})
	return s.copyOf(n), nil
}

// Move relocates a node to a new parent and/or sibling index.
func (s *MemoryStore) Move(id string, p MoveParams) (*Node, error) {
	if id == RootID {
		return nil, fmt.Errorf("cannot move the tree root")
	}
	n, ok := s.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}

	dest := p.ParentID
	if dest == "" {
		dest = n.ParentID
	}
	destNode, ok := s.nodes[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, dest)
	}
	if !destNode.IsFolder() {
		return nil, fmt.Errorf("destination %s is not a folder", dest)
	}
	if s.isDescendant(dest, id) || dest == id {
		return nil, fmt.Errorf("cannot move %s into its own subtree", id)
	}

	s.children[n.ParentID] = removeID(s.children[n.ParentID], id)

	siblings := s.children[dest]
	idx := len(siblings)
	if p.Index != nil && *p.Index >= 0 && *p.Index < len(siblings) {
		idx = *p.Index
	}
	siblings = append(siblings, "")
	copy(siblings[idx+1:], siblings[idx:])
	siblings[idx] = id
	s.children[dest] = siblings
	n.ParentID = dest

	s.emit(Event{Kind: EventMoved, NodeID: id, ParentID: dest})
	return s.copyOf(n), nil
}

// Remove deletes the node and any descendants.
func (s *MemoryStore) Remove(id string) error {
	if id == RootID {
		return fmt.Errorf("cannot remove the tree root")
	}
	n, ok := s.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}

	parentID := n.ParentID
	s.children[parentID] = removeID(s.children[parentID], id)
	s.removeSubtree(id)

	s.emit(Event{Kind: EventRemoved, NodeID: id, ParentID: parentID})
	return nil
}

func (s *MemoryStore) removeSubtree(id string) {
	for _, cid := range s.children[id] {
		s.removeSubtree(cid)
	}
	delete(s.children, id)
	delete(s.nodes, id)
}

// SearchTitle returns nodes whose title equals q exactly.
func (s *MemoryStore) SearchTitle(q string) ([]*Node, error) {
	var out []*Node
	for _, n := range s.nodes {
		if n.ID != RootID && n.Title == q {
			out = append(out, s.copyOf(n))
		}
	}
	return out, nil
}

func (s *MemoryStore) isDescendant(id, ancestor string) bool {
	for id != "" {
		n, ok := s.nodes[id]
		if !ok {
			return false
		}
		if n.ParentID == ancestor {
			return true
		}
		id = n.ParentID
	}
	return false
}

// copyOf clones a node with its Index recomputed from sibling order.
func (s *MemoryStore) copyOf(n *Node) *Node {
	c := *n
	c.Children = nil
	for i, cid := range s.children[n.ParentID] {
		if cid == n.ID {
			c.Index = i
			break
		}
	}
	return &c
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
