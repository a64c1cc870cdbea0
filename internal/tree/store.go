package tree

import (
	"errors"
	"time"
)

// ErrNodeNotFound is returned when an id does not resolve to a node.
var ErrNodeNotFound = errors.New("node not found")

// EventKind classifies a tree mutation.
type EventKind int

const (
	EventCreated EventKind = iota
	EventChanged
	EventMoved
	EventRemoved
)

// Event describes a single tree mutation.
type Event struct {
	Kind     EventKind
	NodeID   string
	ParentID string
}

// CreateParams holds parameters for creating a node. An empty URL creates
// a folder. A zero DateAdded means "now".
type CreateParams struct {
	ParentID  string
	Title     string
	URL       string
	DateAdded time.Time
}

// MoveParams holds parameters for moving a node. An empty ParentID keeps
// the current parent; a nil Index appends at the end of the destination.
type MoveParams struct {
	ParentID string
	Index    *int
}

// Store is the bookmark tree collaborator. Mutations emit an Event to
// every registered observer after the change is applied.
type Store interface {
	Get(id string) (*Node, error)
	GetChildren(id string) ([]*Node, error)
	GetSubtree(id string) (*Node, error)
	Create(p CreateParams) (*Node, error)
	Update(id, title string) (*Node, error)
	Move(id string, p MoveParams) (*Node, error)
	// Remove deletes the node and any descendants.
	Remove(id string) error
	// SearchTitle returns nodes whose title equals q exactly.
	SearchTitle(q string) ([]*Node, error)
	// Observe registers a change observer; the returned func cancels it.
	Observe(fn func(Event)) (cancel func())
}
