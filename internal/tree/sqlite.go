package tree

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const currentSchemaVersion = 1

// SQLiteStore is a Store persisted in a SQLite database.
type SQLiteStore struct {
	observerHub
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (creating if needed) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLiteStore{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < currentSchemaVersion {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	return nil
}

func (s *SQLiteStore) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS nodes (
			id TEXT PRIMARY KEY NOT NULL,
			parent_id TEXT,
			title TEXT NOT NULL,
			url TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL DEFAULT 0,
			date_added TEXT NOT NULL,
			FOREIGN KEY (parent_id) REFERENCES nodes(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_nodes_parent_id ON nodes(parent_id);
		CREATE INDEX IF NOT EXISTS idx_nodes_title ON nodes(title);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	// Seed the tree root.
	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO nodes (id, parent_id, title, url, position, date_added)
		VALUES (?, NULL, 'Bookmarks', '', 0, ?)
	`, RootID, time.Now().Format(time.RFC3339))
	return err
}

func scanNode(row interface{ Scan(...any) error }) (*Node, error) {
	var n Node
	var parentID sql.NullString
	var addedStr string

	if err := row.Scan(&n.ID, &parentID, &n.Title, &n.URL, &n.Index, &addedStr); err != nil {
		return nil, err
	}
	if parentID.Valid {
		n.ParentID = parentID.String
	}
	n.DateAdded, _ = time.Parse(time.RFC3339, addedStr)
	return &n, nil
}

const nodeColumns = "id, parent_id, title, url, position, date_added"

// Get returns the node with the given id.
func (s *SQLiteStore) Get(id string) (*Node, error) {
	row := s.db.QueryRow("SELECT "+nodeColumns+" FROM nodes WHERE id = ?", id)
	n, err := scanNode(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	return n, err
}

// GetChildren returns the direct children in position order.
func (s *SQLiteStore) GetChildren(id string) ([]*Node, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	return s.queryChildren(id)
}

func (s *SQLiteStore) queryChildren(id string) ([]*Node, error) {
	rows, err := s.db.Query(
		"SELECT "+nodeColumns+" FROM nodes WHERE parent_id = ? ORDER BY position", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*Node{}
	for rows.Next() {
		n, err := scanNode(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// GetSubtree returns the node with its full descendant tree populated.
func (s *SQLiteStore) GetSubtree(id string) (*Node, error) {
	n, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.fillChildren(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *SQLiteStore) fillChildren(n *Node) error {
	children, err := s.queryChildren(n.ID)
	if err != nil {
		return err
	}
	for _, c := range children {
		if err := s.fillChildren(c); err != nil {
			return err
		}
	}
	n.Children = children
	return nil
}

// Create adds a node under p.ParentID at the end of its children.
func (s *SQLiteStore) Create(p CreateParams) (*Node, error) {
	parent, err := s.Get(p.ParentID)
	if err != nil {
		return nil, err
	}
	if !parent.IsFolder() {
		return nil, fmt.Errorf("parent %s is not a folder", p.ParentID)
	}

	added := p.DateAdded
	if added.IsZero() {
		added = time.Now()
	}

	var position int
	if err := s.db.QueryRow(
		"SELECT COALESCE(MAX(position)+1, 0) FROM nodes WHERE parent_id = ?", p.ParentID).Scan(&position); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	_, err = s.db.Exec(`
		INSERT INTO nodes (id, parent_id, title, url, position, date_added)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, p.ParentID, p.Title, p.URL, position, added.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	s.emit(Event{Kind: EventCreated, NodeID: id, ParentID: p.ParentID})
	return &Node{
		ID:        id,
		ParentID:  p.ParentID,
		Title:     p.Title,
		URL:       p.URL,
		Index:     position,
		DateAdded: added,
	}, nil
}

// Update changes a node's title.
func (s *SQLiteStore) Update(id, newTitle string) (*Node, error) {
	n, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.Exec("UPDATE nodes SET title = ? WHERE id = ?", newTitle, id); err != nil {
		return nil, err
	}
	n.Title = newTitle

	s.emit(Event{Kind: EventChanged, NodeID: id, ParentID: n.ParentID})
	return n, nil
}

// Move relocates a node to a new parent and/or sibling index.
func (s *SQLiteStore) Move(id string, p MoveParams) (*Node, error) {
	if id == RootID {
		return nil, fmt.Errorf("cannot move the tree root")
	}
	n, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	dest := p.ParentID
	if dest == "" {
		dest = n.ParentID
	}
	destNode, err := s.Get(dest)
	if err != nil {
		return nil, err
	}
	if !destNode.IsFolder() {
		return nil, fmt.Errorf("destination %s is not a folder", dest)
	}
	if ok, err := s.isDescendant(dest, id); err != nil {
		return nil, err
	} else if ok || dest == id {
		return nil, fmt.Errorf("cannot move %s into its own subtree", id)
	}

	// Rebuild sibling orders in one transaction.
	oldSiblings, err := s.childIDs(n.ParentID)
	if err != nil {
		return nil, err
	}
	oldSiblings = removeID(oldSiblings, id)

	var newSiblings []string
	sameParent := dest == n.ParentID
	if sameParent {
		newSiblings = oldSiblings
	} else {
		newSiblings, err = s.childIDs(dest)
		if err != nil {
			return nil, err
		}
	}

	idx := len(newSiblings)
	if p.Index != nil && *p.Index >= 0 && *p.Index < len(newSiblings) {
		idx = *p.Index
	}
	newSiblings = append(newSiblings, "")
	copy(newSiblings[idx+1:], newSiblings[idx:])
	newSiblings[idx] = id

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("UPDATE nodes SET parent_id = ? WHERE id = ?", dest, id); err != nil {
		return nil, err
	}
	if !sameParent {
		if err := writePositions(tx, oldSiblings); err != nil {
			return nil, err
		}
	}
	if err := writePositions(tx, newSiblings); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	n.ParentID = dest
	n.Index = idx

	s.emit(Event{Kind: EventMoved, NodeID: id, ParentID: dest})
	return n, nil
}

// Remove deletes the node and any descendants.
func (s *SQLiteStore) Remove(id string) error {
	if id == RootID {
		return fmt.Errorf("cannot remove the tree root")
	}
	n, err := s.Get(id)
	if err != nil {
		return err
	}

	// ON DELETE CASCADE takes the subtree with it.
	if _, err := s.db.Exec("DELETE FROM nodes WHERE id = ?", id); err != nil {
		return err
	}

	s.emit(Event{Kind: EventRemoved, NodeID: id, ParentID: n.ParentID})
	return nil
}

// SearchTitle returns nodes whose title equals q exactly.
func (s *SQLiteStore) SearchTitle(q string) ([]*Node, error) {
	rows, err := s.db.Query(
		"SELECT "+nodeColumns+" FROM nodes WHERE title = ? AND id != ?", q, RootID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Node
	for rows.Next() {
		n, err := scanNode(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) childIDs(parentID string) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT id FROM nodes WHERE parent_id = ? ORDER BY position", parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *SQLiteStore) isDescendant(id, ancestor string) (bool, error) {
	for id != "" {
		var parentID sql.NullString
		err := s.db.QueryRow("SELECT parent_id FROM nodes WHERE id = ?", id).Scan(&parentID)
		if err == sql.ErrNoRows {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if !parentID.Valid {
			return false, nil
		}
		if parentID.String == ancestor {
			return true, nil
		}
		id = parentID.String
	}
	return false, nil
}

func writePositions(tx *sql.Tx, ids []string) error {
	for i, id := range ids {
		if _, err := tx.Exec("UPDATE nodes SET position = ? WHERE id = ?", i, id); err != nil {
			return err
		}
	}
	return nil
}

// DefaultSQLitePath returns the default database path:
// ~/.config/mangamark/bookmarks.db
func DefaultSQLitePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "mangamark", "bookmarks.db"), nil
}
