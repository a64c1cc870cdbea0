package mark

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mangamark/mangamark/internal/title"
	"github.com/mangamark/mangamark/internal/tree"
)

// AddParams holds parameters for Add. A zero Status means Reading.
type AddParams struct {
	ContentTitle string
	Chapter      string
	Tags         []string
	URL          string
	FolderID     string
	Status       Status
}

// Add encodes and stores a new bookmark, resolving a status subfolder when
// the status is not Reading. It returns the encoded title.
func (r *Repo) Add(p AddParams) (string, error) {
	if strings.TrimSpace(p.ContentTitle) == "" {
		return "", ErrEmptyName
	}
	// A chapter outside the codec grammar would encode into a title that
	// Decode rejects, turning the fresh bookmark into an Invalid entry.
	if !title.ValidChapter(p.Chapter) {
		return "", fmt.Errorf("%w: %q", ErrInvalidChapter, p.Chapter)
	}
	st := p.Status
	if st == "" {
		st = StatusReading
	}
	if st != StatusReading && !st.IsSubfolder() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, st)
	}

	encoded := title.Encode(p.ContentTitle, p.Chapter, p.Tags)

	release := r.suppress()
	defer release()

	dest := p.FolderID
	if st.IsSubfolder() {
		var err error
		dest, err = r.StatusFolderID(p.FolderID, st)
		if err != nil {
			return "", err
		}
	}

	if _, err := r.store.Create(tree.CreateParams{
		ParentID: dest,
		Title:    encoded,
		URL:      p.URL,
	}); err != nil {
		return "", err
	}

	r.log.Debug().Str("title", encoded).Str("status", string(st)).Msg("added bookmark")
	return encoded, nil
}

// Remove deletes a bookmark, then removes any ancestor folders the
// deletion left empty, stopping at (and never deleting) the root.
func (r *Repo) Remove(id string) error {
	rootID, err := r.RootID()
	if err != nil {
		return err
	}
	node, err := r.store.Get(id)
	if err != nil {
		return err
	}

	release := r.suppress()
	defer release()

	if err := r.store.Remove(id); err != nil {
		return err
	}
	return r.cleanupEmpty(node.ParentID, rootID)
}

// Move relocates a bookmark into destFolderID, or into its status
// subfolder when st is a subfolder status, then cleans up the original
// parent chain. The whole operation emits one change notification.
func (r *Repo) Move(id, destFolderID string, st Status) error {
	if st == "" {
		st = StatusReading
	}
	if st != StatusReading && !st.IsSubfolder() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, st)
	}

	rootID, err := r.RootID()
	if err != nil {
		return err
	}
	node, err := r.store.Get(id)
	if err != nil {
		return err
	}
	origParent := node.ParentID

	release := r.suppress()
	defer release()

	dest := destFolderID
	if st.IsSubfolder() {
		dest, err = r.StatusFolderID(destFolderID, st)
		if err != nil {
			return err
		}
	}

	if _, err := r.store.Move(id, tree.MoveParams{ParentID: dest}); err != nil {
		return err
	}

	r.log.Debug().Str("id", id).Str("status", string(st)).Msg("moved bookmark")
	return r.cleanupEmpty(origParent, rootID)
}

// cleanupEmpty walks upward from id, removing folders left without
// children, and stops at the root. Removing a top-level folder fires the
// FolderRemoved callback so external grouping metadata can be updated.
func (r *Repo) cleanupEmpty(id, rootID string) error {
	for id != "" && id != rootID {
		node, err := r.store.Get(id)
		if err != nil {
			if errors.Is(err, tree.ErrNodeNotFound) {
				return nil
			}
			return err
		}
		if !node.IsFolder() {
			return nil
		}

		children, err := r.store.GetChildren(id)
		if err != nil {
			return err
		}
		if len(children) > 0 {
			return nil
		}

		parent := node.ParentID
		if err := r.store.Remove(id); err != nil {
			return err
		}
		r.log.Debug().Str("folder", node.Title).Msg("removed empty folder")

		if parent == rootID && r.folderRemoved != nil {
			r.folderRemoved(node.Title)
		}
		id = parent
	}
	return nil
}

// MatchResult is a title search hit.
type MatchResult struct {
	Bookmark Bookmark
	Folder   string
	Status   Status
}

// FindByTitle searches all folders for a bookmark whose content title
// matches the query and returns the first hit in tree order, or nil.
//
// The containment is deliberately directional: a non-exact query matches
// when it contains the stored content title, so a browser tab title like
// "Chapter 5 - Foo Manga" finds the record "Foo Manga". Comparison is
// case-insensitive.
func (r *Repo) FindByTitle(query string, exact bool) (*MatchResult, error) {
	m, err := r.Build()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matches := func(b Bookmark) bool {
		ct := strings.ToLower(b.Record.ContentTitle)
		if exact {
			return q == ct
		}
		// An empty content title would make every query a containment
		// match, so such records are only reachable through exact search.
		return ct != "" && strings.Contains(q, ct)
	}

	for _, f := range m.Folders {
		for _, b := range f.Bookmarks {
			if matches(b) {
				return &MatchResult{Bookmark: b, Folder: f.Name, Status: b.Status}, nil
			}
		}
		for _, sf := range f.Subfolders {
			for _, b := range sf.Bookmarks {
				if matches(b) {
					return &MatchResult{Bookmark: b, Folder: f.Name, Status: b.Status}, nil
				}
			}
		}
	}
	return nil, nil
}

// DefaultFolder suggests the top-level folder for a domain: the folder
// holding the strictly most bookmarks on that host (leading "www."
// ignored), first in tree order on ties. With no matches anywhere the
// stripped domain itself is returned as the suggested name of a folder
// yet to be created.
func (r *Repo) DefaultFolder(domain string) (string, error) {
	host := strings.TrimPrefix(domain, "www.")

	m, err := r.Build()
	if err != nil {
		return "", err
	}

	best := ""
	bestCount := 0
	for _, f := range m.Folders {
		count := 0
		for _, b := range f.AllBookmarks() {
			if b.Host() == host {
				count++
			}
		}
		if count > bestCount {
			best = f.Name
			bestCount = count
		}
	}

	if bestCount == 0 {
		return host, nil
	}
	return best, nil
}

// AllTags returns the union of tags across the whole tree, deduplicated
// as stored, in first-seen tree order.
func (r *Repo) AllTags() ([]string, error) {
	m, err := r.Build()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	tags := []string{}
	for _, f := range m.Folders {
		for _, b := range f.AllBookmarks() {
			for _, tag := range b.Record.Tags {
				if !seen[tag] {
					seen[tag] = true
					tags = append(tags, tag)
				}
			}
		}
	}
	return tags, nil
}

// ReorderFolders rearranges the root's children: loose bookmarks (if any)
// first, then folders in the given name order. The names must be an exact
// permutation of the current top-level folder names; a mismatch fails
// before anything moves. The moves themselves are not transactional; an
// error partway leaves a partially reordered tree, which the next Build
// reads as-is.
func (r *Repo) ReorderFolders(names []string) error {
	rootID, err := r.RootID()
	if err != nil {
		return err
	}
	children, err := r.store.GetChildren(rootID)
	if err != nil {
		return err
	}

	var loose []*tree.Node
	byName := make(map[string]*tree.Node)
	var current []string
	for _, c := range children {
		if c.IsFolder() {
			byName[c.Title] = c
			current = append(current, c.Title)
		} else {
			loose = append(loose, c)
		}
	}

	if err := validateReorder(current, names); err != nil {
		return err
	}

	release := r.suppress()
	defer release()

	idx := 0
	for _, n := range loose {
		i := idx
		if _, err := r.store.Move(n.ID, tree.MoveParams{ParentID: rootID, Index: &i}); err != nil {
			return fmt.Errorf("reorder interrupted at %q: %w", n.Title, err)
		}
		idx++
	}
	for _, name := range names {
		i := idx
		if _, err := r.store.Move(byName[name].ID, tree.MoveParams{ParentID: rootID, Index: &i}); err != nil {
			return fmt.Errorf("reorder interrupted at %q: %w", name, err)
		}
		idx++
	}

	r.log.Debug().Int("folders", len(names)).Msg("reordered folders")
	return nil
}

// validateReorder checks that names is an exact permutation of current.
func validateReorder(current, names []string) error {
	currentSet := make(map[string]bool, len(current))
	for _, n := range current {
		currentSet[n] = true
	}

	var missing, extra []string
	used := make(map[string]bool, len(names))
	for _, n := range names {
		if !currentSet[n] || used[n] {
			extra = append(extra, n)
			continue
		}
		used[n] = true
	}
	for _, n := range current {
		if !used[n] {
			missing = append(missing, n)
		}
	}

	if len(missing) > 0 || len(extra) > 0 {
		return &ReorderError{Missing: missing, Extra: extra}
	}
	return nil
}
