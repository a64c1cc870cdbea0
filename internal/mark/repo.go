// Package mark implements the bookmark repository: it interprets the raw
// bookmark tree under the extension's root folder as reading-progress
// records, and is the only place raw titles are given semantic meaning.
package mark

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mangamark/mangamark/internal/notify"
	"github.com/mangamark/mangamark/internal/settings"
	"github.com/mangamark/mangamark/internal/title"
	"github.com/mangamark/mangamark/internal/tree"
)

// Repo is the bookmark repository. Compound operations suppress change
// notifications for their duration and release them via defer, so a
// failed step never leaves notifications muted.
type Repo struct {
	store         tree.Store
	settings      settings.Store
	bridge        *notify.Bridge
	log           zerolog.Logger
	folderRemoved func(name string)
}

// Params holds dependencies for a Repo. Bridge, Logger and FolderRemoved
// are optional.
type Params struct {
	Store    tree.Store
	Settings settings.Store
	Bridge   *notify.Bridge
	Logger   zerolog.Logger
	// FolderRemoved is invoked with the folder name whenever cleanup
	// deletes a now-empty top-level folder, so folder-ordering and
	// grouping metadata held outside the tree can drop it.
	FolderRemoved func(name string)
}

// New creates a Repo.
func New(p Params) *Repo {
	return &Repo{
		store:         p.Store,
		settings:      p.Settings,
		bridge:        p.Bridge,
		log:           p.Logger,
		folderRemoved: p.FolderRemoved,
	}
}

// suppress opens a notification suppression scope, or a no-op one when no
// bridge is wired.
func (r *Repo) suppress() (release func()) {
	if r.bridge == nil {
		return func() {}
	}
	return r.bridge.Suppress()
}

// RootID resolves the extension's root folder id. It returns ErrRootNotSet
// when no root was ever configured and ErrRootMissing when the configured
// id no longer resolves in the tree.
func (r *Repo) RootID() (string, error) {
	id, ok, err := r.settings.Get(settings.KeyRootFolder)
	if err != nil {
		return "", err
	}
	if !ok || id == "" {
		return "", ErrRootNotSet
	}

	if _, err := r.store.Get(id); err != nil {
		if errors.Is(err, tree.ErrNodeNotFound) {
			return "", fmt.Errorf("%w (id %s)", ErrRootMissing, id)
		}
		return "", err
	}
	return id, nil
}

// CreateRoot creates the extension root folder under parentID and persists
// its id.
func (r *Repo) CreateRoot(name, parentID string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}

	n, err := r.store.Create(tree.CreateParams{ParentID: parentID, Title: name})
	if err != nil {
		return "", err
	}
	if err := r.settings.Set(settings.KeyRootFolder, n.ID); err != nil {
		return "", err
	}

	r.log.Info().Str("id", n.ID).Str("name", name).Msg("created root folder")
	return n.ID, nil
}

// AdoptRoot marks an existing folder node as the extension root.
func (r *Repo) AdoptRoot(id string) error {
	n, err := r.store.Get(id)
	if err != nil {
		return err
	}
	if !n.IsFolder() {
		return fmt.Errorf("node %s is not a folder", id)
	}
	return r.settings.Set(settings.KeyRootFolder, id)
}

// Build fetches the subtree under the root and decodes it into a Model.
// Undecodable titles are collected in Model.Invalid; they never abort the
// build. Folders nested deeper than one status subfolder are not modeled.
func (r *Repo) Build() (*Model, error) {
	rootID, err := r.RootID()
	if err != nil {
		return nil, err
	}

	root, err := r.store.GetSubtree(rootID)
	if err != nil {
		return nil, err
	}

	m := &Model{}
	for _, top := range root.Children {
		if !top.IsFolder() {
			continue
		}

		f := Folder{ID: top.ID, Name: top.Title}
		for _, n := range top.Children {
			if n.IsFolder() {
				st, ok := StatusForFolderName(n.Title)
				if !ok {
					continue
				}
				sf := Subfolder{ID: n.ID, Status: st}
				for _, leaf := range n.Children {
					if leaf.IsFolder() {
						continue
					}
					r.collect(leaf, f.Name, st, &sf.Bookmarks, m)
				}
				f.Subfolders = append(f.Subfolders, sf)
				continue
			}
			r.collect(n, f.Name, StatusReading, &f.Bookmarks, m)
		}
		m.Folders = append(m.Folders, f)
	}

	return m, nil
}

// collect decodes one leaf node into bs, or records it as invalid.
func (r *Repo) collect(n *tree.Node, folderName string, st Status, bs *[]Bookmark, m *Model) {
	rec, ok := title.Decode(n.Title)
	if !ok {
		m.Invalid = append(m.Invalid, Invalid{
			ID:     n.ID,
			Title:  n.Title,
			URL:    n.URL,
			Folder: folderName,
		})
		return
	}
	*bs = append(*bs, Bookmark{
		ID:        n.ID,
		Record:    rec,
		URL:       n.URL,
		DateAdded: n.DateAdded,
		Folder:    folderName,
		Status:    st,
	})
}

// FolderID returns the id of the top-level folder with the given name.
func (r *Repo) FolderID(name string) (string, bool, error) {
	rootID, err := r.RootID()
	if err != nil {
		return "", false, err
	}
	children, err := r.store.GetChildren(rootID)
	if err != nil {
		return "", false, err
	}
	for _, c := range children {
		if c.IsFolder() && c.Title == name {
			return c.ID, true, nil
		}
	}
	return "", false, nil
}

// EnsureFolder returns the id of the named top-level folder, creating it
// if absent.
func (r *Repo) EnsureFolder(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}
	id, ok, err := r.FolderID(name)
	if err != nil {
		return "", err
	}
	if ok {
		return id, nil
	}

	rootID, err := r.RootID()
	if err != nil {
		return "", err
	}
	n, err := r.store.Create(tree.CreateParams{ParentID: rootID, Title: name})
	if err != nil {
		return "", err
	}
	return n.ID, nil
}

// StatusFolderID returns the id of the status subfolder of folderID,
// creating it if absent. Reading is not a subfolder and is rejected.
func (r *Repo) StatusFolderID(folderID string, st Status) (string, error) {
	if !st.IsSubfolder() {
		return "", fmt.Errorf("%w: %q is not a subfolder status", ErrInvalidStatus, st)
	}

	children, err := r.store.GetChildren(folderID)
	if err != nil {
		return "", err
	}
	for _, c := range children {
		if c.IsFolder() && c.Title == string(st) {
			return c.ID, nil
		}
	}

	n, err := r.store.Create(tree.CreateParams{ParentID: folderID, Title: string(st)})
	if err != nil {
		return "", err
	}
	return n.ID, nil
}
