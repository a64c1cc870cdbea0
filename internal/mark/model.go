package mark

import (
	"net/url"
	"strings"
	"time"

	"github.com/mangamark/mangamark/internal/title"
)

// Bookmark is a decoded reading-progress bookmark.
type Bookmark struct {
	ID        string
	Record    title.Record
	URL       string
	DateAdded time.Time
	Folder    string // top-level folder name
	Status    Status
}

// Host returns the bookmark URL's hostname with a leading "www." stripped,
// or "" if the URL does not parse.
func (b Bookmark) Host() string {
	u, err := url.Parse(b.URL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// Subfolder is a reading-status subfolder of a top-level folder.
type Subfolder struct {
	ID        string
	Status    Status
	Bookmarks []Bookmark
}

// Folder is a top-level folder: one series collection or category.
type Folder struct {
	ID         string
	Name       string
	Bookmarks  []Bookmark // direct children, status Reading
	Subfolders []Subfolder
}

// AllBookmarks returns the folder's main bookmarks followed by its
// subfolder bookmarks, in tree order.
func (f Folder) AllBookmarks() []Bookmark {
	out := make([]Bookmark, 0, len(f.Bookmarks))
	out = append(out, f.Bookmarks...)
	for _, sf := range f.Subfolders {
		out = append(out, sf.Bookmarks...)
	}
	return out
}

// Subfolder returns the subfolder with the given status, or nil.
func (f Folder) Subfolder(st Status) *Subfolder {
	for i := range f.Subfolders {
		if f.Subfolders[i].Status == st {
			return &f.Subfolders[i]
		}
	}
	return nil
}

// Invalid is a tree node under the extension root whose title does not
// decode. Invalid entries are surfaced, never silently dropped.
type Invalid struct {
	ID     string
	Title  string
	URL    string
	Folder string
}

// Model is the in-memory view of the extension's subtree.
type Model struct {
	Folders []Folder
	Invalid []Invalid
}

// Folder returns the top-level folder with the given name, or nil.
func (m *Model) Folder(name string) *Folder {
	for i := range m.Folders {
		if m.Folders[i].Name == name {
			return &m.Folders[i]
		}
	}
	return nil
}
