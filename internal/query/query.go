// Package query provides pure filtering and sorting over the in-memory
// bookmark model.
package query

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mangamark/mangamark/internal/mark"
)

// Scope selects which of a folder's bookmarks are visible.
type Scope struct {
	mainOnly bool
	status   mark.Status
}

// All covers main bookmarks plus every status subfolder.
var All = Scope{}

// MainOnly covers only the folder's direct (Reading) bookmarks.
var MainOnly = Scope{mainOnly: true}

// StatusOnly covers a single status subfolder.
func StatusOnly(st mark.Status) Scope {
	return Scope{status: st}
}

// Collect returns the folder's bookmarks visible under the scope.
func Collect(f mark.Folder, scope Scope) []mark.Bookmark {
	switch {
	case scope.mainOnly:
		return append([]mark.Bookmark{}, f.Bookmarks...)
	case scope.status != "":
		if sf := f.Subfolder(scope.status); sf != nil {
			return append([]mark.Bookmark{}, sf.Bookmarks...)
		}
		return []mark.Bookmark{}
	default:
		return f.AllBookmarks()
	}
}

// FilterTags keeps bookmarks carrying every requested tag. An empty
// filter keeps everything.
func FilterTags(bs []mark.Bookmark, tags []string) []mark.Bookmark {
	if len(tags) == 0 {
		return bs
	}

	out := []mark.Bookmark{}
	for _, b := range bs {
		if hasAllTags(b.Record.Tags, tags) {
			out = append(out, b)
		}
	}
	return out
}

func hasAllTags(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// FilterTokens keeps bookmarks whose lowercased content title contains
// every token as a substring. An empty filter keeps everything.
func FilterTokens(bs []mark.Bookmark, tokens []string) []mark.Bookmark {
	if len(tokens) == 0 {
		return bs
	}

	out := []mark.Bookmark{}
	for _, b := range bs {
		ct := strings.ToLower(b.Record.ContentTitle)
		keep := true
		for _, tok := range tokens {
			if !strings.Contains(ct, strings.ToLower(tok)) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, b)
		}
	}
	return out
}

// SortMode is one of the four supported orderings.
type SortMode string

const (
	Recent SortMode = "recent" // newest first
	Oldest SortMode = "oldest" // oldest first
	Az     SortMode = "az"     // content title ascending
	Za     SortMode = "za"     // content title descending
)

// ErrUnknownMode is returned for a sort mode outside the four above. An
// unknown mode is a programming error and never falls back silently.
var ErrUnknownMode = errors.New("unknown sort mode")

// Sort orders bs in place.
func (m SortMode) Sort(bs []mark.Bookmark) error {
	switch m {
	case Recent:
		sort.SliceStable(bs, func(i, j int) bool {
			return bs[i].DateAdded.After(bs[j].DateAdded)
		})
	case Oldest:
		sort.SliceStable(bs, func(i, j int) bool {
			return bs[i].DateAdded.Before(bs[j].DateAdded)
		})
	case Az, Za:
		c := collate.New(language.Und)
		sort.SliceStable(bs, func(i, j int) bool {
			cmp := c.CompareString(bs[i].Record.ContentTitle, bs[j].Record.ContentTitle)
			if m == Za {
				return cmp > 0
			}
			return cmp < 0
		})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, m)
	}
	return nil
}

// Apply collects, filters and sorts a folder's bookmarks in one step.
func Apply(f mark.Folder, scope Scope, tags, tokens []string, mode SortMode) ([]mark.Bookmark, error) {
	bs := Collect(f, scope)
	bs = FilterTags(bs, tags)
	bs = FilterTokens(bs, tokens)
	if err := mode.Sort(bs); err != nil {
		return nil, err
	}
	return bs, nil
}
