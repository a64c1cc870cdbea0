package mark

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for repository preconditions. ErrRootNotSet and
// ErrRootMissing are distinct so callers can offer setup vs repair.
var (
	ErrRootNotSet     = errors.New("root folder not set")
	ErrRootMissing    = errors.New("root folder no longer exists")
	ErrEmptyName      = errors.New("name must not be empty")
	ErrInvalidChapter = errors.New("chapter must be an integer or decimal number")
	ErrInvalidStatus  = errors.New("invalid reading status")
	ErrReorder        = errors.New("reorder names do not match current folders")
)

// ReorderError reports a reorder request whose name set does not match the
// current top-level folders. Nothing is mutated when it is returned.
type ReorderError struct {
	Missing []string // current folders absent from the request
	Extra   []string // requested names with no matching folder
}

func (e *ReorderError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing %v", e.Missing))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, fmt.Sprintf("unknown %v", e.Extra))
	}
	return "reorder names do not match current folders: " + strings.Join(parts, ", ")
}

func (e *ReorderError) Is(target error) bool {
	return target == ErrReorder
}
