package mark

import "strings"

// Status is a bookmark's reading status. Reading bookmarks live directly
// in their top-level folder; every other status maps to a subfolder named
// after it, nested exactly one level deep.
type Status string

const (
	StatusReading    Status = "Reading"
	StatusCompleted  Status = "Completed"
	StatusPlanToRead Status = "Plan to Read"
	StatusReReading  Status = "Re-Reading"
	StatusOnHold     Status = "On Hold"
)

// subfolderStatuses are the statuses persisted as subfolders, i.e. all but
// Reading.
var subfolderStatuses = []Status{
	StatusCompleted,
	StatusPlanToRead,
	StatusReReading,
	StatusOnHold,
}

// ParseStatus resolves a status from user input, case-insensitively.
// An empty string parses as Reading.
func ParseStatus(s string) (Status, bool) {
	if strings.TrimSpace(s) == "" {
		return StatusReading, true
	}
	for _, st := range append([]Status{StatusReading}, subfolderStatuses...) {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

// StatusForFolderName maps a subfolder name to its status. Only exact
// names count; anything else is not a status subfolder.
func StatusForFolderName(name string) (Status, bool) {
	for _, st := range subfolderStatuses {
		if name == string(st) {
			return st, true
		}
	}
	return "", false
}

// IsSubfolder reports whether the status is stored as a subfolder.
func (s Status) IsSubfolder() bool {
	_, ok := StatusForFolderName(string(s))
	return ok
}
