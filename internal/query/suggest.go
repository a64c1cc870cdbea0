package query

import "github.com/sahilm/fuzzy"

// Suggestion is a fuzzy folder-name match.
type Suggestion struct {
	Name           string
	MatchedIndexes []int
	Score          int
}

// folderNames implements fuzzy.Source.
type folderNames []string

func (fn folderNames) String(i int) string {
	return fn[i]
}

func (fn folderNames) Len() int {
	return len(fn)
}

// SuggestFolders ranks folder names against the query using fuzzy
// matching, best first.
func SuggestFolders(names []string, query string) []Suggestion {
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, folderNames(names))

	results := make([]Suggestion, len(matches))
	for i, m := range matches {
		results[i] = Suggestion{
			Name:           names[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}
