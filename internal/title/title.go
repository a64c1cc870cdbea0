// Package title implements the bookmark title wire format:
//
//	<contentTitle> - Chapter <chapter>[ - Tags <tag1,tag2,...>]
//
// The encoded string is the only persisted representation of a record, so
// the format must stay stable. Content titles must not contain the literal
// " - Chapter " or " - Tags " markers and tags must not contain commas;
// neither is escaped.
package title

import (
	"regexp"
	"strings"
)

// chapterGrammar is the chapter segment: an integer or a decimal.
const chapterGrammar = `\d+(?:\.\d+)?`

// pattern matches titles produced by Encode. The first group is lazy so
// that the earliest " - Chapter " occurrence wins when the content title
// itself contains the marker.
var pattern = regexp.MustCompile(`^(.*?) - Chapter (` + chapterGrammar + `)(?: - Tags (.*))?$`)

var chapterPattern = regexp.MustCompile(`^` + chapterGrammar + `$`)

// ValidChapter reports whether s is a chapter Decode would accept.
// Encoding an invalid chapter produces a title that no longer decodes.
func ValidChapter(s string) bool {
	return chapterPattern.MatchString(s)
}

// Record is the structured form of an encoded bookmark title.
type Record struct {
	ContentTitle string
	Chapter      string
	Tags         []string
}

// Encode formats a record as a bookmark title. The tags segment is omitted
// when tags is empty.
func Encode(contentTitle, chapter string, tags []string) string {
	var b strings.Builder
	b.WriteString(contentTitle)
	b.WriteString(" - Chapter ")
	b.WriteString(chapter)
	if len(tags) > 0 {
		b.WriteString(" - Tags ")
		b.WriteString(strings.Join(tags, ","))
	}
	return b.String()
}

// Decode parses a bookmark title. The second return value is false for
// titles not produced by Encode (foreign bookmarks); Decode never panics.
func Decode(s string) (Record, bool) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return Record{}, false
	}

	r := Record{
		ContentTitle: m[1],
		Chapter:      m[2],
		Tags:         []string{},
	}
	if m[3] != "" {
		r.Tags = strings.Split(m[3], ",")
	}
	return r, true
}

// String re-encodes the record.
func (r Record) String() string {
	return Encode(r.ContentTitle, r.Chapter, r.Tags)
}
