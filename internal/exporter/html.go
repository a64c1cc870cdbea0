// Package exporter writes a tree store subtree out as Netscape bookmark
// HTML, so the extension's data can travel back into a browser.
package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mangamark/mangamark/internal/tree"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/mangamark-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("mangamark-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML renders the subtree under rootID as Netscape bookmark HTML.
func ExportHTML(s tree.Store, rootID string) (string, error) {
	root, err := s.GetSubtree(rootID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	writeChildren(&b, root, 1)

	b.WriteString("</DL><p>\n")
	return b.String(), nil
}

// writeChildren writes a node's children in tree order.
func writeChildren(b *strings.Builder, n *tree.Node, indent int) {
	prefix := strings.Repeat("    ", indent)

	for _, child := range n.Children {
		if child.IsFolder() {
			fmt.Fprintf(b, "%s<DT><H3>%s</H3>\n", prefix, html.EscapeString(child.Title))
			fmt.Fprintf(b, "%s<DL><p>\n", prefix)
			writeChildren(b, child, indent+1)
			fmt.Fprintf(b, "%s</DL><p>\n", prefix)
			continue
		}

		fmt.Fprintf(b,
			"%s<DT><A HREF=\"%s\" ADD_DATE=\"%d\">%s</A>\n",
			prefix,
			html.EscapeString(child.URL),
			child.DateAdded.Unix(),
			html.EscapeString(child.Title),
		)
	}
}
