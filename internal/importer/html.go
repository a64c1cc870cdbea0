// Package importer reads Netscape bookmark HTML (the format every browser
// exports) into the tree store.
package importer

import (
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/mangamark/mangamark/internal/tree"
)

// Result reports what an import created.
type Result struct {
	Folders   int
	Bookmarks int
}

// Import parses Netscape bookmark HTML from r and recreates the hierarchy
// under parentID. The full nesting is preserved in the tree even though
// the repository only models one subfolder level.
func Import(s tree.Store, parentID string, r io.Reader) (Result, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Result{}, err
	}

	var res Result
	var firstErr error

	// Stack of destination folder ids; h3 folders are pushed when their
	// DL begins, mirroring the format's h3-then-dl structure.
	stack := []string{parentID}
	var pendingFolder string

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if firstErr != nil {
			return
		}

		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				name := textContent(n)
				if name == "" {
					return
				}
				folder, err := s.Create(tree.CreateParams{
					ParentID: stack[len(stack)-1],
					Title:    name,
				})
				if err != nil {
					firstErr = err
					return
				}
				res.Folders++
				pendingFolder = folder.ID
				return

			case "a":
				href := attr(n, "href")
				if href == "" {
					return
				}
				name := textContent(n)
				if name == "" {
					name = href
				}

				var added time.Time
				if addDate := attr(n, "add_date"); addDate != "" {
					if ts, err := strconv.ParseInt(addDate, 10, 64); err == nil {
						added = time.Unix(ts, 0)
					}
				}

				if _, err := s.Create(tree.CreateParams{
					ParentID:  stack[len(stack)-1],
					Title:     name,
					URL:       href,
					DateAdded: added,
				}); err != nil {
					firstErr = err
					return
				}
				res.Bookmarks++
				return

			case "dl":
				pushed := false
				if pendingFolder != "" {
					stack = append(stack, pendingFolder)
					pendingFolder = ""
					pushed = true
				}

				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}

				if pushed {
					stack = stack[:len(stack)-1]
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return res, firstErr
}

// textContent returns the text content of a node.
func textContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// attr returns the value of an attribute, case-insensitive.
func attr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, a := range n.Attr {
		if strings.ToLower(a.Key) == key {
			return a.Val
		}
	}
	return ""
}
