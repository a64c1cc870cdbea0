package importer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/mangamark/mangamark/internal/importer"
	"github.com/mangamark/mangamark/internal/tree"
)

const sampleExport = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><H3>One Piece</H3>
    <DL><p>
        <DT><A HREF="https://example.com/op/1050" ADD_DATE="1700000000">One Piece - Chapter 1050 - Tags shonen</A>
        <DT><H3>Completed</H3>
        <DL><p>
            <DT><A HREF="https://example.com/done/3">Done - Chapter 3</A>
        </DL><p>
    </DL><p>
    <DT><A HREF="https://example.com/loose">Loose Link</A>
</DL><p>
`

func TestImport_RecreatesHierarchy(t *testing.T) {
	s := tree.NewMemoryStore()

	res, err := importer.Import(s, tree.RootID, strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if res.Folders != 2 {
		t.Errorf("Folders = %d, want 2", res.Folders)
	}
	if res.Bookmarks != 3 {
		t.Errorf("Bookmarks = %d, want 3", res.Bookmarks)
	}

	rootChildren, err := s.GetChildren(tree.RootID)
	if err != nil {
		t.Fatalf("GetChildren: %v", err)
	}
	if len(rootChildren) != 2 {
		t.Fatalf("root children = %d, want 2", len(rootChildren))
	}
	folder := rootChildren[0]
	if folder.Title != "One Piece" || !folder.IsFolder() {
		t.Fatalf("first root child = %+v", folder)
	}
	if rootChildren[1].Title != "Loose Link" {
		t.Errorf("second root child = %q", rootChildren[1].Title)
	}

	children, _ := s.GetChildren(folder.ID)
	if len(children) != 2 {
		t.Fatalf("folder children = %d, want 2", len(children))
	}
	bm := children[0]
	if bm.Title != "One Piece - Chapter 1050 - Tags shonen" {
		t.Errorf("bookmark title = %q", bm.Title)
	}
	if want := time.Unix(1700000000, 0); !bm.DateAdded.Equal(want) {
		t.Errorf("DateAdded = %v, want %v", bm.DateAdded, want)
	}

	sub := children[1]
	if sub.Title != "Completed" || !sub.IsFolder() {
		t.Fatalf("subfolder = %+v", sub)
	}
	subChildren, _ := s.GetChildren(sub.ID)
	if len(subChildren) != 1 || subChildren[0].Title != "Done - Chapter 3" {
		t.Errorf("subfolder children = %+v", subChildren)
	}
}

func TestImport_SkipsAnchorsWithoutHref(t *testing.T) {
	s := tree.NewMemoryStore()

	doc := `<DL><p><DT><A>no href</A><DT><A HREF="https://x">X</A></DL><p>`
	res, err := importer.Import(s, tree.RootID, strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if res.Bookmarks != 1 {
		t.Errorf("Bookmarks = %d, want 1", res.Bookmarks)
	}
}

func TestImport_EmptyTitleFallsBackToURL(t *testing.T) {
	s := tree.NewMemoryStore()

	doc := `<DL><p><DT><A HREF="https://example.com/x"></A></DL><p>`
	if _, err := importer.Import(s, tree.RootID, strings.NewReader(doc)); err != nil {
		t.Fatalf("Import: %v", err)
	}
	children, _ := s.GetChildren(tree.RootID)
	if len(children) != 1 || children[0].Title != "https://example.com/x" {
		t.Errorf("children = %+v", children)
	}
}
