package mark_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mangamark/mangamark/internal/mark"
	"github.com/mangamark/mangamark/internal/notify"
	"github.com/mangamark/mangamark/internal/settings"
	"github.com/mangamark/mangamark/internal/tree"
)

// newRepo builds a repo over a fresh in-memory tree with a root folder
// already configured.
func newRepo(t *testing.T) (*mark.Repo, *tree.MemoryStore, string) {
	t.Helper()

	store := tree.NewMemoryStore()
	sets := settings.MemStore{}
	repo := mark.New(mark.Params{
		Store:    store,
		Settings: sets,
		Logger:   zerolog.Nop(),
	})

	rootID, err := repo.CreateRoot("Mangamark", tree.RootID)
	if err != nil {
		t.Fatalf("CreateRoot: %v", err)
	}
	return repo, store, rootID
}

// addBookmark is a test shortcut for creating a bookmark in a named
// folder, creating the folder as needed.
func addBookmark(t *testing.T, repo *mark.Repo, folder, ct, ch, url string, tags []string, st mark.Status) string {
	t.Helper()

	folderID, err := repo.EnsureFolder(folder)
	if err != nil {
		t.Fatalf("EnsureFolder(%q): %v", folder, err)
	}
	encoded, err := repo.Add(mark.AddParams{
		ContentTitle: ct,
		Chapter:      ch,
		Tags:         tags,
		URL:          url,
		FolderID:     folderID,
		Status:       st,
	})
	if err != nil {
		t.Fatalf("Add(%q): %v", ct, err)
	}
	return encoded
}

func TestRootID_NotSetVsMissing(t *testing.T) {
	store := tree.NewMemoryStore()
	sets := settings.MemStore{}
	repo := mark.New(mark.Params{Store: store, Settings: sets, Logger: zerolog.Nop()})

	if _, err := repo.RootID(); !errors.Is(err, mark.ErrRootNotSet) {
		t.Errorf("RootID with no setting = %v, want ErrRootNotSet", err)
	}
	if _, err := repo.Build(); !errors.Is(err, mark.ErrRootNotSet) {
		t.Errorf("Build with no setting = %v, want ErrRootNotSet", err)
	}

	rootID, err := repo.CreateRoot("Mangamark", tree.RootID)
	if err != nil {
		t.Fatalf("CreateRoot: %v", err)
	}
	if got, err := repo.RootID(); err != nil || got != rootID {
		t.Errorf("RootID = %q, %v; want %q, nil", got, err, rootID)
	}

	// Externally deleted root must surface as Missing, not NotSet.
	if err := store.Remove(rootID); err != nil {
		t.Fatalf("Remove root: %v", err)
	}
	if _, err := repo.RootID(); !errors.Is(err, mark.ErrRootMissing) {
		t.Errorf("RootID after deletion = %v, want ErrRootMissing", err)
	}
}

func TestCreateRoot_RejectsEmptyName(t *testing.T) {
	store := tree.NewMemoryStore()
	repo := mark.New(mark.Params{Store: store, Settings: settings.MemStore{}, Logger: zerolog.Nop()})

	if _, err := repo.CreateRoot("  ", tree.RootID); !errors.Is(err, mark.ErrEmptyName) {
		t.Errorf("CreateRoot(blank) = %v, want ErrEmptyName", err)
	}
}

func TestAdd_RejectsChapterOutsideTitleGrammar(t *testing.T) {
	repo, _, _ := newRepo(t)

	folderID, err := repo.EnsureFolder("Action")
	if err != nil {
		t.Fatalf("EnsureFolder: %v", err)
	}

	for _, chapter := range []string{"twelve", "", "1.2.3", "12a", " 12", "12."} {
		t.Run("chapter "+chapter, func(t *testing.T) {
			_, err := repo.Add(mark.AddParams{
				ContentTitle: "One Piece",
				Chapter:      chapter,
				URL:          "https://example.com/op",
				FolderID:     folderID,
			})
			if !errors.Is(err, mark.ErrInvalidChapter) {
				t.Errorf("Add(chapter %q) = %v, want ErrInvalidChapter", chapter, err)
			}
		})
	}

	// Nothing unreadable was persisted.
	m := build(t, repo)
	if len(m.Invalid) != 0 {
		t.Errorf("Invalid = %+v, want none", m.Invalid)
	}
	if f := m.Folder("Action"); f == nil || len(f.AllBookmarks()) != 0 {
		t.Errorf("folder = %+v, want empty", f)
	}

	if _, err := repo.Add(mark.AddParams{
		ContentTitle: "One Piece",
		Chapter:      "1050.5",
		URL:          "https://example.com/op",
		FolderID:     folderID,
	}); err != nil {
		t.Errorf("Add(decimal chapter) = %v", err)
	}
}

func TestBuild_CollectsInvalidInsteadOfDropping(t *testing.T) {
	repo, store, _ := newRepo(t)

	addBookmark(t, repo, "Action", "One Piece", "1050", "https://a.com/op", nil, mark.StatusReading)

	// A foreign bookmark with an undecodable title.
	folderID, _, err := repo.FolderID("Action")
	if err != nil {
		t.Fatalf("FolderID: %v", err)
	}
	if _, err := store.Create(tree.CreateParams{
		ParentID: folderID,
		Title:    "just some page",
		URL:      "https://foreign.example",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	m, err := repo.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	f := m.Folder("Action")
	if f == nil {
		t.Fatal("folder Action missing from model")
	}
	if len(f.Bookmarks) != 1 {
		t.Errorf("expected 1 decoded bookmark, got %d", len(f.Bookmarks))
	}
	if len(m.Invalid) != 1 {
		t.Fatalf("expected 1 invalid entry, got %d", len(m.Invalid))
	}
	if m.Invalid[0].Title != "just some page" || m.Invalid[0].Folder != "Action" {
		t.Errorf("Invalid[0] = %+v", m.Invalid[0])
	}
}

func TestBuild_OneLevelSubfolderModeling(t *testing.T) {
	repo, store, _ := newRepo(t)

	addBookmark(t, repo, "Action", "One Piece", "1050", "https://a.com/op", nil, mark.StatusCompleted)

	// A folder inside the status subfolder is not modeled; its contents
	// stay invisible rather than invalid.
	f := build(t, repo).Folder("Action")
	if f == nil {
		t.Fatal("folder Action missing")
	}
	sub := f.Subfolder(mark.StatusCompleted)
	if sub == nil {
		t.Fatal("Completed subfolder missing")
	}
	deep, err := store.Create(tree.CreateParams{ParentID: sub.ID, Title: "deeper"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := store.Create(tree.CreateParams{
		ParentID: deep.ID,
		Title:    "Hidden - Chapter 1",
		URL:      "https://a.com/h",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	m := build(t, repo)
	f = m.Folder("Action")
	if got := len(f.Subfolder(mark.StatusCompleted).Bookmarks); got != 1 {
		t.Errorf("Completed bookmarks = %d, want 1", got)
	}
	if len(m.Invalid) != 0 {
		t.Errorf("deep nodes should be invisible, not invalid: %+v", m.Invalid)
	}
}

func TestDefaultFolder_Inference(t *testing.T) {
	repo, _, _ := newRepo(t)

	for i := 0; i < 3; i++ {
		addBookmark(t, repo, "X", "XTitle", "1", "https://a.com/x", nil, mark.StatusReading)
	}
	for i := 0; i < 5; i++ {
		addBookmark(t, repo, "Y", "YTitle", "1", "https://www.a.com/y", nil, mark.StatusReading)
	}
	addBookmark(t, repo, "Z", "ZTitle", "1", "https://b.com/z", nil, mark.StatusReading)

	tests := []struct {
		name   string
		domain string
		want   string
	}{
		{name: "strict max wins", domain: "a.com", want: "Y"},
		{name: "www stripped from input", domain: "www.a.com", want: "Y"},
		{name: "single folder domain", domain: "b.com", want: "Z"},
		{name: "no match falls back to domain", domain: "c.com", want: "c.com"},
		{name: "no match strips www", domain: "www.c.com", want: "c.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.DefaultFolder(tt.domain)
			if err != nil {
				t.Fatalf("DefaultFolder: %v", err)
			}
			if got != tt.want {
				t.Errorf("DefaultFolder(%q) = %q, want %q", tt.domain, got, tt.want)
			}
		})
	}
}

func TestDefaultFolder_TieFavorsTreeOrder(t *testing.T) {
	repo, _, _ := newRepo(t)

	addBookmark(t, repo, "First", "A", "1", "https://tie.com/a", nil, mark.StatusReading)
	addBookmark(t, repo, "Second", "B", "1", "https://tie.com/b", nil, mark.StatusReading)

	got, err := repo.DefaultFolder("tie.com")
	if err != nil {
		t.Fatalf("DefaultFolder: %v", err)
	}
	if got != "First" {
		t.Errorf("tie should favor the first folder in tree order, got %q", got)
	}
}

func TestAllTags_UnionInTreeOrder(t *testing.T) {
	repo, _, _ := newRepo(t)

	addBookmark(t, repo, "A", "T1", "1", "https://a.com/1", []string{"shonen", "pirates"}, mark.StatusReading)
	addBookmark(t, repo, "A", "T2", "2", "https://a.com/2", []string{"pirates", "Long"}, mark.StatusCompleted)
	addBookmark(t, repo, "B", "T3", "3", "https://b.com/3", []string{"seinen"}, mark.StatusReading)

	tags, err := repo.AllTags()
	if err != nil {
		t.Fatalf("AllTags: %v", err)
	}

	want := []string{"shonen", "pirates", "Long", "seinen"}
	if len(tags) != len(want) {
		t.Fatalf("AllTags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("AllTags[%d] = %q, want %q", i, tags[i], want[i])
		}
	}
}

func TestStatusFolderID_RejectsReading(t *testing.T) {
	repo, _, _ := newRepo(t)
	folderID, err := repo.EnsureFolder("Action")
	if err != nil {
		t.Fatalf("EnsureFolder: %v", err)
	}

	if _, err := repo.StatusFolderID(folderID, mark.StatusReading); !errors.Is(err, mark.ErrInvalidStatus) {
		t.Errorf("StatusFolderID(Reading) = %v, want ErrInvalidStatus", err)
	}
	if _, err := repo.StatusFolderID(folderID, mark.Status("Dropped")); !errors.Is(err, mark.ErrInvalidStatus) {
		t.Errorf("StatusFolderID(Dropped) = %v, want ErrInvalidStatus", err)
	}

	id1, err := repo.StatusFolderID(folderID, mark.StatusOnHold)
	if err != nil {
		t.Fatalf("StatusFolderID: %v", err)
	}
	id2, err := repo.StatusFolderID(folderID, mark.StatusOnHold)
	if err != nil {
		t.Fatalf("StatusFolderID: %v", err)
	}
	if id1 != id2 {
		t.Error("second resolution should reuse the existing subfolder")
	}
}

func TestRemove_CascadesUpToRoot(t *testing.T) {
	var removedFolders []string

	store := tree.NewMemoryStore()
	sets := settings.MemStore{}
	repo := mark.New(mark.Params{
		Store:    store,
		Settings: sets,
		Logger:   zerolog.Nop(),
		FolderRemoved: func(name string) {
			removedFolders = append(removedFolders, name)
		},
	})
	if _, err := repo.CreateRoot("Mangamark", tree.RootID); err != nil {
		t.Fatalf("CreateRoot: %v", err)
	}

	addBookmark(t, repo, "Action", "One Piece", "1", "https://a.com/1", nil, mark.StatusCompleted)

	m := build(t, repo)
	sub := m.Folder("Action").Subfolder(mark.StatusCompleted)
	if sub == nil || len(sub.Bookmarks) != 1 {
		t.Fatal("setup: expected one completed bookmark")
	}

	// Removing the last bookmark removes the subfolder, then the now
	// empty top-level folder, and stops at root.
	if err := repo.Remove(sub.Bookmarks[0].ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	m = build(t, repo)
	if len(m.Folders) != 0 {
		t.Errorf("expected no folders left, got %+v", m.Folders)
	}
	if _, err := repo.RootID(); err != nil {
		t.Errorf("root must survive cleanup: %v", err)
	}
	if len(removedFolders) != 1 || removedFolders[0] != "Action" {
		t.Errorf("FolderRemoved calls = %v, want [Action]", removedFolders)
	}
}

func TestRemove_StopsAtNonEmptyFolder(t *testing.T) {
	repo, _, _ := newRepo(t)

	addBookmark(t, repo, "Action", "One Piece", "1", "https://a.com/1", nil, mark.StatusReading)
	addBookmark(t, repo, "Action", "Naruto", "700", "https://a.com/2", nil, mark.StatusReading)

	m := build(t, repo)
	if err := repo.Remove(m.Folder("Action").Bookmarks[0].ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	m = build(t, repo)
	f := m.Folder("Action")
	if f == nil {
		t.Fatal("folder with remaining bookmark must survive")
	}
	if len(f.Bookmarks) != 1 {
		t.Errorf("remaining bookmarks = %d, want 1", len(f.Bookmarks))
	}
}

func TestMove_StatusTransitionsPreserveTags(t *testing.T) {
	repo, _, _ := newRepo(t)

	addBookmark(t, repo, "Action", "One Piece", "1050", "https://a.com/op", []string{"shonen"}, mark.StatusReading)

	m := build(t, repo)
	f := m.Folder("Action")
	id := f.Bookmarks[0].ID

	// reading -> completed -> reading: any direction is allowed and the
	// encoded tags ride along untouched.
	if err := repo.Move(id, f.ID, mark.StatusCompleted); err != nil {
		t.Fatalf("Move to Completed: %v", err)
	}

	m = build(t, repo)
	f = m.Folder("Action")
	if len(f.Bookmarks) != 0 {
		t.Errorf("main bookmarks after move = %d, want 0", len(f.Bookmarks))
	}
	sub := f.Subfolder(mark.StatusCompleted)
	if sub == nil || len(sub.Bookmarks) != 1 {
		t.Fatal("expected the bookmark in Completed")
	}
	got := sub.Bookmarks[0]
	if got.Status != mark.StatusCompleted {
		t.Errorf("Status = %q, want Completed", got.Status)
	}
	if len(got.Record.Tags) != 1 || got.Record.Tags[0] != "shonen" {
		t.Errorf("Tags = %v, want [shonen]", got.Record.Tags)
	}

	if err := repo.Move(id, f.ID, mark.StatusReading); err != nil {
		t.Fatalf("Move back to Reading: %v", err)
	}
	m = build(t, repo)
	f = m.Folder("Action")
	if len(f.Bookmarks) != 1 {
		t.Errorf("main bookmarks after move back = %d, want 1", len(f.Bookmarks))
	}
	if f.Subfolder(mark.StatusCompleted) != nil {
		t.Error("emptied Completed subfolder should have been cleaned up")
	}
}

func TestFindByTitle_DirectionalContainment(t *testing.T) {
	repo, _, _ := newRepo(t)

	addBookmark(t, repo, "Action", "Foo Manga", "5", "https://a.com/foo", nil, mark.StatusReading)

	tests := []struct {
		name  string
		query string
		exact bool
		found bool
	}{
		{name: "tab title containing the record", query: "Chapter 5 - Foo Manga - Reader", found: true},
		{name: "query equal to the record", query: "Foo Manga", found: true},
		{name: "case insensitive", query: "chapter 6 FOO MANGA", found: true},
		{name: "record containing the query does not match", query: "Foo", found: false},
		{name: "exact hit", query: "foo manga", exact: true, found: true},
		{name: "exact rejects supersets", query: "Chapter 5 - Foo Manga", exact: true, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := repo.FindByTitle(tt.query, tt.exact)
			if err != nil {
				t.Fatalf("FindByTitle: %v", err)
			}
			if (match != nil) != tt.found {
				t.Errorf("FindByTitle(%q, exact=%v) found=%v, want %v", tt.query, tt.exact, match != nil, tt.found)
			}
			if match != nil && match.Bookmark.Record.ContentTitle != "Foo Manga" {
				t.Errorf("matched %q, want Foo Manga", match.Bookmark.Record.ContentTitle)
			}
		})
	}
}

func TestFindByTitle_FirstInTreeOrderWins(t *testing.T) {
	repo, _, _ := newRepo(t)

	addBookmark(t, repo, "A", "Same Name", "1", "https://a.com/1", nil, mark.StatusReading)
	addBookmark(t, repo, "B", "Same Name", "2", "https://b.com/2", nil, mark.StatusReading)

	match, err := repo.FindByTitle("reading Same Name now", false)
	if err != nil {
		t.Fatalf("FindByTitle: %v", err)
	}
	if match == nil {
		t.Fatal("expected a match")
	}
	if match.Folder != "A" {
		t.Errorf("matched folder %q, want A (first in tree order)", match.Folder)
	}
}

func TestFindByTitle_EmptyContentTitleNeedsExact(t *testing.T) {
	repo, store, _ := newRepo(t)

	// A foreign bookmark whose title decodes to an empty content title.
	// Containment against "" would match every query.
	folderID, err := repo.EnsureFolder("Action")
	if err != nil {
		t.Fatalf("EnsureFolder: %v", err)
	}
	if _, err := store.Create(tree.CreateParams{
		ParentID: folderID,
		Title:    " - Chapter 5",
		URL:      "https://a.com/odd",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	match, err := repo.FindByTitle("anything at all", false)
	if err != nil {
		t.Fatalf("FindByTitle: %v", err)
	}
	if match != nil {
		t.Errorf("substring search matched the empty content title: %+v", match)
	}

	match, err = repo.FindByTitle("", true)
	if err != nil {
		t.Fatalf("FindByTitle exact: %v", err)
	}
	if match == nil || match.Bookmark.Record.Chapter != "5" {
		t.Errorf("exact search = %+v, want the chapter 5 record", match)
	}
}

func TestReorderFolders(t *testing.T) {
	repo, store, rootID := newRepo(t)

	addBookmark(t, repo, "One", "T", "1", "https://a.com/1", nil, mark.StatusReading)
	addBookmark(t, repo, "Two", "T", "1", "https://a.com/2", nil, mark.StatusReading)
	addBookmark(t, repo, "Three", "T", "1", "https://a.com/3", nil, mark.StatusReading)

	// A loose bookmark directly in root moves to the front positions.
	if _, err := store.Create(tree.CreateParams{
		ParentID: rootID,
		Title:    "Loose - Chapter 1",
		URL:      "https://a.com/loose",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	t.Run("mismatch fails without mutating", func(t *testing.T) {
		err := repo.ReorderFolders([]string{"Three", "Two"})
		if !errors.Is(err, mark.ErrReorder) {
			t.Fatalf("ReorderFolders = %v, want ErrReorder", err)
		}
		var re *mark.ReorderError
		if !errors.As(err, &re) {
			t.Fatalf("error %v is not a *ReorderError", err)
		}
		if len(re.Missing) != 1 || re.Missing[0] != "One" {
			t.Errorf("Missing = %v, want [One]", re.Missing)
		}

		names := topFolderNames(t, store, rootID)
		want := []string{"One", "Two", "Three"}
		for i := range want {
			if names[i] != want[i] {
				t.Fatalf("order mutated on failed reorder: %v", names)
			}
		}
	})

	t.Run("unknown name is reported", func(t *testing.T) {
		err := repo.ReorderFolders([]string{"One", "Two", "Four"})
		var re *mark.ReorderError
		if !errors.As(err, &re) {
			t.Fatalf("ReorderFolders = %v, want *ReorderError", err)
		}
		if len(re.Extra) != 1 || re.Extra[0] != "Four" {
			t.Errorf("Extra = %v, want [Four]", re.Extra)
		}
	})

	t.Run("valid permutation applies", func(t *testing.T) {
		if err := repo.ReorderFolders([]string{"Three", "One", "Two"}); err != nil {
			t.Fatalf("ReorderFolders: %v", err)
		}

		children, err := store.GetChildren(rootID)
		if err != nil {
			t.Fatalf("GetChildren: %v", err)
		}
		if children[0].IsFolder() {
			t.Errorf("loose bookmark should sit first, got folder %q", children[0].Title)
		}

		names := topFolderNames(t, store, rootID)
		want := []string{"Three", "One", "Two"}
		for i := range want {
			if names[i] != want[i] {
				t.Errorf("folder order = %v, want %v", names, want)
				break
			}
		}
	})
}

func TestEndToEndScenario(t *testing.T) {
	store := tree.NewMemoryStore()
	sets := settings.MemStore{}
	repo := mark.New(mark.Params{Store: store, Settings: sets, Logger: zerolog.Nop()})

	if _, err := repo.CreateRoot("Mangamark", tree.RootID); err != nil {
		t.Fatalf("CreateRoot: %v", err)
	}

	folderID, err := repo.EnsureFolder("One Piece")
	if err != nil {
		t.Fatalf("EnsureFolder: %v", err)
	}
	encoded, err := repo.Add(mark.AddParams{
		ContentTitle: "One Piece",
		Chapter:      "1050",
		Tags:         []string{"shonen"},
		URL:          "https://reader.example/op/1050",
		FolderID:     folderID,
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if encoded != "One Piece - Chapter 1050 - Tags shonen" {
		t.Fatalf("encoded title = %q", encoded)
	}

	m := build(t, repo)
	id := m.Folder("One Piece").Bookmarks[0].ID

	if err := repo.Move(id, folderID, mark.StatusCompleted); err != nil {
		t.Fatalf("Move: %v", err)
	}

	m = build(t, repo)
	f := m.Folder("One Piece")
	if len(f.Bookmarks) != 0 {
		t.Errorf("main bookmarks = %d, want 0", len(f.Bookmarks))
	}
	sub := f.Subfolder(mark.StatusCompleted)
	if sub == nil {
		t.Fatal("Completed subfolder was not created")
	}
	if len(sub.Bookmarks) != 1 {
		t.Fatalf("Completed bookmarks = %d, want 1", len(sub.Bookmarks))
	}
	b := sub.Bookmarks[0]
	if len(b.Record.Tags) != 1 || b.Record.Tags[0] != "shonen" {
		t.Errorf("Tags = %v, want [shonen]", b.Record.Tags)
	}
}

func TestCompoundOpsEmitOneNotification(t *testing.T) {
	store := tree.NewMemoryStore()
	sets := settings.MemStore{}
	bridge := notify.NewBridge(store)
	defer bridge.Close()

	repo := mark.New(mark.Params{
		Store:    store,
		Settings: sets,
		Bridge:   bridge,
		Logger:   zerolog.Nop(),
	})
	if _, err := repo.CreateRoot("Mangamark", tree.RootID); err != nil {
		t.Fatalf("CreateRoot: %v", err)
	}
	addBookmark(t, repo, "Action", "One Piece", "1", "https://a.com/1", nil, mark.StatusReading)

	notifications := 0
	cancel := bridge.Listen(func() { notifications++ })
	defer cancel()

	m := build(t, repo)
	f := m.Folder("Action")

	// Move = subfolder creation + move + cleanup, still one notification.
	if err := repo.Move(f.Bookmarks[0].ID, f.ID, mark.StatusCompleted); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if notifications != 1 {
		t.Errorf("notifications after Move = %d, want 1", notifications)
	}

	m = build(t, repo)
	id := m.Folder("Action").Subfolder(mark.StatusCompleted).Bookmarks[0].ID

	// Remove cascades through two folders, still one notification.
	if err := repo.Remove(id); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if notifications != 2 {
		t.Errorf("notifications after Remove = %d, want 2", notifications)
	}
}

// --- helpers ---

func build(t *testing.T, repo *mark.Repo) *mark.Model {
	t.Helper()
	m, err := repo.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return m
}

func topFolderNames(t *testing.T, store tree.Store, rootID string) []string {
	t.Helper()
	children, err := store.GetChildren(rootID)
	if err != nil {
		t.Fatalf("GetChildren: %v", err)
	}
	var names []string
	for _, c := range children {
		if c.IsFolder() {
			names = append(names, c.Title)
		}
	}
	return names
}
