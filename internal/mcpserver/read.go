// Package mcpserver exposes the bookmark repository over MCP so agents
// can read and update reading progress.
package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mangamark/mangamark/internal/mark"
	"github.com/mangamark/mangamark/internal/query"
)

// RegisterReadTools adds all read-only tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo *mark.Repo) {
	s.AddTool(listFoldersTool(), listFoldersHandler(repo))
	s.AddTool(listBookmarksTool(), listBookmarksHandler(repo))
	s.AddTool(findTitleTool(), findTitleHandler(repo))
	s.AddTool(listTagsTool(), listTagsHandler(repo))
	s.AddTool(suggestFolderTool(), suggestFolderHandler(repo))
}

// --- list_folders ---

func listFoldersTool() mcp.Tool {
	return mcp.NewTool("list_folders",
		mcp.WithDescription("List the top-level folders with their bookmark counts."),
	)
}

func listFoldersHandler(repo *mark.Repo) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		m, err := repo.Build()
		if err != nil {
			return toolError(err)
		}
		if len(m.Folders) == 0 {
			return mcp.NewToolResultText("No folders."), nil
		}

		var sb strings.Builder
		for _, f := range m.Folders {
			fmt.Fprintf(&sb, "%s  %d reading, %d total\n",
				f.Name, len(f.Bookmarks), len(f.AllBookmarks()))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_bookmarks ---

func listBookmarksTool() mcp.Tool {
	return mcp.NewTool("list_bookmarks",
		mcp.WithDescription("List bookmarks, optionally restricted to one folder and/or reading status, filtered by tags and search tokens, sorted."),
		mcp.WithString("folder",
			mcp.Description("Top-level folder name. Omit to list every folder."),
		),
		mcp.WithString("status",
			mcp.Description("Reading status scope: Reading, Completed, Plan to Read, Re-Reading or On Hold. Omit for all."),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tags; a bookmark must carry all of them."),
		),
		mcp.WithString("search",
			mcp.Description("Space-separated tokens; the content title must contain all of them."),
		),
		mcp.WithString("sort",
			mcp.Description("Sort mode: recent, oldest, az or za. Defaults to recent."),
		),
	)
}

func listBookmarksHandler(repo *mark.Repo) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		m, err := repo.Build()
		if err != nil {
			return toolError(err)
		}

		scope := query.All
		if raw := req.GetString("status", ""); raw != "" {
			st, ok := mark.ParseStatus(raw)
			if !ok {
				return toolError(fmt.Errorf("invalid status %q", raw))
			}
			if st == mark.StatusReading {
				scope = query.MainOnly
			} else {
				scope = query.StatusOnly(st)
			}
		}

		tags := splitList(req.GetString("tags", ""), ",")
		tokens := splitList(req.GetString("search", ""), " ")
		mode := query.SortMode(req.GetString("sort", string(query.Recent)))

		folders := m.Folders
		if name := req.GetString("folder", ""); name != "" {
			f := m.Folder(name)
			if f == nil {
				return toolError(fmt.Errorf("no folder named %q", name))
			}
			folders = []mark.Folder{*f}
		}

		var all []mark.Bookmark
		for _, f := range folders {
			bs, err := query.Apply(f, scope, tags, tokens, mode)
			if err != nil {
				return toolError(err)
			}
			all = append(all, bs...)
		}

		if len(all) == 0 {
			return mcp.NewToolResultText("No bookmarks."), nil
		}

		var sb strings.Builder
		for _, b := range all {
			fmt.Fprintf(&sb, "%s\n", formatBookmark(b))
		}
		if len(m.Invalid) > 0 {
			fmt.Fprintf(&sb, "\n%d bookmark(s) with unreadable titles were skipped.\n", len(m.Invalid))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- find_title ---

func findTitleTool() mcp.Tool {
	return mcp.NewTool("find_title",
		mcp.WithDescription("Find the bookmark whose content title matches the query. A non-exact query matches when it contains a stored title, so a full browser tab title works."),
		mcp.WithString("query",
			mcp.Description("Search text, e.g. a page title"),
			mcp.Required(),
		),
		mcp.WithBoolean("exact",
			mcp.Description("Require the query to equal the content title"),
		),
	)
}

func findTitleHandler(repo *mark.Repo) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q := req.GetString("query", "")
		if q == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		match, err := repo.FindByTitle(q, req.GetBool("exact", false))
		if err != nil {
			return toolError(err)
		}
		if match == nil {
			return mcp.NewToolResultText("No match."), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("%s\nfolder: %s\nstatus: %s\nid: %s",
			formatBookmark(match.Bookmark), match.Folder, match.Status, match.Bookmark.ID)), nil
	}
}

// --- list_tags ---

func listTagsTool() mcp.Tool {
	return mcp.NewTool("list_tags",
		mcp.WithDescription("List every tag in use."),
	)
}

func listTagsHandler(repo *mark.Repo) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tags, err := repo.AllTags()
		if err != nil {
			return toolError(err)
		}
		if len(tags) == 0 {
			return mcp.NewToolResultText("No tags."), nil
		}
		return mcp.NewToolResultText(strings.Join(tags, "\n")), nil
	}
}

// --- suggest_folder ---

func suggestFolderTool() mcp.Tool {
	return mcp.NewTool("suggest_folder",
		mcp.WithDescription("Suggest a destination folder, either from the domain a page lives on or by fuzzy-matching folder names."),
		mcp.WithString("domain",
			mcp.Description("Page hostname, e.g. mangadex.org. The folder holding the most bookmarks on this host wins."),
		),
		mcp.WithString("query",
			mcp.Description("Fuzzy text to match against folder names."),
		),
	)
}

func suggestFolderHandler(repo *mark.Repo) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		domain := req.GetString("domain", "")
		q := req.GetString("query", "")
		if domain == "" && q == "" {
			return toolError(fmt.Errorf("one of domain or query is required"))
		}

		if domain != "" {
			name, err := repo.DefaultFolder(domain)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(name), nil
		}

		m, err := repo.Build()
		if err != nil {
			return toolError(err)
		}
		names := make([]string, len(m.Folders))
		for i, f := range m.Folders {
			names[i] = f.Name
		}

		suggestions := query.SuggestFolders(names, q)
		if len(suggestions) == 0 {
			return mcp.NewToolResultText("No suggestions."), nil
		}

		var sb strings.Builder
		for _, s := range suggestions {
			fmt.Fprintf(&sb, "%s\n", s.Name)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatBookmark(b mark.Bookmark) string {
	s := fmt.Sprintf("%s  ch. %s  [%s/%s]", b.Record.ContentTitle, b.Record.Chapter, b.Folder, b.Status)
	if len(b.Record.Tags) > 0 {
		s += " tags: " + strings.Join(b.Record.Tags, ",")
	}
	return s + "  " + b.URL
}

func splitList(s, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, sep) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
