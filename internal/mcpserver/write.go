package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mangamark/mangamark/internal/mark"
)

// RegisterWriteTools adds all mutating tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo *mark.Repo) {
	s.AddTool(addBookmarkTool(), addBookmarkHandler(repo))
	s.AddTool(moveBookmarkTool(), moveBookmarkHandler(repo))
	s.AddTool(removeBookmarkTool(), removeBookmarkHandler(repo))
}

// --- add_bookmark ---

func addBookmarkTool() mcp.Tool {
	return mcp.NewTool("add_bookmark",
		mcp.WithDescription("Add a reading-progress bookmark. The folder is created if it does not exist."),
		mcp.WithString("content_title",
			mcp.Description("Name of the work, e.g. One Piece"),
			mcp.Required(),
		),
		mcp.WithString("chapter",
			mcp.Description("Chapter number, integer or decimal"),
			mcp.Required(),
		),
		mcp.WithString("url",
			mcp.Description("Page URL"),
			mcp.Required(),
		),
		mcp.WithString("folder",
			mcp.Description("Top-level folder name. Omit to infer from the URL's domain."),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tags; tags must not contain commas."),
		),
		mcp.WithString("status",
			mcp.Description("Reading status. Defaults to Reading."),
		),
	)
}

func addBookmarkHandler(repo *mark.Repo) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		st, ok := mark.ParseStatus(req.GetString("status", ""))
		if !ok {
			return toolError(fmt.Errorf("invalid status %q", req.GetString("status", "")))
		}

		folderName := req.GetString("folder", "")
		if folderName == "" {
			b := mark.Bookmark{URL: req.GetString("url", "")}
			host := b.Host()
			if host == "" {
				return toolError(fmt.Errorf("folder omitted and domain could not be derived from url"))
			}
			var err error
			folderName, err = repo.DefaultFolder(host)
			if err != nil {
				return toolError(err)
			}
		}

		folderID, err := repo.EnsureFolder(folderName)
		if err != nil {
			return toolError(err)
		}

		encoded, err := repo.Add(mark.AddParams{
			ContentTitle: req.GetString("content_title", ""),
			Chapter:      req.GetString("chapter", ""),
			Tags:         splitList(req.GetString("tags", ""), ","),
			URL:          req.GetString("url", ""),
			FolderID:     folderID,
			Status:       st,
		})
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(fmt.Sprintf("Added %q to %s.", encoded, folderName)), nil
	}
}

// --- move_bookmark ---

func moveBookmarkTool() mcp.Tool {
	return mcp.NewTool("move_bookmark",
		mcp.WithDescription("Move a bookmark to a folder and/or reading status. Empty folders left behind are cleaned up."),
		mcp.WithString("id",
			mcp.Description("Bookmark node id (from find_title)"),
			mcp.Required(),
		),
		mcp.WithString("folder",
			mcp.Description("Destination top-level folder name. Omit to keep the current folder."),
		),
		mcp.WithString("status",
			mcp.Description("New reading status. Defaults to Reading."),
		),
	)
}

func moveBookmarkHandler(repo *mark.Repo) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		st, ok := mark.ParseStatus(req.GetString("status", ""))
		if !ok {
			return toolError(fmt.Errorf("invalid status %q", req.GetString("status", "")))
		}

		folderName := req.GetString("folder", "")
		var folderID string
		if folderName != "" {
			var err error
			folderID, err = repo.EnsureFolder(folderName)
			if err != nil {
				return toolError(err)
			}
		} else {
			var err error
			folderID, err = currentFolderID(repo, id)
			if err != nil {
				return toolError(err)
			}
		}

		if err := repo.Move(id, folderID, st); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Moved bookmark %s (%s).", id, st)), nil
	}
}

// currentFolderID finds the top-level folder currently holding the
// bookmark with the given node id.
func currentFolderID(repo *mark.Repo, id string) (string, error) {
	m, err := repo.Build()
	if err != nil {
		return "", err
	}
	for _, f := range m.Folders {
		for _, b := range f.AllBookmarks() {
			if b.ID == id {
				return f.ID, nil
			}
		}
	}
	return "", fmt.Errorf("bookmark %s not found in any folder", id)
}

// --- remove_bookmark ---

func removeBookmarkTool() mcp.Tool {
	return mcp.NewTool("remove_bookmark",
		mcp.WithDescription("Remove a bookmark. Empty folders left behind are cleaned up."),
		mcp.WithString("id",
			mcp.Description("Bookmark node id (from find_title)"),
			mcp.Required(),
		),
	)
}

func removeBookmarkHandler(repo *mark.Repo) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		if err := repo.Remove(id); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Removed bookmark %s.", id)), nil
	}
}
