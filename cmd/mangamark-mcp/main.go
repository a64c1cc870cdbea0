package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/mangamark/mangamark/internal/mark"
	"github.com/mangamark/mangamark/internal/mcpserver"
	"github.com/mangamark/mangamark/internal/notify"
	"github.com/mangamark/mangamark/internal/settings"
	"github.com/mangamark/mangamark/internal/tree"
)

func main() {
	_ = godotenv.Load()

	dataDir := flag.String("data-dir", os.Getenv("MANGAMARK_DATA_DIR"), "directory for the bookmark database and settings")
	flag.Parse()

	dbPath, settingsPath, err := dataPaths(*dataDir)
	if err != nil {
		log.Fatalf("mangamark-mcp: %v", err)
	}

	store, err := tree.NewSQLiteStore(dbPath)
	if err != nil {
		log.Fatalf("mangamark-mcp: %v", err)
	}
	defer store.Close()

	sets := settings.NewFileStore(settingsPath)
	bridge := notify.NewBridge(store)
	defer bridge.Close()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)
	repo := mark.New(mark.Params{
		Store:    store,
		Settings: sets,
		Bridge:   bridge,
		Logger:   logger,
	})

	mcpServer := server.NewMCPServer(
		"mangamark-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpserver.RegisterReadTools(mcpServer, repo)
	mcpserver.RegisterWriteTools(mcpServer, repo)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("mangamark-mcp: %v", err)
	}
}

func dataPaths(dir string) (dbPath, settingsPath string, err error) {
	if dir == "" {
		dbPath, err = tree.DefaultSQLitePath()
		if err != nil {
			return "", "", err
		}
		settingsPath, err = settings.DefaultPath()
		if err != nil {
			return "", "", err
		}
		return dbPath, settingsPath, nil
	}
	return filepath.Join(dir, "bookmarks.db"), filepath.Join(dir, "settings.json"), nil
}
