package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mangamark/mangamark/internal/mark"
	"github.com/mangamark/mangamark/internal/notify"
	"github.com/mangamark/mangamark/internal/settings"
	"github.com/mangamark/mangamark/internal/tree"
)

var (
	dataDir  string
	logLevel string

	store  *tree.SQLiteStore
	sets   settings.Store
	bridge *notify.Bridge
	repo   *mark.Repo
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mangamark",
	Short: "Reading-progress bookmarks kept in a bookmark tree",
	Long: `mangamark tracks manga reading progress as specially titled bookmarks
inside a bookmark tree. Each bookmark title encodes the work's name,
chapter and tags; reading status is expressed by which subfolder holds
the bookmark.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		setupLogging(logLevel)

		dbPath, settingsPath, err := dataPaths()
		if err != nil {
			return err
		}

		store, err = tree.NewSQLiteStore(dbPath)
		if err != nil {
			return fmt.Errorf("opening bookmark store: %w", err)
		}
		sets = settings.NewFileStore(settingsPath)
		bridge = notify.NewBridge(store)

		repo = mark.New(mark.Params{
			Store:         store,
			Settings:      sets,
			Bridge:        bridge,
			Logger:        logger,
			FolderRemoved: folderRemoved,
		})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if bridge != nil {
			bridge.Close()
		}
		if store != nil {
			store.Close()
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		switch {
		case errors.Is(err, mark.ErrRootNotSet):
			fmt.Fprintln(os.Stderr, `No root folder is configured yet. Run "mangamark init <name>" to create one.`)
		case errors.Is(err, mark.ErrRootMissing):
			fmt.Fprintln(os.Stderr, `The configured root folder no longer exists. Run "mangamark init" again to repair.`)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory for the bookmark database and settings (default ~/.config/mangamark)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
}

func dataPaths() (dbPath, settingsPath string, err error) {
	dir := dataDir
	if dir == "" {
		dir = os.Getenv("MANGAMARK_DATA_DIR")
	}
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

func setupLogging(level string) {
	if level == "" {
		level = os.Getenv("MANGAMARK_LOG_LEVEL")
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(parseLogLevel(level))
}

func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// folderRemoved keeps the UI-owned grouping metadata consistent when
// cleanup deletes a top-level folder.
func folderRemoved(name string) {
	g, err := settings.LoadGroups(sets)
	if err != nil {
		logger.Warn().Err(err).Msg("loading groups after folder removal")
		return
	}
	if !g.RemoveFolder(name) {
		return
	}
	if err := settings.SaveGroups(sets, g); err != nil {
		logger.Warn().Err(err).Str("folder", name).Msg("updating groups after folder removal")
	}
}
