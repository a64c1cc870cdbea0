package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mangamark/mangamark/internal/mark"
	"github.com/mangamark/mangamark/internal/query"
)

var (
	listFolder string
	listStatus string
	listTags   []string
	listSearch string
	listSort   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarks",
	Long: `List bookmarks across all folders, or one folder with --folder.

--status restricts to one reading status ("Reading" means only the main
folder bookmarks). --tags keeps bookmarks carrying every given tag;
--search keeps bookmarks whose content title contains every token.
Bookmarks with unreadable titles are reported on stderr, never silently
dropped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := repo.Build()
		if err != nil {
			return err
		}

		scope := query.All
		if listStatus != "" {
			st, ok := mark.ParseStatus(listStatus)
			if !ok {
				return fmt.Errorf("invalid status %q", listStatus)
			}
			if st == mark.StatusReading {
				scope = query.MainOnly
			} else {
				scope = query.StatusOnly(st)
			}
		}

		folders := m.Folders
		if listFolder != "" {
			f := m.Folder(listFolder)
			if f == nil {
				return fmt.Errorf("no folder named %q", listFolder)
			}
			folders = []mark.Folder{*f}
		}

		tokens := strings.Fields(listSearch)
		for _, f := range folders {
			bs, err := query.Apply(f, scope, listTags, tokens, query.SortMode(listSort))
			if err != nil {
				return err
			}
			if len(bs) == 0 {
				continue
			}

			fmt.Printf("%s\n", f.Name)
			for _, b := range bs {
				line := fmt.Sprintf("  %-30s ch. %-8s %s", b.Record.ContentTitle, b.Record.Chapter, b.Status)
				if len(b.Record.Tags) > 0 {
					line += "  [" + strings.Join(b.Record.Tags, ",") + "]"
				}
				fmt.Println(line)
			}
		}

		for _, inv := range m.Invalid {
			logger.Warn().
				Str("folder", inv.Folder).
				Str("title", inv.Title).
				Msg("bookmark title does not decode; skipped from listing")
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listFolder, "folder", "f", "", "limit to one top-level folder")
	listCmd.Flags().StringVar(&listStatus, "status", "", "limit to one reading status")
	listCmd.Flags().StringSliceVarP(&listTags, "tags", "t", nil, "require all of these tags")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "require all of these title tokens")
	listCmd.Flags().StringVar(&listSort, "sort", string(query.Recent), "sort mode: recent, oldest, az, za")
	rootCmd.AddCommand(listCmd)
}
