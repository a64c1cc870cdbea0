package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mangamark/mangamark/internal/mark"
)

var (
	addChapter string
	addURL     string
	addFolder  string
	addTags    []string
	addStatus  string
)

var addCmd = &cobra.Command{
	Use:   "add <content-title>",
	Short: "Add a reading-progress bookmark",
	Long: `Add a bookmark for a work. The stored bookmark title encodes the
content title, chapter and tags. Tags must not contain commas.

When --folder is omitted the destination is inferred from the URL's
domain: the folder already holding the most bookmarks on that host, or a
new folder named after the domain.

Examples:
  mangamark add "One Piece" --chapter 1050 --url https://example.com/op/1050 --tags shonen
  mangamark add "Berserk" -c 364 -u https://example.com/b/364 -f Seinen --status "On Hold"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, ok := mark.ParseStatus(addStatus)
		if !ok {
			return fmt.Errorf("invalid status %q", addStatus)
		}

		folderName := addFolder
		if folderName == "" {
			host := (mark.Bookmark{URL: addURL}).Host()
			if host == "" {
				return fmt.Errorf("--folder omitted and no domain could be derived from --url")
			}
			var err error
			folderName, err = repo.DefaultFolder(host)
			if err != nil {
				return err
			}
		}

		folderID, err := repo.EnsureFolder(folderName)
		if err != nil {
			return err
		}

		encoded, err := repo.Add(mark.AddParams{
			ContentTitle: args[0],
			Chapter:      addChapter,
			Tags:         addTags,
			URL:          addURL,
			FolderID:     folderID,
			Status:       st,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added %q to %s\n", encoded, folderName)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addChapter, "chapter", "c", "", "chapter number, integer or decimal")
	addCmd.Flags().StringVarP(&addURL, "url", "u", "", "page URL")
	addCmd.Flags().StringVarP(&addFolder, "folder", "f", "", "destination folder (default: inferred from the URL's domain)")
	addCmd.Flags().StringSliceVarP(&addTags, "tags", "t", nil, "tags, repeatable or comma-separated")
	addCmd.Flags().StringVar(&addStatus, "status", "", "reading status (default Reading)")
	addCmd.MarkFlagRequired("chapter")
	addCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(addCmd)
}
