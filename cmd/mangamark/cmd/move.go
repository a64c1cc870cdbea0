package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mangamark/mangamark/internal/mark"
)

var (
	moveFolder string
	moveStatus string
)

var moveCmd = &cobra.Command{
	Use:   "move <bookmark-id>",
	Short: "Move a bookmark to a folder and/or reading status",
	Long: `Move a bookmark. A non-Reading status places it in that status
subfolder of the destination (creating the subfolder if needed);
"Reading" places it directly in the folder. Folders left empty by the
move are cleaned up.

Examples:
  mangamark move 3f1c... --status Completed
  mangamark move 3f1c... --folder Seinen --status Reading`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		st, ok := mark.ParseStatus(moveStatus)
		if !ok {
			return fmt.Errorf("invalid status %q", moveStatus)
		}

		folderID := ""
		if moveFolder != "" {
			var err error
			folderID, err = repo.EnsureFolder(moveFolder)
			if err != nil {
				return err
			}
		} else {
			m, err := repo.Build()
			if err != nil {
				return err
			}
			for _, f := range m.Folders {
				for _, b := range f.AllBookmarks() {
					if b.ID == id {
						folderID = f.ID
					}
				}
			}
			if folderID == "" {
				return fmt.Errorf("bookmark %s not found in any folder", id)
			}
		}

		if err := repo.Move(id, folderID, st); err != nil {
			return err
		}
		fmt.Printf("Moved bookmark (%s)\n", st)
		return nil
	},
}

func init() {
	moveCmd.Flags().StringVarP(&moveFolder, "folder", "f", "", "destination folder (default: current folder)")
	moveCmd.Flags().StringVar(&moveStatus, "status", "", "new reading status (default Reading)")
	rootCmd.AddCommand(moveCmd)
}
