package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mangamark/mangamark/internal/tree"
)

var adoptTitle string

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Create or adopt the extension root folder",
	Long: `Set up the root folder all other commands operate under.

Without flags a new folder with the given name is created at the top of
the bookmark tree. With --use-existing an already existing folder with
that exact title is adopted instead.

Examples:
  mangamark init Mangamark
  mangamark init --use-existing Mangamark`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if adoptTitle != "" {
			nodes, err := store.SearchTitle(adoptTitle)
			if err != nil {
				return err
			}
			for _, n := range nodes {
				if n.IsFolder() {
					if err := repo.AdoptRoot(n.ID); err != nil {
						return err
					}
					fmt.Printf("Adopted existing folder %q as root (id %s)\n", adoptTitle, n.ID)
					return nil
				}
			}
			return fmt.Errorf("no folder titled %q found", adoptTitle)
		}

		if len(args) == 0 {
			return fmt.Errorf("a folder name is required (or use --use-existing)")
		}

		id, err := repo.CreateRoot(args[0], tree.RootID)
		if err != nil {
			return err
		}
		fmt.Printf("Created root folder %q (id %s)\n", args[0], id)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&adoptTitle, "use-existing", "", "adopt an existing folder with this exact title instead of creating one")
	rootCmd.AddCommand(initCmd)
}
