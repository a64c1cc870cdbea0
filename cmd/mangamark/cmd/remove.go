package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <bookmark-id>",
	Short: "Remove a bookmark",
	Long: `Remove a bookmark by node id (shown by "mangamark find"). Folders
left empty by the removal are cleaned up, stopping at the root.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.Remove(args[0]); err != nil {
			return err
		}
		fmt.Println("Removed bookmark")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
