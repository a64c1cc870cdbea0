package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reorderCmd = &cobra.Command{
	Use:   "reorder <name>...",
	Short: "Reorder the top-level folders",
	Long: `Reorder the top-level folders into the given sequence. The names
must be exactly the current folders, just permuted; anything missing or
unknown fails before a single move happens. The moves themselves are not
transactional: if one fails midway the tree is left partially reordered
and the command reports it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.ReorderFolders(args); err != nil {
			return err
		}
		fmt.Println("Folders reordered")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reorderCmd)
}
