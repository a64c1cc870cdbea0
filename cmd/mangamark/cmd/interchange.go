package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mangamark/mangamark/internal/exporter"
	"github.com/mangamark/mangamark/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <file.html>",
	Short: "Import a browser bookmark HTML export",
	Long: `Import a Netscape bookmark HTML file (the format browsers export)
under the root folder. Hierarchy is preserved as-is; only titles in the
mangamark format become readable records, everything else shows up as
invalid in listings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rootID, err := repo.RootID()
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		res, err := importer.Import(store, rootID, f)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d folder(s) and %d bookmark(s)\n", res.Folders, res.Bookmarks)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export the root folder as bookmark HTML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rootID, err := repo.RootID()
		if err != nil {
			return err
		}

		out, err := exporter.ExportHTML(store, rootID)
		if err != nil {
			return err
		}

		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			path, err = exporter.DefaultExportPath()
			if err != nil {
				return err
			}
		}

		if err := os.WriteFile(path, []byte(out), 0644); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}
