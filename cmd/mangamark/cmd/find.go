package cmd

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var (
	findExact bool
	findCopy  bool
	findOpen  bool
)

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Find a bookmark by content title",
	Long: `Find the bookmark matching the query and print it.

Matching is deliberately directional: the query matches when it contains
a stored content title, so pasting a full browser tab title like
"Chapter 5 - Foo Manga" finds the record "Foo Manga". Use --exact for
equality instead. The first match in tree order wins.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := strings.Join(args, " ")

		match, err := repo.FindByTitle(q, findExact)
		if err != nil {
			return err
		}
		if match == nil {
			fmt.Printf("No bookmark found for %q\n", q)
			return nil
		}

		b := match.Bookmark
		fmt.Printf("%s  ch. %s\n", b.Record.ContentTitle, b.Record.Chapter)
		fmt.Printf("  folder: %s  status: %s\n", match.Folder, match.Status)
		if len(b.Record.Tags) > 0 {
			fmt.Printf("  tags:   %s\n", strings.Join(b.Record.Tags, ","))
		}
		fmt.Printf("  url:    %s\n", b.URL)
		fmt.Printf("  id:     %s\n", b.ID)

		if findCopy {
			if err := clipboard.WriteAll(b.URL); err != nil {
				return fmt.Errorf("copying url: %w", err)
			}
			fmt.Println("URL copied to clipboard")
		}
		if findOpen {
			openURL(b.URL)
		}
		return nil
	},
}

// openURL opens a URL in the default browser.
func openURL(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	if cmd != nil {
		_ = cmd.Start()
	}
}

func init() {
	findCmd.Flags().BoolVar(&findExact, "exact", false, "require the query to equal the content title")
	findCmd.Flags().BoolVarP(&findCopy, "copy", "y", false, "copy the matched URL to the clipboard")
	findCmd.Flags().BoolVarP(&findOpen, "open", "o", false, "open the matched URL in the browser")
	rootCmd.AddCommand(findCmd)
}
