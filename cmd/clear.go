package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/moodctl/internal/ui"
	"github.com/spf13/cobra"
)

var forceClear bool

// confirmFunc asks a question and, if warning is set, a second one.
type confirmFunc func(prompt, warning string) (bool, error)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all mood entries",
	Long:  "Permanently delete every stored entry. Requires two confirmations unless --force is used.",
	Example: `  moodctl clear
  moodctl clear --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var confirm confirmFunc
		if ui.IsInteractive() {
			theme := ui.ResolveTheme(appConfig.Theme)
			confirm = func(prompt, warning string) (bool, error) {
				return ui.Confirm(prompt, warning, theme)
			}
		}
		return clearRun(os.Stdout, forceClear, confirm)
	},
}

func init() {
	clearCmd.Flags().BoolVarP(&forceClear, "force", "f", false, "skip confirmation prompts")
	rootCmd.AddCommand(clearCmd)
}

// clearRun deletes everything. confirm is nil when no terminal is attached.
func clearRun(w io.Writer, force bool, confirm confirmFunc) error {
	n, err := svc.Count()
	if err != nil {
		return err
	}

	if !force {
		if confirm == nil {
			return userErrorf("refusing to delete without confirmation; use --force")
		}
		ok, err := confirm(
			fmt.Sprintf("Delete all %d entries?", n),
			"This cannot be undone. Are you sure?",
		)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	if err := svc.DeleteAllEntries(); err != nil {
		return err
	}

	if jsonOutput {
		return ui.FormatJSON(w, ui.ClearResult{Deleted: n, Cleared: true})
	}
	ui.FormatCleared(w, n)
	return nil
}
