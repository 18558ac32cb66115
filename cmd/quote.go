package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/moodctl/internal/ui"
	"github.com/spf13/cobra"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print a motivational quote",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return quoteRun(os.Stdout, ui.IsInteractive())
	},
}

func init() {
	rootCmd.AddCommand(quoteCmd)
}

func quoteRun(w io.Writer, styled bool) error {
	q := svc.PickMotivationalQuote()
	switch {
	case jsonOutput:
		return ui.FormatJSON(w, map[string]string{"quote": q})
	case styled:
		ui.FormatQuote(w, q, ui.ResolveTheme(appConfig.Theme))
	default:
		fmt.Fprintln(w, q)
	}
	return nil
}
