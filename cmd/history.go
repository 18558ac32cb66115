package cmd

import (
	"bytes"
	"io"
	"os"

	"github.com/chris-regnier/moodctl/internal/ui"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"list"},
	Short:   "Show recent entries, mood distribution and stress trend",
	Example: `  moodctl history
  moodctl history --limit 3
  moodctl history --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := historyLimit
		if !cmd.Flags().Changed("limit") {
			limit = appConfig.HistoryLimit
		}
		return historyRun(os.Stdout, limit, ui.TerminalWidth(80))
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 5, "maximum number of entries to show")
	rootCmd.AddCommand(historyCmd)
}

func historyRun(w io.Writer, limit, width int) error {
	h, err := svc.LoadHistory(limit)
	if err != nil {
		return err
	}
	if jsonOutput {
		return ui.FormatJSON(w, h)
	}

	theme := ui.ResolveTheme(appConfig.Theme)
	var buf bytes.Buffer
	ui.FormatHistory(&buf, h, theme, width)
	return ui.OutputOrPage(w, "Mood History", buf.String(), theme, false)
}
