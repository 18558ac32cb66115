package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/chris-regnier/moodctl/internal/journal"
	"github.com/chris-regnier/moodctl/internal/mood"
)

// FormatEntrySaved formats a save confirmation message.
func FormatEntrySaved(w io.Writer, date string, m mood.Mood, stress int) {
	fmt.Fprintf(w, "Your entry has been saved: %s, %s, stress %d.\n", date, m.Label(), stress)
}

// FormatMissingMood formats the warning shown when no mood was selected.
func FormatMissingMood(w io.Writer) {
	labels := make([]string, len(mood.All))
	for i, m := range mood.All {
		labels[i] = m.Label()
	}
	fmt.Fprintf(w, "Please select a mood before saving (one of: %s).\n", strings.Join(labels, ", "))
}

// FormatCleared formats a delete-all confirmation message.
func FormatCleared(w io.Writer, n int) {
	label := "entries"
	if n == 1 {
		label = "entry"
	}
	fmt.Fprintf(w, "All entries have been deleted (%d %s).\n", n, label)
}

// FormatQuote formats the daily motivation line.
func FormatQuote(w io.Writer, q string, theme Theme) {
	fmt.Fprintln(w, theme.HeaderStyle().Render("Daily Motivation"))
	fmt.Fprintln(w, theme.AccentStyle().Render(q))
}

// FormatEntryList formats entries as a plain table, one line per entry.
func FormatEntryList(w io.Writer, entries []mood.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No mood entries found.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %-10s  %2d  %s\n",
			e.DateString(),
			string(e.Mood),
			e.StressLevel,
			e.Preview(60),
		)
	}
}

// FormatHistory renders the distribution chart, the stress trend and the
// entries with their journal text as markdown.
func FormatHistory(w io.Writer, h journal.History, theme Theme, width int) {
	if len(h.Entries) == 0 {
		fmt.Fprintln(w, "No mood entries found.")
		return
	}
	header := theme.HeaderStyle()

	fmt.Fprintln(w, header.Render("Mood Distribution"))
	fmt.Fprintln(w, RenderDistribution(h.Distribution, theme, 0))
	fmt.Fprintln(w)

	fmt.Fprintln(w, header.Render("Stress Level Trend")+"  "+theme.HelpStyle().Render(Sparkline(h.Trend)))
	fmt.Fprintln(w, RenderStressTrend(h.Trend, theme))
	fmt.Fprintln(w)

	fmt.Fprintln(w, header.Render(fmt.Sprintf("Your Journal Entries (Last %d)", len(h.Entries))))
	for i, e := range h.Entries {
		meta := []string{e.DateString(), e.Mood.Label(), fmt.Sprintf("stress %d", e.StressLevel)}
		if e.Contact != "" {
			meta = append(meta, e.Contact)
		}
		fmt.Fprintln(w, theme.AccentStyle().Render(strings.Join(meta, " · ")))
		if body := RenderMarkdown(e.Journal, width, theme.MarkdownStyle); body != "" {
			fmt.Fprintln(w, body)
		}
		if i < len(h.Entries)-1 {
			fmt.Fprintln(w)
		}
	}
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// SubmitOutput is the JSON representation of a submission outcome.
type SubmitOutput struct {
	Result string `json:"result"`
	Date   string `json:"date,omitempty"`
}

// ClearResult is the JSON representation of a delete-all outcome.
type ClearResult struct {
	Deleted int  `json:"deleted"`
	Cleared bool `json:"cleared"`
}
