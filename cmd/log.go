package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chris-regnier/moodctl/internal/editor"
	"github.com/chris-regnier/moodctl/internal/journal"
	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/ui"
	"github.com/spf13/cobra"
)

// errMissingMood is returned after the missing-mood warning has been shown.
var errMissingMood = userError{err: mood.ErrMissingMood}

type logOptions struct {
	mood    string
	stress  int
	date    string
	contact string
}

// logPrompts collects whatever the flags and arguments left out.
type logPrompts struct {
	pickMood func() (mood.Mood, error)
	compose  func(date string, m mood.Mood) (string, error)
}

var logOpts logOptions

var logCmd = &cobra.Command{
	Use:   "log [journal text...]",
	Short: "Record today's mood",
	Long: `Record a mood, a stress level and an optional journal note for a day.

If journal text is provided as arguments, it is used directly.
If "-" is provided, the text is read from stdin.
If no text is provided and a terminal is attached, your editor is opened.
Without --mood a terminal shows a mood picker.

Only the five entries with the most recent dates are kept: logging a sixth
removes the oldest.`,
	Example: `  moodctl log --mood happy --stress 3 "Great walk this morning"
  moodctl log --mood stressed --stress 8 --date 2024-05-01
  echo "long day" | moodctl log --mood sad -
  moodctl log`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var prompts *logPrompts
		if ui.IsInteractive() {
			theme := ui.ResolveTheme(appConfig.Theme)
			prompts = &logPrompts{
				pickMood: func() (mood.Mood, error) { return ui.PickMood(theme) },
				compose: func(date string, m mood.Mood) (string, error) {
					return editor.Compose(editor.ResolveEditor(appConfig.Editor), editor.Hint(date, m.Label()))
				},
			}
		}
		return logRun(os.Stdout, os.Stdin, args, logOpts, prompts)
	},
}

func init() {
	logCmd.Flags().StringVarP(&logOpts.mood, "mood", "m", "", "mood ("+mood.Names()+")")
	logCmd.Flags().IntVarP(&logOpts.stress, "stress", "s", 5, "stress level from 0 (none) to 10 (very stressed)")
	logCmd.Flags().StringVarP(&logOpts.date, "date", "d", "", "day of the entry as YYYY-MM-DD (default today)")
	logCmd.Flags().StringVar(&logOpts.contact, "contact", "", "trusted contact email (stored only)")
	rootCmd.AddCommand(logCmd)
}

// logRun submits one entry. prompts is nil when no terminal is attached.
func logRun(w io.Writer, stdin io.Reader, args []string, opts logOptions, prompts *logPrompts) error {
	var date time.Time
	if opts.date != "" {
		d, err := mood.ParseDate(opts.date)
		if err != nil {
			return userErrorf("invalid --date %q: expected YYYY-MM-DD", opts.date)
		}
		date = d
	}
	if err := mood.ValidateStress(opts.stress); err != nil {
		return userError{err: err}
	}

	moodName := opts.mood
	if moodName == "" && prompts != nil && prompts.pickMood != nil {
		m, err := prompts.pickMood()
		if errors.Is(err, ui.ErrPickerCancelled) {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
		moodName = string(m)
	}

	var text string
	switch {
	case len(args) == 1 && args[0] == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = strings.TrimSpace(string(data))
	case len(args) > 0:
		text = strings.Join(args, " ")
	case prompts != nil && prompts.compose != nil && moodName != "":
		m, err := mood.ParseMood(moodName)
		if err != nil {
			return userError{err: err}
		}
		day := date
		if day.IsZero() {
			day = svc.Today()
		}
		text, err = prompts.compose(day.Format(mood.DateLayout), m)
		if err != nil {
			return editorError{err: err}
		}
	}

	res, err := svc.SubmitEntry(journal.Submission{
		Date:        date,
		Mood:        moodName,
		StressLevel: opts.stress,
		Journal:     text,
		Contact:     opts.contact,
	})
	if err != nil {
		return err
	}

	if res == journal.SubmitMissingMood {
		if jsonOutput {
			ui.FormatJSON(w, ui.SubmitOutput{Result: string(res)})
		} else {
			ui.FormatMissingMood(w)
		}
		return errMissingMood
	}

	if date.IsZero() {
		date = svc.Today()
	}
	dateStr := date.Format(mood.DateLayout)
	if jsonOutput {
		return ui.FormatJSON(w, ui.SubmitOutput{Result: string(res), Date: dateStr})
	}
	m, _ := mood.ParseMood(moodName)
	ui.FormatEntrySaved(w, dateStr, m, opts.stress)
	return nil
}
