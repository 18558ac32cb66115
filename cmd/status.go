package cmd

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/ui"
	"github.com/spf13/cobra"
)

// statusData holds the template data for status formatting.
type statusData struct {
	Count       int    `json:"count"`
	HasToday    bool   `json:"has_today"`
	Mood        string `json:"mood,omitempty"`
	Emoji       string `json:"-"`
	StressLevel int    `json:"stress_level"`
	Date        string `json:"date,omitempty"`
	Backend     string `json:"backend"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a one-line journal status",
	Long: `Show a one-line summary for shell prompt integration: whether today is
logged, the latest mood and stress level, and the number of stored entries.

Use --env to output shell environment variable assignments.
Use --format with a Go template for custom output.`,
	Example: `  moodctl status
  moodctl status --env
  moodctl status --format "{{.Emoji}} {{.StressLevel}}"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		envFlag, _ := cmd.Flags().GetBool("env")
		formatFlag, _ := cmd.Flags().GetString("format")

		data, err := buildStatusData()
		if err != nil {
			return err
		}

		switch {
		case jsonOutput:
			return ui.FormatJSON(os.Stdout, data)
		case envFlag:
			return outputEnv(os.Stdout, data)
		case formatFlag != "":
			return outputTemplate(os.Stdout, data, formatFlag)
		default:
			return outputDefault(os.Stdout, data)
		}
	},
}

func buildStatusData() (statusData, error) {
	h, err := svc.LoadHistory(1)
	if err != nil {
		return statusData{}, err
	}
	n, err := svc.Count()
	if err != nil {
		return statusData{}, err
	}

	data := statusData{Count: n, Backend: appConfig.Storage}
	if len(h.Entries) > 0 {
		latest := h.Entries[0]
		data.Mood = string(latest.Mood)
		data.Emoji = latest.Mood.Emoji()
		data.StressLevel = latest.StressLevel
		data.Date = latest.DateString()
		data.HasToday = data.Date == svc.Today().Format(mood.DateLayout)
	}
	return data, nil
}

func outputEnv(w io.Writer, data statusData) error {
	fmt.Fprintf(w, "export MOODCTL_COUNT=%q\n", fmt.Sprintf("%d", data.Count))
	fmt.Fprintf(w, "export MOODCTL_TODAY=%q\n", fmt.Sprintf("%t", data.HasToday))
	if data.Mood != "" {
		fmt.Fprintf(w, "export MOODCTL_MOOD=%q\n", data.Mood)
		fmt.Fprintf(w, "export MOODCTL_STRESS=%q\n", fmt.Sprintf("%d", data.StressLevel))
	}
	return nil
}

func outputTemplate(w io.Writer, data statusData, format string) error {
	tmpl, err := template.New("status").Parse(format)
	if err != nil {
		return userErrorf("invalid format template: %v", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return userErrorf("executing format template: %v", err)
	}
	fmt.Fprintln(w)
	return nil
}

func outputDefault(w io.Writer, data statusData) error {
	if data.Count == 0 {
		fmt.Fprintln(w, "no entries")
		return nil
	}
	marker := "·"
	if data.HasToday {
		marker = "✓"
	}
	fmt.Fprintf(w, "%s %s %s %d/10 (%d)\n", marker, data.Emoji, data.Mood, data.StressLevel, data.Count)
	return nil
}

func init() {
	statusCmd.Flags().Bool("env", false, "output shell environment variable assignments")
	statusCmd.Flags().String("format", "", "Go template format string")
	rootCmd.AddCommand(statusCmd)
}
