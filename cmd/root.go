package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chris-regnier/moodctl/internal/config"
	"github.com/chris-regnier/moodctl/internal/journal"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/storage/markdown"
	"github.com/chris-regnier/moodctl/internal/storage/memory"
	"github.com/chris-regnier/moodctl/internal/storage/sqlite"
	"github.com/chris-regnier/moodctl/internal/ui"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X".
var version = "dev"

var (
	cfgFile        string
	jsonOutput     bool
	storageBackend string
	appConfig      *config.Config
	store          storage.Storage
	svc            *journal.Service
	logger         *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "moodctl",
	Short: "A daily mood and stress journal",
	Long: `moodctl records how you feel each day: a mood, a stress level from 0 to 10
and an optional journal note. Only the five most recent days are kept.

Run without a subcommand to see your recent history and a motivational quote.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		if storageBackend != "" {
			appConfig.Storage = storageBackend
		}

		level, err := appConfig.SlogLevel()
		if err != nil {
			return err
		}
		logger = newLogger(os.Stderr, level)

		store, err = openStore(appConfig)
		if err != nil {
			return err
		}
		svc = journal.New(store, journal.WithLogger(logger))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store == nil {
			return nil
		}
		err := store.Close()
		store = nil
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardRun(os.Stdout, ui.IsInteractive())
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "storage backend (sqlite|markdown|memory)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).
		With("app", "moodctl")
}

// openStore initializes the configured storage backend.
func openStore(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage {
	case "sqlite":
		s, err := sqlite.New(cfg.DataDir, cfg.SQLiteDriver)
		if err != nil {
			return nil, fmt.Errorf("initializing sqlite storage: %w", err)
		}
		return s, nil
	case "markdown":
		s, err := markdown.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initializing markdown storage: %w", err)
		}
		return s, nil
	case "memory":
		return memory.New(), nil
	default:
		return nil, userErrorf("unknown storage backend: %s", cfg.Storage)
	}
}

// dashboardRun prints the recent history followed by a quote.
func dashboardRun(w io.Writer, interactive bool) error {
	h, err := svc.LoadHistory(appConfig.HistoryLimit)
	if err != nil {
		return err
	}
	q := svc.PickMotivationalQuote()

	if jsonOutput {
		return ui.FormatJSON(w, struct {
			journal.History
			Quote string `json:"quote"`
		}{h, q})
	}

	theme := ui.ResolveTheme(appConfig.Theme)
	if !interactive {
		ui.FormatEntryList(w, h.Entries)
		fmt.Fprintln(w)
		fmt.Fprintln(w, q)
		return nil
	}

	var buf bytes.Buffer
	ui.FormatHistory(&buf, h, theme, ui.TerminalWidth(80))
	fmt.Fprintln(&buf)
	ui.FormatQuote(&buf, q, theme)
	return ui.OutputOrPage(w, "moodctl", buf.String(), theme, false)
}
