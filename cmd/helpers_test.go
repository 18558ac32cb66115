package cmd

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"regexp"
	"testing"
	"time"

	"github.com/chris-regnier/moodctl/internal/config"
	"github.com/chris-regnier/moodctl/internal/journal"
	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/storage/markdown"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// testToday is the day the test clock reports.
var testToday = time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)

func setupTestStore(t *testing.T) storage.Storage {
	t.Helper()
	s, err := markdown.New(t.TempDir())
	if err != nil {
		t.Fatalf("creating test storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func setupTestEnv(t *testing.T) {
	t.Helper()
	store = setupTestStore(t)
	appConfig = &config.Config{Storage: "markdown", HistoryLimit: 5}
	jsonOutput = false
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	svc = journal.New(store,
		journal.WithLogger(logger),
		journal.WithClock(fixedClock{now: testToday.Add(20 * time.Hour)}),
		journal.WithRandSource(rand.NewPCG(1, 2)),
	)
}

func mustSubmit(t *testing.T, daysAgo int, m mood.Mood, stress int, text string) {
	t.Helper()
	_, err := svc.SubmitEntry(journal.Submission{
		Date:        testToday.AddDate(0, 0, -daysAgo),
		Mood:        string(m),
		StressLevel: stress,
		Journal:     text,
	})
	if err != nil {
		t.Fatalf("SubmitEntry: %v", err)
	}
}

func stripANSI(s string) string {
	return regexp.MustCompile(`\x1b\[[0-9;]*m`).ReplaceAllString(s, "")
}
