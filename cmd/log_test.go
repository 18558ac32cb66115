package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/ui"
)

func TestLogInline(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	err := logRun(&buf, nil, []string{"Great", "walk"}, logOptions{mood: "happy", stress: 3}, nil)
	if err != nil {
		t.Fatalf("logRun: %v", err)
	}
	if !strings.Contains(buf.String(), "saved: 2024-06-15") {
		t.Errorf("unexpected output %q", buf.String())
	}

	entries, err := store.Recent(5)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Journal != "Great walk" || entries[0].Mood != mood.Happy || entries[0].StressLevel != 3 {
		t.Errorf("unexpected entry %+v", entries[0])
	}
}

func TestLogFromStdin(t *testing.T) {
	setupTestEnv(t)

	stdin := strings.NewReader("  piped note\n")
	if err := logRun(&bytes.Buffer{}, stdin, []string{"-"}, logOptions{mood: "Sad", stress: 7, date: "2024-06-10"}, nil); err != nil {
		t.Fatalf("logRun: %v", err)
	}

	entries, _ := store.Recent(1)
	if entries[0].Journal != "piped note" {
		t.Errorf("journal = %q, want %q", entries[0].Journal, "piped note")
	}
	if entries[0].DateString() != "2024-06-10" {
		t.Errorf("date = %s, want 2024-06-10", entries[0].DateString())
	}
}

func TestLogMissingMoodNonInteractive(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	err := logRun(&buf, nil, []string{"text"}, logOptions{stress: 5}, nil)
	if !errors.Is(err, mood.ErrMissingMood) {
		t.Fatalf("expected missing mood error, got %v", err)
	}
	if ExitCode(err) != ExitUser {
		t.Errorf("exit code = %d, want %d", ExitCode(err), ExitUser)
	}
	if !strings.Contains(buf.String(), "select a mood") {
		t.Errorf("expected warning, got %q", buf.String())
	}
	if n, _ := store.Count(); n != 0 {
		t.Errorf("expected nothing stored, got %d", n)
	}
}

func TestLogMissingMoodJSON(t *testing.T) {
	setupTestEnv(t)
	jsonOutput = true

	var buf bytes.Buffer
	_ = logRun(&buf, nil, nil, logOptions{stress: 5}, nil)

	var out ui.SubmitOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if out.Result != "missing_mood" {
		t.Errorf("result = %q", out.Result)
	}
}

func TestLogUsesPrompts(t *testing.T) {
	setupTestEnv(t)

	var composedFor string
	prompts := &logPrompts{
		pickMood: func() (mood.Mood, error) { return mood.Calm, nil },
		compose: func(date string, m mood.Mood) (string, error) {
			composedFor = date + " " + string(m)
			return "from the editor", nil
		},
	}

	if err := logRun(&bytes.Buffer{}, nil, nil, logOptions{stress: 2}, prompts); err != nil {
		t.Fatalf("logRun: %v", err)
	}
	if composedFor != "2024-06-15 Calm" {
		t.Errorf("compose called with %q", composedFor)
	}
	entries, _ := store.Recent(1)
	if entries[0].Mood != mood.Calm || entries[0].Journal != "from the editor" {
		t.Errorf("unexpected entry %+v", entries[0])
	}
}

func TestLogPickerCancelled(t *testing.T) {
	setupTestEnv(t)

	prompts := &logPrompts{
		pickMood: func() (mood.Mood, error) { return "", ui.ErrPickerCancelled },
	}
	var buf bytes.Buffer
	if err := logRun(&buf, nil, nil, logOptions{stress: 2}, prompts); err != nil {
		t.Fatalf("logRun: %v", err)
	}
	if !strings.Contains(buf.String(), "Cancelled.") {
		t.Errorf("expected cancellation message, got %q", buf.String())
	}
	if n, _ := store.Count(); n != 0 {
		t.Errorf("expected nothing stored, got %d", n)
	}
}

func TestLogEditorFailure(t *testing.T) {
	setupTestEnv(t)

	prompts := &logPrompts{
		compose: func(string, mood.Mood) (string, error) { return "", errors.New("boom") },
	}
	err := logRun(&bytes.Buffer{}, nil, nil, logOptions{mood: "Happy", stress: 2}, prompts)
	if ExitCode(err) != ExitEditor {
		t.Errorf("exit code = %d, want %d (err %v)", ExitCode(err), ExitEditor, err)
	}
}

func TestLogValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		opts logOptions
	}{
		{"unknown mood", logOptions{mood: "Bored", stress: 1}},
		{"stress too high", logOptions{mood: "Happy", stress: 11}},
		{"negative stress", logOptions{mood: "Happy", stress: -1}},
		{"bad date", logOptions{mood: "Happy", stress: 1, date: "15/06/2024"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setupTestEnv(t)
			err := logRun(&bytes.Buffer{}, nil, []string{"x"}, tc.opts, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if ExitCode(err) != ExitUser {
				t.Errorf("exit code = %d, want %d (err %v)", ExitCode(err), ExitUser, err)
			}
			if errors.Is(err, storage.ErrStorage) {
				t.Error("validation must not look like a storage failure")
			}
		})
	}
}

func TestLogRetention(t *testing.T) {
	setupTestEnv(t)

	for i := 6; i >= 0; i-- {
		date := testToday.AddDate(0, 0, -i).Format(mood.DateLayout)
		if err := logRun(&bytes.Buffer{}, nil, nil, logOptions{mood: "Calm", stress: i, date: date}, nil); err != nil {
			t.Fatalf("logRun: %v", err)
		}
	}
	if n, _ := store.Count(); n != storage.MaxEntries {
		t.Errorf("count = %d, want %d", n, storage.MaxEntries)
	}
}
