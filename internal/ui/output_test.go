package ui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/chris-regnier/moodctl/internal/aggregate"
	"github.com/chris-regnier/moodctl/internal/config"
	"github.com/chris-regnier/moodctl/internal/journal"
	"github.com/chris-regnier/moodctl/internal/mood"
)

func sampleHistory() journal.History {
	entries := []mood.Entry{
		{Date: testDay(3), Mood: mood.Calm, StressLevel: 2, Journal: "Quiet **evening**", Contact: "Sam"},
		{Date: testDay(2), Mood: mood.Stressed, StressLevel: 8, Journal: "Deadline"},
	}
	return journal.History{
		Entries:      entries,
		Distribution: aggregate.MoodDistribution(entries),
		Trend:        aggregate.StressTrend(entries),
	}
}

func TestFormatHistory(t *testing.T) {
	var buf bytes.Buffer
	FormatHistory(&buf, sampleHistory(), ResolveTheme(config.ThemeConfig{}), 80)
	out := stripANSI(buf.String())

	for _, want := range []string{
		"Mood Distribution",
		"Stress Level Trend",
		"Your Journal Entries (Last 2)",
		"2024-01-03 · " + mood.Calm.Label() + " · stress 2 · Sam",
		"evening",
		"Deadline",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	// trend is chronological
	if strings.Index(out, "2024-01-02  ") > strings.Index(out, "2024-01-03  ") {
		t.Error("expected stress trend oldest first")
	}
}

func TestFormatHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatHistory(&buf, journal.History{}, ResolveTheme(config.ThemeConfig{}), 80)
	if buf.String() != "No mood entries found.\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestFormatEntryList(t *testing.T) {
	var buf bytes.Buffer
	FormatEntryList(&buf, sampleHistory().Entries)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "2024-01-03  Calm") {
		t.Errorf("unexpected first line %q", lines[0])
	}
}

func TestFormatMessages(t *testing.T) {
	var buf bytes.Buffer

	FormatEntrySaved(&buf, "2024-01-03", mood.Happy, 4)
	if !strings.Contains(buf.String(), "saved: 2024-01-03") {
		t.Errorf("unexpected saved message %q", buf.String())
	}

	buf.Reset()
	FormatMissingMood(&buf)
	if !strings.Contains(buf.String(), "select a mood") || !strings.Contains(buf.String(), mood.Excited.Label()) {
		t.Errorf("unexpected missing mood message %q", buf.String())
	}

	buf.Reset()
	FormatCleared(&buf, 1)
	if !strings.Contains(buf.String(), "(1 entry)") {
		t.Errorf("unexpected cleared message %q", buf.String())
	}

	buf.Reset()
	FormatQuote(&buf, "Keep going.", ResolveTheme(config.ThemeConfig{}))
	if !strings.Contains(stripANSI(buf.String()), "Keep going.") {
		t.Errorf("unexpected quote output %q", buf.String())
	}
}

func TestFormatJSONHistory(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(&buf, sampleHistory()); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"entries", "mood_distribution", "stress_trend"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("expected key %q", key)
		}
	}
	if !strings.Contains(buf.String(), `"journal_entry": "Deadline"`) {
		t.Errorf("expected journal_entry field, got:\n%s", buf.String())
	}
}
