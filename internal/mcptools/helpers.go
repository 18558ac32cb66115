package mcptools

import (
	"time"

	"github.com/chris-regnier/moodctl/internal/journal"
	"github.com/chris-regnier/moodctl/internal/mood"
)

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return mood.ParseDate(s)
}

func historyOutput(h journal.History) LoadHistoryOutput {
	out := LoadHistoryOutput{
		Entries:          make([]EntryResult, len(h.Entries)),
		MoodDistribution: []MoodCount{},
		StressTrend:      make([]TrendPoint, len(h.Trend)),
	}
	for i, e := range h.Entries {
		out.Entries[i] = EntryResult{
			Date:         e.DateString(),
			Mood:         string(e.Mood),
			StressLevel:  e.StressLevel,
			JournalEntry: e.Journal,
			Contact:      e.Contact,
		}
	}
	for _, c := range h.Distribution.Sorted() {
		out.MoodDistribution = append(out.MoodDistribution, MoodCount{Mood: string(c.Mood), Count: c.Count})
	}
	for i, p := range h.Trend {
		out.StressTrend[i] = TrendPoint{Date: p.Date.Format(mood.DateLayout), StressLevel: p.StressLevel}
	}
	return out
}
