// Package aggregate derives display summaries from a set of mood entries.
// All functions are pure and accept an empty input.
package aggregate

import (
	"sort"
	"time"

	"github.com/chris-regnier/moodctl/internal/mood"
)

// Distribution counts entries per mood. Moods that do not occur are absent.
type Distribution map[mood.Mood]int

// MoodCount is one row of a sorted distribution.
type MoodCount struct {
	Mood  mood.Mood `json:"mood"`
	Count int       `json:"count"`
}

// StressPoint is one sample of the stress trend.
type StressPoint struct {
	Date        time.Time `json:"date"`
	StressLevel int       `json:"stress_level"`
}

// MoodDistribution counts how often each mood occurs in entries.
func MoodDistribution(entries []mood.Entry) Distribution {
	d := make(Distribution)
	for _, e := range entries {
		d[e.Mood]++
	}
	return d
}

// Total returns the number of entries counted.
func (d Distribution) Total() int {
	n := 0
	for _, c := range d {
		n += c
	}
	return n
}

// Sorted returns the counts by descending count, then in mood.All order.
// Moods outside the enumeration sort last by name.
func (d Distribution) Sorted() []MoodCount {
	out := make([]MoodCount, 0, len(d))
	for m, c := range d {
		out = append(out, MoodCount{Mood: m, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		ii, ij := out[i].Mood.Index(), out[j].Mood.Index()
		if ii != ij {
			if ii < 0 {
				return false
			}
			if ij < 0 {
				return true
			}
			return ii < ij
		}
		return out[i].Mood < out[j].Mood
	})
	return out
}

// StressTrend returns one point per entry in ascending date order. Entries
// sharing a date are all kept, in the reverse of their input order, so the
// most-recent-first output of Storage.Recent becomes chronological.
func StressTrend(entries []mood.Entry) []StressPoint {
	points := make([]StressPoint, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		points = append(points, StressPoint{Date: entries[i].Date, StressLevel: entries[i].StressLevel})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}
