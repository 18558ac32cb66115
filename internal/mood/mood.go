package mood

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the persisted and displayed form of an entry date.
const DateLayout = "2006-01-02"

// Stress bounds, inclusive.
const (
	MinStress = 0
	MaxStress = 10
)

// Validation errors.
var (
	ErrMissingMood      = errors.New("mood is required")
	ErrUnknownMood      = errors.New("unknown mood")
	ErrStressOutOfRange = errors.New("stress level out of range")
)

// Mood is one of a closed set of mood names.
type Mood string

const (
	Happy    Mood = "Happy"
	Sad      Mood = "Sad"
	Stressed Mood = "Stressed"
	Angry    Mood = "Angry"
	Calm     Mood = "Calm"
	Excited  Mood = "Excited"
)

// All lists the moods in display order.
var All = []Mood{Happy, Sad, Stressed, Angry, Calm, Excited}

var emoji = map[Mood]string{
	Happy:    "😊",
	Sad:      "😢",
	Stressed: "😖",
	Angry:    "😡",
	Calm:     "😌",
	Excited:  "🤩",
}

// Valid reports whether m is part of the enumeration.
func (m Mood) Valid() bool {
	_, ok := emoji[m]
	return ok
}

// Emoji returns the glyph shown next to m, or "" for an unknown mood.
func (m Mood) Emoji() string {
	return emoji[m]
}

// Label returns the mood name followed by its emoji, e.g. "Happy 😊".
func (m Mood) Label() string {
	if e, ok := emoji[m]; ok {
		return string(m) + " " + e
	}
	return string(m)
}

// Index returns the position of m in All, or -1.
func (m Mood) Index() int {
	for i, v := range All {
		if v == m {
			return i
		}
	}
	return -1
}

// ParseMood resolves a mood name (case-insensitive) or its full label.
// An empty or blank string yields the empty Mood with ErrMissingMood.
func ParseMood(s string) (Mood, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrMissingMood
	}
	name, _, _ := strings.Cut(s, " ")
	for _, m := range All {
		if strings.EqualFold(name, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be one of %s)", ErrUnknownMood, s, Names())
}

// Names returns the comma-separated list of valid mood names.
func Names() string {
	names := make([]string, len(All))
	for i, m := range All {
		names[i] = strings.ToLower(string(m))
	}
	return strings.Join(names, ", ")
}

// Entry is a single mood report for a calendar day.
type Entry struct {
	Date        time.Time `json:"date"`
	Mood        Mood      `json:"mood"`
	StressLevel int       `json:"stress_level"`
	Journal     string    `json:"journal_entry"`
	Contact     string    `json:"contact,omitempty"`
}

// Day truncates t to local midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// ParseDate parses a YYYY-MM-DD string as a local calendar day.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// DateString formats the entry date as YYYY-MM-DD.
func (e Entry) DateString() string {
	return e.Date.Format(DateLayout)
}

// Validate checks the entry against the mood enumeration and stress bounds.
func (e Entry) Validate() error {
	if e.Mood == "" {
		return ErrMissingMood
	}
	if !e.Mood.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMood, string(e.Mood))
	}
	return ValidateStress(e.StressLevel)
}

// ValidateStress checks that level lies in [MinStress, MaxStress].
func ValidateStress(level int) error {
	if level < MinStress || level > MaxStress {
		return fmt.Errorf("%w: %d (must be %d-%d)", ErrStressOutOfRange, level, MinStress, MaxStress)
	}
	return nil
}

// Preview returns a single-line, truncated form of the journal text.
func (e *Entry) Preview(maxLen int) string {
	content := strings.Join(strings.Fields(e.Journal), " ")
	runes := []rune(content)
	if len(runes) <= maxLen {
		return content
	}
	return string(runes[:maxLen-3]) + "..."
}
