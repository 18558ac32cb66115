package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/moodctl/internal/aggregate"
	"github.com/chris-regnier/moodctl/internal/mood"
)

const (
	barChar       = "█"
	defaultBarMax = 30
)

// RenderDistribution draws one horizontal bar per mood, longest first, with
// its count and share of the total.
func RenderDistribution(d aggregate.Distribution, theme Theme, barMax int) string {
	rows := d.Sorted()
	if len(rows) == 0 {
		return theme.HelpStyle().Render("No mood data available yet.")
	}
	if barMax <= 0 {
		barMax = defaultBarMax
	}

	total := d.Total()
	top := rows[0].Count
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.Mood.Label()))
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		n := max(r.Count*barMax/top, 1)
		label := r.Mood.Label()
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(label))
		lines[i] = fmt.Sprintf("%s%s  %s %d (%d%%)",
			label, pad,
			theme.MoodStyle(r.Mood).Render(strings.Repeat(barChar, n)),
			r.Count, r.Count*100/total,
		)
	}
	return strings.Join(lines, "\n")
}

// RenderStressTrend draws the chronological stress series as one row per
// point, bar length proportional to the level.
func RenderStressTrend(points []aggregate.StressPoint, theme Theme) string {
	if len(points) == 0 {
		return theme.HelpStyle().Render("No stress data available yet.")
	}
	lines := make([]string, len(points))
	for i, p := range points {
		level := clampStress(p.StressLevel)
		bar := strings.Repeat(barChar, level*2)
		rest := strings.Repeat("·", (mood.MaxStress-level)*2)
		lines[i] = fmt.Sprintf("%s  %s%s %2d",
			p.Date.Format(mood.DateLayout),
			theme.StressStyle(level).Render(bar),
			theme.HelpStyle().Render(rest),
			p.StressLevel,
		)
	}
	return strings.Join(lines, "\n")
}

// Sparkline compresses a stress series into one line of block glyphs.
func Sparkline(points []aggregate.StressPoint) string {
	levels := []rune("▁▂▃▄▅▆▇█")
	var b strings.Builder
	for _, p := range points {
		idx := clampStress(p.StressLevel) * (len(levels) - 1) / mood.MaxStress
		b.WriteRune(levels[idx])
	}
	return b.String()
}

func clampStress(level int) int {
	return min(max(level, mood.MinStress), mood.MaxStress)
}
