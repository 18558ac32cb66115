package mcptools

// SubmitEntryInput is the input schema for the submit_entry MCP tool.
type SubmitEntryInput struct {
	Date         string `json:"date,omitempty" jsonschema-description:"Day of the entry as YYYY-MM-DD; defaults to today"`
	Mood         string `json:"mood,omitempty" jsonschema-description:"One of Happy, Sad, Stressed, Angry, Calm, Excited"`
	StressLevel  int    `json:"stress_level" jsonschema-description:"Stress level from 0 to 10"`
	JournalEntry string `json:"journal_entry,omitempty" jsonschema-description:"Free-form journal text, markdown allowed"`
	Contact      string `json:"contact,omitempty" jsonschema-description:"Optional trusted contact"`
}

// SubmitEntryOutput is the output schema for the submit_entry MCP tool.
type SubmitEntryOutput struct {
	Result string `json:"result"`
	Date   string `json:"date,omitempty"`
}

// LoadHistoryInput is the input schema for the load_history MCP tool.
type LoadHistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema-description:"Maximum number of entries to return (default 5)"`
}

// LoadHistoryOutput is the output schema for the load_history MCP tool.
type LoadHistoryOutput struct {
	Entries          []EntryResult `json:"entries"`
	MoodDistribution []MoodCount   `json:"mood_distribution"`
	StressTrend      []TrendPoint  `json:"stress_trend"`
}

// EntryResult is one stored entry, newest first in load_history output.
type EntryResult struct {
	Date         string `json:"date"`
	Mood         string `json:"mood"`
	StressLevel  int    `json:"stress_level"`
	JournalEntry string `json:"journal_entry"`
	Contact      string `json:"contact,omitempty"`
}

// MoodCount is one row of the mood distribution.
type MoodCount struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

// TrendPoint is one sample of the chronological stress trend.
type TrendPoint struct {
	Date        string `json:"date"`
	StressLevel int    `json:"stress_level"`
}

// DeleteAllInput is the input schema for the delete_all_entries MCP tool.
type DeleteAllInput struct {
	Confirm bool `json:"confirm" jsonschema-description:"Must be true to delete all entries"`
}

// DeleteAllOutput is the output schema for the delete_all_entries MCP tool.
type DeleteAllOutput struct {
	Deleted int `json:"deleted"`
}

// QuoteInput is the (empty) input schema for the motivational_quote MCP tool.
type QuoteInput struct{}

// QuoteOutput is the output schema for the motivational_quote MCP tool.
type QuoteOutput struct {
	Quote string `json:"quote"`
}
