package mcptools

import (
	"context"
	"errors"
	"fmt"

	"github.com/chris-regnier/moodctl/internal/journal"
	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ErrNotConfirmed is returned by delete_all_entries when confirm is not set.
var ErrNotConfirmed = errors.New("delete_all_entries requires confirm=true")

// SubmitEntryHandler returns the handler function for the submit_entry MCP tool.
// A missing mood is reported as result "missing_mood" rather than a tool error.
func SubmitEntryHandler(svc *journal.Service) func(ctx context.Context, req *mcp.CallToolRequest, input SubmitEntryInput) (*mcp.CallToolResult, SubmitEntryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SubmitEntryInput) (*mcp.CallToolResult, SubmitEntryOutput, error) {
		date, err := parseDate(input.Date)
		if err != nil {
			return nil, SubmitEntryOutput{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", input.Date)
		}

		res, err := svc.SubmitEntry(journal.Submission{
			Date:        date,
			Mood:        input.Mood,
			StressLevel: input.StressLevel,
			Journal:     input.JournalEntry,
			Contact:     input.Contact,
		})
		if err != nil {
			return nil, SubmitEntryOutput{}, err
		}

		out := SubmitEntryOutput{Result: string(res)}
		if res == journal.SubmitOK {
			if date.IsZero() {
				date = svc.Today()
			}
			out.Date = date.Format(mood.DateLayout)
		}
		return nil, out, nil
	}
}

// LoadHistoryHandler returns the handler function for the load_history MCP tool.
func LoadHistoryHandler(svc *journal.Service) func(ctx context.Context, req *mcp.CallToolRequest, input LoadHistoryInput) (*mcp.CallToolResult, LoadHistoryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input LoadHistoryInput) (*mcp.CallToolResult, LoadHistoryOutput, error) {
		h, err := svc.LoadHistory(input.Limit)
		if err != nil {
			return nil, LoadHistoryOutput{}, err
		}
		return nil, historyOutput(h), nil
	}
}

// DeleteAllHandler returns the handler function for the delete_all_entries MCP tool.
func DeleteAllHandler(svc *journal.Service) func(ctx context.Context, req *mcp.CallToolRequest, input DeleteAllInput) (*mcp.CallToolResult, DeleteAllOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DeleteAllInput) (*mcp.CallToolResult, DeleteAllOutput, error) {
		if !input.Confirm {
			return nil, DeleteAllOutput{}, ErrNotConfirmed
		}
		n, err := svc.Count()
		if err != nil {
			return nil, DeleteAllOutput{}, err
		}
		if err := svc.DeleteAllEntries(); err != nil {
			return nil, DeleteAllOutput{}, err
		}
		return nil, DeleteAllOutput{Deleted: n}, nil
	}
}

// QuoteHandler returns the handler function for the motivational_quote MCP tool.
func QuoteHandler(svc *journal.Service) func(ctx context.Context, req *mcp.CallToolRequest, input QuoteInput) (*mcp.CallToolResult, QuoteOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input QuoteInput) (*mcp.CallToolResult, QuoteOutput, error) {
		return nil, QuoteOutput{Quote: svc.PickMotivationalQuote()}, nil
	}
}
