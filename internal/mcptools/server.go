package mcptools

import (
	"context"

	"github.com/chris-regnier/moodctl/internal/journal"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewMoodMCPServer creates an in-memory MCP server exposing the journal tools.
// Returns the server and a client transport for connecting to it.
func NewMoodMCPServer(svc *journal.Service) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(svc, "dev")

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with the journal tools registered.
func CreateMCPServer(svc *journal.Service, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "moodctl",
		Version: version,
	}, nil)

	// Read tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "load_history",
		Description: "Load the most recent mood entries with their mood distribution and stress trend",
	}, LoadHistoryHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "motivational_quote",
		Description: "Pick a random motivational quote",
	}, QuoteHandler(svc))

	// Write tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "submit_entry",
		Description: "Record a mood, stress level and journal text for a day. Only the five most recent days are retained.",
	}, SubmitEntryHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_all_entries",
		Description: "Delete every stored mood entry. Requires confirm=true.",
	}, DeleteAllHandler(svc))

	return server
}
