package cmd

import (
	"github.com/chris-regnier/moodctl/internal/mcptools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes the journal
over stdio transport.

Available tools:
  - submit_entry: Record a mood, stress level and journal note
  - load_history: Recent entries with mood distribution and stress trend
  - delete_all_entries: Delete everything (requires confirm=true)
  - motivational_quote: A random motivational quote

Example MCP client config:
  {
    "mcpServers": {
      "moodctl": {
        "command": "/path/to/moodctl",
        "args": ["mcp-serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	server := mcptools.CreateMCPServer(svc, version)

	// stdout is reserved for the protocol; the logger writes to stderr
	logger.Info("starting MCP server",
		"component", "mcp",
		"transport", "stdio",
		"backend", appConfig.Storage,
		"data_dir", appConfig.DataDir,
	)

	// Blocks until the transport is closed
	return server.Run(cmd.Context(), &mcp.StdioTransport{})
}
