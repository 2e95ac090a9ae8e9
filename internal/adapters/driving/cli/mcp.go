package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kennyvt/kennyvt.github.io/internal/adapters/driving/mcp"
	"github.com/kennyvt/kennyvt.github.io/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start a Model Context Protocol server exposing the corpus to AI assistants.

The server offers a "search" tool, a docsearch://corpus resource describing
the loaded corpus, and a docsearch://search/{query} resource template.

By default the server communicates over stdio. Use --port to serve
streamable HTTP instead.

Examples:
  # Stdio mode
  docsearch mcp serve

  # HTTP mode
  docsearch mcp serve --port 8080`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	if searchService == nil {
		return errors.New("search service not configured")
	}

	settings, err := currentSettings()
	if err != nil {
		return err
	}

	// Clients can read the failure from the corpus resource.
	if err := loadCorpus(cmd.Context(), settings.Corpus); err != nil {
		logger.Error("corpus not loaded: %v", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Search:   searchService,
		Settings: settingsService,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
