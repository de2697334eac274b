// ABOUTME: Serve command starts the MCP stdio server for LLM agents
// ABOUTME: Exposes remember, ingest_document, ask and get_history tools
package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/platonbot/platon/internal/mcp"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server on stdio",
		Long: `Start the knowledge assistant as an MCP (Model Context Protocol)
server on stdio, exposing the ingestion and question-answering pipeline as
tools for LLM agents.`,
		RunE: runServe,
		Example: `  # Start MCP server (typically launched by an MCP client)
  platon serve`,
	}

	return cmd
}

// runServe wires the pipeline and serves until the transport closes or a
// shutdown signal arrives.
func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := buildCore(ctx)
	if err != nil {
		return err
	}
	defer c.close()

	server := mcpserver.NewMCPServer(
		"Platon Knowledge Assistant",
		versionInfo.Version,
	)
	mcp.RegisterTools(server, c.ingestor, c.engine, c.history, c.logger)

	c.logger.Info("mcp server starting on stdio")

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		c.logger.Info("shutdown signal received")
		return nil
	case err := <-serverErr:
		return err
	}
}
