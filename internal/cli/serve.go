package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kgribble/s3vmcp/internal/mcp"
	"github.com/kgribble/s3vmcp/internal/tools"
)

// serveCmd represents the MCP server command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	Long: `Start a Model Context Protocol (MCP) server for integration with AI agents.

The server communicates via stdin/stdout using JSON-RPC 2.0 and exposes
S3 Vectors bucket, index, and vector operations together with
s3vectors-embed embedding workflows as callable tools.

This command is typically invoked by AI agents and not run directly by users.`,
	RunE: runServeCmd,
}

func runServeCmd(cmd *cobra.Command, args []string) error {
	// MCP uses stdout for the protocol, so logs go to stderr only.
	log.SetOutput(os.Stderr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	registry, err := tools.NewDefaultRegistry(buildService())
	if err != nil {
		return fmt.Errorf("failed to build tool registry: %w", err)
	}

	server := mcp.NewServer("s3vmcp", version, registry, os.Stdin, os.Stdout)
	return server.Run(ctx)
}
