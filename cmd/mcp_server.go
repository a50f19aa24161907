/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/josephgoksu/kanban-sheets/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI tool integration",
	Long: `Start a Model Context Protocol (MCP) server on stdio so AI assistants can
list, search, add and update tasks on the configured board.

Example client configuration:
  {"command": "kanban-sheets", "args": ["mcp"]}

The server will run until the client disconnects.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCPServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

// newMCPServer builds a server with every task tool and resource registered.
func newMCPServer(tools *mcp.Tools, log *zap.Logger) (*mcpsdk.Server, error) {
	impl := &mcpsdk.Implementation{
		Name:    "kanban-sheets",
		Version: version,
	}
	serverOpts := &mcpsdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.InitializedParams) {
			log.Info("client initialized")
		},
	}
	server := mcpsdk.NewServer(impl, serverOpts)

	if err := mcp.RegisterTools(server, tools); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}
	if err := mcp.RegisterMCPResources(server, tools); err != nil {
		return nil, fmt.Errorf("failed to register resources: %w", err)
	}
	return server, nil
}

func runMCPServer(ctx context.Context) error {
	// NOTE: MCP uses stdio transport. stdout MUST be pure JSON-RPC.
	// All status/debug output goes to stderr only.
	cfg, err := GetConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	provider := newProvider(cfg, log)
	defer func() {
		if err := provider.Reset(); err != nil {
			log.Warn("failed to close backing store", zap.Error(err))
		}
	}()

	server, err := newMCPServer(mcp.NewTools(provider, log), log)
	if err != nil {
		return err
	}

	log.Info("MCP server starting",
		zap.String("version", version),
		zap.String("backend", cfg.Backend),
		zap.String("target", backendTarget(cfg)),
	)
	// Surface a broken backend early; tools retry on their next call.
	if _, err := provider.Get(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "⚠  Backing store unavailable: %v\n", err)
	}

	if err := server.Run(ctx, mcpsdk.NewStdioTransport()); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}
