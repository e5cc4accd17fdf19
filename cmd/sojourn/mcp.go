package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/voyantic/sojourn"
	mcpadapter "github.com/voyantic/sojourn/internal/adapters/mcp"
	"github.com/voyantic/sojourn/pkg/domain"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the Sojourn engine as an MCP Server.
This allows AI agents (like Claude Desktop) to quote, purchase and file claims as tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
		if cmd.Flags().Changed("transport") {
			cfg.MCPTransport, _ = cmd.Flags().GetString("transport")
		}
		if cmd.Flags().Changed("port") {
			cfg.MCPPort, _ = cmd.Flags().GetInt("port")
		}

		logger := newLogger(cfg)

		store, err := newStore(cfg, logger)
		if err != nil {
			log.Fatalf("Error initializing store: %v", err)
		}
		cat, err := newCatalog(cfg)
		if err != nil {
			log.Fatalf("Error loading catalog: %v", err)
		}

		app := sojourn.New(
			sojourn.WithLogger(logger),
			sojourn.WithStore(store),
			sojourn.WithCatalog(cat),
			sojourn.WithHooks(domain.UIHooks{}),
		)

		srv := mcpadapter.NewServer(app.Bridge(), cat, sojourn.Version, mcpadapter.WithLogger(logger))

		switch cfg.MCPTransport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			logger.Info("Starting Sojourn MCP Server (Stdio)...")
			if err := srv.ServeStdio(); err != nil {
				logger.Error("MCP Server execution failed", "err", err)
				os.Exit(1)
			}
		case "sse":
			logger.Info("Starting Sojourn MCP Server (SSE)", "port", cfg.MCPPort)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, cfg.MCPPort); err != nil {
				if err != http.ErrServerClosed {
					logger.Error("MCP Server execution failed", "err", err)
					os.Exit(1)
				}
			}
			logger.Info("MCP Server stopped gracefully")
		default:
			log.Fatalf("Unknown transport: %s. Supported: stdio, sse", cfg.MCPTransport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8090, "Port to listen on (only for SSE)")
}
