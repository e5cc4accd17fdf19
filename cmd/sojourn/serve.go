package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/voyantic/sojourn"
	"github.com/voyantic/sojourn/internal/adapters/httpapi"
	mcpadapter "github.com/voyantic/sojourn/internal/adapters/mcp"
	"github.com/voyantic/sojourn/internal/metrics"
	"github.com/voyantic/sojourn/pkg/domain"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the Sojourn engine in server mode, exposing every action as a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("addr") {
			cfg.HTTPAddr, _ = cmd.Flags().GetString("addr")
		}

		logger := newLogger(cfg)

		store, err := newStore(cfg, logger)
		if err != nil {
			fmt.Printf("Error initializing store: %v\n", err)
			os.Exit(1)
		}
		cat, err := newCatalog(cfg)
		if err != nil {
			fmt.Printf("Error loading catalog: %v\n", err)
			os.Exit(1)
		}

		reg := prometheus.NewRegistry()
		app := sojourn.New(
			sojourn.WithLogger(logger),
			sojourn.WithStore(store),
			sojourn.WithCatalog(cat),
			sojourn.WithHooks(domain.UIHooks{}),
			sojourn.WithMetrics(metrics.NewBridge(reg)),
		)

		handler := httpapi.NewHandler(app.Bridge(), reg,
			httpapi.WithLogger(logger),
			httpapi.WithVersion(sojourn.Version),
		)

		srv := &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: handler,
		}

		// The tool channel is best-effort: if it cannot start, the HTTP
		// server keeps serving.
		if withMCP, _ := cmd.Flags().GetBool("mcp"); withMCP {
			mcpSrv := mcpadapter.NewServer(app.Bridge(), app.Catalog(), sojourn.Version, mcpadapter.WithLogger(logger))
			go func() {
				if err := mcpSrv.ServeSSE(cmd.Context(), cfg.MCPPort); err != nil && err != http.ErrServerClosed {
					logger.Warn("tool channel unavailable, continuing without it", "err", err)
				}
			}()
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Sojourn Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Sojourn Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().Bool("mcp", false, "Also expose the MCP tool channel over SSE")
}
