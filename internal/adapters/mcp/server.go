// Package mcp exposes the action bridge as an MCP server. Each bridge
// action becomes one tool; tool input schemas are generated from the
// action's own schema, so the tool channel and the HTTP channel always
// accept the same arguments.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/voyantic/sojourn/pkg/bridge"
	"github.com/voyantic/sojourn/pkg/catalog"
	"github.com/voyantic/sojourn/pkg/schema"
)

// Server wraps a Bridge and exposes it over the Model Context Protocol.
type Server struct {
	bridge    *bridge.Bridge
	catalog   *catalog.Catalog
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// NewServer builds an MCP server for the given bridge. The catalog is
// exposed read-only as a resource.
func NewServer(b *bridge.Bridge, cat *catalog.Catalog, version string, opts ...Option) *Server {
	s := &Server{
		bridge:    b,
		catalog:   cat,
		logger:    slog.Default(),
		mcpServer: server.NewMCPServer("sojourn-mcp", strings.TrimSpace(version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and blocks
// until ctx is cancelled or the listener fails.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ToolName derives the MCP tool name for a bridge action. MCP tool names
// cannot contain dashes.
func ToolName(action string) string {
	return "travel_" + strings.ReplaceAll(action, "-", "_")
}

func (s *Server) registerTools() {
	for _, act := range s.bridge.Actions() {
		name := act.Name
		opts := []mcp.ToolOption{mcp.WithDescription(act.Description)}
		opts = append(opts, toolOptions(act.Schema)...)

		s.mcpServer.AddTool(mcp.NewTool(ToolName(name), opts...),
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				result, err := s.bridge.Dispatch(ctx, name, request.GetArguments())
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				jsonBytes, err := json.Marshal(result)
				if err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
				}
				return mcp.NewToolResultText(string(jsonBytes)), nil
			})
	}
}

// toolOptions translates an action schema into mcp-go tool options,
// visiting the fields in lexical order.
func toolOptions(sch schema.Schema) []mcp.ToolOption {
	props := sch.Properties()

	names := make([]string, 0, len(sch))
	for name := range sch {
		names = append(names, name)
	}
	sort.Strings(names)

	var opts []mcp.ToolOption
	for _, name := range names {
		field := sch[name]
		prop := props[name]

		var propOpts []mcp.PropertyOption
		if field.IsRequired {
			propOpts = append(propOpts, mcp.Required())
		}
		if prop.Description != "" {
			propOpts = append(propOpts, mcp.Description(prop.Description))
		}
		if len(prop.Enum) > 0 {
			propOpts = append(propOpts, mcp.Enum(prop.Enum...))
		}

		switch prop.Type {
		case "number":
			opts = append(opts, mcp.WithNumber(name, propOpts...))
		case "boolean":
			opts = append(opts, mcp.WithBoolean(name, propOpts...))
		case "array":
			propOpts = append(propOpts, mcp.Items(map[string]any{"type": "string"}))
			opts = append(opts, mcp.WithArray(name, propOpts...))
		default:
			opts = append(opts, mcp.WithString(name, propOpts...))
		}
	}
	return opts
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource("sojourn://plans", "Plan Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.catalog.Plans())
		if err != nil {
			return nil, fmt.Errorf("encode catalog: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "sojourn://plans",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
