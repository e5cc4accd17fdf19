package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/voyantic/sojourn"
	"github.com/voyantic/sojourn/internal/config"
	"github.com/voyantic/sojourn/internal/logging"
	"github.com/voyantic/sojourn/internal/presentation/tui"
	"github.com/voyantic/sojourn/internal/store/memory"
	"github.com/voyantic/sojourn/internal/store/middleware"
	redisstore "github.com/voyantic/sojourn/internal/store/redis"
	"github.com/voyantic/sojourn/pkg/catalog"
	"github.com/voyantic/sojourn/pkg/domain"
	"github.com/voyantic/sojourn/pkg/observability"
	"github.com/voyantic/sojourn/pkg/ports"
)

// loadConfig resolves the effective configuration: file or env first,
// then flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("redis-url") {
		cfg.RedisURL, _ = cmd.Flags().GetString("redis-url")
	}
	if cmd.Flags().Changed("catalog") {
		cfg.CatalogPath, _ = cmd.Flags().GetString("catalog")
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logging.New(logging.ParseLevel(cfg.LogLevel))
}

func newStore(cfg *config.Config, logger *slog.Logger) (ports.Store, error) {
	var store ports.Store
	if cfg.RedisURL == "" {
		store = memory.NewStore()
	} else {
		s, err := redisstore.New(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis store: %w", err)
		}
		store = s
	}

	var mws []middleware.Middleware
	mws = append(mws, middleware.NewLoggingMiddleware(logger))
	if len(cfg.PIIPatterns) > 0 {
		mws = append(mws, middleware.NewPIIMiddleware(cfg.PIIPatterns))
	}
	if cfg.EncryptionKey != "" {
		if len(cfg.EncryptionKey) != 32 {
			return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(cfg.EncryptionKey))
		}
		mws = append(mws, middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
			ActiveKey: []byte(cfg.EncryptionKey),
		}))
	}
	return middleware.Chain(store, mws...), nil
}

func newCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.CatalogPath)
}

// newApp assembles the App for CLI commands, with UI hooks that render
// to the terminal.
func newApp(cmd *cobra.Command, hooks domain.UIHooks) (*sojourn.App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg)

	store, err := newStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	cat, err := newCatalog(cfg)
	if err != nil {
		return nil, err
	}

	return sojourn.New(
		sojourn.WithLogger(logger),
		sojourn.WithStore(store),
		sojourn.WithCatalog(cat),
		sojourn.WithHooks(observability.CombineHooks(hooks, observability.LoggingHooks(logger))),
	), nil
}

// terminalHooks renders quotes as markdown and prints notifications.
// Navigation is a no-op on the CLI, where each command is one view.
func terminalHooks() domain.UIHooks {
	render := tui.NewRenderer()
	return domain.UIHooks{
		OnRender: func(q *domain.Quote) {
			if q == nil {
				return
			}
			out, err := render(tui.QuoteMarkdown(q))
			if err != nil {
				fmt.Println(tui.QuoteMarkdown(q))
				return
			}
			fmt.Print(out)
		},
		OnNotify: func(msg string) {
			fmt.Println(msg)
		},
	}
}

// printMarkdown renders markdown to the terminal, falling back to the
// raw text if the renderer fails.
func printMarkdown(md string) {
	render := tui.NewRenderer()
	out, err := render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
