package sojourn

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/voyantic/sojourn/internal/logging"
	"github.com/voyantic/sojourn/internal/metrics"
	"github.com/voyantic/sojourn/internal/store/memory"
	"github.com/voyantic/sojourn/pkg/bridge"
	"github.com/voyantic/sojourn/pkg/catalog"
	"github.com/voyantic/sojourn/pkg/claims"
	"github.com/voyantic/sojourn/pkg/domain"
	"github.com/voyantic/sojourn/pkg/ports"
	"github.com/voyantic/sojourn/pkg/pricing"
)

// Version is the release version embedded into servers and the CLI.
var Version = "0.3.0"

// App is the high-level entry point for the Sojourn library. It wires
// the catalog, pricing engine, claims adjudicator, store and action
// bridge into a single facade for hosts to embed.
type App struct {
	store   ports.Store
	catalog *catalog.Catalog
	bridge  *bridge.Bridge
	logger  *slog.Logger
	hooks   domain.UIHooks
	metrics *metrics.Bridge
	rng     *rand.Rand
	ids     domain.IDSource
	clock   func() time.Time
}

// Option defines a functional option for configuring the App.
type Option func(*App)

// WithStore injects a custom store, bypassing the default in-memory one.
func WithStore(s ports.Store) Option {
	return func(a *App) { a.store = s }
}

// WithCatalog injects a custom plan catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(a *App) { a.catalog = c }
}

// WithLogger sets a custom structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithHooks registers UI hooks fired after committed actions.
func WithHooks(h domain.UIHooks) Option {
	return func(a *App) { a.hooks = h }
}

// WithMetrics enables dispatch metrics.
func WithMetrics(m *metrics.Bridge) Option {
	return func(a *App) { a.metrics = m }
}

// WithRand injects the randomness source used by claim adjudication.
// Useful for reproducible tests.
func WithRand(rng *rand.Rand) Option {
	return func(a *App) { a.rng = rng }
}

// WithIDSource injects the id generator used across quotes, policies
// and claims.
func WithIDSource(ids domain.IDSource) Option {
	return func(a *App) { a.ids = ids }
}

// WithClock injects the time source used for purchase and claim dates.
func WithClock(clock func() time.Time) Option {
	return func(a *App) { a.clock = clock }
}

// New initializes a Sojourn App. With no options it uses the built-in
// plan catalog and an in-memory store.
func New(opts ...Option) *App {
	app := &App{}
	for _, opt := range opts {
		opt(app)
	}

	if app.catalog == nil {
		app.catalog = catalog.Default()
	}
	if app.store == nil {
		app.store = memory.NewStore()
	}
	if app.logger == nil {
		app.logger = logging.NewNop()
	}
	if app.ids == nil {
		app.ids = domain.NewID
	}
	if app.clock == nil {
		app.clock = time.Now
	}

	adjOpts := []claims.Option{
		claims.WithIDSource(app.ids),
		claims.WithClock(app.clock),
	}
	if app.rng != nil {
		adjOpts = append(adjOpts, claims.WithRand(app.rng))
	}

	app.bridge = bridge.New(app.store, app.catalog,
		bridge.WithLogger(app.logger),
		bridge.WithHooks(app.hooks),
		bridge.WithMetrics(app.metrics),
		bridge.WithIDSource(app.ids),
		bridge.WithClock(app.clock),
		bridge.WithPricer(pricing.New(app.catalog, app.ids)),
		bridge.WithAdjudicator(claims.New(adjOpts...)),
	)

	return app
}

// Bridge returns the action bridge for adapters that dispatch actions
// directly.
func (a *App) Bridge() *bridge.Bridge {
	return a.bridge
}

// Catalog returns the plan catalog.
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}

// Dispatch invokes a named action. It is a convenience passthrough to
// the bridge.
func (a *App) Dispatch(ctx context.Context, name string, args map[string]any) (any, error) {
	return a.bridge.Dispatch(ctx, name, args)
}

// CurrentQuote returns the active quote, if any.
func (a *App) CurrentQuote(ctx context.Context) (*domain.Quote, error) {
	return a.bridge.CurrentQuote(ctx)
}

// Policies returns the purchased policies in purchase order.
func (a *App) Policies(ctx context.Context) ([]domain.Policy, error) {
	return a.bridge.Policies(ctx)
}

// Claims returns the filed claims in filing order.
func (a *App) Claims(ctx context.Context) ([]domain.Claim, error) {
	return a.bridge.Claims(ctx)
}
