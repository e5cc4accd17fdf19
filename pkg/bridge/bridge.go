package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/voyantic/sojourn/internal/logging"
	"github.com/voyantic/sojourn/internal/metrics"
	"github.com/voyantic/sojourn/pkg/catalog"
	"github.com/voyantic/sojourn/pkg/claims"
	"github.com/voyantic/sojourn/pkg/domain"
	"github.com/voyantic/sojourn/pkg/ports"
	"github.com/voyantic/sojourn/pkg/pricing"
	"github.com/voyantic/sojourn/pkg/schema"
)

// Handler is the body of one action. It runs with the dispatch mutex held.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Action is a named operation with a declared input schema.
type Action struct {
	Name        string
	Description string
	Schema      schema.Schema
	handler     Handler
}

// Bridge validates and dispatches actions against the domain store.
type Bridge struct {
	mu      sync.Mutex
	actions map[string]*Action
	order   []string

	store       ports.Store
	catalog     *catalog.Catalog
	pricer      *pricing.Engine
	adjudicator *claims.Adjudicator
	hooks       domain.UIHooks
	logger      *slog.Logger
	metrics     *metrics.Bridge
	ids         domain.IDSource
	clock       func() time.Time
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithHooks registers the host collaborators (render, navigate, notify).
func WithHooks(h domain.UIHooks) Option {
	return func(b *Bridge) { b.hooks = h }
}

// WithLogger sets a structured logger for dispatch events.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bridge) { b.logger = l }
}

// WithMetrics attaches prometheus collectors to dispatch.
func WithMetrics(m *metrics.Bridge) Option {
	return func(b *Bridge) { b.metrics = m }
}

// WithIDSource injects the id generator used for policies and, unless a
// custom pricer/adjudicator is supplied, for quotes and claims too.
func WithIDSource(ids domain.IDSource) Option {
	return func(b *Bridge) { b.ids = ids }
}

// WithClock injects the timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(b *Bridge) { b.clock = clock }
}

// WithPricer overrides the default pricing engine.
func WithPricer(p *pricing.Engine) Option {
	return func(b *Bridge) { b.pricer = p }
}

// WithAdjudicator overrides the default claims adjudicator.
func WithAdjudicator(a *claims.Adjudicator) Option {
	return func(b *Bridge) { b.adjudicator = a }
}

// New creates a Bridge over the given store and catalog and registers the
// five domain actions.
func New(store ports.Store, cat *catalog.Catalog, opts ...Option) *Bridge {
	b := &Bridge{
		actions: make(map[string]*Action),
		store:   store,
		catalog: cat,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = logging.NewNop()
	}
	if b.ids == nil {
		b.ids = domain.NewID
	}
	if b.clock == nil {
		b.clock = time.Now
	}
	if b.pricer == nil {
		b.pricer = pricing.New(cat, b.ids)
	}
	if b.adjudicator == nil {
		b.adjudicator = claims.New(claims.WithIDSource(b.ids), claims.WithClock(b.clock))
	}

	b.registerActions()
	return b
}

func (b *Bridge) register(a Action) {
	b.actions[a.Name] = &a
	b.order = append(b.order, a.Name)
}

// Actions returns the registered actions in registration order, for
// adapters that expose them on a tool channel.
func (b *Bridge) Actions() []Action {
	out := make([]Action, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, *b.actions[name])
	}
	return out
}

// CurrentQuote returns the active quote. Errors with
// domain.ErrNoCurrentQuote when nothing has been quoted yet.
func (b *Bridge) CurrentQuote(ctx context.Context) (*domain.Quote, error) {
	return b.store.CurrentQuote(ctx)
}

// Policies returns the purchased policies in purchase order.
func (b *Bridge) Policies(ctx context.Context) ([]domain.Policy, error) {
	return b.store.Policies(ctx)
}

// Claims returns the filed claims in filing order.
func (b *Bridge) Claims(ctx context.Context) ([]domain.Claim, error) {
	return b.store.Claims(ctx)
}

// Dispatch validates args against the named action's schema and runs it.
// The whole read-validate-write sequence executes under the bridge mutex.
// On failure no state mutation has occurred.
func (b *Bridge) Dispatch(ctx context.Context, name string, args map[string]any) (any, error) {
	act, ok := b.actions[name]
	if !ok {
		b.metrics.Observe(name, metrics.OutcomeNotFound, 0)
		return nil, fmt.Errorf("%w: %q", domain.ErrActionNotFound, name)
	}

	start := time.Now()

	if err := act.Schema.Validate(args); err != nil {
		b.metrics.Observe(name, metrics.OutcomeInvalid, time.Since(start).Seconds())
		b.logger.Warn("action input rejected", "action", name, "error", err)
		return nil, err
	}

	b.mu.Lock()
	result, err := act.handler(ctx, args)
	b.mu.Unlock()

	elapsed := time.Since(start).Seconds()
	switch {
	case err == nil:
		b.metrics.Observe(name, metrics.OutcomeOK, elapsed)
		b.logger.Info("action dispatched", "action", name)
	case domain.NotFound(err):
		b.metrics.Observe(name, metrics.OutcomeNotFound, elapsed)
		b.logger.Warn("action reference failed", "action", name, "error", err)
	case domain.Invariant(err):
		b.metrics.Observe(name, metrics.OutcomeInvariant, elapsed)
		b.logger.Error("action invariant violated", "action", name, "error", err)
	default:
		b.metrics.Observe(name, metrics.OutcomeError, elapsed)
		b.logger.Error("action failed", "action", name, "error", err)
	}

	return result, err
}

// decodeInput maps validated args onto a typed per-action input record.
// Schema validation runs first, so a decode failure here is a bug in the
// action's schema, not caller input.
func decodeInput(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
	})
	if err != nil {
		return &domain.InvariantError{Op: "bridge.decodeInput", Msg: err.Error()}
	}
	if err := dec.Decode(args); err != nil {
		return &domain.InvariantError{Op: "bridge.decodeInput", Msg: err.Error()}
	}
	return nil
}
