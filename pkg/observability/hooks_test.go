package observability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voyantic/sojourn/internal/logging"
	"github.com/voyantic/sojourn/pkg/domain"
	"github.com/voyantic/sojourn/pkg/observability"
)

func TestCombineHooks_Order(t *testing.T) {
	var calls []string
	first := domain.UIHooks{
		OnNotify: func(msg string) { calls = append(calls, "first:"+msg) },
	}
	second := domain.UIHooks{
		OnNotify: func(msg string) { calls = append(calls, "second:"+msg) },
	}

	combined := observability.CombineHooks(first, second)
	combined.Notify("hello")

	assert.Equal(t, []string{"first:hello", "second:hello"}, calls)
}

func TestCombineHooks_AllEvents(t *testing.T) {
	rendered := 0
	var view string
	hooks := observability.CombineHooks(domain.UIHooks{
		OnRender:   func(q *domain.Quote) { rendered++ },
		OnNavigate: func(v string) { view = v },
	})

	hooks.Render(&domain.Quote{ID: "Q-1"})
	hooks.Render(nil)
	hooks.Navigate(domain.ViewDashboard)
	hooks.Notify("ignored, no observer")

	assert.Equal(t, 2, rendered)
	assert.Equal(t, domain.ViewDashboard, view)
}

func TestCombineHooks_PartialObservers(t *testing.T) {
	// Sets with missing callbacks must not panic.
	combined := observability.CombineHooks(domain.UIHooks{}, domain.UIHooks{
		OnNotify: func(string) {},
	})

	assert.NotPanics(t, func() {
		combined.Render(nil)
		combined.Navigate(domain.ViewMain)
		combined.Notify("ok")
	})
}

func TestLoggingHooks(t *testing.T) {
	hooks := observability.LoggingHooks(logging.NewNop())

	assert.NotPanics(t, func() {
		hooks.Render(&domain.Quote{ID: "Q-1"})
		hooks.Render(nil)
		hooks.Navigate(domain.ViewDashboard)
		hooks.Notify("quote ready")
	})
}
