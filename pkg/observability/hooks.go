package observability

import (
	"log/slog"

	"github.com/voyantic/sojourn/pkg/domain"
)

// CombineHooks fans a single hook stream out to every given set.
// Hooks fire in argument order.
func CombineHooks(hooks ...domain.UIHooks) domain.UIHooks {
	all := make([]domain.UIHooks, len(hooks))
	copy(all, hooks)

	return domain.UIHooks{
		OnRender: func(q *domain.Quote) {
			for _, h := range all {
				h.Render(q)
			}
		},
		OnNavigate: func(view string) {
			for _, h := range all {
				h.Navigate(view)
			}
		},
		OnNotify: func(msg string) {
			for _, h := range all {
				h.Notify(msg)
			}
		},
	}
}

// LoggingHooks returns hooks that record every UI event on the logger
// at debug level.
func LoggingHooks(logger *slog.Logger) domain.UIHooks {
	return domain.UIHooks{
		OnRender: func(q *domain.Quote) {
			if q == nil {
				logger.Debug("ui render", "quote", "none")
				return
			}
			logger.Debug("ui render", "quote", q.ID, "plans", len(q.Plans))
		},
		OnNavigate: func(view string) {
			logger.Debug("ui navigate", "view", view)
		},
		OnNotify: func(msg string) {
			logger.Debug("ui notify", "message", msg)
		},
	}
}
