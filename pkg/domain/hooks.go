package domain

// View identifiers for the navigation collaborator.
const (
	ViewMain      = "main"
	ViewDashboard = "dashboard"
)

// UIHooks are the host collaborator contracts: rendering, navigation, and
// transient notifications. All fields are optional. Hooks run synchronously
// after a state mutation commits and their completion is not awaited for
// the action's own result; they must not be used to veto an action.
type UIHooks struct {
	// OnRender receives the current quote, or nil when no quote is active
	// and the catalog is shown at base prices.
	OnRender func(quote *Quote)

	// OnNavigate switches the visible view (ViewMain or ViewDashboard).
	OnNavigate func(view string)

	// OnNotify shows a transient message for a notable outcome.
	OnNotify func(message string)
}

// Render invokes OnRender if set.
func (h UIHooks) Render(q *Quote) {
	if h.OnRender != nil {
		h.OnRender(q)
	}
}

// Navigate invokes OnNavigate if set.
func (h UIHooks) Navigate(view string) {
	if h.OnNavigate != nil {
		h.OnNavigate(view)
	}
}

// Notify invokes OnNotify if set.
func (h UIHooks) Notify(message string) {
	if h.OnNotify != nil {
		h.OnNotify(message)
	}
}
