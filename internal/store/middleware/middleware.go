// Package middleware wraps a Store to add cross-cutting behavior such
// as logging, PII masking and encryption at rest. Middlewares compose
// with Chain and stay transparent to the action bridge.
package middleware

import "github.com/voyantic/sojourn/pkg/ports"

// Middleware allows wrapping a Store to add behavior.
type Middleware func(ports.Store) ports.Store

// Chain applies middlewares to a store. The first middleware becomes
// the outermost wrapper.
func Chain(store ports.Store, mws ...Middleware) ports.Store {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
