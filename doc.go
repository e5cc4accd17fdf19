/*
Package sojourn is a travel insurance core: a deterministic pricing
engine, a claims adjudicator, and a schema-validated action bridge that
exposes the whole system as a small set of named operations.

It follows a hexagonal layout. The core owns quotes, policies and
claims; hosts own the I/O. The same five actions are invocable from a
CLI, an HTTP API, or an MCP tool channel, and every channel goes
through identical validation and error mapping.

# Key Features

  - Deterministic Pricing: identical quote requests always produce
    identical prices; only the quote id varies.
  - Uniform Dispatch: one schema, one handler, any adapter.
  - Atomic Actions: an action either commits all of its writes or none.
  - Pluggable Storage: in-memory by default, Redis for shared state.

# Usage

Initialize the App and dispatch actions against it.

	package main

	import (
		"context"
		"log"

		"github.com/voyantic/sojourn"
		"github.com/voyantic/sojourn/pkg/bridge"
	)

	func main() {
		app := sojourn.New()
		ctx := context.Background()

		quote, err := app.Dispatch(ctx, bridge.ActionGetQuote, map[string]any{
			"destination": "worldwide",
			"days":        14,
			"age":         70,
			"activities":  []string{"Skiing"},
		})
		if err != nil {
			log.Fatal(err)
		}
		log.Println("quote:", quote)
	}
*/
package sojourn
