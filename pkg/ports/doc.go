// Package ports declares the driven-side interfaces of the core, currently
// the Domain Store contract, plus a reusable contract test every store
// implementation must pass.
package ports
