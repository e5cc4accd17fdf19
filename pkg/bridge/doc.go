// Package bridge is the schema-validated dispatch layer exposing the
// domain operations uniformly to every call site.
//
// Each action is registered once, under a stable name, with a declared
// input schema. The UI call site (CLI commands), the HTTP API, and the
// tool-invocation channel all go through Bridge.Dispatch with identical
// semantics: validate, look up, compute, commit, notify. Validation and
// entity lookups happen strictly before any store mutation, so a failed
// action never leaves a partial write behind.
//
// Dispatch serializes actions with a mutex: each action's
// read-validate-write sequence on the store is atomic with respect to
// concurrent callers from other call sites.
package bridge
