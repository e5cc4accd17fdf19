// Package observability composes UI hooks so several observers can
// watch the same action bridge: a terminal renderer, a structured
// logger, a test recorder.
package observability
