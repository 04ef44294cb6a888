// Package logging provides a tiny abstraction over slog so downstream code
// can depend on a minimal interface (Logger) while allowing hosts to plug any
// structured logger. It also offers a richer NegotiationLogger with contextual
// helpers (negotiation id, component) and domain specific helpers for provider
// calls and negotiation rounds.
package logging
