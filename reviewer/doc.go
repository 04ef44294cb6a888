// Package reviewer adapts raw reasoning-provider replies into the structured
// review and adjustment values the negotiation protocol consumes.
//
// The ProviderReviewer wraps a provider.Client and guarantees two things to
// the engine: exactly one external call per invocation, and no failure ever
// escaping to the caller. Transport errors and malformed replies degrade into
// a neutral ReviewResponse (for Review) or the unchanged input position (for
// Adjust), so a misbehaving provider slows consensus down but never aborts a
// negotiation.
package reviewer
