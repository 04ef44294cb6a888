// Package provider defines the provider-agnostic call primitive used by the
// negotiation protocol to reach external reasoning services.
//
// Core goals:
//   - One minimal interface (Client) hiding vendor SDK differences
//   - Normalized request shape (prompt, system, model, extended thinking)
//   - Plain-text replies; structure extraction is the reviewer's concern
//   - Lightweight mocking for tests (MockClient)
//
// Providers (Anthropic, Gemini, OpenAI) implement the Client interface from
// this package so higher layers (reviewers, the engine) remain decoupled from
// vendor SDKs.
package provider
