package provider

import "context"

// Request captures the normalized input for a single completion call.
type Request struct {
	// Prompt is the user-facing prompt body.
	Prompt string `json:"prompt"`
	// System carries system-level instructions, if any.
	System string `json:"system,omitempty"`
	// Model optionally overrides the client's configured model id.
	Model string `json:"model,omitempty"`
	// ExtendedThinking asks the provider to spend additional reasoning
	// effort before answering, where the underlying API supports it.
	ExtendedThinking bool `json:"extended_thinking,omitempty"`
}

// Info contains metadata about a client implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "anthropic", "gemini", "openai", ...
}

// Client is the minimal interface required to drive one external reasoning
// call. Implementations issue exactly one network call per Complete
// invocation and return the raw text reply; transport and API errors are
// returned as ordinary errors for the caller to absorb.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)

	// Info returns information about the client implementation.
	Info() Info
}
