// Package gemini provides a provider.Client backed by the Google Gemini API
// via the google.golang.org/genai SDK.
package gemini

import (
	"context"
	"fmt"

	"github.com/takk387/archpact/provider"
	"google.golang.org/genai"
)

// Options configures the Gemini client.
type Options struct {
	Model          string
	Temperature    float32
	ThinkingBudget int32
	APIKey         string
}

// Client wraps the Gemini generate-content API behind the generic
// provider.Client interface.
type Client struct {
	client *genai.Client
	opts   Options
}

// New creates a new Gemini client using the official SDK. The API key falls
// back to the GEMINI_API_KEY environment variable when unset.
func New(ctx context.Context, optFns ...func(o *Options)) (*Client, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: client, opts: opts}, nil
}

// NewFromClient creates a new Gemini client from an existing SDK client.
func NewFromClient(client *genai.Client, optFns ...func(o *Options)) *Client {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Client{client: client, opts: opts}
}

func defaultOptions() Options {
	return Options{
		Model:          "gemini-2.0-flash",
		Temperature:    0.7,
		ThinkingBudget: 4096,
	}
}

// Complete implements provider.Client. It issues exactly one generate-content
// call and returns the aggregated text of the reply.
func (c *Client) Complete(ctx context.Context, req provider.Request) (string, error) {
	model := c.opts.Model
	if req.Model != "" {
		model = req.Model
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.opts.Temperature),
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.ExtendedThinking {
		cfg.ThinkingConfig = &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(c.opts.ThinkingBudget),
		}
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini api error: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini reply contained no text parts")
	}
	return text, nil
}

// Info returns metadata describing this Gemini client implementation.
func (c *Client) Info() provider.Info {
	return provider.Info{Name: c.opts.Model, Provider: "gemini"}
}
