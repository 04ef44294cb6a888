// Package anthropic provides a provider.Client backed by the Anthropic
// Claude Messages API.
package anthropic

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/takk387/archpact/provider"
)

// Options configures the Anthropic client (model id, temperature, token
// limits, API key). Extend via functional options to preserve stability.
type Options struct {
	Model          anthropic.Model
	Temperature    float64
	MaxTokens      int64
	ThinkingBudget int64
	APIKey         string
}

// Client wraps the Anthropic Messages API behind the generic provider.Client
// interface.
type Client struct {
	client *anthropic.Client
	opts   Options
}

// New creates a new Anthropic client using the official SDK.
func New(optFns ...func(o *Options)) *Client {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := anthropic.NewClient(clientOpts...)

	return &Client{client: &client, opts: opts}
}

// NewFromClient creates a new Anthropic client from an existing SDK client.
func NewFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Client {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Client{client: client, opts: opts}
}

func defaultOptions() Options {
	return Options{
		Model:          anthropic.ModelClaude3_5Sonnet20241022,
		Temperature:    0.7,
		MaxTokens:      8192,
		ThinkingBudget: 4096,
	}
}

// Complete implements provider.Client. It issues exactly one Messages API
// call and returns the concatenated text blocks of the reply.
func (c *Client) Complete(ctx context.Context, req provider.Request) (string, error) {
	model := c.opts.Model
	if req.Model != "" {
		model = anthropic.Model(req.Model)
	}

	params := anthropic.MessageNewParams{
		Model:     model,
		MaxTokens: c.opts.MaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.ExtendedThinking {
		// The API requires default sampling while thinking is enabled, so
		// the temperature override is only applied on the plain path.
		params.Thinking = anthropic.ThinkingConfigParamOfEnabled(c.opts.ThinkingBudget)
	} else {
		params.Temperature = anthropic.Float(c.opts.Temperature)
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic api error: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.AsText().Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("anthropic reply contained no text blocks")
	}
	return text, nil
}

// Info returns metadata describing this Anthropic client implementation.
func (c *Client) Info() provider.Info {
	return provider.Info{Name: string(c.opts.Model), Provider: "anthropic"}
}
