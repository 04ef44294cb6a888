package reviewer

import (
	"context"
	"time"

	"github.com/takk387/archpact/core"
	"github.com/takk387/archpact/logging"
	"github.com/takk387/archpact/provider"
)

// Reviewer is the contract the negotiation engine depends on. Neither method
// returns an error: implementations absorb transport and parse failures
// locally, degrading to a neutral review or the unchanged input position.
type Reviewer interface {
	// Review evaluates the other participant's position against the
	// reviewer's own and returns the structured verdict for this round.
	Review(ctx context.Context, own, other core.ArchitecturePosition, rc core.ReviewContext) core.ReviewResponse

	// Adjust produces a new position for the reviewer's side, moved toward
	// the other reviewer's feedback on the listed disagreements. The input
	// position is never mutated; on any failure it is returned unchanged.
	Adjust(ctx context.Context, own core.ArchitecturePosition, otherReview core.ReviewResponse, disagreements []core.Disagreement, rc core.ReviewContext) core.ArchitecturePosition
}

// Options configure a ProviderReviewer.
type Options struct {
	// ExtendedThinking asks the provider to spend additional reasoning
	// effort on every call, where supported.
	ExtendedThinking bool

	// Model optionally overrides the client's configured model id.
	Model string

	// Logger receives diagnostics for absorbed failures. Defaults to NoOp.
	Logger logging.Logger
}

// ProviderReviewer implements Reviewer on top of a provider.Client. One
// instance represents one negotiation participant.
type ProviderReviewer struct {
	client provider.Client
	opts   Options
}

// New creates a ProviderReviewer for the given client.
func New(client provider.Client, optFns ...func(o *Options)) *ProviderReviewer {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &ProviderReviewer{client: client, opts: opts}
}

// WithExtendedThinking enables extended reasoning effort on every call.
func WithExtendedThinking() func(o *Options) {
	return func(o *Options) { o.ExtendedThinking = true }
}

// WithModel overrides the client's configured model id.
func WithModel(model string) func(o *Options) {
	return func(o *Options) { o.Model = model }
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = logger }
}

// Review implements Reviewer. Any failure yields a neutral response whose
// feedback explains what went wrong.
func (r *ProviderReviewer) Review(ctx context.Context, own, other core.ArchitecturePosition, rc core.ReviewContext) core.ReviewResponse {
	body, err := buildReviewPrompt(own, other, rc)
	if err != nil {
		r.warn("review prompt construction failed", rc, err)
		return core.NeutralReview("prompt construction failed")
	}

	raw, err := r.complete(ctx, "review", body, reviewSystemPrompt)
	if err != nil {
		r.warn("review call failed", rc, err)
		return core.NeutralReview(err.Error())
	}

	resp, err := parseReview(raw)
	if err != nil {
		r.warn("review reply unparseable", rc, err)
		return core.NeutralReview("reply contained no parseable review")
	}
	return resp
}

// Adjust implements Reviewer. Any failure returns the input position
// unchanged; a valid position is never discarded on a failed adjustment.
func (r *ProviderReviewer) Adjust(ctx context.Context, own core.ArchitecturePosition, otherReview core.ReviewResponse, disagreements []core.Disagreement, rc core.ReviewContext) core.ArchitecturePosition {
	body, err := buildAdjustPrompt(own, otherReview, disagreements, rc)
	if err != nil {
		r.warn("adjust prompt construction failed", rc, err)
		return own
	}

	raw, err := r.complete(ctx, "adjust", body, adjustSystemPrompt)
	if err != nil {
		r.warn("adjust call failed", rc, err)
		return own
	}

	adjusted, err := parseAdjusted(raw)
	if err != nil {
		r.warn("adjust reply rejected", rc, err)
		return own
	}
	return adjusted
}

func (r *ProviderReviewer) complete(ctx context.Context, operation, body, system string) (string, error) {
	start := time.Now()
	raw, err := r.client.Complete(ctx, provider.Request{
		Prompt:           body,
		System:           system,
		Model:            r.opts.Model,
		ExtendedThinking: r.opts.ExtendedThinking,
	})
	r.opts.Logger.Debug("provider call finished",
		"provider", r.client.Info().Provider,
		"operation", operation,
		"duration", time.Since(start),
		"success", err == nil,
	)
	return raw, err
}

func (r *ProviderReviewer) warn(msg string, rc core.ReviewContext, err error) {
	r.opts.Logger.Warn(msg,
		"provider", r.client.Info().Provider,
		"participant", rc.Participant,
		"round", rc.Round,
		"error", err.Error(),
	)
}
