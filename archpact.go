// Package archpact provides a high-level façade over the negotiation engine
// and provider abstractions for reconciling two independently produced
// software-architecture proposals into one agreed architecture. Most
// applications interact with this package by:
//  1. Creating a Negotiator via New() with one reviewer per participant
//     (or NewFromClients() to wrap raw provider clients)
//  2. Calling Negotiate() with the two initial positions and the read-only
//     app / intelligence context
//  3. Consuming the ConsensusResult: a merged UnifiedArchitecture on
//     success, or an escalation reason plus the unresolved topics for human
//     review
//
// The façade delegates orchestration to negotiate.Engine while keeping setup
// ergonomics concise. Defaults (five rounds, no-op logging) are safe for
// local development and testing.
package archpact

import (
	"context"

	"github.com/takk387/archpact/core"
	"github.com/takk387/archpact/logging"
	"github.com/takk387/archpact/negotiate"
	"github.com/takk387/archpact/provider"
	"github.com/takk387/archpact/reviewer"
)

// Options configures a Negotiator instance.
type Options struct {
	// MaxRounds bounds the negotiation. Defaults to 5.
	MaxRounds int

	// OnRoundComplete is an optional progress hook invoked once per
	// completed round with (round, maxRounds). Purely observational.
	OnRoundComplete negotiate.RoundCallback

	// Logger receives structured diagnostics. Defaults to NoOp if nil.
	Logger logging.Logger
}

// WithMaxRounds overrides the round budget.
func WithMaxRounds(n int) func(o *Options) {
	return func(o *Options) { o.MaxRounds = n }
}

// WithRoundCallback sets the per-round progress hook.
func WithRoundCallback(cb negotiate.RoundCallback) func(o *Options) {
	return func(o *Options) { o.OnRoundComplete = cb }
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = logger }
}

// Negotiator is the high-level façade aggregating the underlying engine.
type Negotiator struct {
	engine *negotiate.Engine
}

// New creates a Negotiator from two reviewers, one per participant.
func New(reviewerA, reviewerB reviewer.Reviewer, optFns ...func(o *Options)) (*Negotiator, error) {
	opts := Options{MaxRounds: negotiate.DefaultConfig.MaxRounds, Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	engine, err := negotiate.New(reviewerA, reviewerB,
		negotiate.WithMaxRounds(opts.MaxRounds),
		negotiate.WithRoundCallback(opts.OnRoundComplete),
		negotiate.WithLogger(opts.Logger),
	)
	if err != nil {
		return nil, err
	}
	return &Negotiator{engine: engine}, nil
}

// NewFromClients creates a Negotiator by wrapping two raw provider clients
// in the standard ProviderReviewer adapter.
func NewFromClients(clientA, clientB provider.Client, optFns ...func(o *Options)) (*Negotiator, error) {
	opts := Options{MaxRounds: negotiate.DefaultConfig.MaxRounds, Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	reviewerA := reviewer.New(clientA, reviewer.WithLogger(opts.Logger))
	reviewerB := reviewer.New(clientB, reviewer.WithLogger(opts.Logger))

	return New(reviewerA, reviewerB, func(o *Options) { *o = opts })
}

// Negotiate runs the full negotiation and always returns a usable
// ConsensusResult; the error is non-nil only for contract violations and
// caller cancellation.
func (n *Negotiator) Negotiate(ctx context.Context, posA, posB core.ArchitecturePosition, appCtx core.AppContext, intelCtx core.IntelligenceContext) (*core.ConsensusResult, error) {
	return n.engine.Negotiate(ctx, posA, posB, appCtx, intelCtx)
}
