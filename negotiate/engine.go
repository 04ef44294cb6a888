package negotiate

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/takk387/archpact/core"
	"github.com/takk387/archpact/logging"
	"github.com/takk387/archpact/reviewer"
)

// Escalation reasons carried by non-consensus results.
const (
	// EscalationNotConverging is reported when the disagreement count
	// stopped strictly decreasing between rounds.
	EscalationNotConverging = "not converging"

	// EscalationMaxRounds is reported when the round budget ran out with
	// disagreements still open.
	EscalationMaxRounds = "max rounds exceeded"
)

// RoundCallback is an optional progress hook invoked once per completed
// round. It is purely observational: panics inside the hook are recovered
// and logged, never affecting the negotiation.
type RoundCallback func(round, maxRounds int)

// Config defines tuning parameters for the engine's behavior.
type Config struct {
	// MaxRounds bounds the negotiation. Must be positive; the protocol
	// guarantees rounds never exceed it.
	MaxRounds int
}

// DefaultConfig provides the standard round budget.
var DefaultConfig = Config{MaxRounds: 5}

// Options configures an Engine instance using the functional options pattern.
type Options struct {
	// Config contains operational parameters. Defaults to DefaultConfig.
	Config Config

	// OnRoundComplete is the optional per-round progress hook.
	OnRoundComplete RoundCallback

	// Logger provides structured diagnostics. Defaults to NoOp if nil.
	Logger logging.Logger
}

// WithConfig overrides the engine configuration.
func WithConfig(cfg Config) func(o *Options) {
	return func(o *Options) { o.Config = cfg }
}

// WithMaxRounds overrides the round budget.
func WithMaxRounds(n int) func(o *Options) {
	return func(o *Options) { o.Config.MaxRounds = n }
}

// WithRoundCallback sets the per-round progress hook.
func WithRoundCallback(cb RoundCallback) func(o *Options) {
	return func(o *Options) { o.OnRoundComplete = cb }
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = logger }
}

// Engine orchestrates the negotiation round loop between two reviewers. It
// holds no mutable state across negotiations; a single Engine is safe for
// concurrent use by multiple goroutines.
type Engine struct {
	reviewerA reviewer.Reviewer
	reviewerB reviewer.Reviewer
	config    Config
	onRound   RoundCallback
	logger    logging.Logger
}

// New creates an Engine for the two negotiation participants. Configuration
// errors (nil reviewers, non-positive round budget) are the only errors this
// package ever returns; everything downstream degrades instead of failing.
func New(reviewerA, reviewerB reviewer.Reviewer, optFns ...func(o *Options)) (*Engine, error) {
	opts := Options{Config: DefaultConfig, Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	if reviewerA == nil || reviewerB == nil {
		return nil, fmt.Errorf("negotiate: both reviewers are required")
	}
	if opts.Config.MaxRounds <= 0 {
		return nil, fmt.Errorf("negotiate: max rounds must be positive, got %d", opts.Config.MaxRounds)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Engine{
		reviewerA: reviewerA,
		reviewerB: reviewerB,
		config:    opts.Config,
		onRound:   opts.OnRoundComplete,
		logger:    opts.Logger,
	}, nil
}

// Negotiate runs the full round loop and always produces a ConsensusResult.
// The returned error is non-nil only for caller-side contract issues
// (cancelled context); provider failures, malformed replies, non-convergence
// and round exhaustion are all expressed in the result itself.
func (e *Engine) Negotiate(ctx context.Context, posA, posB core.ArchitecturePosition, appCtx core.AppContext, intelCtx core.IntelligenceContext) (*core.ConsensusResult, error) {
	negotiationID := uuid.NewString()
	maxRounds := e.config.MaxRounds
	rounds := make([]core.NegotiationRound, 0, maxRounds)

	positionA := posA.Clone()
	positionB := posB.Clone()

	e.logger.Info("negotiation started", "negotiation_id", negotiationID, "max_rounds", maxRounds)

	for round := 1; round <= maxRounds; round++ {
		// Caller-driven early abort point between rounds.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rcA := core.ReviewContext{App: appCtx, Intelligence: intelCtx, Round: round, Participant: "A"}
		rcB := core.ReviewContext{App: appCtx, Intelligence: intelCtx, Round: round, Participant: "B"}

		// Barrier 1: both reviews complete before resolution. The two calls
		// run independently; a failing side yields a neutral response from
		// its adapter rather than cancelling its sibling.
		var reviewA, reviewB core.ReviewResponse
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			reviewA = e.reviewerA.Review(ctx, positionA, positionB, rcA)
		}()
		go func() {
			defer wg.Done()
			reviewB = e.reviewerB.Review(ctx, positionB, positionA, rcB)
		}()
		wg.Wait()

		agreements := Agreements(reviewA, reviewB)
		disagreements := Disagreements(reviewA, reviewB)

		rounds = append(rounds, core.NegotiationRound{
			Round:         round,
			PositionA:     positionA.Clone(),
			PositionB:     positionB.Clone(),
			FeedbackA:     reviewA.Feedback,
			FeedbackB:     reviewB.Feedback,
			Agreements:    agreements,
			Disagreements: disagreements,
		})
		e.fireRoundComplete(round, maxRounds)
		e.logger.Info("round completed",
			"negotiation_id", negotiationID,
			"round", round,
			"agreements", len(agreements),
			"disagreements", len(disagreements),
		)

		if len(disagreements) == 0 {
			final := Merge(positionA, positionB, agreements, len(rounds))
			e.logger.Info("consensus reached", "negotiation_id", negotiationID, "rounds", len(rounds))
			return &core.ConsensusResult{
				Reached:           true,
				Rounds:            rounds,
				FinalArchitecture: &final,
			}, nil
		}

		if round >= 2 && !IsConverging(rounds) {
			e.logger.Warn("negotiation escalated",
				"negotiation_id", negotiationID,
				"round", round,
				"reason", EscalationNotConverging,
			)
			return &core.ConsensusResult{
				Reached:          false,
				Rounds:           rounds,
				EscalationReason: EscalationNotConverging,
				DivergentIssues:  disagreements,
			}, nil
		}

		// Barrier 2: both adjustments complete before the next round. A
		// failed or unparseable adjustment keeps that side's previous
		// position; a valid position is never discarded on failure.
		var nextA, nextB core.ArchitecturePosition
		wg.Add(2)
		go func() {
			defer wg.Done()
			nextA = e.reviewerA.Adjust(ctx, positionA, reviewB, disagreements, rcA)
		}()
		go func() {
			defer wg.Done()
			nextB = e.reviewerB.Adjust(ctx, positionB, reviewA, disagreements, rcB)
		}()
		wg.Wait()

		positionA = nextA
		positionB = nextB
	}

	last := rounds[len(rounds)-1]
	e.logger.Warn("negotiation escalated",
		"negotiation_id", negotiationID,
		"round", len(rounds),
		"reason", EscalationMaxRounds,
	)
	return &core.ConsensusResult{
		Reached:          false,
		Rounds:           rounds,
		EscalationReason: EscalationMaxRounds,
		DivergentIssues:  last.Disagreements,
	}, nil
}

// fireRoundComplete invokes the progress hook, shielding the negotiation
// from panics inside caller code.
func (e *Engine) fireRoundComplete(round, maxRounds int) {
	if e.onRound == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("round callback panicked", "round", round, "panic", fmt.Sprintf("%v", r))
		}
	}()
	e.onRound(round, maxRounds)
}
