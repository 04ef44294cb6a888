package negotiate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takk387/archpact/core"
	"github.com/takk387/archpact/provider"
	"github.com/takk387/archpact/reviewer"
)

// scriptedReviewer plays back a fixed sequence of review responses, one per
// round, and applies an optional adjustment function. The last scripted
// response repeats once the script is exhausted.
type scriptedReviewer struct {
	mu       sync.Mutex
	reviews  []core.ReviewResponse
	adjustFn func(own core.ArchitecturePosition) core.ArchitecturePosition
	calls    int
}

func (s *scriptedReviewer) Review(_ context.Context, _, _ core.ArchitecturePosition, _ core.ReviewContext) core.ReviewResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.calls
	s.calls++
	if len(s.reviews) == 0 {
		return core.ReviewResponse{Agreements: []string{}, Disagreements: []core.DisagreementClaim{}}
	}
	if idx >= len(s.reviews) {
		idx = len(s.reviews) - 1
	}
	return s.reviews[idx]
}

func (s *scriptedReviewer) Adjust(_ context.Context, own core.ArchitecturePosition, _ core.ReviewResponse, _ []core.Disagreement, _ core.ReviewContext) core.ArchitecturePosition {
	if s.adjustFn != nil {
		return s.adjustFn(own)
	}
	return own
}

// reviewRound builds a review carrying n one-sided disagreement claims, so
// the canonical disagreement count for the round equals n when the other
// side stays silent.
func reviewRound(n int) core.ReviewResponse {
	claims := make([]core.DisagreementClaim, n)
	for i := range claims {
		claims[i] = core.DisagreementClaim{
			Topic:       fmt.Sprintf("topic-%d", i),
			MyStance:    "mine",
			OtherStance: "theirs",
		}
	}
	return core.ReviewResponse{Feedback: "reviewed", Agreements: []string{}, Disagreements: claims}
}

func emptyReviewer() *scriptedReviewer { return &scriptedReviewer{} }

func scriptCounts(counts ...int) *scriptedReviewer {
	reviews := make([]core.ReviewResponse, len(counts))
	for i, n := range counts {
		reviews[i] = reviewRound(n)
	}
	return &scriptedReviewer{reviews: reviews}
}

func testPositions() (core.ArchitecturePosition, core.ArchitecturePosition) {
	a := core.ArchitecturePosition{
		Database: core.Section{"engine": "postgres"},
		API:      core.Section{"style": "rest"},
		Auth:     core.Section{"strategy": "session"},
	}
	b := core.ArchitecturePosition{
		Database: core.Section{"engine": "postgres"},
		API:      core.Section{"style": "rest"},
		Auth:     core.Section{"strategy": "session"},
	}
	return a, b
}

func TestNew_ContractViolations(t *testing.T) {
	_, err := New(nil, emptyReviewer())
	assert.Error(t, err)

	_, err = New(emptyReviewer(), nil)
	assert.Error(t, err)

	_, err = New(emptyReviewer(), emptyReviewer(), WithMaxRounds(0))
	assert.Error(t, err)

	_, err = New(emptyReviewer(), emptyReviewer(), WithMaxRounds(-3))
	assert.Error(t, err)
}

func TestNegotiate_ImmediateConsensus(t *testing.T) {
	a := &scriptedReviewer{reviews: []core.ReviewResponse{{
		Feedback:   "all good",
		Agreements: []string{"Use Postgres"},
	}}}
	b := &scriptedReviewer{reviews: []core.ReviewResponse{{
		Feedback:   "agreed",
		Agreements: []string{"use postgres"},
	}}}

	var callbackRounds []int
	engine, err := New(a, b, WithRoundCallback(func(round, maxRounds int) {
		callbackRounds = append(callbackRounds, round)
		assert.Equal(t, 5, maxRounds)
	}))
	require.NoError(t, err)

	posA, posB := testPositions()
	result, err := engine.Negotiate(context.Background(), posA, posB, core.AppContext{}, core.IntelligenceContext{})
	require.NoError(t, err)

	assert.True(t, result.Reached)
	require.Len(t, result.Rounds, 1)
	assert.Empty(t, result.Rounds[0].Disagreements)
	require.NotNil(t, result.FinalArchitecture)
	assert.Equal(t, "postgres", result.FinalArchitecture.Database["engine"])
	assert.Equal(t, 1, result.FinalArchitecture.ConsensusReport.Rounds)
	assert.Equal(t, []string{"Use Postgres"}, result.FinalArchitecture.ConsensusReport.FinalAgreements)
	assert.Equal(t, []int{1}, callbackRounds)
}

func TestNegotiate_EscalatesWhenNotConverging(t *testing.T) {
	// Disagreement counts 3, 3: the second round does not strictly decrease,
	// so the negotiation escalates at round 2 without spending the budget.
	engine, err := New(scriptCounts(3, 3, 2), emptyReviewer())
	require.NoError(t, err)

	posA, posB := testPositions()
	result, err := engine.Negotiate(context.Background(), posA, posB, core.AppContext{}, core.IntelligenceContext{})
	require.NoError(t, err)

	assert.False(t, result.Reached)
	assert.Equal(t, EscalationNotConverging, result.EscalationReason)
	assert.Len(t, result.Rounds, 2)
	assert.Len(t, result.DivergentIssues, 3)
	assert.Nil(t, result.FinalArchitecture)
}

func TestNegotiate_ConvergesWithDecreasingCounts(t *testing.T) {
	// 4, 3, 2, 1, 0: strictly decreasing, consensus on round 5.
	engine, err := New(scriptCounts(4, 3, 2, 1, 0), emptyReviewer())
	require.NoError(t, err)

	posA, posB := testPositions()
	result, err := engine.Negotiate(context.Background(), posA, posB, core.AppContext{}, core.IntelligenceContext{})
	require.NoError(t, err)

	assert.True(t, result.Reached)
	assert.Len(t, result.Rounds, 5)
	assert.Empty(t, result.Rounds[4].Disagreements)
	require.NotNil(t, result.FinalArchitecture)
	assert.Equal(t, 5, result.FinalArchitecture.ConsensusReport.Rounds)
}

func TestNegotiate_MaxRoundsExceeded(t *testing.T) {
	engine, err := New(scriptCounts(5, 4, 3), emptyReviewer(), WithMaxRounds(3))
	require.NoError(t, err)

	posA, posB := testPositions()
	result, err := engine.Negotiate(context.Background(), posA, posB, core.AppContext{}, core.IntelligenceContext{})
	require.NoError(t, err)

	assert.False(t, result.Reached)
	assert.Equal(t, EscalationMaxRounds, result.EscalationReason)
	assert.Len(t, result.Rounds, 3)
	assert.Len(t, result.DivergentIssues, 3) // last round's open disagreements
}

func TestNegotiate_RoundsNeverExceedDefaultBudget(t *testing.T) {
	engine, err := New(scriptCounts(10, 9, 8, 7, 6), emptyReviewer())
	require.NoError(t, err)

	posA, posB := testPositions()
	result, err := engine.Negotiate(context.Background(), posA, posB, core.AppContext{}, core.IntelligenceContext{})
	require.NoError(t, err)

	assert.False(t, result.Reached)
	assert.LessOrEqual(t, len(result.Rounds), 5)
	assert.Equal(t, EscalationMaxRounds, result.EscalationReason)
}

func TestNegotiate_FailingProviderStillReturnsResult(t *testing.T) {
	// Side B's provider always rejects; its adapter degrades to neutral
	// responses and the negotiation still terminates with a result.
	failing := reviewer.New(provider.NewMockClient("broken", "mock").
		FailAlways(errors.New("connection refused")))

	engine, err := New(scriptCounts(2, 2), failing)
	require.NoError(t, err)

	posA, posB := testPositions()
	result, err := engine.Negotiate(context.Background(), posA, posB, core.AppContext{}, core.IntelligenceContext{})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.False(t, result.Reached)
	require.NotEmpty(t, result.Rounds)
	assert.Contains(t, result.Rounds[0].FeedbackB, "review unavailable")
}

func TestNegotiate_CallbackPanicIsRecovered(t *testing.T) {
	a := &scriptedReviewer{reviews: []core.ReviewResponse{{Agreements: []string{"ok"}}}}

	engine, err := New(a, emptyReviewer(), WithRoundCallback(func(round, maxRounds int) {
		panic("observer bug")
	}))
	require.NoError(t, err)

	posA, posB := testPositions()
	result, err := engine.Negotiate(context.Background(), posA, posB, core.AppContext{}, core.IntelligenceContext{})
	require.NoError(t, err)
	assert.True(t, result.Reached)
}

func TestNegotiate_AdjustedPositionsCarryIntoNextRound(t *testing.T) {
	a := scriptCounts(2, 0)
	a.adjustFn = func(own core.ArchitecturePosition) core.ArchitecturePosition {
		next := own.Clone()
		next.Database["engine"] = "mysql"
		return next
	}

	engine, err := New(a, emptyReviewer())
	require.NoError(t, err)

	posA, posB := testPositions()
	result, err := engine.Negotiate(context.Background(), posA, posB, core.AppContext{}, core.IntelligenceContext{})
	require.NoError(t, err)

	require.Len(t, result.Rounds, 2)
	assert.Equal(t, "postgres", result.Rounds[0].PositionA.Database["engine"])
	assert.Equal(t, "mysql", result.Rounds[1].PositionA.Database["engine"])
	// The caller's input position is never mutated.
	assert.Equal(t, "postgres", posA.Database["engine"])
}

func TestNegotiate_CancelledContext(t *testing.T) {
	engine, err := New(emptyReviewer(), emptyReviewer())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	posA, posB := testPositions()
	result, err := engine.Negotiate(ctx, posA, posB, core.AppContext{}, core.IntelligenceContext{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}
