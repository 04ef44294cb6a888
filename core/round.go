package core

// NegotiationRound is an immutable snapshot of one completed cross-review
// cycle. Rounds are append-only; the full sequence is the negotiation's audit
// trail.
type NegotiationRound struct {
	Round         int                  `json:"round"`
	PositionA     ArchitecturePosition `json:"positionA"`
	PositionB     ArchitecturePosition `json:"positionB"`
	FeedbackA     string               `json:"feedbackA"`
	FeedbackB     string               `json:"feedbackB"`
	Agreements    []string             `json:"agreements"`
	Disagreements []Disagreement       `json:"disagreements"`
}

// ConsensusResult is the terminal outcome of a negotiation. Exactly one of
// the two shapes holds:
//
//   - Reached == true: FinalArchitecture is set and the last round's
//     disagreement list is empty.
//   - Reached == false: EscalationReason is non-empty and DivergentIssues
//     carries the unresolved topics for human review.
//
// Non-convergence and round exhaustion are first-class outcomes, not errors.
type ConsensusResult struct {
	Reached           bool                 `json:"reached"`
	Rounds            []NegotiationRound   `json:"rounds"`
	FinalArchitecture *UnifiedArchitecture `json:"finalArchitecture,omitempty"`
	EscalationReason  string               `json:"escalationReason,omitempty"`
	DivergentIssues   []Disagreement       `json:"divergentIssues,omitempty"`
}
