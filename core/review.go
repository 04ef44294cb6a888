package core

import (
	"encoding/json"
	"fmt"
)

// DisagreementClaim is a single participant's view of one point of
// contention, as reported in its ReviewResponse.
type DisagreementClaim struct {
	Topic               string `json:"topic"`
	MyStance            string `json:"myStance"`
	OtherStance         string `json:"otherStance"`
	MyReasoning         string `json:"myReasoning"`
	WillingToCompromise bool   `json:"willingToCompromise"`
}

// ReviewResponse is the structured verdict one reviewer produces per round
// after examining the other participant's position.
//
// The zero value is a valid, fully neutral response: empty feedback, no
// agreements, no disagreements, no proposed adjustments. Missing fields in a
// provider reply decode to exactly that, so absence never surfaces as nil
// dereferences downstream.
type ReviewResponse struct {
	Feedback            string              `json:"feedback"`
	Agreements          []string            `json:"agreements"`
	Disagreements       []DisagreementClaim `json:"disagreements"`
	ProposedAdjustments json.RawMessage     `json:"proposedAdjustments,omitempty"`
}

// NeutralReview builds the absorbed-failure form of a ReviewResponse: the
// feedback explains what went wrong, and the agreement/disagreement lists are
// empty so the round can proceed on the other side's input alone.
func NeutralReview(reason string) ReviewResponse {
	return ReviewResponse{
		Feedback:      fmt.Sprintf("review unavailable: %s", reason),
		Agreements:    []string{},
		Disagreements: []DisagreementClaim{},
	}
}

// Disagreement is the canonical, two-sided record of one contested topic,
// built by pairing both participants' claims on a normalized topic key.
type Disagreement struct {
	Topic      string `json:"topic"`
	StanceA    string `json:"stanceA"`
	StanceB    string `json:"stanceB"`
	ReasoningA string `json:"reasoningA"`
	ReasoningB string `json:"reasoningB"`
}
