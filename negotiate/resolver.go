package negotiate

import (
	"strings"

	"github.com/takk387/archpact/core"
)

// Agreements returns the union of both reviewers' agreement lists,
// deduplicated by case-insensitive exact string match. The first spelling
// seen wins; reviewer A's list is walked before reviewer B's. Matching is
// purely textual: semantically identical but differently phrased points stay
// distinct.
func Agreements(a, b core.ReviewResponse) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, list := range [][]string{a.Agreements, b.Agreements} {
		for _, item := range list {
			key := strings.ToLower(item)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// Disagreements builds the canonical two-sided disagreement list from both
// reviewers' claims. Topics are matched case-insensitively; each distinct
// topic is processed once, first occurrence wins. Output order follows
// reviewer A's claims first, then reviewer B's unmatched claims.
//
// When both reviewers mention a topic their stances and reasoning are paired
// directly. When only one side mentions it, that reviewer's claimed
// otherStance fills in the silent side, with empty reasoning there.
func Disagreements(a, b core.ReviewResponse) []core.Disagreement {
	bByTopic := make(map[string]core.DisagreementClaim)
	for _, claim := range b.Disagreements {
		key := strings.ToLower(claim.Topic)
		if _, dup := bByTopic[key]; dup {
			continue
		}
		bByTopic[key] = claim
	}

	seen := make(map[string]struct{})
	out := []core.Disagreement{}

	for _, ca := range a.Disagreements {
		key := strings.ToLower(ca.Topic)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if cb, ok := bByTopic[key]; ok {
			out = append(out, core.Disagreement{
				Topic:      ca.Topic,
				StanceA:    ca.MyStance,
				StanceB:    cb.MyStance,
				ReasoningA: ca.MyReasoning,
				ReasoningB: cb.MyReasoning,
			})
			continue
		}
		out = append(out, core.Disagreement{
			Topic:      ca.Topic,
			StanceA:    ca.MyStance,
			StanceB:    ca.OtherStance,
			ReasoningA: ca.MyReasoning,
		})
	}

	for _, cb := range b.Disagreements {
		key := strings.ToLower(cb.Topic)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, core.Disagreement{
			Topic:      cb.Topic,
			StanceA:    cb.OtherStance,
			StanceB:    cb.MyStance,
			ReasoningB: cb.MyReasoning,
		})
	}

	return out
}
