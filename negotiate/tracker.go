package negotiate

import "github.com/takk387/archpact/core"

// IsConverging reports whether the negotiation is trending toward consensus.
// With fewer than two rounds there is no trend yet and the answer is
// trivially true. From round two onward the disagreement count must have
// strictly decreased versus the immediately preceding round; equal or
// increased counts are non-convergence.
//
// The comparison is deliberately local to the last two rounds. An oscillating
// count that happens to decrease on the final comparison is still judged
// converging.
func IsConverging(rounds []core.NegotiationRound) bool {
	if len(rounds) < 2 {
		return true
	}
	curr := len(rounds[len(rounds)-1].Disagreements)
	prev := len(rounds[len(rounds)-2].Disagreements)
	return curr < prev
}
