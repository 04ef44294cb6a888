// Package negotiate implements the round-based consensus protocol that
// reconciles two architecture proposals into one agreed architecture.
//
// Each round both reviewers evaluate the opposing position concurrently,
// their claims are resolved into canonical agreements and disagreements, and
// the engine either merges (zero disagreements), escalates (disagreement
// count stopped shrinking, or rounds exhausted), or lets both sides adjust
// their positions and goes again. The protocol always terminates with a
// usable ConsensusResult: reviewer failures degrade to neutral input for that
// side, never abort a negotiation.
package negotiate
