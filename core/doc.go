// Package core provides the foundational domain types used by ArchPact. It
// defines the core abstractions for:
//
//   - ArchitecturePosition (one participant's current architecture proposal)
//   - ReviewResponse / DisagreementClaim (a reviewer's structured verdict)
//   - Disagreement (a canonical, two-sided record of a contested topic)
//   - NegotiationRound (immutable per-round audit snapshot)
//   - ConsensusResult / UnifiedArchitecture (terminal negotiation outcomes)
//
// The package intentionally keeps implementation concerns (provider clients,
// engine orchestration, prompt construction) out of scope. Positions are value
// types: every adjustment step produces a new position rather than mutating an
// existing one, which keeps concurrent review and adjust calls race-free by
// construction.
package core
