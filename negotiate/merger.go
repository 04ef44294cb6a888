package negotiate

import "github.com/takk387/archpact/core"

// Merge combines two converged positions into the single unified
// architecture. It is deterministic and purely structural: position A is the
// base, used verbatim for the database, api, auth and tech-stack sections.
// For capability-toggle sections (agentic workflows, realtime) position B's
// section is preferred specifically when B has the capability enabled and A
// does not; otherwise A's section is kept.
//
// Merge is only invoked once zero disagreements remain, so both positions are
// already near-identical; the rule exists to pick a canonical value when
// cosmetic differences linger.
func Merge(a, b core.ArchitecturePosition, agreements []string, totalRounds int) core.UnifiedArchitecture {
	merged := a.Clone()

	if b.AgenticWorkflows.Enabled() && !a.AgenticWorkflows.Enabled() {
		merged.AgenticWorkflows = b.AgenticWorkflows.Clone()
	}
	if b.Realtime.Enabled() && !a.Realtime.Enabled() {
		merged.Realtime = b.Realtime.Clone()
	}

	finalAgreements := make([]string, len(agreements))
	copy(finalAgreements, agreements)

	return core.UnifiedArchitecture{
		ArchitecturePosition: merged,
		ConsensusReport: core.ConsensusReport{
			Rounds:          totalRounds,
			FinalAgreements: finalAgreements,
			Compromises:     []string{},
		},
	}
}
