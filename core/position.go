package core

// Section is one named sub-section of an architecture position (database,
// api, auth, ...). The shape inside a section is provider-authored and treated
// as opaque by the negotiation protocol.
type Section map[string]any

// Enabled reports whether the section carries a true "enabled" flag. Used by
// the merger for capability-toggle sections such as agentic workflows.
func (s Section) Enabled() bool {
	v, ok := s["enabled"].(bool)
	return ok && v
}

// Clone returns a shallow-plus-one-level copy of the section. Nested maps and
// slices are copied one level deep, which is sufficient for the copy-on-adjust
// discipline: sections are never mutated in place after construction.
func (s Section) Clone() Section {
	if s == nil {
		return nil
	}
	out := make(Section, len(s))
	for k, v := range s {
		switch vv := v.(type) {
		case map[string]any:
			m := make(map[string]any, len(vv))
			for mk, mv := range vv {
				m[mk] = mv
			}
			out[k] = m
		case []any:
			cp := make([]any, len(vv))
			copy(cp, vv)
			out[k] = cp
		default:
			out[k] = v
		}
	}
	return out
}

// ArchitecturePosition is one participant's current structured architecture
// proposal. It is an immutable value between rounds: adjustment always
// produces a new position, never patches an existing one.
type ArchitecturePosition struct {
	Database         Section `json:"database"`
	API              Section `json:"api"`
	Auth             Section `json:"auth"`
	AgenticWorkflows Section `json:"agenticWorkflows,omitempty"`
	Realtime         Section `json:"realtime,omitempty"`
	TechStack        Section `json:"techStack,omitempty"`
	Scaling          Section `json:"scaling,omitempty"`
	AITooling        Section `json:"aiTooling,omitempty"`
}

// Clone deep-copies the position so callers can hand it to concurrent
// reviewers without sharing mutable state.
func (p ArchitecturePosition) Clone() ArchitecturePosition {
	return ArchitecturePosition{
		Database:         p.Database.Clone(),
		API:              p.API.Clone(),
		Auth:             p.Auth.Clone(),
		AgenticWorkflows: p.AgenticWorkflows.Clone(),
		Realtime:         p.Realtime.Clone(),
		TechStack:        p.TechStack.Clone(),
		Scaling:          p.Scaling.Clone(),
		AITooling:        p.AITooling.Clone(),
	}
}

// UnifiedArchitecture is the merged, agreed-upon architecture produced once
// zero disagreements remain, plus a report describing how consensus was won.
type UnifiedArchitecture struct {
	ArchitecturePosition

	ConsensusReport ConsensusReport `json:"consensusReport"`
}

// ConsensusReport summarizes the negotiation that produced a unified
// architecture.
type ConsensusReport struct {
	Rounds          int      `json:"rounds"`
	FinalAgreements []string `json:"finalAgreements"`
	Compromises     []string `json:"compromises"`
}
