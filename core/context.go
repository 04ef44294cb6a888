package core

// AppContext carries read-only application facts used solely for prompt
// construction. The negotiation protocol itself never interprets it.
type AppContext struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements,omitempty"`
	TargetUsers  string   `json:"targetUsers,omitempty"`
}

// IntelligenceContext carries upstream analysis signals (complexity profile,
// recommended capabilities) that reviewers may weigh when arguing for or
// against a design choice. Prompt material only.
type IntelligenceContext struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// ReviewContext bundles everything a reviewer needs to compose its prompts
// for one round: the contextual data plus the round number and the label of
// the participant the reviewer is speaking for ("A" or "B").
type ReviewContext struct {
	App          AppContext
	Intelligence IntelligenceContext
	Round        int
	Participant  string
}
