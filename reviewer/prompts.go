package reviewer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/takk387/archpact/core"
	"github.com/takk387/archpact/internal/prompt"
)

const reviewSystemPrompt = `You are a principal software architect participating in a structured ` +
	`two-party architecture negotiation. You review the other participant's proposal against your ` +
	`own, looking at database, API, auth, agentic workflow, realtime, tech stack, scaling and ` +
	`AI-tooling choices. Be specific and honest about disagreements; do not invent conflict where ` +
	`none exists. Reply with exactly one JSON object and nothing else.`

const adjustSystemPrompt = `You are a principal software architect revising your own architecture ` +
	`proposal after a negotiation round. Move toward the other reviewer's feedback on the listed ` +
	`disagreements where their reasoning is stronger, and hold your position where it is not. ` +
	`Reply with exactly one JSON object containing the complete revised architecture and nothing else.`

const reviewPromptTemplate = `You are participant {{.participant}} in round {{.round}} of an architecture negotiation for "{{.appName}}".

App description: {{.appDescription}}
{{if .requirements}}Requirements:
{{.requirements}}
{{end}}{{if .intelligence}}Upstream analysis: {{.intelligence}}
{{end}}
Your current architecture position:
{{.own}}

The other participant's architecture position:
{{.other}}

Review the other participant's position. Respond with a single JSON object of this shape:
{
  "feedback": "overall assessment of the other position",
  "agreements": ["point you both agree on", ...],
  "disagreements": [
    {
      "topic": "short topic label",
      "myStance": "your stance",
      "otherStance": "their stance",
      "myReasoning": "why you hold your stance",
      "willingToCompromise": true
    }
  ],
  "proposedAdjustments": { "database": {...}, "api": {...} }
}
List an agreement or disagreement once per topic. Leave "disagreements" empty if you accept their position.`

const adjustPromptTemplate = `You are participant {{.participant}} in round {{.round}} of an architecture negotiation for "{{.appName}}".

Your current architecture position:
{{.own}}

The other reviewer's feedback on your position:
{{.feedback}}

Open disagreements this round:
{{.disagreements}}

Produce your revised architecture position as a single JSON object. It must contain at minimum the
"database", "api" and "auth" sections, plus any other sections of your position (agenticWorkflows,
realtime, techStack, scaling, aiTooling). Adjust only what the feedback justifies; keep everything
else exactly as it is.`

func buildReviewPrompt(own, other core.ArchitecturePosition, rc core.ReviewContext) (string, error) {
	ownJSON, err := marshalPosition(own)
	if err != nil {
		return "", err
	}
	otherJSON, err := marshalPosition(other)
	if err != nil {
		return "", err
	}

	return prompt.Render(reviewPromptTemplate, map[string]any{
		"participant":    rc.Participant,
		"round":          rc.Round,
		"appName":        rc.App.Name,
		"appDescription": rc.App.Description,
		"requirements":   bulletList(rc.App.Requirements),
		"intelligence":   intelligenceSummary(rc.Intelligence),
		"own":            ownJSON,
		"other":          otherJSON,
	})
}

func buildAdjustPrompt(own core.ArchitecturePosition, otherReview core.ReviewResponse, disagreements []core.Disagreement, rc core.ReviewContext) (string, error) {
	ownJSON, err := marshalPosition(own)
	if err != nil {
		return "", err
	}

	return prompt.Render(adjustPromptTemplate, map[string]any{
		"participant":   rc.Participant,
		"round":         rc.Round,
		"appName":       rc.App.Name,
		"own":           ownJSON,
		"feedback":      otherReview.Feedback,
		"disagreements": formatDisagreements(disagreements, rc.Participant),
	})
}

func marshalPosition(pos core.ArchitecturePosition) (string, error) {
	b, err := json.MarshalIndent(pos, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal position: %w", err)
	}
	return string(b), nil
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("- ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func intelligenceSummary(ic core.IntelligenceContext) string {
	if ic.Summary == "" && len(ic.Recommendations) == 0 {
		return ""
	}
	parts := []string{ic.Summary}
	if len(ic.Recommendations) > 0 {
		parts = append(parts, "Recommended: "+strings.Join(ic.Recommendations, "; "))
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// formatDisagreements renders the canonical disagreement list from the given
// participant's point of view, so "your stance" in the prompt always refers
// to the reviewer being asked to adjust.
func formatDisagreements(disagreements []core.Disagreement, participant string) string {
	if len(disagreements) == 0 {
		return "(none)"
	}
	var sb strings.Builder
	for i, d := range disagreements {
		mine, theirs, reasoning := d.StanceA, d.StanceB, d.ReasoningB
		if participant != "A" {
			mine, theirs, reasoning = d.StanceB, d.StanceA, d.ReasoningA
		}
		fmt.Fprintf(&sb, "%d. %s\n   Your stance: %s\n   Their stance: %s\n", i+1, d.Topic, mine, theirs)
		if reasoning != "" {
			fmt.Fprintf(&sb, "   Their reasoning: %s\n", reasoning)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
