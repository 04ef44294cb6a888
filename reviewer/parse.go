package reviewer

import (
	"encoding/json"
	"fmt"

	"github.com/takk387/archpact/core"
	"github.com/takk387/archpact/jsonx"
	"github.com/tidwall/gjson"
)

// requiredSections are the top-level keys an adjusted position must carry to
// be accepted. A reply missing any of them is rejected wholesale and the
// previous position kept, rather than risking a partially blank architecture.
var requiredSections = []string{"database", "api", "auth"}

// parseReview extracts the first JSON object from a raw reply and decodes it
// into a ReviewResponse. Missing optional fields default to empty values, so
// downstream code never sees nil agreement or disagreement lists.
func parseReview(raw string) (core.ReviewResponse, error) {
	var resp core.ReviewResponse
	if err := jsonx.DecodeFirst(raw, &resp); err != nil {
		return core.ReviewResponse{}, err
	}
	if resp.Agreements == nil {
		resp.Agreements = []string{}
	}
	if resp.Disagreements == nil {
		resp.Disagreements = []core.DisagreementClaim{}
	}
	return resp, nil
}

// parseAdjusted extracts and validates an adjusted position from a raw reply.
// The raw JSON is checked for the required top-level sections before
// unmarshalling commits to the new position.
func parseAdjusted(raw string) (core.ArchitecturePosition, error) {
	obj, ok := jsonx.FirstObject(raw)
	if !ok {
		return core.ArchitecturePosition{}, fmt.Errorf("reply contained no JSON object")
	}
	for _, key := range requiredSections {
		if !gjson.Get(obj, key).Exists() {
			return core.ArchitecturePosition{}, fmt.Errorf("adjusted position missing required section %q", key)
		}
	}

	var pos core.ArchitecturePosition
	if err := json.Unmarshal([]byte(obj), &pos); err != nil {
		return core.ArchitecturePosition{}, fmt.Errorf("decode adjusted position: %w", err)
	}
	return pos, nil
}
