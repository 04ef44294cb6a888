package reviewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReview_DefaultsNilSlices(t *testing.T) {
	resp, err := parseReview(`{"feedback":"ok"}`)
	require.NoError(t, err)
	assert.NotNil(t, resp.Agreements)
	assert.NotNil(t, resp.Disagreements)
}

func TestParseReview_NoJSON(t *testing.T) {
	_, err := parseReview("nothing structured here")
	assert.Error(t, err)
}

func TestParseAdjusted_RequiresAllSections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"complete", `{"database":{},"api":{},"auth":{}}`, true},
		{"missing database", `{"api":{},"auth":{}}`, false},
		{"missing api", `{"database":{},"auth":{}}`, false},
		{"missing auth", `{"database":{},"api":{}}`, false},
		{"not json", `plain prose`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseAdjusted(tt.raw)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseAdjusted_ExtractsFromProse(t *testing.T) {
	raw := "My revised architecture:\n```json\n" +
		`{"database":{"engine":"postgres"},"api":{"style":"rest"},"auth":{"strategy":"session"},"realtime":{"enabled":true}}` +
		"\n```"
	pos, err := parseAdjusted(raw)
	require.NoError(t, err)
	assert.Equal(t, "postgres", pos.Database["engine"])
	assert.True(t, pos.Realtime.Enabled())
}
