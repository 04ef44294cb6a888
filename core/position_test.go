package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSection_Enabled(t *testing.T) {
	assert.True(t, Section{"enabled": true}.Enabled())
	assert.False(t, Section{"enabled": false}.Enabled())
	assert.False(t, Section{"enabled": "true"}.Enabled()) // only a real bool counts
	assert.False(t, Section{}.Enabled())
	assert.False(t, Section(nil).Enabled())
}

func TestSection_CloneIsolation(t *testing.T) {
	orig := Section{
		"engine": "postgres",
		"options": map[string]any{
			"pool_size": 10,
		},
		"replicas": []any{"eu-west", "us-east"},
	}

	cp := orig.Clone()
	cp["engine"] = "mysql"
	cp["options"].(map[string]any)["pool_size"] = 50
	cp["replicas"].([]any)[0] = "ap-south"

	assert.Equal(t, "postgres", orig["engine"])
	assert.Equal(t, 10, orig["options"].(map[string]any)["pool_size"])
	assert.Equal(t, "eu-west", orig["replicas"].([]any)[0])
}

func TestSection_CloneNil(t *testing.T) {
	assert.Nil(t, Section(nil).Clone())
}

func TestArchitecturePosition_Clone(t *testing.T) {
	orig := ArchitecturePosition{
		Database:         Section{"engine": "postgres"},
		API:              Section{"style": "rest"},
		Auth:             Section{"strategy": "session"},
		AgenticWorkflows: Section{"enabled": true},
	}

	cp := orig.Clone()
	cp.Database["engine"] = "mysql"
	cp.AgenticWorkflows["enabled"] = false

	assert.Equal(t, "postgres", orig.Database["engine"])
	assert.Equal(t, true, orig.AgenticWorkflows["enabled"])
}

func TestNeutralReview(t *testing.T) {
	resp := NeutralReview("timeout after 30s")
	assert.Contains(t, resp.Feedback, "timeout after 30s")
	assert.NotNil(t, resp.Agreements)
	assert.Empty(t, resp.Agreements)
	assert.NotNil(t, resp.Disagreements)
	assert.Empty(t, resp.Disagreements)
}
