package negotiate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/takk387/archpact/core"
)

func roundWithDisagreements(round, n int) core.NegotiationRound {
	d := make([]core.Disagreement, n)
	for i := range d {
		d[i] = core.Disagreement{Topic: "topic"}
	}
	return core.NegotiationRound{Round: round, Disagreements: d}
}

func TestIsConverging(t *testing.T) {
	tests := []struct {
		name   string
		counts []int
		want   bool
	}{
		{"no rounds", nil, true},
		{"single round", []int{7}, true},
		{"strictly decreased", []int{3, 2}, true},
		{"equal counts", []int{3, 3}, false},
		{"increased", []int{2, 4}, false},
		{"only last pair counts, decrease", []int{1, 5, 4}, true},
		{"only last pair counts, increase", []int{5, 1, 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rounds := make([]core.NegotiationRound, len(tt.counts))
			for i, n := range tt.counts {
				rounds[i] = roundWithDisagreements(i+1, n)
			}
			assert.Equal(t, tt.want, IsConverging(rounds))
		})
	}
}
