package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreCommitmentKeywords(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantScore int
	}{
		{name: "plain yes", text: "Yes, I will come", wantScore: 25},
		{name: "absolutely", text: "Absolutely, I'm there!", wantScore: 25},
		{name: "count me in", text: "Count me in for Saturday", wantScore: 25},
		{name: "immediately", text: "I'd leave immediately", wantScore: 25},
		{name: "conditional if", text: "If my family is free I can join", wantScore: 15},
		{name: "depends", text: "It depends on my work schedule", wantScore: 15},
		{name: "need to check", text: "I need to check my calendar first", wantScore: 15},
		{name: "vague answer", text: "That sounds interesting", wantScore: 10},
		{name: "empty answer", text: "", wantScore: 10},
		{name: "immediate wins over conditional", text: "Yes, even if it rains", wantScore: 25},
		{name: "case insensitive", text: "ABSOLUTELY", wantScore: 25},
		{name: "no partial word match", text: "the yesterday meeting", wantScore: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreCommitmentKeywords(tt.text)
			assert.Equal(t, tt.wantScore, result.Score)
			assert.NotEmpty(t, result.Reasoning)
		})
	}
}
