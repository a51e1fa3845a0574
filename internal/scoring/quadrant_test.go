package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/candidate-assessor/internal/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		willPercent  int
		skillPercent int
		want         string
	}{
		{name: "both high", willPercent: 85, skillPercent: 80, want: types.QuadrantStar},
		{name: "both exactly at boundary", willPercent: 70, skillPercent: 70, want: types.QuadrantStar},
		{name: "will just below boundary", willPercent: 69, skillPercent: 70, want: types.QuadrantReluctant},
		{name: "skill just below boundary", willPercent: 70, skillPercent: 69, want: types.QuadrantWilling},
		{name: "high will low skill", willPercent: 90, skillPercent: 40, want: types.QuadrantWilling},
		{name: "low will high skill", willPercent: 30, skillPercent: 95, want: types.QuadrantReluctant},
		{name: "both low", willPercent: 50, skillPercent: 50, want: types.QuadrantNotReady},
		{name: "both zero", willPercent: 0, skillPercent: 0, want: types.QuadrantNotReady},
		{name: "both full", willPercent: 100, skillPercent: 100, want: types.QuadrantStar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.willPercent, tt.skillPercent))
		})
	}
}
