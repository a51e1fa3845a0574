package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommitment(t *testing.T) {
	tests := []struct {
		name     string
		document string
		wantErr  bool
	}{
		{name: "valid", document: `{"score": 20, "reasoning": "clear yes"}`},
		{name: "score at lower bound", document: `{"score": 0, "reasoning": "no signal"}`},
		{name: "score at upper bound", document: `{"score": 25, "reasoning": "full marks"}`},
		{name: "score above range", document: `{"score": 26, "reasoning": "x"}`, wantErr: true},
		{name: "negative score", document: `{"score": -1, "reasoning": "x"}`, wantErr: true},
		{name: "missing reasoning", document: `{"score": 20}`, wantErr: true},
		{name: "non-integer score", document: `{"score": "20", "reasoning": "x"}`, wantErr: true},
		{name: "extra fields are tolerated", document: `{"score": 20, "reasoning": "x", "model": "stub"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(Commitment, []byte(tt.document))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSkillAnalysis(t *testing.T) {
	valid := `{
		"sophistication": 20,
		"strategic_thinking": 22,
		"outcome_orientation": 25,
		"leadership_signals": 18,
		"rationale": "Concrete answers"
	}`
	assert.NoError(t, Validate(SkillAnalysis, []byte(valid)))

	missingDimension := `{
		"sophistication": 20,
		"strategic_thinking": 22,
		"outcome_orientation": 25,
		"rationale": "missing leadership_signals"
	}`
	err := Validate(SkillAnalysis, []byte(missingDimension))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, SkillAnalysis, verr.Schema)
	assert.NotEmpty(t, verr.Errors)

	emptyRationale := `{
		"sophistication": 20,
		"strategic_thinking": 22,
		"outcome_orientation": 25,
		"leadership_signals": 18,
		"rationale": ""
	}`
	assert.Error(t, Validate(SkillAnalysis, []byte(emptyRationale)), "rationale must be non-empty")
}

func TestValidateUnknownSchema(t *testing.T) {
	err := Validate("nonexistent", []byte(`{}`))
	assert.Error(t, err)
}

func TestValidateMalformedDocument(t *testing.T) {
	err := Validate(Commitment, []byte(`{"score":`))
	assert.Error(t, err)
}
