package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name           string
		questionNumber int
		raw            string
		wantErr        bool
		check          func(*testing.T, Payload)
	}{
		{
			name:           "vertical priorities with all three slots",
			questionNumber: QuestionVerticals,
			raw:            `{"priority1":"a","priority2":"b","priority3":"c"}`,
			check: func(t *testing.T, p Payload) {
				v, ok := p.(VerticalPriorities)
				require.True(t, ok)
				assert.Equal(t, []string{"a", "b", "c"}, v.Ordered())
			},
		},
		{
			name:           "vertical priorities with only priority1",
			questionNumber: QuestionVerticals,
			raw:            `{"priority1":"a"}`,
			check: func(t *testing.T, p Payload) {
				v := p.(VerticalPriorities)
				assert.Equal(t, []string{"a"}, v.Ordered())
			},
		},
		{
			name:           "vertical priorities missing priority1",
			questionNumber: QuestionVerticals,
			raw:            `{"priority2":"b"}`,
			wantErr:        true,
		},
		{
			name:           "duplicate vertical priorities rejected",
			questionNumber: QuestionVerticals,
			raw:            `{"priority1":"a","priority2":"a"}`,
			wantErr:        true,
		},
		{
			name:           "commitment text",
			questionNumber: QuestionCommitment,
			raw:            `{"text":"Absolutely, count me in"}`,
			check: func(t *testing.T, p Payload) {
				c := p.(CommitmentText)
				assert.Equal(t, "Absolutely, count me in", c.Text)
			},
		},
		{
			name:           "commitment text empty",
			questionNumber: QuestionCommitment,
			raw:            `{"text":""}`,
			wantErr:        true,
		},
		{
			name:           "commitment text over 200 chars",
			questionNumber: QuestionCommitment,
			raw:            `{"text":"` + strings.Repeat("x", 201) + `"}`,
			wantErr:        true,
		},
		{
			name:           "achievement text at 150 char limit",
			questionNumber: QuestionAchievement,
			raw:            `{"text":"` + strings.Repeat("x", 150) + `"}`,
		},
		{
			name:           "achievement text over 150 chars",
			questionNumber: QuestionAchievement,
			raw:            `{"text":"` + strings.Repeat("x", 151) + `"}`,
			wantErr:        true,
		},
		{
			name:           "constraint choice with handling",
			questionNumber: QuestionConstraints,
			raw:            `{"constraint":"time","handling":"I will plan weekends"}`,
			check: func(t *testing.T, p Payload) {
				c := p.(ConstraintChoice)
				assert.Equal(t, ConstraintTime, c.Constraint)
			},
		},
		{
			name:           "constraint choice invalid category",
			questionNumber: QuestionConstraints,
			raw:            `{"constraint":"weather"}`,
			wantErr:        true,
		},
		{
			name:           "constraint handling over 50 chars",
			questionNumber: QuestionConstraints,
			raw:            `{"constraint":"none","handling":"` + strings.Repeat("y", 51) + `"}`,
			wantErr:        true,
		},
		{
			name:           "leadership choice",
			questionNumber: QuestionLeadership,
			raw:            `{"leadership_style":"strategic"}`,
			check: func(t *testing.T, p Payload) {
				l := p.(LeadershipChoice)
				assert.Equal(t, StyleStrategic, l.LeadershipStyle)
			},
		},
		{
			name:           "leadership choice invalid style",
			questionNumber: QuestionLeadership,
			raw:            `{"leadership_style":"manager"}`,
			wantErr:        true,
		},
		{
			name:           "unknown question number",
			questionNumber: 6,
			raw:            `{"text":"anything"}`,
			wantErr:        true,
		},
		{
			name:           "malformed JSON",
			questionNumber: QuestionCommitment,
			raw:            `{"text":`,
			wantErr:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := ParsePayload(tt.questionNumber, json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.questionNumber, payload.QuestionNumber())
			if tt.check != nil {
				tt.check(t, payload)
			}
		})
	}
}

func TestValidatePayloadTypeMismatch(t *testing.T) {
	err := ValidatePayload(QuestionCommitment, LeadershipChoice{LeadershipStyle: StyleDoer})
	assert.Error(t, err, "payload for question 5 must not validate as question 2")
}

func completeResponses() ResponseSet {
	return ResponseSet{
		{QuestionNumber: QuestionVerticals, Payload: VerticalPriorities{Priority1: "v1", Priority2: "v2"}},
		{QuestionNumber: QuestionCommitment, Payload: CommitmentText{Text: "Absolutely, I'm there!"}},
		{QuestionNumber: QuestionAchievement, Payload: AchievementText{Text: "trained 50 volunteers"}},
		{QuestionNumber: QuestionConstraints, Payload: ConstraintChoice{Constraint: ConstraintNone}},
		{QuestionNumber: QuestionLeadership, Payload: LeadershipChoice{LeadershipStyle: StyleStrategic}},
	}
}

func TestResponseSetComplete(t *testing.T) {
	full := completeResponses()
	assert.True(t, full.Complete())

	assert.False(t, full[:4].Complete(), "four responses are not complete")
	assert.False(t, ResponseSet{}.Complete())

	duplicated := append(ResponseSet{}, full[:4]...)
	duplicated = append(duplicated, full[0])
	assert.False(t, duplicated.Complete(), "duplicate question must not count as complete")

	outOfRange := append(ResponseSet{}, full[:4]...)
	outOfRange = append(outOfRange, Response{QuestionNumber: 6, Payload: CommitmentText{Text: "x"}})
	assert.False(t, outOfRange.Complete())
}

func TestResponseSetAccessors(t *testing.T) {
	rs := completeResponses()

	assert.Equal(t, []string{"v1", "v2"}, rs.Verticals())
	assert.Equal(t, StyleStrategic, rs.LeadershipStyle())

	r := rs.ByQuestion(QuestionAchievement)
	require.NotNil(t, r)
	assert.Equal(t, QuestionAchievement, r.QuestionNumber)
	assert.Nil(t, rs.ByQuestion(9))

	empty := ResponseSet{}
	assert.Nil(t, empty.Verticals())
	assert.Equal(t, "unknown", empty.LeadershipStyle())
}
