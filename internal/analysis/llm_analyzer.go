package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/candidate-assessor/internal/llm"
	"github.com/jonathan/candidate-assessor/internal/prompts"
	"github.com/jonathan/candidate-assessor/internal/schemas"
	"github.com/jonathan/candidate-assessor/internal/types"
)

// LLMAnalyzer implements Analyzer on top of an llm.Client.
type LLMAnalyzer struct {
	client llm.Client
}

// NewLLMAnalyzer creates an analyzer backed by the given LLM client.
func NewLLMAnalyzer(client llm.Client) *LLMAnalyzer {
	return &LLMAnalyzer{client: client}
}

// AnalyzeCommitment scores the Saturday-scenario answer against the
// commitment rubric. The model's JSON is schema-validated; out-of-range
// scores are clamped to [0,25].
func (a *LLMAnalyzer) AnalyzeCommitment(ctx context.Context, text string) (*ScoreResult, error) {
	template, err := prompts.Get("scoring.json", "commitment")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{"Response": text})

	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("commitment analysis failed: %w", err)
	}
	raw = llm.CleanJSONBlock(raw)

	if err := schemas.Validate(schemas.Commitment, []byte(raw)); err != nil {
		return nil, fmt.Errorf("malformed commitment analysis: %w", err)
	}

	var result ScoreResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to parse commitment analysis: %w (content: %s)", err, raw)
	}
	result.Score = clamp(result.Score, 0, 25)
	return &result, nil
}

// skillRubricResponse is the expected JSON shape returned by the model for
// the four-dimension rubric.
type skillRubricResponse struct {
	Sophistication     int    `json:"sophistication"`
	StrategicThinking  int    `json:"strategic_thinking"`
	OutcomeOrientation int    `json:"outcome_orientation"`
	LeadershipSignals  int    `json:"leadership_signals"`
	Rationale          string `json:"rationale"`
}

// AnalyzeSkills serializes all five responses and scores them on the
// four-dimension skill rubric in a single model call. There is no numeric
// fallback on this path: a failed call or malformed JSON is fatal for the
// whole analysis.
func (a *LLMAnalyzer) AnalyzeSkills(ctx context.Context, responses types.ResponseSet) (*SkillAnalysis, error) {
	template, err := prompts.Get("scoring.json", "skill_rubric")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{
		"Responses": serializeResponses(responses),
	})

	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("skill analysis failed: %w", err)
	}
	raw = llm.CleanJSONBlock(raw)

	if err := schemas.Validate(schemas.SkillAnalysis, []byte(raw)); err != nil {
		return nil, fmt.Errorf("malformed skill analysis: %w", err)
	}

	var resp skillRubricResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse skill analysis: %w (content: %s)", err, raw)
	}

	return &SkillAnalysis{
		Breakdown: types.SkillBreakdown{
			Sophistication:     clamp(resp.Sophistication, 0, 25),
			StrategicThinking:  clamp(resp.StrategicThinking, 0, 25),
			OutcomeOrientation: clamp(resp.OutcomeOrientation, 0, 25),
			LeadershipSignals:  clamp(resp.LeadershipSignals, 0, 25),
		},
		Rationale: resp.Rationale,
	}, nil
}

// GenerateNarrative produces the two-paragraph candidate explanation.
// Failure here aborts the analysis; no fallback text is substituted.
func (a *LLMAnalyzer) GenerateNarrative(ctx context.Context, input NarrativeInput) (string, error) {
	template, err := prompts.Get("narrative.json", "reasoning")
	if err != nil {
		return "", err
	}
	prompt := prompts.Format(template, map[string]string{
		"WillPercent":     fmt.Sprintf("%d", input.WillPercent),
		"SkillPercent":    fmt.Sprintf("%d", input.SkillPercent),
		"Quadrant":        input.Quadrant,
		"Verticals":       strings.Join(input.Verticals, ", "),
		"LeadershipStyle": input.LeadershipStyle,
		"Roles":           strings.Join(input.Roles, ", "),
	})

	text, err := a.client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return "", fmt.Errorf("narrative generation failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// serializeResponses renders the response set one question per line, the
// payload as its JSON form.
func serializeResponses(responses types.ResponseSet) string {
	var sb strings.Builder
	for _, r := range responses {
		data, err := json.Marshal(r.Payload)
		if err != nil {
			continue
		}
		fmt.Fprintf(&sb, "Q%d: %s\n", r.QuestionNumber, data)
	}
	return sb.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
