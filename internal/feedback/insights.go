package feedback

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/candidate-assessor/internal/db"
	"github.com/jonathan/candidate-assessor/internal/llm"
	"github.com/jonathan/candidate-assessor/internal/prompts"
)

// InsightsReport is the output of the AI feedback aggregation: structured
// model-improvement insights plus the computed metrics.
type InsightsReport struct {
	Insights      map[string]any `json:"insights"`
	Metrics       Metrics        `json:"metrics"`
	FeedbackCount int            `json:"feedback_count"`
}

// GenerateInsights runs the LLM aggregation over all feedback entries.
// When the model's output is not valid JSON the raw text is returned under
// a raw_analysis key instead of failing, since the insights are advisory.
func GenerateInsights(ctx context.Context, entries []db.FeedbackContext, client llm.Client) (*InsightsReport, error) {
	report := &InsightsReport{
		Metrics:       ComputeMetrics(entries),
		FeedbackCount: len(entries),
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal feedback data: %w", err)
	}

	template, err := prompts.Get("feedback.json", "insights")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{"Feedback": string(data)})

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("feedback analysis failed: %w", err)
	}
	raw = llm.CleanJSONBlock(raw)

	var insights map[string]any
	if err := json.Unmarshal([]byte(raw), &insights); err != nil {
		insights = map[string]any{
			"raw_analysis": raw,
			"parsing_note": "AI response was not valid JSON, included as raw text",
		}
	}
	report.Insights = insights

	return report, nil
}
