package analysis

import "regexp"

// Keyword patterns for the deterministic commitment fallback. These mirror
// the buckets of the AI rubric: unconditional affirmation, conditional
// commitment, everything else.
var (
	immediatePattern   = regexp.MustCompile(`(?i)\b(yes|absolutely|count me in|i'm there|immediately)\b`)
	conditionalPattern = regexp.MustCompile(`(?i)\b(if|depends|need to|let me|check)\b`)
)

// ScoreCommitmentKeywords scores the Saturday-scenario answer by keyword
// matching. It absorbs analyzer failures for the commitment sub-score only:
// when the AI path is unavailable, scoring continues on this deterministic
// result instead of aborting.
func ScoreCommitmentKeywords(text string) *ScoreResult {
	switch {
	case immediatePattern.MatchString(text):
		return &ScoreResult{Score: 25, Reasoning: "Immediate affirmative response"}
	case conditionalPattern.MatchString(text):
		return &ScoreResult{Score: 15, Reasoning: "Conditional commitment"}
	default:
		return &ScoreResult{Score: 10, Reasoning: "Unclear or hedging response"}
	}
}
