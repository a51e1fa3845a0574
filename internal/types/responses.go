// Package types defines the core domain types shared across the assessment pipeline.
package types

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Question numbers for the five fixed assessment questions
const (
	QuestionVerticals   = 1
	QuestionCommitment  = 2
	QuestionAchievement = 3
	QuestionConstraints = 4
	QuestionLeadership  = 5

	// QuestionCount is the number of responses required for analysis
	QuestionCount = 5
)

// Constraint categories for question 4
const (
	ConstraintNone         = "none"
	ConstraintTime         = "time"
	ConstraintExpectations = "expectations"
	ConstraintSignificant  = "significant"
)

// Leadership styles for question 5
const (
	StyleDoer      = "doer"
	StyleLeader    = "leader"
	StyleStrategic = "strategic"
	StyleLearning  = "learning"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Payload is the tagged union of per-question response payloads.
// Each question number has exactly one payload shape.
type Payload interface {
	QuestionNumber() int
}

// VerticalPriorities is the question 1 payload: up to three distinct
// vertical IDs in priority order. Priority1 is mandatory.
type VerticalPriorities struct {
	Priority1 string `json:"priority1" validate:"required"`
	Priority2 string `json:"priority2,omitempty"`
	Priority3 string `json:"priority3,omitempty"`
}

// QuestionNumber implements Payload
func (VerticalPriorities) QuestionNumber() int { return QuestionVerticals }

// Ordered returns the priorities as an ordered slice with empty entries removed.
func (v VerticalPriorities) Ordered() []string {
	out := make([]string, 0, 3)
	for _, id := range []string{v.Priority1, v.Priority2, v.Priority3} {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}

// CommitmentText is the question 2 payload: the free-text answer to the
// urgent Saturday-evening scenario.
type CommitmentText struct {
	Text string `json:"text" validate:"required,max=200"`
}

// QuestionNumber implements Payload
func (CommitmentText) QuestionNumber() int { return QuestionCommitment }

// AchievementText is the question 3 payload: the "by December I will have..."
// free-text answer.
type AchievementText struct {
	Text string `json:"text" validate:"required,max=150"`
}

// QuestionNumber implements Payload
func (AchievementText) QuestionNumber() int { return QuestionAchievement }

// ConstraintChoice is the question 4 payload: the selected constraint
// category plus an optional free-text handling plan.
type ConstraintChoice struct {
	Constraint string `json:"constraint" validate:"required,oneof=none time expectations significant"`
	Handling   string `json:"handling,omitempty" validate:"max=50"`
}

// QuestionNumber implements Payload
func (ConstraintChoice) QuestionNumber() int { return QuestionConstraints }

// LeadershipChoice is the question 5 payload: the self-reported leadership style.
type LeadershipChoice struct {
	LeadershipStyle string `json:"leadership_style" validate:"required,oneof=doer leader strategic learning"`
}

// QuestionNumber implements Payload
func (LeadershipChoice) QuestionNumber() int { return QuestionLeadership }

// Response is one answered question: the question number plus its
// validated payload. Responses are immutable once the assessment is submitted.
type Response struct {
	QuestionNumber int
	Payload        Payload
}

// ParsePayload decodes and validates the raw payload for a question number.
// Unknown question numbers and payloads that fail validation are rejected.
func ParsePayload(questionNumber int, raw json.RawMessage) (Payload, error) {
	var payload Payload

	switch questionNumber {
	case QuestionVerticals:
		var p VerticalPriorities
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("question %d: invalid payload: %w", questionNumber, err)
		}
		payload = p
	case QuestionCommitment:
		var p CommitmentText
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("question %d: invalid payload: %w", questionNumber, err)
		}
		payload = p
	case QuestionAchievement:
		var p AchievementText
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("question %d: invalid payload: %w", questionNumber, err)
		}
		payload = p
	case QuestionConstraints:
		var p ConstraintChoice
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("question %d: invalid payload: %w", questionNumber, err)
		}
		payload = p
	case QuestionLeadership:
		var p LeadershipChoice
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("question %d: invalid payload: %w", questionNumber, err)
		}
		payload = p
	default:
		return nil, fmt.Errorf("unknown question number %d", questionNumber)
	}

	if err := ValidatePayload(questionNumber, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// ValidatePayload checks a payload against its question's schema rules.
func ValidatePayload(questionNumber int, payload Payload) error {
	if payload.QuestionNumber() != questionNumber {
		return fmt.Errorf("payload type mismatch: payload is for question %d, got question %d",
			payload.QuestionNumber(), questionNumber)
	}
	if err := validate.Struct(payload); err != nil {
		return fmt.Errorf("question %d: %w", questionNumber, err)
	}
	// Priorities must be distinct; validator tags cannot express cross-field
	// inequality over optional fields, so check here.
	if v, ok := payload.(VerticalPriorities); ok {
		seen := make(map[string]bool, 3)
		for _, id := range v.Ordered() {
			if seen[id] {
				return fmt.Errorf("question %d: duplicate vertical priority %q", questionNumber, id)
			}
			seen[id] = true
		}
	}
	return nil
}

// ResponseSet is the full set of responses for one assessment, in question order.
type ResponseSet []Response

// ByQuestion returns the response for a question number, or nil if absent.
func (rs ResponseSet) ByQuestion(n int) *Response {
	for i := range rs {
		if rs[i].QuestionNumber == n {
			return &rs[i]
		}
	}
	return nil
}

// Complete reports whether exactly one response exists per question 1-5.
func (rs ResponseSet) Complete() bool {
	if len(rs) != QuestionCount {
		return false
	}
	seen := make(map[int]bool, QuestionCount)
	for _, r := range rs {
		if r.QuestionNumber < QuestionVerticals || r.QuestionNumber > QuestionLeadership || seen[r.QuestionNumber] {
			return false
		}
		seen[r.QuestionNumber] = true
	}
	return true
}

// Verticals returns the ordered vertical priorities from question 1,
// or nil if question 1 is missing.
func (rs ResponseSet) Verticals() []string {
	r := rs.ByQuestion(QuestionVerticals)
	if r == nil {
		return nil
	}
	if p, ok := r.Payload.(VerticalPriorities); ok {
		return p.Ordered()
	}
	return nil
}

// LeadershipStyle returns the question 5 leadership style, or "unknown"
// if question 5 is missing.
func (rs ResponseSet) LeadershipStyle() string {
	r := rs.ByQuestion(QuestionLeadership)
	if r == nil {
		return "unknown"
	}
	if p, ok := r.Payload.(LeadershipChoice); ok {
		return p.LeadershipStyle
	}
	return "unknown"
}
