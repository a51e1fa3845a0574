package db

import "errors"

// Domain errors surfaced by the store. The server maps these onto HTTP
// status codes; the pipeline maps them onto its own taxonomy.
var (
	// ErrAssessmentNotFound indicates the assessment ID does not exist.
	ErrAssessmentNotFound = errors.New("assessment not found")

	// ErrAlreadyAnalyzed indicates a result row already exists for the
	// assessment. Re-analysis requires an explicit force.
	ErrAlreadyAnalyzed = errors.New("assessment already analyzed")

	// ErrResponsesLocked indicates the assessment has been submitted and its
	// responses are immutable.
	ErrResponsesLocked = errors.New("assessment responses are immutable after submission")
)
