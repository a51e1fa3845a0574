package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/candidate-assessor/internal/db"
	"github.com/jonathan/candidate-assessor/internal/pipeline"
)

// HTTPStatus returns the appropriate HTTP status code for a domain error
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, pipeline.ErrAssessmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, pipeline.ErrIncompleteAssessment):
		return http.StatusUnprocessableEntity
	case errors.Is(err, db.ErrAlreadyAnalyzed):
		return http.StatusConflict
	case errors.Is(err, db.ErrResponsesLocked):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
