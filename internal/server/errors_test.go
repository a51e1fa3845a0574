package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/candidate-assessor/internal/db"
	"github.com/jonathan/candidate-assessor/internal/pipeline"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: pipeline.ErrAssessmentNotFound, want: http.StatusNotFound},
		{name: "incomplete", err: pipeline.ErrIncompleteAssessment, want: http.StatusUnprocessableEntity},
		{name: "already analyzed", err: db.ErrAlreadyAnalyzed, want: http.StatusConflict},
		{name: "responses locked", err: db.ErrResponsesLocked, want: http.StatusConflict},
		{name: "wrapped domain error", err: fmt.Errorf("save: %w", db.ErrAlreadyAnalyzed), want: http.StatusConflict},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
