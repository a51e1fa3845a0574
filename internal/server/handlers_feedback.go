package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/candidate-assessor/internal/feedback"
	"github.com/jonathan/candidate-assessor/internal/types"
)

// handleCreateFeedback records a reviewer annotation against an assessment
func (s *Server) handleCreateFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseAssessmentID(w, r)
	if !ok {
		return
	}

	var f types.CandidateFeedback
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	f.AssessmentID = id
	if f.ReviewerEmail == "" {
		s.errorResponse(w, http.StatusBadRequest, "reviewer_email is required")
		return
	}
	if err := types.ValidateFeedback(&f); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid feedback: "+err.Error())
		return
	}

	assessment, err := s.db.GetAssessment(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if assessment == nil {
		s.errorResponse(w, http.StatusNotFound, "Assessment not found")
		return
	}

	if err := s.db.CreateFeedback(r.Context(), &f); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save feedback: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, f)
}

// handleListFeedback lists feedback recorded against one assessment
func (s *Server) handleListFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseAssessmentID(w, r)
	if !ok {
		return
	}

	entries, err := s.db.ListFeedback(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"feedback": entries,
		"count":    len(entries),
	})
}

// handleFeedbackMetrics computes accuracy and override rates over all feedback
func (s *Server) handleFeedbackMetrics(w http.ResponseWriter, r *http.Request) {
	entries, err := s.db.ListFeedbackWithResults(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, feedback.ComputeMetrics(entries))
}

// handleFeedbackInsights runs the AI aggregation over all recorded feedback
func (s *Server) handleFeedbackInsights(w http.ResponseWriter, r *http.Request) {
	entries, err := s.db.ListFeedbackWithResults(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if len(entries) == 0 {
		s.errorResponse(w, http.StatusUnprocessableEntity, "No feedback data available for analysis")
		return
	}

	report, err := feedback.GenerateInsights(r.Context(), entries, s.llmClient)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Insight generation failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}
