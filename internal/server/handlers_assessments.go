package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/candidate-assessor/internal/db"
	"github.com/jonathan/candidate-assessor/internal/types"
)

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// parseAssessmentID parses the {id} path value, writing an error response
// and returning false on failure
func (s *Server) parseAssessmentID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid assessment ID")
		return uuid.Nil, false
	}
	return id, true
}

// CreateAssessmentRequest is the body for POST /assessments
type CreateAssessmentRequest struct {
	UserEmail string `json:"user_email"`
}

// handleCreateAssessment starts a new assessment session
func (s *Server) handleCreateAssessment(w http.ResponseWriter, r *http.Request) {
	var req CreateAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.UserEmail == "" {
		s.errorResponse(w, http.StatusBadRequest, "user_email is required")
		return
	}

	assessment, err := s.db.CreateAssessment(r.Context(), req.UserEmail)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, assessment)
}

// handleGetAssessment retrieves an assessment by ID
func (s *Server) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseAssessmentID(w, r)
	if !ok {
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

	s.jsonResponse(w, http.StatusOK, assessment)
}

// handleSaveResponse stores the answer to one question of an in-progress
// assessment. The payload is validated against the question's schema.
func (s *Server) handleSaveResponse(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseAssessmentID(w, r)
	if !ok {
		return
	}

	question, err := strconv.Atoi(r.PathValue("question"))
	if err != nil || question < types.QuestionVerticals || question > types.QuestionLeadership {
		s.errorResponse(w, http.StatusBadRequest, "Question number must be 1-5")
		return
	}

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	payload, err := types.ParsePayload(question, raw)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.db.SaveResponse(r.Context(), id, question, payload); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	// Track progress through the form
	if question < types.QuestionLeadership {
		if err := s.db.SetCurrentQuestion(r.Context(), id, question+1); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"assessment_id":   id,
		"question_number": question,
		"saved":           true,
	})
}

// handleCompleteAssessment freezes an assessment's responses. All five
// questions must be answered first.
func (s *Server) handleCompleteAssessment(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseAssessmentID(w, r)
	if !ok {
		return
	}

	responses, err := s.db.GetResponses(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !responses.Complete() {
		s.errorResponse(w, http.StatusUnprocessableEntity, "All 5 responses are required before completion")
		return
	}

	completed, err := s.db.CompleteAssessment(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !completed {
		s.errorResponse(w, http.StatusConflict, "Assessment is not in progress")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"assessment_id": id,
		"status":        types.StatusCompleted,
	})
}

// handleListCandidates lists assessments with result summaries for reviewers
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	filters := db.CandidateFilters{
		Status:   r.URL.Query().Get("status"),
		Quadrant: r.URL.Query().Get("quadrant"),
		Search:   r.URL.Query().Get("search"),
		Limit:    parseQueryInt(r, "limit", 50, 200),
		Offset:   parseQueryInt(r, "offset", 0, 0),
	}

	candidates, err := s.db.ListCandidates(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidates": candidates,
		"count":      len(candidates),
		"limit":      filters.Limit,
		"offset":     filters.Offset,
	})
}

// handleStats returns dashboard aggregates
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.GetDashboardStats(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, stats)
}
