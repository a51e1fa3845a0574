package server

import (
	"net/http"
)

// handleAnalyze runs the scoring pipeline for a completed assessment.
// Re-analysis of an already-analyzed assessment requires ?force=true and
// replaces the prior result.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseAssessmentID(w, r)
	if !ok {
		return
	}

	force := r.URL.Query().Get("force") == "true"

	result, err := s.runner.Analyze(r.Context(), id, force)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"result":  result,
		"scores": map[string]any{
			"will":     result.WillScore,
			"skill":    result.SkillScore,
			"quadrant": result.Quadrant,
		},
	})
}

// handleGetResult retrieves the persisted result for an assessment
func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseAssessmentID(w, r)
	if !ok {
		return
	}

	result, err := s.db.GetResultByAssessment(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if result == nil {
		s.errorResponse(w, http.StatusNotFound, "Result not found - assessment has not been analyzed")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
