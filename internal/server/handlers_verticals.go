package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// VerticalRequest is the body for creating or updating a catalog entry
type VerticalRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      *bool  `json:"active,omitempty"`
}

// handleListVerticals lists the vertical catalog.
// Pass ?active=true to restrict to active entries.
func (s *Server) handleListVerticals(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	verticals, err := s.db.ListVerticals(r.Context(), activeOnly)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"verticals": verticals,
		"count":     len(verticals),
	})
}

// handleCreateVertical adds a catalog entry
func (s *Server) handleCreateVertical(w http.ResponseWriter, r *http.Request) {
	var req VerticalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	vertical, err := s.db.CreateVertical(r.Context(), req.Name, req.Description)
	if err != nil {
		s.errorResponse(w, http.StatusConflict, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, vertical)
}

// handleUpdateVertical updates a catalog entry, including its active flag
func (s *Server) handleUpdateVertical(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid vertical ID")
		return
	}

	var req VerticalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	vertical, err := s.db.UpdateVertical(r.Context(), id, req.Name, req.Description, active)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if vertical == nil {
		s.errorResponse(w, http.StatusNotFound, "Vertical not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, vertical)
}
