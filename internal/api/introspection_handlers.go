package api

import (
	"encoding/json"
	"net/http"

	"github.com/flowpbx/ivrdemo/internal/intent"
	"github.com/flowpbx/ivrdemo/internal/session"
	"github.com/go-chi/chi/v5"
)

// handleHealth returns basic health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListIntents returns the action registry keyed by intent name.
func (s *Server) handleListIntents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.detector.Mapping())
}

type detectRequest struct {
	Query json.RawMessage `json:"query"`
}

// handleDetect classifies a query without looking up a response.
func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if errMsg := readJSON(r, &req); errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	var query any
	if len(req.Query) > 0 {
		if err := json.Unmarshal(req.Query, &query); err != nil {
			writeError(w, http.StatusBadRequest, "malformed json")
			return
		}
	}
	if errMsg := validateQuery("query", query); errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	writeJSON(w, http.StatusOK, s.detect("", query))
}

type responseLookup struct {
	Digit    string        `json:"digit"`
	Response string        `json:"response"`
	Intent   *intent.Entry `json:"intent,omitempty"`
}

// handleGetResponse returns the canned text for a digit.
func (s *Server) handleGetResponse(w http.ResponseWriter, r *http.Request) {
	digit := chi.URLParam(r, "digit")
	if errMsg := validateDigit("digit", digit); errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	out := responseLookup{Digit: digit, Response: s.responses.Respond(digit)}
	if e, ok := intent.LookupDigit(digit); ok {
		out.Intent = &e
	}
	writeJSON(w, http.StatusOK, out)
}

// handleCreateSession issues a new opaque session id.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, map[string]string{"session_id": session.New()})
}
