package api

import (
	"encoding/json"
	"net/http"

	"github.com/flowpbx/ivrdemo/internal/intent"
	"github.com/flowpbx/ivrdemo/internal/metrics"
	"github.com/flowpbx/ivrdemo/internal/session"
)

// ivrRequest is the body posted by the browser for both input paths.
// Query is kept raw so that a present-but-non-string value can still be
// handed to the detector, which treats it as unrecognised input.
type ivrRequest struct {
	SessionID string          `json:"sessionId"`
	Digit     *digitValue     `json:"digit"`
	Query     json.RawMessage `json:"query"`
}

// hasQuery reports whether a query key was sent.
func (req *ivrRequest) hasQuery() bool {
	return len(req.Query) > 0
}

// query decodes the raw query into a string, number, nil, etc.
func (req *ivrRequest) query() any {
	var q any
	if err := json.Unmarshal(req.Query, &q); err != nil {
		return nil
	}
	return q
}

// ivrResponse is written unenveloped; the dialpad reads "response" and
// the voice path additionally reads "message".
type ivrResponse struct {
	Response string         `json:"response"`
	Message  string         `json:"message,omitempty"`
	Intent   *intent.Result `json:"intent,omitempty"`
}

// decodeIVRRequest reads and validates the common request fields.
func decodeIVRRequest(w http.ResponseWriter, r *http.Request) (*ivrRequest, bool) {
	var req ivrRequest
	if errMsg := readJSON(r, &req); errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return nil, false
	}
	var digitMsg string
	if req.Digit != nil {
		digitMsg = validateDigit("digit", string(*req.Digit))
	}
	var queryMsg string
	if req.hasQuery() {
		queryMsg = validateQuery("query", req.query())
	}
	if msg := firstError(validateSessionID("sessionId", req.SessionID), digitMsg, queryMsg); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return nil, false
	}
	return &req, true
}

// handleIVRRequest serves the keypad path. A digit is answered straight
// from the response table; a request carrying only a query is routed
// through the detector first.
func (s *Server) handleIVRRequest(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeIVRRequest(w, r)
	if !ok {
		return
	}

	switch {
	case req.Digit != nil:
		digit := string(*req.Digit)
		s.tally.RecordLookup(metrics.ChannelKeypad)
		s.logger.Debug("keypad input",
			"session_id", req.SessionID,
			"session_issued", session.Issued(req.SessionID),
			"digit", digit,
		)
		writeBody(w, http.StatusOK, ivrResponse{Response: s.responses.Respond(digit)})
	case req.hasQuery():
		s.writeVoiceResponse(w, req)
	default:
		writeError(w, http.StatusBadRequest, "digit or query is required")
	}
}

// handleConversation serves the voice path: transcript -> intent -> digit
// -> canned text.
func (s *Server) handleConversation(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeIVRRequest(w, r)
	if !ok {
		return
	}
	if !req.hasQuery() {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}
	s.writeVoiceResponse(w, req)
}

func (s *Server) writeVoiceResponse(w http.ResponseWriter, req *ivrRequest) {
	result := s.detect(req.SessionID, req.query())
	s.tally.RecordLookup(metrics.ChannelVoice)

	text := s.responses.Respond(result.Digit)
	writeBody(w, http.StatusOK, ivrResponse{
		Response: text,
		Message:  text,
		Intent:   &result,
	})
}

// detect classifies query and records the outcome.
func (s *Server) detect(sessionID string, query any) intent.Result {
	var result intent.Result
	if overLongQuery(query) {
		result = intent.Unknown
	} else {
		result = s.detector.Detect(query)
	}
	s.tally.RecordDetection(result.Intent, string(result.Service))

	s.logger.Debug("intent detected",
		"session_id", sessionID,
		"session_issued", session.Issued(sessionID),
		"intent", result.Intent,
		"service", result.Service,
		"digit", result.Digit,
		"confidence", result.Confidence,
	)
	return result
}

// handleServiceProcess returns a handler answering digits for a single
// service, mirroring the legacy per-service endpoints.
func (s *Server) handleServiceProcess(service intent.Service) http.HandlerFunc {
	channel := metrics.ChannelACS
	if service == intent.ServiceBAP {
		channel = metrics.ChannelBAP
	}

	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeIVRRequest(w, r)
		if !ok {
			return
		}
		if req.Digit == nil {
			writeError(w, http.StatusBadRequest, "digit is required")
			return
		}

		s.tally.RecordLookup(channel)
		writeBody(w, http.StatusOK, ivrResponse{
			Response: s.responses.Process(service, string(*req.Digit)),
		})
	}
}
