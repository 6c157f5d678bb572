package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// envelope is the standard API response wrapper for /api/v1 routes.
// All JSON responses use this format: { "data": ..., "error": ... }
type envelope struct {
	Data  any    `json:"data"`
	Error string `json:"error,omitempty"`
}

// writeJSON writes an enveloped JSON response with the given status code and data payload.
func writeJSON(w http.ResponseWriter, status int, data any) {
	writeBody(w, status, envelope{Data: data})
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeBody(w, status, envelope{Error: msg})
}

// writeBody writes v as JSON without the envelope. The browser-facing IVR
// routes use it so clients can read "response" at the top level.
func writeBody(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode json response", "error", err)
	}
}

// maxRequestBodySize is the upper limit for JSON request bodies (1 MB).
const maxRequestBodySize = 1 << 20

// readJSON decodes a single JSON object from the request body into dst.
// Returns a user-facing error message on failure, or "" on success.
func readJSON(r *http.Request, dst any) string {
	r.Body = http.MaxBytesReader(nil, r.Body, maxRequestBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.Is(err, io.EOF):
			return "request body must not be empty"
		case errors.As(err, &maxErr):
			return "request body too large"
		case errors.Is(err, errInvalidDigit):
			return errInvalidDigit.Error()
		case errors.As(err, &typeErr) && typeErr.Field != "":
			return "invalid value for " + typeErr.Field
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			return "unknown field " + strings.TrimPrefix(err.Error(), "json: unknown field ")
		default:
			return "malformed json"
		}
	}

	if dec.More() {
		return "request body must contain a single json object"
	}

	return ""
}
