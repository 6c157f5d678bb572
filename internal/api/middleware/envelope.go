// Package middleware holds the HTTP middleware mounted in front of the IVR
// routes.
package middleware

import (
	"encoding/json"
	"net/http"
)

// errorBody mirrors the error shape written by the api package so that
// clients see a single format whether a request fails in a handler or in
// middleware.
type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Error: msg}) //nolint:errcheck
}
