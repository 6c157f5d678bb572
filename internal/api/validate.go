package api

import (
	"encoding/json"
	"errors"
	"strconv"
	"unicode/utf8"

	"github.com/flowpbx/ivrdemo/internal/session"
)

// maxQueryLen is the longest transcript the detector will scan. Longer
// transcripts are answered as unknown rather than rejected.
const maxQueryLen = 1000

var errInvalidDigit = errors.New("digit must be a string or an integer")

// digitValue accepts a keypad digit sent either as a JSON string ("5") or
// as a bare integer (5).
type digitValue string

func (d *digitValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*d = digitValue(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*d = digitValue(strconv.Itoa(n))
		return nil
	}
	return errInvalidDigit
}

// validateDigit checks that value is a single keypad key.
// Returns an error message if invalid, empty string if OK.
func validateDigit(field, value string) string {
	if value == "" {
		return field + " is required"
	}
	if len(value) != 1 {
		return field + " must be a single keypad key"
	}
	switch c := value[0]; {
	case c >= '0' && c <= '9', c == '*', c == '#':
		return ""
	default:
		return field + " must be a single keypad key"
	}
}

// validateQuery checks a transcript string. Non-string and empty queries
// are not rejected here; the detector treats them as unrecognised input.
func validateQuery(field string, query any) string {
	s, ok := query.(string)
	if !ok {
		return ""
	}
	if containsControlChars(s) {
		return field + " contains invalid characters"
	}
	return ""
}

// overLongQuery reports whether query is a transcript past maxQueryLen.
func overLongQuery(query any) bool {
	s, ok := query.(string)
	return ok && utf8.RuneCountInString(s) > maxQueryLen
}

// validateSessionID accepts an absent session id but rejects malformed ones.
func validateSessionID(field, value string) string {
	if value == "" {
		return ""
	}
	if !session.Valid(value) {
		return field + " is invalid"
	}
	return ""
}

// containsControlChars checks whether a string has control characters
// (except common whitespace like \n, \r, \t). DEL counts, matching
// session.Valid.
func containsControlChars(s string) bool {
	for _, r := range s {
		if (r < 32 || r == 127) && r != '\n' && r != '\r' && r != '\t' {
			return true
		}
	}
	return false
}

// firstError returns the first non-empty validation message.
func firstError(msgs ...string) string {
	for _, m := range msgs {
		if m != "" {
			return m
		}
	}
	return ""
}
