package api

import (
	"strings"
	"testing"
)

func TestValidateDigit(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"0", true},
		{"5", true},
		{"9", true},
		{"*", true},
		{"#", true},
		{"", false},
		{"10", false},
		{"a", false},
		{"٣", false},
	}

	for _, tt := range tests {
		got := validateDigit("digit", tt.value)
		if (got == "") != tt.ok {
			t.Errorf("validateDigit(%q) = %q, want ok=%v", tt.value, got, tt.ok)
		}
	}
}

func TestValidateQuery(t *testing.T) {
	if msg := validateQuery("query", "what is my balance"); msg != "" {
		t.Errorf("expected valid query, got %q", msg)
	}
	if msg := validateQuery("query", "line one\nline two"); msg != "" {
		t.Errorf("expected newlines to be allowed, got %q", msg)
	}
	if msg := validateQuery("query", 42.0); msg != "" {
		t.Errorf("expected non-string query to pass through, got %q", msg)
	}
	if msg := validateQuery("query", nil); msg != "" {
		t.Errorf("expected nil query to pass through, got %q", msg)
	}
	if msg := validateQuery("query", strings.Repeat("a", maxQueryLen+1)); msg != "" {
		t.Errorf("expected over-long query to pass through, got %q", msg)
	}
	if msg := validateQuery("query", "bad\x00input"); msg != "query contains invalid characters" {
		t.Errorf("expected control character error, got %q", msg)
	}
	if msg := validateQuery("query", "bad\x7finput"); msg != "query contains invalid characters" {
		t.Errorf("expected DEL to be rejected, got %q", msg)
	}
}

func TestOverLongQuery(t *testing.T) {
	if overLongQuery(strings.Repeat("a", maxQueryLen)) {
		t.Error("expected query at the limit to be accepted")
	}
	if !overLongQuery(strings.Repeat("a", maxQueryLen+1)) {
		t.Error("expected query past the limit to be flagged")
	}
	if overLongQuery(42.0) {
		t.Error("expected non-string query not to be flagged")
	}
}

func TestControlCharRuleMatchesSessionIDs(t *testing.T) {
	for _, s := range []string{"a\x00b", "a\x1fb", "a\x7fb", "plain"} {
		fromQuery := containsControlChars(s)
		fromSession := validateSessionID("sessionId", s) != ""
		if fromQuery != fromSession {
			t.Errorf("%q: query rule %v, session rule %v", s, fromQuery, fromSession)
		}
	}
}

func TestValidateSessionID(t *testing.T) {
	if msg := validateSessionID("sessionId", ""); msg != "" {
		t.Errorf("expected empty session id to be allowed, got %q", msg)
	}
	if msg := validateSessionID("sessionId", "session-1712345678-k3j2h1"); msg != "" {
		t.Errorf("expected client session id to be allowed, got %q", msg)
	}
	if msg := validateSessionID("sessionId", "bad\x01id"); msg != "sessionId is invalid" {
		t.Errorf("expected invalid session id error, got %q", msg)
	}
}

func TestFirstError(t *testing.T) {
	if got := firstError("", "second", "third"); got != "second" {
		t.Errorf("expected 'second', got %q", got)
	}
	if got := firstError("", ""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}
