package requestutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestSanitizeRequestID(t *testing.T) {
	if got := SanitizeRequestID("valid-123"); got != "valid-123" {
		t.Fatalf("expected pass-through, got %s", got)
	}
	if got := SanitizeRequestID(" valid-123 "); got != "valid-123" {
		t.Fatalf("expected trimmed pass-through, got %s", got)
	}
	if got := SanitizeRequestID("bad id"); got == "" || got == "bad id" {
		t.Fatalf("expected sanitized id, got %s", got)
	}
	if got := SanitizeRequestID(""); len(got) != 36 {
		t.Fatalf("expected generated id for empty input, got %q", got)
	}
}

func TestNewRequestIDFallback(t *testing.T) {
	got := NewRequestID()
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("expected uuid request id, got %q", got)
	}
	useFallback.Store(true)
	defer useFallback.Store(false)
	got = NewRequestID()
	if len(got) != 16 || !requestIDPattern.MatchString(got) {
		t.Fatalf("expected well-formed fallback id, got %q", got)
	}
}

func TestClientIP(t *testing.T) {
	if got := ClientIP(nil); got != "" {
		t.Fatalf("expected empty for nil request, got %q", got)
	}

	cases := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded", map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, "9.9.9.9:1234", "1.2.3.4"},
		{"empty forwarded hop", map[string]string{"X-Forwarded-For": " ,5.6.7.8", "X-Real-IP": "7.7.7.7"}, "9.9.9.9:1234", "7.7.7.7"},
		{"real ip", map[string]string{"X-Real-IP": "7.7.7.7"}, "9.9.9.9:1234", "7.7.7.7"},
		{"remote host", nil, "9.9.9.9:1234", "9.9.9.9"},
		{"remote without port", nil, "9.9.9.9", "9.9.9.9"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = tc.remote
		for k, v := range tc.headers {
			req.Header.Set(k, v)
		}
		if got := ClientIP(req); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}
