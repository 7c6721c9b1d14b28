package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterWindow(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }

	if !rl.Allow("a") || !rl.Allow("a") {
		t.Fatal("first two requests refused")
	}
	if rl.Allow("a") {
		t.Error("third request in the window allowed")
	}
	if !rl.Allow("b") {
		t.Error("other client throttled")
	}
	if got := rl.RetryAfter("a"); got != 61 {
		t.Errorf("RetryAfter = %d, want 61", got)
	}

	now = now.Add(time.Minute)
	if !rl.Allow("a") {
		t.Error("request refused after the window reset")
	}
	if rl.RetryAfter("unknown") != 0 {
		t.Error("unknown client has a retry delay")
	}
}

func TestRateLimiterSweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, time.Minute)
	rl.now = func() time.Time { return now }

	rl.Allow("a")
	now = now.Add(2 * time.Minute)
	rl.Allow("b")
	if _, ok := rl.windows["a"]; ok {
		t.Error("expired window not swept")
	}
}

func TestClientAddr(t *testing.T) {
	tests := []struct {
		remote string
		xff    string
		want   string
	}{
		{"10.0.0.1:5123", "", "10.0.0.1"},
		{"[::1]:8080", "", "::1"},
		{"10.0.0.1:5123", "203.0.113.7, 10.0.0.9", "203.0.113.7"},
		{"pipe", "", "pipe"},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = tt.remote
		if tt.xff != "" {
			r.Header.Set("X-Forwarded-For", tt.xff)
		}
		if got := clientAddr(r); got != tt.want {
			t.Errorf("clientAddr(%q, %q) = %q, want %q", tt.remote, tt.xff, got, tt.want)
		}
	}
}
