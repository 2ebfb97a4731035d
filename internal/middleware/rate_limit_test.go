package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func rateLimitedHandler() http.Handler {
	return RateLimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestRateLimitExemptsLocalhost(t *testing.T) {
	h := rateLimitedHandler()
	for i := 0; i < burstSize*3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/aircraft", nil)
		req.RemoteAddr = "127.0.0.1:54321"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("request %d from localhost: status = %d, want 204", i, rec.Code)
		}
	}
}

func TestRateLimitRejectsAfterBurst(t *testing.T) {
	h := rateLimitedHandler()
	// Unique address so this test does not share a limiter with others.
	const addr = "203.0.113.9:1234"

	for i := 0; i < burstSize; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/aircraft", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("request %d within burst: status = %d, want 204", i, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/aircraft", nil)
	req.RemoteAddr = addr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("request past burst: status = %d, want 429", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "1" {
		t.Errorf("Retry-After = %q, want %q", got, "1")
	}
}

func TestExemptionsFromEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_EXEMPT_IPS", "10.0.0.5, 10.0.0.6,")
	exempt := exemptionsFromEnv()

	for _, ip := range []string{"127.0.0.1", "::1", "10.0.0.5", "10.0.0.6"} {
		if !exempt[ip] {
			t.Errorf("exempt[%q] = false, want true", ip)
		}
	}
	if exempt["203.0.113.9"] {
		t.Error("unlisted address reported exempt")
	}
}
