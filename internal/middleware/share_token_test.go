package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"xsim-analytics/observatory/internal/common"
)

func newShareTestServer(t *testing.T) (*common.URLSignerService, http.Handler) {
	t.Helper()
	signer := common.NewURLSignerService([]byte("test-secret"), common.NewMemoryCache())

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ShareTokenFromContext(r.Context())
		if !ok {
			t.Error("claims missing from request context")
			return
		}
		w.Write([]byte(claims.Report))
	})
	return signer, ShareTokenMiddleware(signer)(inner)
}

func TestShareTokenMiddleware(t *testing.T) {
	signer, handler := newShareTestServer(t)

	token, err := signer.GenerateShareToken("dashboard", "11", "All", time.Minute)
	if err != nil {
		t.Fatalf("GenerateShareToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/shared/dashboard?token="+token, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "dashboard" {
		t.Errorf("body = %q, want dashboard", rec.Body.String())
	}
}

func TestShareTokenMiddlewareSingleUse(t *testing.T) {
	signer, handler := newShareTestServer(t)

	token, err := signer.GenerateShareToken("dashboard", "11", "All", time.Minute)
	if err != nil {
		t.Fatalf("GenerateShareToken: %v", err)
	}

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/shared/dashboard?token="+token, nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/shared/dashboard?token="+token, nil))
	if second.Code != http.StatusUnauthorized {
		t.Fatalf("second request status = %d, want 401", second.Code)
	}
}

func TestShareTokenMiddlewareMissingToken(t *testing.T) {
	_, handler := newShareTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/shared/dashboard", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestShareTokenMiddlewareGarbageToken(t *testing.T) {
	_, handler := newShareTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/shared/dashboard?token=garbage", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
