package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/webcheckd/urlcheck/internal/config"
)

func TestRouter_Healthz(t *testing.T) {
	h := newTestServer().Router()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("want body ok, got %q", rec.Body.String())
	}
}

func TestRouter_CheckRequiresConfiguredKey(t *testing.T) {
	s := NewServer(zap.NewNop(), config.Config{
		APIKeys:    []string{"secret"},
		MaxTimeout: 10 * time.Second,
	})
	h := s.Router()

	body := []byte(`{"url":"not-a-valid-url"}`)

	req := httptest.NewRequest(http.MethodPost, "/api/check", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no key: want 401, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/check", bytes.NewReader(body))
	req.Header.Set("X-API-Key", "secret")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("with key: want 200, got %d", rec.Code)
	}
}

func TestRouter_HealthzSkipsRateLimit(t *testing.T) {
	s := NewServer(zap.NewNop(), config.Config{
		PublicRPM:   60,
		PublicBurst: 1,
		MaxTimeout:  10 * time.Second,
	})
	h := s.Router()

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "203.0.113.9:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("healthz request %d limited: %d", i, rec.Code)
		}
	}
}
