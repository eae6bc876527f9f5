package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/1Percent-hub/ScholarHub/internal/auth/apikey"
	"github.com/1Percent-hub/ScholarHub/internal/auth/ratelimit"
)

type stubValidator struct {
	info *apikey.KeyInfo
	err  error
}

func (s *stubValidator) Validate(ctx context.Context, rawKey string) (*apikey.KeyInfo, error) {
	return s.info, s.err
}

func (s *stubValidator) Cached(rawKey string) (*apikey.KeyInfo, bool) {
	return s.info, s.info != nil
}

func nextRecorder(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestProtected(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/stats", true},
		{"/stats/top-queries", true},
		{"/admin/keys", true},
		{"/api/chat", false},
		{"/api/suggest", false},
		{"/health", false},
	}
	for _, tt := range tests {
		if got := Protected(tt.path); got != tt.want {
			t.Errorf("Protected(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestAuthSkipsPublicRoutes(t *testing.T) {
	var called bool
	mw := Auth(&stubValidator{err: apikey.ErrInvalidKey})(nextRecorder(&called))

	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, req)

	if !called {
		t.Error("public route did not reach the handler")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestAuthProtectedRoutes(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		validator  *stubValidator
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "missing key",
			validator:  &stubValidator{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid key",
			key:        "bogus",
			validator:  &stubValidator{err: apikey.ErrInvalidKey},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired key",
			key:        "old",
			validator:  &stubValidator{err: apikey.ErrExpiredKey},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "backend failure",
			key:        "any",
			validator:  &stubValidator{err: errors.New("pg down")},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "valid key",
			key:        "good",
			validator:  &stubValidator{info: &apikey.KeyInfo{ID: "1", Name: "ops"}},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			var gotInfo *apikey.KeyInfo
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotInfo = GetKeyInfo(r.Context())
				w.WriteHeader(http.StatusOK)
			})
			mw := Auth(tt.validator)(next)

			req := httptest.NewRequest(http.MethodGet, "/stats", nil)
			if tt.key != "" {
				req.Header.Set("X-API-Key", tt.key)
			}
			rec := httptest.NewRecorder()
			mw.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if called != tt.wantNext {
				t.Errorf("handler called = %v, want %v", called, tt.wantNext)
			}
			if tt.wantNext && (gotInfo == nil || gotInfo.Name != "ops") {
				t.Errorf("GetKeyInfo = %+v, want the validated info", gotInfo)
			}
		})
	}
}

func TestExtractAPIKey(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*http.Request)
		want  string
	}{
		{
			name:  "bearer header",
			setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc") },
			want:  "abc",
		},
		{
			name:  "x-api-key header",
			setup: func(r *http.Request) { r.Header.Set("X-API-Key", "def") },
			want:  "def",
		},
		{
			name:  "query parameter",
			setup: func(r *http.Request) { r.URL.RawQuery = "api_key=ghi" },
			want:  "ghi",
		},
		{
			name: "bearer wins over header",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer abc")
				r.Header.Set("X-API-Key", "def")
			},
			want: "abc",
		},
		{
			name:  "no key",
			setup: func(r *http.Request) {},
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/stats", nil)
			tt.setup(req)
			if got := extractAPIKey(req); got != tt.want {
				t.Errorf("extractAPIKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	cfg := CORSConfig{
		AllowOrigins: []string{"https://app.scholarhub.dev"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       600,
	}
	var called bool
	mw := CORS(cfg)(nextRecorder(&called))

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "https://app.scholarhub.dev")
	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", rec.Code)
	}
	if called {
		t.Error("preflight reached the handler")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.scholarhub.dev" {
		t.Errorf("Allow-Origin = %q, want the origin echoed", got)
	}
	if got := rec.Header().Get("Vary"); got != "Origin" {
		t.Errorf("Vary = %q, want Origin", got)
	}
	if got := rec.Header().Get("Access-Control-Max-Age"); got != "600" {
		t.Errorf("Max-Age = %q, want 600", got)
	}
}

func TestCORSDisallowedOrigin(t *testing.T) {
	cfg := CORSConfig{AllowOrigins: []string{"https://app.scholarhub.dev"}}
	var called bool
	mw := CORS(cfg)(nextRecorder(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, req)

	if !called {
		t.Error("request with disallowed origin should still reach the handler")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q for a disallowed origin, want empty", got)
	}
}

func TestCORSNoOrigin(t *testing.T) {
	var called bool
	mw := CORS(DefaultCORSConfig())(nextRecorder(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, req)

	if !called {
		t.Error("same-origin request did not reach the handler")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q without an Origin header, want empty", got)
	}
}

func TestRateLimitByIP(t *testing.T) {
	limiter := ratelimit.New(time.Hour)
	defer limiter.Close()
	var called bool
	mw := RateLimit(limiter, nil, 2)(nextRecorder(&called))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d past the limit, want 429", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "60" {
		t.Errorf("Retry-After = %q, want 60", got)
	}
}

func TestRateLimitUsesCachedKeyLimit(t *testing.T) {
	limiter := ratelimit.New(time.Hour)
	defer limiter.Close()
	keys := &stubValidator{info: &apikey.KeyInfo{ID: "1", RateLimit: 1}}
	var called bool
	mw := RateLimit(limiter, keys, 100)(nextRecorder(&called))

	req := func() *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/stats", nil)
		r.Header.Set("X-API-Key", "admin-key")
		return r
	}

	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, req())
	if rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	mw.ServeHTTP(rec, req())
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429 under the key's own limit", rec.Code)
	}
}

func TestRateLimitExemptsHealth(t *testing.T) {
	limiter := ratelimit.New(time.Hour)
	defer limiter.Close()
	var called bool
	mw := RateLimit(limiter, nil, 1)(nextRecorder(&called))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("health request %d status = %d, want 200", i+1, rec.Code)
		}
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		fwd    string
		want   string
	}{
		{"socket peer", "10.0.0.7:52113", "", "10.0.0.7"},
		{"forwarded single", "10.0.0.7:52113", "203.0.113.9", "203.0.113.9"},
		{"forwarded chain", "10.0.0.7:52113", "203.0.113.9, 10.0.0.1", "203.0.113.9"},
		{"bare remote addr", "10.0.0.7", "", "10.0.0.7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
			req.RemoteAddr = tt.remote
			if tt.fwd != "" {
				req.Header.Set("X-Forwarded-For", tt.fwd)
			}
			if got := clientIP(req); got != tt.want {
				t.Errorf("clientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
