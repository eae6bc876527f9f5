// Package router wires up all gateway routes and applies the middleware
// chain (RequestID → CORS → RateLimit → Auth).
package router

import (
	"net/http"

	"github.com/1Percent-hub/ScholarHub/internal/auth/apikey"
	"github.com/1Percent-hub/ScholarHub/internal/auth/ratelimit"
	gwhandler "github.com/1Percent-hub/ScholarHub/internal/gateway/handler"
	gwmw "github.com/1Percent-hub/ScholarHub/internal/gateway/middleware"
	pkgmw "github.com/1Percent-hub/ScholarHub/pkg/middleware"
)

// Options tune the middleware chain.
type Options struct {
	AllowedOrigins []string
	DefaultLimit   int // tokens per window for clients without a key
}

// New builds the full gateway HTTP handler with all routes and middleware.
//
// Route table:
//
//	ANY    /api/...              → chat service (proxy, public)
//	GET    /stats...             → analytics service (proxy, API key)
//	POST   /admin/keys           → create API key  (direct DB, API key)
//	GET    /admin/keys           → list API keys   (direct DB, API key)
//	DELETE /admin/keys           → revoke API key  (direct DB, API key)
//	GET    /health               → gateway health  (exempt)
//
// Middleware chain (outermost first):
//
//	RequestID → CORS → RateLimit → Auth → handler
//
// Rate limiting runs before auth so unauthenticated floods burn buckets,
// not Postgres lookups.
func New(h *gwhandler.Handler, validator *apikey.Validator, limiter *ratelimit.Limiter, opts Options) http.Handler {
	mux := http.NewServeMux()

	// Health (unauthenticated)
	mux.HandleFunc("GET /health", h.Health)

	// Chat API (public, proxied)
	mux.HandleFunc("/api/", h.ProxyChat)

	// Stats API (admin, proxied)
	mux.HandleFunc("GET /stats", h.ProxyAnalytics)
	mux.HandleFunc("GET /stats/", h.ProxyAnalytics)

	// Admin API (direct)
	mux.HandleFunc("POST /admin/keys", h.CreateAPIKey)
	mux.HandleFunc("GET /admin/keys", h.ListAPIKeys)
	mux.HandleFunc("DELETE /admin/keys", h.RevokeAPIKey)

	cors := gwmw.DefaultCORSConfig()
	if len(opts.AllowedOrigins) > 0 {
		cors.AllowOrigins = opts.AllowedOrigins
	}
	limit := opts.DefaultLimit
	if limit <= 0 {
		limit = 60
	}

	// Middleware chain, applied inside-out.
	var chain http.Handler = mux
	chain = gwmw.Auth(validator)(chain)
	chain = gwmw.RateLimit(limiter, validator, limit)(chain)
	chain = gwmw.CORS(cors)(chain)
	chain = pkgmw.RequestID(chain)

	return chain
}
