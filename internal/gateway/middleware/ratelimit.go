package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/1Percent-hub/ScholarHub/internal/auth/apikey"
	"github.com/1Percent-hub/ScholarHub/internal/auth/ratelimit"
)

// KeyCache answers whether a raw key has a fresh cached validation.
// *apikey.Validator implements it.
type KeyCache interface {
	Cached(rawKey string) (*apikey.KeyInfo, bool)
}

// RateLimit returns middleware that enforces per-client token buckets.
// Buckets are keyed by the presented API key (hashed) or the client IP,
// with defaultLimit tokens per window. When the validation cache already
// knows the key, its stored rate_limit overrides the default; the cold
// first request runs under the default until Auth warms the cache. Health
// endpoints are exempt.
func RateLimit(limiter *ratelimit.Limiter, keys KeyCache, defaultLimit int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/health") {
				next.ServeHTTP(w, r)
				return
			}

			key := "ip:" + clientIP(r)
			limit := defaultLimit
			if raw := extractAPIKey(r); raw != "" {
				key = "key:" + apikey.HashKey(raw)
				if keys != nil {
					if info, ok := keys.Cached(raw); ok && info.RateLimit > 0 {
						limit = info.RateLimit
					}
				}
			}

			if !limiter.Allow(key, limit) {
				w.Header().Set("Retry-After", "60")
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP resolves the originating client address: the first hop in
// X-Forwarded-For when an upstream proxy set it, the socket peer
// otherwise.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.IndexByte(fwd, ','); idx >= 0 {
			fwd = fwd[:idx]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
