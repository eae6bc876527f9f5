// Package handler implements the gateway's HTTP endpoints: reverse
// proxies to the chat and analytics services plus direct admin API key
// management against PostgreSQL.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/1Percent-hub/ScholarHub/internal/auth/apikey"
	"github.com/1Percent-hub/ScholarHub/pkg/middleware"
)

// Config holds the URLs of backend services that the gateway proxies to.
type Config struct {
	ChatURL      string
	AnalyticsURL string
}

// Handler implements the API gateway's HTTP endpoints. Chat traffic and
// stats reads are proxied; API key management talks to PostgreSQL through
// the validator.
type Handler struct {
	chatProxy      *httputil.ReverseProxy
	analyticsProxy *httputil.ReverseProxy
	keyValidator   *apikey.Validator
	logger         *slog.Logger
}

// New creates a gateway Handler that proxies to the given backend URLs.
func New(cfg Config, keyValidator *apikey.Validator) *Handler {
	h := &Handler{
		keyValidator: keyValidator,
		logger:       slog.Default().With("component", "gateway-handler"),
	}
	h.chatProxy = h.newProxy(cfg.ChatURL)
	h.analyticsProxy = h.newProxy(cfg.AnalyticsURL)
	return h
}

// newProxy builds a reverse proxy that stamps X-Forwarded-Host/Proto and
// propagates the gateway's request id so upstream logs correlate.
func (h *Handler) newProxy(target string) *httputil.ReverseProxy {
	u, _ := url.Parse(target)
	proxy := httputil.NewSingleHostReverseProxy(u)

	director := proxy.Director
	proxy.Director = func(req *http.Request) {
		director(req)
		req.Header.Set("X-Forwarded-Host", req.Host)
		if req.TLS != nil {
			req.Header.Set("X-Forwarded-Proto", "https")
		} else {
			req.Header.Set("X-Forwarded-Proto", "http")
		}
		if id := middleware.GetRequestID(req.Context()); id != "" {
			req.Header.Set("X-Request-ID", id)
		}
	}
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		h.logger.Error("proxy error", "target", target, "path", r.URL.Path, "error", err)
		h.writeError(w, http.StatusBadGateway, "upstream unavailable")
	}
	return proxy
}

// ---------- Proxy handlers ----------

// ProxyChat forwards chat API requests to the chat service.
func (h *Handler) ProxyChat(w http.ResponseWriter, r *http.Request) {
	h.chatProxy.ServeHTTP(w, r)
}

// ProxyAnalytics forwards stats requests to the analytics service.
func (h *Handler) ProxyAnalytics(w http.ResponseWriter, r *http.Request) {
	h.analyticsProxy.ServeHTTP(w, r)
}

// ---------- Admin handlers ----------

// CreateAPIKey creates a new API key and returns the raw key (shown once).
func (h *Handler) CreateAPIKey(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name"`
		RateLimit int    `json:"rate_limit"`
		ExpiresIn string `json:"expires_in,omitempty"` // Go duration, e.g. "720h"
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" {
		h.writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.RateLimit <= 0 {
		req.RateLimit = 100
	}

	var expiresAt *time.Time
	if req.ExpiresIn != "" {
		d, err := time.ParseDuration(req.ExpiresIn)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid expires_in duration")
			return
		}
		t := time.Now().Add(d)
		expiresAt = &t
	}

	key, err := h.keyValidator.CreateKey(r.Context(), req.Name, req.RateLimit, expiresAt)
	if err != nil {
		h.logger.Error("failed to create api key", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create api key")
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]string{
		"api_key": key,
		"name":    req.Name,
		"message": "store this key securely, it cannot be retrieved again",
	})
}

// RevokeAPIKey deactivates the API key presented in the request body.
func (h *Handler) RevokeAPIKey(w http.ResponseWriter, r *http.Request) {
	var req struct {
		APIKey string `json:"api_key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.APIKey == "" {
		h.writeError(w, http.StatusBadRequest, "api_key is required")
		return
	}

	if err := h.keyValidator.RevokeKey(r.Context(), req.APIKey); err != nil {
		if err == apikey.ErrInvalidKey {
			h.writeError(w, http.StatusNotFound, "unknown api key")
			return
		}
		h.logger.Error("failed to revoke api key", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to revoke api key")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "revoked"})
}

// ListAPIKeys returns all active API keys (without hashes).
func (h *Handler) ListAPIKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := h.keyValidator.ListKeys(r.Context())
	if err != nil {
		h.logger.Error("failed to list api keys", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to list api keys")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"keys":  keys,
		"count": len(keys),
	})
}

// ---------- Health ----------

// Health returns the gateway's health status.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "gateway"})
}

// ---------- Helpers ----------

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
