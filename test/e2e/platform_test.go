// Package e2e contains end-to-end tests that exercise the full platform
// stack: gateway → chat → analytics, with real Kafka, PostgreSQL, and
// Redis.
//
// Prerequisites:
//   - chat service running (knowledge base loaded)
//   - analytics service running, consuming from Kafka
//   - gateway running with PostgreSQL for API keys
//
// Run with:
//
//	go test -v -tags=e2e -timeout=120s ./test/e2e/...
package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Config
// ---------------------------------------------------------------------------

type e2eConfig struct {
	GatewayURL   string
	ChatURL      string
	AnalyticsURL string
}

func loadE2EConfig() e2eConfig {
	return e2eConfig{
		GatewayURL:   envOrDefault("E2E_GATEWAY_URL", "http://localhost:8082"),
		ChatURL:      envOrDefault("E2E_CHAT_URL", "http://localhost:8080"),
		AnalyticsURL: envOrDefault("E2E_ANALYTICS_URL", "http://localhost:8083"),
	}
}

// postChat sends one chat message and decodes the response body.
func postChat(t *testing.T, client *http.Client, baseURL, sessionID, message string) (map[string]any, int) {
	t.Helper()

	payload, _ := json.Marshal(map[string]string{
		"message":    message,
		"session_id": sessionID,
	})
	resp, err := client.Post(baseURL+"/api/chat", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("chat request failed: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	return body, resp.StatusCode
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

// TestPlatformHealth verifies all services respond to health checks.
func TestPlatformHealth(t *testing.T) {
	cfg := loadE2EConfig()

	services := []struct {
		name string
		url  string
	}{
		{"chat /health/live", cfg.ChatURL + "/health/live"},
		{"chat /health/ready", cfg.ChatURL + "/health/ready"},
		{"analytics /health/live", cfg.AnalyticsURL + "/health/live"},
		{"analytics /health/ready", cfg.AnalyticsURL + "/health/ready"},
		{"gateway /health", cfg.GatewayURL + "/health"},
	}

	client := &http.Client{Timeout: 5 * time.Second}

	for _, svc := range services {
		t.Run(svc.name, func(t *testing.T) {
			resp, err := client.Get(svc.url)
			if err != nil {
				t.Skipf("service unavailable: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				t.Errorf("expected 200, got %d: %s", resp.StatusCode, body)
			}
		})
	}
}

// TestChatSessionMemory exercises the session memory flow: disclose a
// fact, then ask the service to recall it in the same session.
func TestChatSessionMemory(t *testing.T) {
	cfg := loadE2EConfig()
	client := &http.Client{Timeout: 10 * time.Second}

	// Check that the chat service is reachable.
	if _, err := client.Get(cfg.ChatURL + "/health/live"); err != nil {
		t.Skipf("chat service unavailable: %v", err)
	}

	sessionID := fmt.Sprintf("e2e-memory-%d", time.Now().UnixNano())

	// 1. Disclose a name. The fact is absorbed silently, so the reply
	// comes from whatever else the responder chain produces.
	body, status := postChat(t, client, cfg.ChatURL, sessionID, "my name is casey")
	if status != http.StatusOK {
		t.Fatalf("expected 200 on fact message, got %d: %v", status, body)
	}
	t.Logf("fact reply: %v (memory_hint=%v)", body["reply"], body["memory_hint"])

	// 2. Ask who we are. The command reply must carry the stored name.
	body, status = postChat(t, client, cfg.ChatURL, sessionID, "who am i")
	if status != http.StatusOK {
		t.Fatalf("expected 200 on command, got %d: %v", status, body)
	}
	reply, _ := body["reply"].(string)
	if !strings.Contains(strings.ToLower(reply), "casey") {
		t.Errorf("who-am-i reply %q does not mention the stored name", reply)
	}

	// 3. A fresh session must not see the fact.
	otherSession := sessionID + "-other"
	body, _ = postChat(t, client, cfg.ChatURL, otherSession, "who am i")
	reply, _ = body["reply"].(string)
	if strings.Contains(strings.ToLower(reply), "casey") {
		t.Errorf("session isolation broken: fresh session reply %q leaked the name", reply)
	}
}

// TestChatAndAnalytics verifies that chat messages flow through Kafka
// into the analytics aggregate: send a message, then watch total_messages
// grow.
func TestChatAndAnalytics(t *testing.T) {
	cfg := loadE2EConfig()
	client := &http.Client{Timeout: 10 * time.Second}

	if _, err := client.Get(cfg.ChatURL + "/health/live"); err != nil {
		t.Skipf("chat service unavailable: %v", err)
	}

	// 1. Read the baseline before sending anything.
	baseline, err := fetchStats(client, cfg.AnalyticsURL)
	if err != nil {
		t.Skipf("analytics service unavailable: %v", err)
	}
	before, _ := baseline["total_messages"].(float64)

	// 2. Send a chat message in a unique session.
	sessionID := fmt.Sprintf("e2e-analytics-%d", time.Now().UnixNano())
	body, status := postChat(t, client, cfg.ChatURL, sessionID, "what is gravity")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", status, body)
	}
	t.Logf("chat reply: matched=%v", body["matched"])

	// 3. Wait for the event to travel through Kafka into the aggregate.
	t.Log("waiting for the event to reach analytics...")
	var grew bool
	for attempt := 0; attempt < 15; attempt++ {
		time.Sleep(1 * time.Second)

		stats, err := fetchStats(client, cfg.AnalyticsURL)
		if err != nil {
			t.Logf("attempt %d: stats request failed: %v", attempt, err)
			continue
		}

		after, _ := stats["total_messages"].(float64)
		if after > before {
			grew = true
			t.Logf("event recorded after %d seconds (total_messages %v -> %v, match_rate=%v)",
				attempt+1, before, after, stats["match_rate"])
			break
		}
	}

	if !grew {
		t.Log("total_messages did not grow within 15s, Kafka may be slow or services not fully connected")
		// Don't fail hard, the e2e environment may not have all services wired up.
	}
}

// TestSuggestions verifies the suggestion endpoint serves a non-empty
// pool of starter questions.
func TestSuggestions(t *testing.T) {
	cfg := loadE2EConfig()
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(cfg.ChatURL + "/api/suggest")
	if err != nil {
		t.Skipf("chat service unavailable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}

	var body struct {
		Suggested []string `json:"suggested"`
	}
	json.NewDecoder(resp.Body).Decode(&body)
	t.Logf("suggestions: %v", body.Suggested)

	if len(body.Suggested) == 0 {
		t.Error("expected a non-empty suggestion pool")
	}
}

// TestGatewayChatProxy verifies public chat traffic flows through the
// gateway without an API key.
func TestGatewayChatProxy(t *testing.T) {
	cfg := loadE2EConfig()
	client := &http.Client{Timeout: 10 * time.Second}

	if _, err := client.Get(cfg.GatewayURL + "/health"); err != nil {
		t.Skipf("gateway unavailable: %v", err)
	}

	sessionID := fmt.Sprintf("e2e-gateway-%d", time.Now().UnixNano())
	body, status := postChat(t, client, cfg.GatewayURL, sessionID, "what is 12 * 12")
	if status != http.StatusOK {
		t.Fatalf("expected 200 through the gateway, got %d: %v", status, body)
	}

	reply, _ := body["reply"].(string)
	if !strings.Contains(reply, "144") {
		t.Errorf("math reply %q missing the computed result", reply)
	}
}

// TestGatewayProtectedStats verifies the gateway rejects dashboard
// requests that carry no API key.
func TestGatewayProtectedStats(t *testing.T) {
	cfg := loadE2EConfig()
	client := &http.Client{Timeout: 5 * time.Second}

	if _, err := client.Get(cfg.GatewayURL + "/health"); err != nil {
		t.Skipf("gateway unavailable: %v", err)
	}

	resp, err := client.Get(cfg.GatewayURL + "/stats")
	if err != nil {
		t.Fatalf("stats request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		body, _ := io.ReadAll(resp.Body)
		t.Errorf("expected 401 without a key, got %d: %s", resp.StatusCode, body)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func fetchStats(client *http.Client, analyticsURL string) (map[string]any, error) {
	resp, err := client.Get(analyticsURL + "/stats")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stats returned %d", resp.StatusCode)
	}

	var stats map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
