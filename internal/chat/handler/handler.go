// Package handler exposes the chat HTTP API: POST /api/chat runs the
// responder chain and layers session personalization over the result,
// GET /api/suggest serves the current suggestion list.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/1Percent-hub/ScholarHub/internal/analytics"
	"github.com/1Percent-hub/ScholarHub/internal/chat"
	"github.com/1Percent-hub/ScholarHub/internal/chat/responder"
	"github.com/1Percent-hub/ScholarHub/internal/chat/trending"
	"github.com/1Percent-hub/ScholarHub/internal/chat/validator"
	"github.com/1Percent-hub/ScholarHub/internal/engine/text"
	"github.com/1Percent-hub/ScholarHub/internal/knowledge"
	"github.com/1Percent-hub/ScholarHub/internal/session"
	apperrors "github.com/1Percent-hub/ScholarHub/pkg/errors"
	"github.com/1Percent-hub/ScholarHub/pkg/logger"
	"github.com/1Percent-hub/ScholarHub/pkg/metrics"
	"github.com/1Percent-hub/ScholarHub/pkg/middleware"
	"github.com/1Percent-hub/ScholarHub/pkg/tracing"
)

const (
	// emptyReply answers a blank message. Blank input is a prompt for help,
	// not a client error.
	emptyReply = "Please type something!"

	// maxSuggested caps the assembled suggestion list before trending
	// questions are blended in.
	maxSuggested = 6
)

type Handler struct {
	chain      responder.Chain
	sessions   *session.Manager
	trending   *trending.Client
	collector  *analytics.Collector
	metrics    *metrics.Metrics
	maxMessage int
	logger     *slog.Logger
}

func New(chain responder.Chain, sessions *session.Manager, trend *trending.Client, collector *analytics.Collector, met *metrics.Metrics, maxMessage int) *Handler {
	if maxMessage <= 0 {
		maxMessage = validator.DefaultMaxMessageLength
	}
	return &Handler{
		chain:      chain,
		sessions:   sessions,
		trending:   trend,
		collector:  collector,
		metrics:    met,
		maxMessage: maxMessage,
		logger:     slog.Default().With("component", "chat-handler"),
	}
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req chat.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.countMessage("invalid")
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.SessionID == "" {
		req.SessionID = r.Header.Get("X-Session-ID")
	}
	if req.SessionID == "" {
		req.SessionID = chat.DefaultSessionID
	}
	if err := validator.ValidateChatRequest(&req, h.maxMessage); err != nil {
		h.countMessage("invalid")
		h.writeError(w, apperrors.HTTPStatusCode(err), err.Error())
		return
	}

	message := strings.TrimSpace(req.Message)
	sessionID := req.SessionID

	if message == "" {
		h.trackEmpty(ctx, start, sessionID)
		h.countMessage("empty")
		h.writeJSON(w, http.StatusOK, chat.ChatResponse{
			Reply:      emptyReply,
			Suggested:  []string{},
			MemoryHint: h.sessions.Hint(ctx, sessionID),
		})
		return
	}

	ctx, root := tracing.StartSpan(ctx, "chat-request", middleware.GetRequestID(ctx))

	chainCtx, chainSpan := tracing.StartChildSpan(ctx, "responder-chain")
	resp, ok := h.chain.Respond(chainCtx, responder.Request{Message: message, SessionID: sessionID})
	chainSpan.End()
	if !ok {
		log.Error("no responder claimed the message", "session_hash", analytics.HashText(sessionID))
		h.countMessage("error")
		h.writeError(w, http.StatusInternalServerError, "could not produce a reply")
		return
	}
	chainSpan.SetAttr("source", resp.Source)

	// Memory commands answer directly, skipping personalization the way
	// every other reply path does not.
	if resp.Command != "" {
		if err := h.sessions.Record(ctx, sessionID, message, resp.Reply, "memory"); err != nil {
			log.Warn("history append failed", "error", err)
		}
		h.emitEvent(ctx, start, message, sessionID, resp)
		h.countMessage("memory")
		h.finishSpan(root, resp, start)
		h.writeJSON(w, http.StatusOK, chat.ChatResponse{
			Reply:      resp.Reply,
			Suggested:  resp.Suggestions,
			MemoryHint: h.sessions.CommandHint(ctx, sessionID),
		})
		return
	}

	persCtx, persSpan := tracing.StartChildSpan(ctx, "personalize")
	reply := h.sessions.Personalize(persCtx, sessionID, resp.Reply)
	suggested := h.assembleSuggestions(persCtx, sessionID, resp.Suggestions)
	persSpan.End()

	topic := topicHint(message)
	if len(resp.Topics) > 0 {
		topic = resp.Topics[0]
	}
	if resp.Source == responder.SourceMemory {
		topic = "memory"
	}
	if err := h.sessions.Record(ctx, sessionID, message, reply, topic); err != nil {
		log.Warn("history append failed", "error", err)
	}

	h.emitEvent(ctx, start, message, sessionID, resp)
	h.countMessage(outcomeFor(resp))
	h.finishSpan(root, resp, start)

	h.writeJSON(w, http.StatusOK, chat.ChatResponse{
		Reply:      reply,
		Suggested:  suggested,
		Matched:    resp.Matched,
		MemoryHint: h.sessions.Hint(ctx, sessionID),
	})
}

// Suggest serves the static suggestion pool blended with trending
// questions.
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, chat.SuggestResponse{
		Suggested: h.trending.Blend(knowledge.Suggested),
	})
}

// assembleSuggestions layers personalization over the responder's list:
// stated interest first, then up to two memory-building prompts, capped,
// then trending questions.
func (h *Handler) assembleSuggestions(ctx context.Context, sessionID string, base []string) []string {
	suggested := h.sessions.PersonalizeSuggestions(ctx, sessionID, base)
	prompts := h.sessions.Prompts(ctx, sessionID, 2)
	for i := len(prompts) - 1; i >= 0; i-- {
		p := prompts[i]
		if p == "" || contains(suggested, p) {
			continue
		}
		suggested = append([]string{p}, suggested...)
	}
	if len(suggested) > maxSuggested {
		suggested = suggested[:maxSuggested]
	}
	return h.trending.Blend(suggested)
}

func (h *Handler) emitEvent(ctx context.Context, start time.Time, message, sessionID string, resp *responder.Response) {
	if h.collector == nil {
		return
	}
	event := analytics.ChatEvent{
		QueryHash:   analytics.HashText(message),
		QueryLen:    utf8.RuneCountInString(message),
		Responder:   resp.Source,
		CacheStatus: resp.CacheStatus,
		LatencyMs:   time.Since(start).Milliseconds(),
		SessionHash: analytics.HashText(sessionID),
		RequestID:   middleware.GetRequestID(ctx),
		Timestamp:   time.Now().UTC(),
	}
	switch {
	case resp.Source == responder.SourceMemory:
		event.Type = analytics.EventSessionMemory
	case resp.Source == responder.SourceMath:
		event.Type = analytics.EventChatSpecialty
	case resp.Matched:
		event.Type = analytics.EventChatMatched
		event.Normalized = text.Normalize(message)
		event.Score = resp.Score
		event.Pass = resp.Pass
		event.QuestionType = resp.QuestionType
		event.Topics = resp.Topics
	default:
		event.Type = analytics.EventChatFallback
		event.Normalized = text.Normalize(message)
		event.QuestionType = resp.QuestionType
		event.Topics = resp.Topics
	}
	h.collector.Track(event)
}

func (h *Handler) trackEmpty(ctx context.Context, start time.Time, sessionID string) {
	if h.collector == nil {
		return
	}
	h.collector.Track(analytics.ChatEvent{
		Type:        analytics.EventChatRequest,
		QueryHash:   analytics.HashText(""),
		SessionHash: analytics.HashText(sessionID),
		RequestID:   middleware.GetRequestID(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Timestamp:   time.Now().UTC(),
	})
}

func (h *Handler) finishSpan(root *tracing.Span, resp *responder.Response, start time.Time) {
	root.SetAttr("source", resp.Source)
	root.SetAttr("matched", resp.Matched)
	if resp.CacheStatus != "" {
		root.SetAttr("cache", resp.CacheStatus)
	}
	root.SetAttr("latency_ms", time.Since(start).Milliseconds())
	root.End()
	root.Log()
}

func (h *Handler) countMessage(outcome string) {
	if h.metrics != nil {
		h.metrics.ChatMessagesTotal.WithLabelValues(outcome).Inc()
	}
}

func outcomeFor(resp *responder.Response) string {
	switch {
	case resp.Source == responder.SourceMemory:
		return "memory"
	case resp.Source == responder.SourceMath:
		return "math"
	case resp.Matched:
		return "matched"
	default:
		return "fallback"
	}
}

var questionWordRe = regexp.MustCompile(`\b(?:what|who|where|when|why|how|is|are|the|a|an)\b`)

// topicHint squeezes a message into a short topic label for the history
// ring: question words removed, whitespace collapsed, length capped.
func topicHint(message string) string {
	m := strings.ToLower(strings.TrimSpace(message))
	if runes := []rune(m); len(runes) > 100 {
		m = string(runes[:100])
	}
	m = questionWordRe.ReplaceAllString(m, "")
	m = strings.Join(strings.Fields(m), " ")
	if runes := []rune(m); len(runes) > 80 {
		m = string(runes[:80])
	}
	return m
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

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
