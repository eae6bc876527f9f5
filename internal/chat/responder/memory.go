package responder

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/1Percent-hub/ScholarHub/internal/session"
	"github.com/1Percent-hub/ScholarHub/pkg/metrics"
)

// noteAckReplies confirm an explicit "remember ..." note. The command check
// runs first, so "remember me" never lands here.
var noteAckReplies = []string{
	"Got it, I'll remember that!",
	"Noted! I'll keep that in mind.",
	`Saved! Ask me "what do you remember?" anytime.`,
}

// Memory answers explicit memory commands and acknowledges stored notes.
// Every other message still gets its facts absorbed before the next
// responder runs, so memory keeps learning even when it does not claim.
type Memory struct {
	manager *session.Manager
	metrics *metrics.Metrics
	rnd     *rand.Rand
	logger  *slog.Logger
}

// MemoryOption configures a Memory responder.
type MemoryOption func(*Memory)

// WithMemoryRand pins ack-variant selection for deterministic tests.
func WithMemoryRand(r *rand.Rand) MemoryOption {
	return func(m *Memory) { m.rnd = r }
}

// NewMemory builds the memory responder over a session manager.
func NewMemory(manager *session.Manager, met *metrics.Metrics, opts ...MemoryOption) *Memory {
	m := &Memory{
		manager: manager,
		metrics: met,
		logger:  slog.Default().With("component", "memory-responder"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Respond handles memory commands and note acknowledgements. The command
// check must run before extraction: "remember me" is a command, and
// extracting from it would store junk.
func (m *Memory) Respond(ctx context.Context, req Request) (*Response, bool) {
	if cmd, ok := session.DetectCommand(req.Message); ok {
		reply, err := m.manager.HandleCommand(ctx, req.SessionID, cmd)
		if err != nil {
			// Fall through to a normal reply.
			m.logger.Warn("memory command failed", "session", req.SessionID, "command", cmd, "error", err)
			return nil, false
		}
		if m.metrics != nil {
			m.metrics.MemoryCommandsTotal.WithLabelValues(string(cmd)).Inc()
		}
		return &Response{
			Reply:       reply,
			Suggestions: append([]string(nil), session.CommandSuggestions...),
			Source:      SourceMemory,
			Command:     string(cmd),
		}, true
	}

	facts, err := m.manager.Absorb(ctx, req.SessionID, req.Message)
	if err != nil {
		m.logger.Warn("fact absorb failed", "session", req.SessionID, "error", err)
		return nil, false
	}
	if len(facts) == 0 {
		return nil, false
	}
	if m.metrics != nil {
		m.metrics.SessionFactsExtracted.Add(float64(len(facts)))
	}
	for _, f := range facts {
		if f.Key == "note" {
			return &Response{
				Reply:       m.pick(noteAckReplies),
				Suggestions: append([]string(nil), session.CommandSuggestions...),
				Source:      SourceMemory,
			}, true
		}
	}
	// Ordinary facts are stored silently; the rest of the chain answers.
	return nil, false
}

func (m *Memory) pick(variants []string) string {
	if m.rnd != nil {
		return variants[m.rnd.Intn(len(variants))]
	}
	return variants[rand.Intn(len(variants))]
}
