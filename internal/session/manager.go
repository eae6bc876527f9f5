package session

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/1Percent-hub/ScholarHub/pkg/errors"
)

// Manager runs memory behavior on top of a Store: absorbing facts from
// messages, answering memory commands, personalizing replies, and keeping
// the recent-exchange history. Safe for concurrent use when the store is.
type Manager struct {
	store  Store
	rnd    *rand.Rand
	logger *slog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithRand pins variant selection to a private source for deterministic
// tests. A *rand.Rand is not safe for concurrent use.
func WithRand(r *rand.Rand) ManagerOption {
	return func(m *Manager) { m.rnd = r }
}

// NewManager wraps a Store.
func NewManager(store Store, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:  store,
		logger: slog.Default().With("component", "session-manager"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Absorb extracts facts from a message and stores them, returning what was
// saved. A message with nothing to extract touches no storage.
func (m *Manager) Absorb(ctx context.Context, id, message string) ([]Fact, error) {
	facts := ExtractFacts(message)
	if len(facts) == 0 {
		return nil, nil
	}
	err := m.update(ctx, id, func(s *Session) {
		for _, f := range facts {
			s.SetFact(f.Key, f.Value)
		}
	})
	if err != nil {
		return nil, err
	}
	return facts, nil
}

// HandleCommand applies a memory command's side effects and returns its
// reply text.
func (m *Manager) HandleCommand(ctx context.Context, id string, cmd Command) (string, error) {
	var reply string
	err := m.update(ctx, id, func(s *Session) {
		reply = m.runCommand(cmd, s)
	})
	if err != nil {
		return "", err
	}
	if reply == "" {
		return "", fmt.Errorf("unknown memory command %q", cmd)
	}
	return reply, nil
}

func (m *Manager) runCommand(cmd Command, s *Session) string {
	switch cmd {
	case CmdRecall:
		if summary := FactsSummary(s); summary != "" {
			return fmt.Sprintf(m.pick(recallFull), summary)
		}
		return m.pick(recallEmpty)
	case CmdForgetName:
		s.DeleteFact("name")
		return m.pick(forgetNameReplies)
	case CmdClearAll:
		s.ClearFacts()
		return m.pick(clearAllReplies)
	case CmdForgetLikes:
		s.DeleteFact("likes")
		s.DeleteFact("favorite")
		return m.pick(forgetLikesReplies)
	case CmdRememberMe:
		if summary := FactsSummary(s); summary != "" {
			return fmt.Sprintf(m.pick(rememberMeYes), summary)
		}
		return m.pick(rememberMeNo)
	case CmdWhoAmI:
		name := s.Fact("name")
		if name != "" {
			if rest := summaryExcluding(s, "name"); rest != "" {
				return fmt.Sprintf(m.pick(whoAmIWithRest), name, rest)
			}
			return fmt.Sprintf("You're %s! Tell me more about yourself and I'll remember.", name)
		}
		if summary := FactsSummary(s); summary != "" {
			return fmt.Sprintf(m.pick(whoAmINoName), summary)
		}
		return m.pick(recallEmpty)
	}
	return ""
}

// Personalize inserts the session's stored name into a greeting-style
// reply and leads fallback replies with the last topic the user asked
// about. Storage trouble degrades to the unpersonalized reply.
func (m *Manager) Personalize(ctx context.Context, id, reply string) string {
	name, topic := "", ""
	if err := m.view(ctx, id, func(s *Session) {
		name = s.Fact("name")
		topic = s.LastTopic()
	}); err != nil {
		m.logger.Warn("personalize skipped", "session", id, "error", err)
		return reply
	}
	return InjectTopic(Personalize(reply, name), topic)
}

// PersonalizeSuggestions leads the suggestion list with the user's stated
// interest when one is stored.
func (m *Manager) PersonalizeSuggestions(ctx context.Context, id string, base []string) []string {
	interested := ""
	if err := m.view(ctx, id, func(s *Session) { interested = s.Fact("interested_in") }); err != nil {
		m.logger.Warn("personalize suggestions skipped", "session", id, "error", err)
		return base
	}
	return PersonalizeSuggestions(base, interested)
}

// Prompts returns up to max memory-building questions for the session.
func (m *Manager) Prompts(ctx context.Context, id string, max int) []string {
	var out []string
	if err := m.view(ctx, id, func(s *Session) { out = Prompts(s, max) }); err != nil {
		m.logger.Warn("prompts skipped", "session", id, "error", err)
		return nil
	}
	return out
}

// Hint returns the session's memory hint, or "".
func (m *Manager) Hint(ctx context.Context, id string) string {
	hint := ""
	if err := m.view(ctx, id, func(s *Session) { hint = Hint(s) }); err != nil {
		m.logger.Warn("hint skipped", "session", id, "error", err)
		return ""
	}
	return hint
}

// CommandHint returns the post-command memory hint, or "".
func (m *Manager) CommandHint(ctx context.Context, id string) string {
	hint := ""
	if err := m.view(ctx, id, func(s *Session) { hint = CommandHint(s) }); err != nil {
		m.logger.Warn("hint skipped", "session", id, "error", err)
		return ""
	}
	return hint
}

// Record appends one exchange to the session history.
func (m *Manager) Record(ctx context.Context, id, user, bot, topic string) error {
	return m.update(ctx, id, func(s *Session) {
		s.AddExchange(user, bot, topic)
	})
}

// Session returns a copy of the stored session, or a fresh one for unknown
// ids.
func (m *Manager) Session(ctx context.Context, id string) (*Session, error) {
	s, err := m.store.Get(ctx, id)
	if stderrors.Is(err, errors.ErrSessionNotFound) {
		return NewSession(), nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// update loads (or creates) the session, applies fn, and writes it back.
func (m *Manager) update(ctx context.Context, id string, fn func(*Session)) error {
	s, err := m.Session(ctx, id)
	if err != nil {
		return err
	}
	fn(s)
	return m.store.Put(ctx, id, s)
}

// view loads the session read-only; unknown ids see a fresh session.
func (m *Manager) view(ctx context.Context, id string, fn func(*Session)) error {
	s, err := m.Session(ctx, id)
	if err != nil {
		return err
	}
	fn(s)
	return nil
}

func (m *Manager) pick(variants []string) string {
	if len(variants) == 0 {
		return ""
	}
	if m.rnd != nil {
		return variants[m.rnd.Intn(len(variants))]
	}
	return variants[rand.Intn(len(variants))]
}
