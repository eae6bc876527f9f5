// Package session stores per-user conversation memory: personal facts
// extracted from messages, recent exchanges, and topic history. A Store
// backend persists sessions; the Manager layers fact extraction, memory
// commands, and reply personalization on top.
package session

import (
	"strings"
	"time"
)

// Caps on stored data per session. Oldest entries are evicted first.
const (
	MaxFacts        = 100
	MaxRecent       = 50
	MaxTopics       = 20
	MaxFactKeyLen   = 100
	MaxFactValueLen = 500

	maxUserLen  = 500
	maxBotLen   = 1000
	maxTopicLen = 100
	topicGlance = 80
)

// Exchange is one user/bot turn kept in the recent-history ring.
type Exchange struct {
	User  string    `json:"user"`
	Bot   string    `json:"bot"`
	Topic string    `json:"topic,omitempty"`
	At    time.Time `json:"at"`
}

// Session is the memory for one session id. Facts are keyed values such as
// name or likes; FactKeys preserves insertion order so eviction and display
// are deterministic.
type Session struct {
	Facts    map[string]string `json:"facts"`
	FactKeys []string          `json:"fact_keys"`
	Recent   []Exchange        `json:"recent"`
	Topics   []string          `json:"topics"`
	Created  time.Time         `json:"created"`
	Updated  time.Time         `json:"updated"`
}

// NewSession returns an empty session stamped with the current time.
func NewSession() *Session {
	now := time.Now().UTC()
	return &Session{
		Facts:   make(map[string]string),
		Created: now,
		Updated: now,
	}
}

// Fact returns the stored value for key, or "" when absent.
func (s *Session) Fact(key string) string {
	return s.Facts[key]
}

// HasFacts reports whether the session has any stored facts.
func (s *Session) HasFacts() bool { return len(s.FactKeys) > 0 }

// SetFact stores one fact. An existing key keeps its position; a new key
// appends, evicting the oldest fact beyond MaxFacts. Empty keys and values
// are ignored.
func (s *Session) SetFact(key, value string) {
	key = clip(key, MaxFactKeyLen)
	value = clip(value, MaxFactValueLen)
	if key == "" || value == "" {
		return
	}
	if s.Facts == nil {
		s.Facts = make(map[string]string)
	}
	if _, exists := s.Facts[key]; !exists {
		s.FactKeys = append(s.FactKeys, key)
		for len(s.FactKeys) > MaxFacts {
			delete(s.Facts, s.FactKeys[0])
			s.FactKeys = s.FactKeys[1:]
		}
	}
	s.Facts[key] = value
	s.touch()
}

// DeleteFact removes one fact and reports whether it existed.
func (s *Session) DeleteFact(key string) bool {
	if _, ok := s.Facts[key]; !ok {
		return false
	}
	delete(s.Facts, key)
	for i, k := range s.FactKeys {
		if k == key {
			s.FactKeys = append(s.FactKeys[:i], s.FactKeys[i+1:]...)
			break
		}
	}
	s.touch()
	return true
}

// ClearFacts removes every stored fact.
func (s *Session) ClearFacts() {
	s.Facts = make(map[string]string)
	s.FactKeys = nil
	s.touch()
}

// AddExchange appends one turn to the recent ring and, when a topic hint is
// given, to the topic history. Oldest entries fall off past the caps.
func (s *Session) AddExchange(user, bot, topic string) {
	s.Recent = append(s.Recent, Exchange{
		User:  clip(user, maxUserLen),
		Bot:   clip(bot, maxBotLen),
		Topic: clip(topic, maxTopicLen),
		At:    time.Now().UTC(),
	})
	for len(s.Recent) > MaxRecent {
		s.Recent = s.Recent[1:]
	}
	if topic != "" {
		s.Topics = append(s.Topics, clip(topic, topicGlance))
		for len(s.Topics) > MaxTopics {
			s.Topics = s.Topics[1:]
		}
	}
	s.touch()
}

// LastTopic returns the most recent topic hint, or "".
func (s *Session) LastTopic() string {
	if len(s.Topics) == 0 {
		return ""
	}
	return s.Topics[len(s.Topics)-1]
}

// LastExchanges returns up to n of the most recent turns, oldest first.
func (s *Session) LastExchanges(n int) []Exchange {
	if n <= 0 || len(s.Recent) == 0 {
		return nil
	}
	if n > len(s.Recent) {
		n = len(s.Recent)
	}
	out := make([]Exchange, n)
	copy(out, s.Recent[len(s.Recent)-n:])
	return out
}

// Clone returns a deep copy so stores can hand out sessions without
// aliasing their internal state.
func (s *Session) Clone() *Session {
	c := &Session{
		Facts:   make(map[string]string, len(s.Facts)),
		Created: s.Created,
		Updated: s.Updated,
	}
	for k, v := range s.Facts {
		c.Facts[k] = v
	}
	c.FactKeys = append([]string(nil), s.FactKeys...)
	c.Recent = append([]Exchange(nil), s.Recent...)
	c.Topics = append([]string(nil), s.Topics...)
	return c
}

func (s *Session) touch() { s.Updated = time.Now().UTC() }

// clip trims surrounding space and truncates to n runes.
func clip(s string, n int) string {
	s = strings.TrimSpace(s)
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
