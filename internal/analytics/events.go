package analytics

import (
	"crypto/sha256"
	"fmt"
	"time"
)

type EventType string

const (
	EventChatRequest   EventType = "chat_request"
	EventChatMatched   EventType = "chat_matched"
	EventChatFallback  EventType = "chat_fallback"
	EventChatSpecialty EventType = "chat_specialty"
	EventSessionMemory EventType = "session_memory"
)

// ChatEvent is the single analytics record emitted per chat message. Raw
// message text never leaves chatd: events carry the SHA-256 hash and length
// of the raw text, plus the normalized query (already lowercased and
// stripped) for matched and fallback outcomes so trending rankings have
// something displayable.
type ChatEvent struct {
	Type         EventType `json:"type"`
	QueryHash    string    `json:"query_hash"`
	QueryLen     int       `json:"query_len"`
	Normalized   string    `json:"normalized,omitempty"`
	Score        int       `json:"score,omitempty"`
	QuestionType string    `json:"question_type,omitempty"`
	Topics       []string  `json:"topics,omitempty"`
	Pass         int       `json:"pass,omitempty"`
	Responder    string    `json:"responder,omitempty"`
	CacheStatus  string    `json:"cache_status,omitempty"`
	LatencyMs    int64     `json:"latency_ms"`
	SessionHash  string    `json:"session_hash,omitempty"`
	RequestID    string    `json:"request_id,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// HashText returns the truncated SHA-256 of a query or session id, the form
// carried in events instead of the text itself.
func HashText(s string) string {
	sum := sha256.Sum256([]byte(s))
	return fmt.Sprintf("%x", sum[:16])
}
