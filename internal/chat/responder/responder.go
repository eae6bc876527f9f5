// Package responder runs specialty answerers ahead of the knowledge
// engine: memory commands, math questions, then the engine itself as the
// terminal element. The chain is explicit and injected; each element sees
// the request in order and the first claim wins.
package responder

import "context"

// Responder sources, carried on responses for metrics and events.
const (
	SourceMemory = "memory"
	SourceMath   = "math"
	SourceEngine = "engine"
)

// Request is one inbound chat message bound to a session.
type Request struct {
	Message   string
	SessionID string
}

// Response is a claimed answer plus the match signals the handler folds
// into its analytics event.
type Response struct {
	Reply        string
	Suggestions  []string
	Source       string
	Matched      bool
	Score        int
	Pass         int
	QuestionType string
	Topics       []string
	CacheStatus  string
	Command      string
}

// Responder answers requests it recognizes; ok=false passes the request
// down the chain.
type Responder interface {
	Respond(ctx context.Context, req Request) (*Response, bool)
}

// Chain tries responders in order.
type Chain []Responder

// Respond runs the chain. With the engine responder last, a chain always
// claims non-empty requests.
func (c Chain) Respond(ctx context.Context, req Request) (*Response, bool) {
	for _, r := range c {
		if resp, ok := r.Respond(ctx, req); ok {
			return resp, true
		}
	}
	return nil, false
}
