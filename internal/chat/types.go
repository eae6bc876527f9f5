// Package chat defines the request and response types of the chat service.
// Subpackages implement the pipeline: validator, cache, responder chain,
// trending suggestions, and the HTTP handler.
package chat

// DefaultSessionID is used when a request names no session.
const DefaultSessionID = "default"

// ChatRequest is the JSON body accepted by the chat endpoint. The session
// id may also arrive via the X-Session-ID header.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// ChatResponse is returned for every chat message.
type ChatResponse struct {
	Reply      string   `json:"reply"`
	Suggested  []string `json:"suggested"`
	Matched    bool     `json:"matched"`
	MemoryHint string   `json:"memory_hint,omitempty"`
}

// SuggestResponse is the body of the suggestion endpoint.
type SuggestResponse struct {
	Suggested []string `json:"suggested"`
}
