// Package tracing times the phases of a request as a tree of spans
// carried through context. The chat service opens a root span per
// message and child spans around the responder chain and
// personalization; the tree is emitted through slog at debug level, so
// the development config shows per-phase timings and production stays
// quiet.
package tracing

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type ctxKey struct{}

// Span is one timed phase. Fields are exported for the log walk; mutate
// attributes through SetAttr only.
type Span struct {
	Name      string
	TraceID   string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Children  []*Span
	Attrs     map[string]any
	mu        sync.Mutex
}

// StartSpan opens a root span and stores it in the returned context.
// The trace id ties the span tree to the request id in access logs.
func StartSpan(ctx context.Context, name, traceID string) (context.Context, *Span) {
	s := &Span{
		Name:      name,
		TraceID:   traceID,
		StartTime: time.Now(),
		Attrs:     make(map[string]any),
	}
	return context.WithValue(ctx, ctxKey{}, s), s
}

// StartChildSpan opens a span under the one in ctx. Without a parent it
// behaves like a root span with no trace id.
func StartChildSpan(ctx context.Context, name string) (context.Context, *Span) {
	child := &Span{
		Name:      name,
		StartTime: time.Now(),
		Attrs:     make(map[string]any),
	}
	if parent := SpanFromContext(ctx); parent != nil {
		child.TraceID = parent.TraceID
		parent.mu.Lock()
		parent.Children = append(parent.Children, child)
		parent.mu.Unlock()
	}
	return context.WithValue(ctx, ctxKey{}, child), child
}

// End stamps the span's duration. Ending twice extends the duration to
// the later call.
func (s *Span) End() {
	s.EndTime = time.Now()
	s.Duration = s.EndTime.Sub(s.StartTime)
}

// SetAttr attaches an attribute emitted with the span's log record.
func (s *Span) SetAttr(key string, value any) {
	s.mu.Lock()
	s.Attrs[key] = value
	s.mu.Unlock()
}

// SpanFromContext returns the span stored in ctx, or nil.
func SpanFromContext(ctx context.Context) *Span {
	if s, ok := ctx.Value(ctxKey{}).(*Span); ok {
		return s
	}
	return nil
}

// Log emits the span and its subtree, one debug record per span.
func (s *Span) Log() {
	s.emit(0)
}

func (s *Span) emit(depth int) {
	attrs := []any{
		"trace_id", s.TraceID,
		"span", s.Name,
		"duration_ms", s.Duration.Milliseconds(),
		"depth", depth,
	}
	s.mu.Lock()
	for k, v := range s.Attrs {
		attrs = append(attrs, k, v)
	}
	s.mu.Unlock()
	slog.Debug("span", attrs...)

	for _, child := range s.Children {
		child.emit(depth + 1)
	}
}
