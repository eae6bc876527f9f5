package responder

import (
	"context"
	"time"

	"github.com/1Percent-hub/ScholarHub/internal/chat/cache"
	"github.com/1Percent-hub/ScholarHub/internal/engine"
	"github.com/1Percent-hub/ScholarHub/pkg/metrics"
	"github.com/1Percent-hub/ScholarHub/pkg/tracing"
)

// Engine is the terminal chain element: the knowledge engine behind the
// match cache. It claims every request. The cache covers only the
// deterministic match step; reply composition runs fresh each time.
type Engine struct {
	engine  *engine.Engine
	cache   *cache.MatchCache
	metrics *metrics.Metrics
}

// NewEngine wraps the knowledge engine. A nil cache disables caching.
func NewEngine(eng *engine.Engine, mc *cache.MatchCache, met *metrics.Metrics) *Engine {
	return &Engine{engine: eng, cache: mc, metrics: met}
}

func (e *Engine) Respond(ctx context.Context, req Request) (*Response, bool) {
	start := time.Now()
	var (
		m      engine.Match
		ok     bool
		status = cache.StatusBypass
	)
	if e.cache != nil {
		m, ok, status = e.cache.GetOrCompute(ctx, req.Message, func() (engine.Match, bool) {
			return e.engine.Match(req.Message)
		})
	} else {
		m, ok = e.engine.Match(req.Message)
	}
	result := e.engine.Compose(req.Message, m, ok)

	// Match detail is only visible here; the enclosing chain span
	// carries it.
	if sp := tracing.SpanFromContext(ctx); sp != nil && result.Matched {
		sp.SetAttr("score", result.Score)
		sp.SetAttr("pass", m.Pass)
	}

	if e.metrics != nil {
		e.metrics.MatchLatency.WithLabelValues(status).Observe(time.Since(start).Seconds())
		if result.Matched {
			e.metrics.MatchScore.Observe(float64(result.Score))
		}
	}
	return &Response{
		Reply:        result.Reply,
		Suggestions:  result.Suggestions,
		Source:       SourceEngine,
		Matched:      result.Matched,
		Score:        result.Score,
		Pass:         m.Pass,
		QuestionType: result.QuestionType.String(),
		Topics:       result.Topics.Names(),
		CacheStatus:  status,
	}, true
}
