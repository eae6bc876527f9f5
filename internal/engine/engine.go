// Package engine ties the matching pipeline together: normalize, expand,
// classify, score, and rank a query against the knowledge base, then select
// a reply. An Engine is immutable after New and safe for concurrent use.
package engine

import (
	"math/rand"

	"github.com/1Percent-hub/ScholarHub/internal/engine/classify"
	"github.com/1Percent-hub/ScholarHub/internal/engine/rank"
	"github.com/1Percent-hub/ScholarHub/internal/engine/score"
	"github.com/1Percent-hub/ScholarHub/internal/knowledge"
)

// Corrector fixes spelling before normalization. The engine works without
// one; a missing corrector only costs recall on badly typed queries.
type Corrector interface {
	Correct(string) string
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithCorrector installs a spell-correction collaborator.
func WithCorrector(c Corrector) Option {
	return func(e *Engine) { e.corrector = c }
}

// WithRand pins reply selection and suggestion sampling to a private
// source. Tests use this for determinism; a *rand.Rand is not safe for
// concurrent use, so production engines keep the default shared source.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rnd = r }
}

// Engine matches free-text queries against an immutable knowledge base.
type Engine struct {
	entries   []*knowledge.Entry
	corrector Corrector
	rnd       *rand.Rand
}

// New builds an Engine over the given entries. The slice is retained as is
// and must not be mutated afterwards.
func New(entries []*knowledge.Entry, opts ...Option) *Engine {
	e := &Engine{entries: entries}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Match is a winning knowledge entry with the score that won and the pass
// that found it.
type Match struct {
	Entry *knowledge.Entry
	Score int
	Pass  int
}

// Match runs the pipeline and reports the best entry, or ok=false when
// nothing scores. Deterministic for a fixed knowledge base.
func (e *Engine) Match(query string) (Match, bool) {
	q := e.analyze(query)
	best, ok := rank.Best(q, e.entries)
	if !ok {
		return Match{}, false
	}
	return Match{Entry: best.Entry, Score: best.Score, Pass: best.Pass}, true
}

// Result is a full reply: the text to show, follow-up suggestions, and the
// signals the pipeline extracted along the way.
type Result struct {
	Reply        string
	Suggestions  []string
	Matched      bool
	Score        int
	QuestionType classify.Type
	Topics       classify.TopicSet
}

// Reply answers a query. On a match it picks one reply variant at random
// and scrubs sign-off boilerplate; otherwise it builds the fallback with
// topic-guided example questions. Reply text is the only non-deterministic
// part; the winning entry never varies.
func (e *Engine) Reply(query string) Result {
	q := e.analyze(query)
	if q.Normalized == "" {
		return Result{Reply: emptyPrompt}
	}
	best, ok := rank.Best(q, e.entries)
	if !ok {
		return e.compose(q, Match{}, false)
	}
	return e.compose(q, Match{Entry: best.Entry, Score: best.Score, Pass: best.Pass}, true)
}

// Compose builds a Result for a query whose match outcome is already known,
// skipping the ranking pass. The cache layer uses this to turn a remembered
// match into a fresh reply; variant selection still runs, so repeated
// queries do not pin one phrasing.
func (e *Engine) Compose(query string, m Match, ok bool) Result {
	q := e.analyze(query)
	if q.Normalized == "" {
		return Result{Reply: emptyPrompt}
	}
	return e.compose(q, m, ok)
}

func (e *Engine) compose(q score.Query, m Match, ok bool) Result {
	if !ok {
		return Result{
			Reply:        fallbackMessage + topicHint(q),
			Suggestions:  e.sample(knowledge.Suggested, fallbackSuggestions),
			QuestionType: q.Type,
			Topics:       q.Topics,
		}
	}
	reply := m.Entry.Replies[e.intn(len(m.Entry.Replies))]
	return Result{
		Reply:        ScrubSignoff(reply),
		Suggestions:  e.sample(knowledge.Suggested, matchSuggestions),
		Matched:      true,
		Score:        m.Score,
		QuestionType: q.Type,
		Topics:       q.Topics,
	}
}

func (e *Engine) analyze(query string) score.Query {
	if e.corrector != nil {
		query = e.corrector.Correct(query)
	}
	return score.Analyze(query)
}

func (e *Engine) intn(n int) int {
	if n <= 1 {
		return 0
	}
	if e.rnd != nil {
		return e.rnd.Intn(n)
	}
	return rand.Intn(n)
}

// sample picks n distinct strings from pool in random order.
func (e *Engine) sample(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	var idx []int
	if e.rnd != nil {
		idx = e.rnd.Perm(len(pool))
	} else {
		idx = rand.Perm(len(pool))
	}
	out := make([]string, 0, n)
	for _, i := range idx[:n] {
		out = append(out, pool[i])
	}
	return out
}
