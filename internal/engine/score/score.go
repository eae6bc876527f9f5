// Package score rates knowledge entries against an analyzed query. The
// score is additive: substring phrase hits, expanded word overlap with a
// coverage bonus, question-type and topic boosts, and a small bonus for
// near-miss word forms.
package score

import (
	"math"
	"strings"

	"github.com/1Percent-hub/ScholarHub/internal/engine/classify"
	"github.com/1Percent-hub/ScholarHub/internal/engine/expand"
	"github.com/1Percent-hub/ScholarHub/internal/engine/text"
	"github.com/1Percent-hub/ScholarHub/internal/engine/token"
	"github.com/1Percent-hub/ScholarHub/internal/knowledge"
)

const (
	phraseBase      = 10
	wordBase        = 2
	coverageScale   = 10
	coverageMin     = 0.5
	typeBoost       = 15
	topicBoost      = 8
	topicBoostCap   = 16
	relatedPerToken = 2
)

// Query is the per-request view of a user message: raw and normalized
// text plus the token sets every signal reads. Build one with Analyze and
// reuse it across entries.
type Query struct {
	Raw        string
	Normalized string
	Tokens     token.Set // every word of the normalized text
	Expanded   token.Set // synonym and word-form expansion, query stopwords dropped
	Related    token.Set // looser word forms feeding the near-miss bonus
	Type       classify.Type
	Topics     classify.TopicSet
}

// Analyze runs the full query pipeline over raw input. Expansion covers all
// words of the normalized text; query stopwords are dropped afterwards so a
// synonym group can never smuggle one back in.
func Analyze(raw string) Query {
	normalized := text.Normalize(raw)
	all := token.TokenSet(normalized)
	expanded := token.DropStopwords(expand.Expand(all))
	return Query{
		Raw:        raw,
		Normalized: normalized,
		Tokens:     all,
		Expanded:   expanded,
		Related:    expand.Related(normalized),
		Type:       classify.Question(normalized),
		Topics:     classify.Topics(expanded),
	}
}

// Score rates one entry against the query. Zero means no match at all;
// anything positive is a candidate.
func Score(q Query, e *knowledge.Entry) int {
	s := phraseScore(q.Normalized, e.Keywords)
	s += wordScore(q.Expanded, e)
	s += boostScore(q, e)
	return s
}

// phraseScore rewards keyword phrases appearing verbatim inside the
// normalized query, longer phrases counting for more.
func phraseScore(normalized string, keywords []string) int {
	if normalized == "" {
		return 0
	}
	s := 0
	for _, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			continue
		}
		if strings.Contains(normalized, kw) {
			s += phraseBase + len(kw)
		}
	}
	return s
}

// wordScore sums per-token overlap between the expanded query and the
// entry, then adds a coverage bonus when at least half of the entry's
// meaning-bearing words were hit.
func wordScore(expanded token.Set, e *knowledge.Entry) int {
	if len(expanded) == 0 {
		return 0
	}
	s := 0
	covered := 0
	for w := range expanded {
		if !e.Tokens.Has(w) {
			continue
		}
		s += wordBase + len(w)
		if e.Meaningful.Has(w) {
			covered++
		}
	}
	if len(e.Meaningful) > 0 {
		coverage := float64(covered) / float64(len(e.Meaningful))
		if coverage >= coverageMin {
			s += int(math.Round(coverageScale * coverage))
		}
	}
	return s
}

// boostScore layers the smarter signals on top of raw overlap: preferring
// entries that answer the detected question type, share a topic domain, or
// contain a word form the user almost typed.
func boostScore(q Query, e *knowledge.Entry) int {
	b := 0
	if q.Type != classify.None && e.Affinity.Has(q.Type) {
		b += typeBoost
	}
	if n := q.Topics.Shared(e.Topics); n > 0 {
		shared := n * topicBoost
		if shared > topicBoostCap {
			shared = topicBoostCap
		}
		b += shared
	}
	for w := range q.Related {
		if e.Tokens.Has(w) && !q.Tokens.Has(w) {
			b += relatedPerToken
		}
	}
	return b
}
