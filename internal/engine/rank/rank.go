// Package rank runs the scorer over the knowledge base and picks a winner.
// A first pass scores the query as typed; when nothing scores, a second
// pass retries with the leading question prefix stripped so "what is the
// capital of france" can still land on a capital entry.
package rank

import (
	"github.com/1Percent-hub/ScholarHub/internal/engine/score"
	"github.com/1Percent-hub/ScholarHub/internal/knowledge"
)

// minStrippedLen guards the second pass against stubs like "it" left over
// after stripping.
const minStrippedLen = 3

// Result is the winning entry with its score and the pass that found it
// (1 for the original query, 2 for the prefix-stripped rescore).
type Result struct {
	Entry *knowledge.Entry
	Score int
	Pass  int
}

// Best returns the highest-scoring entry for the query, or ok=false when
// every entry scores zero in both passes. Ties go to the earlier entry:
// only a strictly greater score displaces the current best.
func Best(q score.Query, entries []*knowledge.Entry) (Result, bool) {
	if q.Normalized == "" || len(entries) == 0 {
		return Result{}, false
	}
	best := scan(q, entries, 1)
	if best.Score > 0 {
		return best, true
	}
	stripped := StripPrefix(q.Normalized)
	if stripped == q.Normalized || len(stripped) < minStrippedLen {
		return Result{}, false
	}
	best = scan(score.Analyze(stripped), entries, 2)
	if best.Score > 0 {
		return best, true
	}
	return Result{}, false
}

func scan(q score.Query, entries []*knowledge.Entry, pass int) Result {
	best := Result{Pass: pass}
	for _, e := range entries {
		if len(e.Replies) == 0 {
			continue
		}
		if s := score.Score(q, e); s > best.Score {
			best.Entry = e
			best.Score = s
		}
	}
	return best
}
