// Package knowledge holds the compiled-in answer base: keyword phrases
// mapped to canned reply variants, plus the suggested-question lists used
// when nothing matches. Entries are loaded once, derive their token sets up
// front, and are shared read-only between concurrent matches.
package knowledge

import (
	"sync"

	"github.com/1Percent-hub/ScholarHub/internal/engine/classify"
	"github.com/1Percent-hub/ScholarHub/internal/engine/token"
)

// Entry is one answerable topic. Keywords are lowercase phrases matched
// against the normalized query; Replies are the variants one of which is
// returned verbatim. The derived fields are filled by Load and must not be
// set by hand.
type Entry struct {
	Keywords []string
	Replies  []string

	Tokens     token.Set
	Meaningful token.Set
	Affinity   classify.TypeMask
	Topics     classify.TopicSet
}

func (e *Entry) derive() {
	e.Tokens = token.PhraseTokens(e.Keywords)
	e.Meaningful = token.Meaningful(e.Tokens)
	e.Affinity = classify.Affinity(e.Tokens)
	e.Topics = classify.Topics(e.Tokens)
}

// NewEntry builds a standalone entry with its derived sets computed. Load
// covers the built-in base; this is for custom sets and tests.
func NewEntry(keywords, replies []string) *Entry {
	e := &Entry{Keywords: keywords, Replies: replies}
	e.derive()
	return e
}

var (
	loadOnce sync.Once
	loaded   []*Entry
)

// Load returns the knowledge base with derived token sets computed. The
// slice and its entries are immutable after the first call; iteration order
// matches the source table, which is what breaks score ties.
func Load() []*Entry {
	loadOnce.Do(func() {
		loaded = make([]*Entry, 0, len(table))
		for i := range table {
			table[i].derive()
			loaded = append(loaded, &table[i])
		}
	})
	return loaded
}

// Len reports the number of entries without forcing callers to load.
func Len() int { return len(table) }
