// Package token splits normalized text into word sets and applies the
// engine's two stopword lists: the query-side list dropped from user input
// and the smaller entry-side list subtracted when computing an entry's
// meaning-bearing words.
package token

import (
	"strings"

	"github.com/1Percent-hub/ScholarHub/internal/engine/text"
)

// queryStopwords are dropped from user queries before matching.
var queryStopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "is": {}, "are": {}, "was": {},
	"were": {}, "be": {}, "being": {}, "to": {}, "of": {}, "and": {},
	"or": {}, "but": {}, "in": {}, "on": {}, "at": {}, "for": {},
	"with": {}, "by": {}, "from": {}, "as": {}, "into": {},
	"through": {}, "during": {},
}

// entryStopwords are subtracted from entry tokens to leave the words that
// carry meaning for the coverage bonus.
var entryStopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "is": {}, "are": {}, "to": {},
	"of": {}, "and": {}, "or": {}, "for": {}, "with": {}, "in": {},
	"on": {}, "at": {},
}

// Set is an unordered collection of lowercase word tokens.
type Set map[string]struct{}

// NewSet returns a Set containing the given words.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Add inserts w into the set.
func (s Set) Add(w string) { s[w] = struct{}{} }

// Has reports whether w is in the set.
func (s Set) Has(w string) bool {
	_, ok := s[w]
	return ok
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for w := range s {
		out[w] = struct{}{}
	}
	return out
}

// Split breaks normalized text into its words: maximal runs of letters and
// digits, in order, stopwords included.
func Split(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
}

// TokenSet returns the set of all words in normalized text, stopwords
// included.
func TokenSet(s string) Set {
	words := Split(s)
	out := make(Set, len(words))
	for _, w := range words {
		out[w] = struct{}{}
	}
	return out
}

// Tokenize returns the set of words in normalized text with query stopwords
// removed. Empty input yields an empty set.
func Tokenize(s string) Set {
	words := Split(s)
	out := make(Set, len(words))
	for _, w := range words {
		if _, stop := queryStopwords[w]; stop {
			continue
		}
		out[w] = struct{}{}
	}
	return out
}

// DropStopwords returns s minus the query stopword list. Synonym expansion
// can reintroduce stopwords, so the ranker applies this again after
// expanding.
func DropStopwords(s Set) Set {
	out := make(Set, len(s))
	for w := range s {
		if _, stop := queryStopwords[w]; stop {
			continue
		}
		out[w] = struct{}{}
	}
	return out
}

// Meaningful returns the entry tokens minus the entry-side stopword list.
func Meaningful(s Set) Set {
	out := make(Set, len(s))
	for w := range s {
		if _, stop := entryStopwords[w]; stop {
			continue
		}
		out[w] = struct{}{}
	}
	return out
}

// PhraseTokens returns the union of tokens across keyword phrases, each
// phrase normalized first so entry tokens live in the same canonical form
// queries do. Stopwords are kept; callers subtract them as needed.
func PhraseTokens(phrases []string) Set {
	out := make(Set)
	for _, p := range phrases {
		for _, w := range Split(text.Normalize(p)) {
			out[w] = struct{}{}
		}
	}
	return out
}

// Intersection counts the tokens present in both sets.
func Intersection(a, b Set) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for w := range a {
		if _, ok := b[w]; ok {
			n++
		}
	}
	return n
}
