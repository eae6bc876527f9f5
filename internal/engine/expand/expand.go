// Package expand grows a query token set with synonym alternatives and light
// suffix morphology so "largest" matches "biggest" entries and "running"
// matches "run". It also derives the separate related-term set used by the
// scorer's related bonus.
package expand

import (
	"strings"

	"github.com/1Percent-hub/ScholarHub/internal/engine/token"
)

var synonymSets = buildSynonymSets()

func buildSynonymSets() []token.Set {
	sets := make([]token.Set, len(synonymGroups))
	for i, g := range synonymGroups {
		sets[i] = token.NewSet(g...)
	}
	return sets
}

// Expand returns a strict superset of tokens: the union of every synonym
// group any current token belongs to, then one pass of word forms over the
// expanded set. Not recursive; forms of forms are never added.
func Expand(tokens token.Set) token.Set {
	out := tokens.Clone()
	for _, group := range synonymSets {
		if intersects(out, group) {
			for w := range group {
				out[w] = struct{}{}
			}
		}
	}

	snapshot := make([]string, 0, len(out))
	for w := range out {
		snapshot = append(snapshot, w)
	}
	for _, w := range snapshot {
		addWordForms(out, w)
	}
	return out
}

// addWordForms adds plural/singular, -ing, -ed, -er, and -ly variants of
// word to the set.
func addWordForms(out token.Set, word string) {
	if len(word) < 2 {
		return
	}
	if strings.HasSuffix(word, "s") {
		if len(word) > 3 && !strings.HasSuffix(word, "ss") {
			out[word[:len(word)-1]] = struct{}{}
		}
	} else {
		out[word+"s"] = struct{}{}
	}
	if strings.HasSuffix(word, "ing") && len(word) > 4 {
		base := word[:len(word)-3]
		out[base] = struct{}{}
		if len(base) > 1 && base[len(base)-1] == base[len(base)-2] {
			out[base[:len(base)-1]] = struct{}{}
		}
	}
	if strings.HasSuffix(word, "ed") && len(word) > 3 {
		out[word[:len(word)-2]] = struct{}{}
	}
	if strings.HasSuffix(word, "er") && len(word) > 3 {
		out[word[:len(word)-2]] = struct{}{}
	}
	if strings.HasSuffix(word, "ly") && len(word) > 3 {
		out[word[:len(word)-2]] = struct{}{}
	}
}

// Related expands ALL words of the normalized text, stopwords included, with
// a looser morphology than Expand: plain plural flips, -ing roots with an
// "e" restored ("making" adds "mak" and "make"), -ed roots with doubled
// consonants undone. The scorer uses it to credit near-miss overlap the main
// expansion did not produce.
func Related(normalized string) token.Set {
	words := token.Split(normalized)
	out := make(token.Set, len(words)*2)
	for _, w := range words {
		out[w] = struct{}{}
	}
	for _, w := range words {
		if len(w) <= 2 {
			continue
		}
		if strings.HasSuffix(w, "s") {
			if len(w) > 3 {
				out[w[:len(w)-1]] = struct{}{}
			}
		} else {
			out[w+"s"] = struct{}{}
		}
		if strings.HasSuffix(w, "ing") && len(w) > 4 {
			base := w[:len(w)-3]
			out[base] = struct{}{}
			out[base+"e"] = struct{}{}
		} else if strings.HasSuffix(w, "ed") && len(w) > 3 {
			base := w[:len(w)-2]
			out[base] = struct{}{}
			if len(base) > 1 && base[len(base)-1] == base[len(base)-2] {
				out[base[:len(base)-1]] = struct{}{}
			}
		}
	}
	return out
}

func intersects(a, b token.Set) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for w := range a {
		if _, ok := b[w]; ok {
			return true
		}
	}
	return false
}
