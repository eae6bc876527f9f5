// Package classify detects the kind of question a user asked (who, what,
// where, when, why, how) and the subject domains a token set touches. Both
// signals feed the scorer so entries that fit the shape of the question beat
// entries that merely share words with it.
package classify

import (
	"strings"

	"github.com/1Percent-hub/ScholarHub/internal/engine/token"
)

// Type is a question type.
type Type int

const (
	None Type = iota
	Who
	What
	Where
	When
	Why
	How
)

var typeNames = [...]string{"none", "who", "what", "where", "when", "why", "how"}

func (t Type) String() string {
	if t < None || t > How {
		return "none"
	}
	return typeNames[t]
}

// typeOrder is the evaluation order. It is part of the contract: when two
// types score equally the earlier one wins.
var typeOrder = [...]Type{Who, What, Where, When, Why, How}

// typeWords hint at the answer shape the user expects.
var typeWords = map[Type]token.Set{
	Who:   token.NewSet("who", "whom", "whose", "person", "people", "invented", "discovered", "created", "wrote", "painted", "made"),
	What:  token.NewSet("what", "which", "something", "thing", "definition", "mean", "means", "meaning"),
	Where: token.NewSet("where", "place", "location", "country", "city", "capital", "located", "find", "find it"),
	When:  token.NewSet("when", "time", "date", "year", "day", "how long", "duration", "ago", "started", "ended", "happened"),
	Why:   token.NewSet("why", "reason", "cause", "because", "explain", "purpose"),
	How:   token.NewSet("how", "way", "method", "work", "works", "does", "do", "can", "possible", "happen", "happens"),
}

// preferredKeywords are the entry-side words that mark an entry as a fitting
// answer for each question type.
var preferredKeywords = map[Type]token.Set{
	Who:   token.NewSet("who", "invented", "discovered", "created", "wrote", "person", "people", "name", "founder"),
	What:  token.NewSet("what", "definition", "mean", "is a", "are", "type", "kind", "thing"),
	Where: token.NewSet("where", "place", "capital", "located", "country", "city", "find", "address"),
	When:  token.NewSet("when", "year", "date", "time", "ago", "started", "ended", "history"),
	Why:   token.NewSet("why", "because", "reason", "cause", "explain", "purpose"),
	How:   token.NewSet("how", "work", "works", "do", "does", "step", "process", "way", "method"),
}

// Question classifies normalized text into a question type. A type is a
// candidate when its word set intersects the text's tokens or its name
// appears in the first 20 characters; candidates score the intersection size
// plus 2 when the name shows up within the first 25 characters. The highest
// score wins, earlier types break ties, and no candidates means None.
func Question(normalized string) Type {
	if normalized == "" {
		return None
	}
	tokens := token.TokenSet(normalized)
	head20 := head(normalized, 20)
	head25 := head(normalized, 25)

	best := None
	bestScore := 0
	for _, qt := range typeOrder {
		name := qt.String()
		overlap := token.Intersection(tokens, typeWords[qt])
		if overlap == 0 && !strings.Contains(head20, name) {
			continue
		}
		score := overlap
		if strings.Contains(head25, name) {
			score += 2
		}
		if score > bestScore {
			best = qt
			bestScore = score
		}
	}
	return best
}

// TypeMask records which question types an entry's tokens have affinity
// with, one bit per type.
type TypeMask uint8

// Has reports whether the mask includes t.
func (m TypeMask) Has(t Type) bool {
	if t == None {
		return false
	}
	return m&(1<<uint(t)) != 0
}

// Affinity returns the mask of question types whose preferred keywords
// intersect the given entry tokens. Computed once per entry at load time.
func Affinity(entryTokens token.Set) TypeMask {
	var m TypeMask
	for _, qt := range typeOrder {
		if token.Intersection(entryTokens, preferredKeywords[qt]) > 0 {
			m |= 1 << uint(qt)
		}
	}
	return m
}

// head returns the first n runes of s.
func head(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
