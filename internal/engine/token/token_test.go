package token

import (
	"sort"
	"testing"
)

func sorted(s Set) []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"drops stopwords", "the capital of france", []string{"capital", "france"}},
		{"keeps question words", "what is a black hole", []string{"black", "hole", "what"}},
		{"splits on non-alphanumeric", "well-known black+hole", []string{"black", "hole", "known", "well"}},
		{"digits survive", "apollo 11 landed", []string{"11", "apollo", "landed"}},
		{"empty", "", nil},
		{"all stopwords", "the of and", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sorted(Tokenize(tt.input))
			if len(tt.want) == 0 && len(got) == 0 {
				return
			}
			if !equal(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenSetKeepsStopwords(t *testing.T) {
	got := TokenSet("the capital of france")
	for _, w := range []string{"the", "capital", "of", "france"} {
		if !got.Has(w) {
			t.Errorf("TokenSet missing %q", w)
		}
	}
}

func TestMeaningful(t *testing.T) {
	entry := NewSet("what", "is", "a", "black", "hole")
	got := sorted(Meaningful(entry))
	// "what" is not on the entry-side stopword list, so it stays meaningful.
	want := []string{"black", "hole", "what"}
	if !equal(got, want) {
		t.Errorf("Meaningful = %v, want %v", got, want)
	}
}

func TestPhraseTokens(t *testing.T) {
	got := PhraseTokens([]string{"black hole", "whats up"})
	// "whats" normalizes to "what is" before tokenizing.
	for _, w := range []string{"black", "hole", "what", "is", "up"} {
		if !got.Has(w) {
			t.Errorf("PhraseTokens missing %q, got %v", w, sorted(got))
		}
	}
	if got.Has("whats") {
		t.Errorf("PhraseTokens kept unnormalized token %q", "whats")
	}
}

func TestIntersection(t *testing.T) {
	a := NewSet("black", "hole", "space")
	b := NewSet("hole", "space", "star")
	if n := Intersection(a, b); n != 2 {
		t.Errorf("Intersection = %d, want 2", n)
	}
	if n := Intersection(b, a); n != 2 {
		t.Errorf("Intersection reversed = %d, want 2", n)
	}
	if n := Intersection(a, NewSet()); n != 0 {
		t.Errorf("Intersection with empty = %d, want 0", n)
	}
}

func TestDropStopwords(t *testing.T) {
	s := NewSet("reason", "why", "because", "the")
	got := DropStopwords(s)
	if got.Has("the") {
		t.Error("DropStopwords kept \"the\"")
	}
	for _, w := range []string{"reason", "why", "because"} {
		if !got.Has(w) {
			t.Errorf("DropStopwords dropped %q", w)
		}
	}
}
