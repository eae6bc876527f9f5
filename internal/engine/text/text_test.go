package text

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "HELLO World", "hello world"},
		{"contraction", "What's the time?", "what is the time"},
		{"bare contraction", "whats up", "what is up"},
		{"possessive its", "its cold", "it is cold"},
		{"cascaded cant", "can't stop", "can not stop"},
		{"cannot", "cannot stop", "can not stop"},
		{"werent", "weren't you there", "we are not you there"},
		{"typo", "teh goverment", "the government"},
		{"typo after contraction", "thats definately wierd", "that is definitely weird"},
		{"punctuation to spaces", "hello... world!!", "hello world"},
		{"brackets", "pi (3.14159) [approx]", "pi 3 14159 approx"},
		{"collapse whitespace", "  so   many\t\tspaces\n", "so many spaces"},
		{"quoted word", "'cant' even", "can not even"},
		{"empty", "", ""},
		{"only punctuation", "?!.,;:", ""},
		{"unicode passthrough", "café?", "café"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"What's the time?",
		"weren't you there",
		"can't won't shouldn't",
		"teh goverment was wierd",
		"I'm fine, thanks!",
		"whats up doc",
		"the quick brown fox",
		"how many moons does jupiter have?",
		"",
		"?!?!",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestTablesAreFixedPoints(t *testing.T) {
	// Idempotence depends on every table value surviving a second pass
	// unchanged.
	for _, table := range []map[string]string{contractions, typos} {
		for k, v := range table {
			if got := mapWords(mapWords(v, contractions), typos); got != v {
				t.Errorf("value %q (for key %q) is not a fixed point: rewrites to %q", v, k, got)
			}
		}
	}
}

func BenchmarkNormalize(b *testing.B) {
	msg := "What's teh biggest planet? I've heard it's Jupiter, but I wasn't sure..."
	b.ReportAllocs()
	b.SetBytes(int64(len(msg)))
	for i := 0; i < b.N; i++ {
		_ = Normalize(msg)
	}
}
