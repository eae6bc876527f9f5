package engine

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/1Percent-hub/ScholarHub/internal/knowledge"
)

// canned is a test corrector with a fixed query mapping.
type canned map[string]string

func (c canned) Correct(s string) string {
	if v, ok := c[s]; ok {
		return v
	}
	return s
}

func findEntry(t *testing.T, keyword string) *knowledge.Entry {
	t.Helper()
	for _, e := range knowledge.Load() {
		for _, kw := range e.Keywords {
			if kw == keyword {
				return e
			}
		}
	}
	t.Fatalf("no entry with keyword %q", keyword)
	return nil
}

func TestReplyEmpty(t *testing.T) {
	eng := New(knowledge.Load())
	for _, query := range []string{"", "   ", "?!,"} {
		res := eng.Reply(query)
		if res.Reply != emptyPrompt {
			t.Errorf("Reply(%q) = %q, want empty prompt", query, res.Reply)
		}
		if res.Matched {
			t.Errorf("Reply(%q) reported a match", query)
		}
		if len(res.Suggestions) != 0 {
			t.Errorf("Reply(%q) returned %d suggestions, want none", query, len(res.Suggestions))
		}
	}
}

func TestReplyMatch(t *testing.T) {
	eng := New(knowledge.Load(), WithRand(rand.New(rand.NewSource(1))))
	res := eng.Reply("hello there")
	if !res.Matched {
		t.Fatalf("Reply(hello there) did not match")
	}
	if res.Score <= 0 {
		t.Errorf("Score = %d, want positive", res.Score)
	}
	want := make(map[string]bool)
	for _, r := range findEntry(t, "hello").Replies {
		want[ScrubSignoff(r)] = true
	}
	if !want[res.Reply] {
		t.Errorf("Reply = %q, not a scrubbed greeting variant", res.Reply)
	}
	if strings.Contains(res.Reply, "I'm Scholar") {
		t.Errorf("Reply = %q still carries the sign-off", res.Reply)
	}
	if len(res.Suggestions) != matchSuggestions {
		t.Errorf("got %d suggestions, want %d", len(res.Suggestions), matchSuggestions)
	}
	checkSuggestions(t, res.Suggestions)
}

func TestReplyFallback(t *testing.T) {
	eng := New(knowledge.Load())
	res := eng.Reply("xyzzy plugh")
	if res.Matched {
		t.Fatalf("Reply(xyzzy plugh) matched unexpectedly")
	}
	if res.Reply != fallbackMessage {
		t.Errorf("Reply = %q, want bare fallback message", res.Reply)
	}
	if len(res.Suggestions) != fallbackSuggestions {
		t.Errorf("got %d suggestions, want %d", len(res.Suggestions), fallbackSuggestions)
	}
	checkSuggestions(t, res.Suggestions)
}

func TestReplyFallbackTopicHint(t *testing.T) {
	// An empty knowledge base forces the fallback path while the query
	// still carries topic signal for the hint.
	eng := New(nil)
	res := eng.Reply("what is a black hole")
	if res.Matched {
		t.Fatalf("matched against empty knowledge base")
	}
	if !strings.HasPrefix(res.Reply, fallbackMessage) {
		t.Errorf("Reply = %q, want fallback prefix", res.Reply)
	}
	if !strings.Contains(res.Reply, `For example: "What is a black hole?"`) {
		t.Errorf("Reply = %q, want space topic examples", res.Reply)
	}
}

func TestReplyFallbackTypeHint(t *testing.T) {
	eng := New(nil)
	res := eng.Reply("where is the library")
	if !strings.HasPrefix(res.Reply, fallbackMessage) {
		t.Errorf("Reply = %q, want fallback prefix", res.Reply)
	}
	if !strings.Contains(res.Reply, "Eiffel Tower") {
		t.Errorf("Reply = %q, want where-type examples", res.Reply)
	}
}

func TestReplyDeterministicWithRand(t *testing.T) {
	a := New(knowledge.Load(), WithRand(rand.New(rand.NewSource(7))))
	b := New(knowledge.Load(), WithRand(rand.New(rand.NewSource(7))))
	for _, query := range []string{"hello", "what is a black hole", "xyzzy plugh"} {
		ra, rb := a.Reply(query), b.Reply(query)
		if ra.Reply != rb.Reply {
			t.Errorf("Reply(%q) diverged: %q vs %q", query, ra.Reply, rb.Reply)
		}
		if len(ra.Suggestions) != len(rb.Suggestions) {
			t.Fatalf("Reply(%q) suggestion counts diverged", query)
		}
		for i := range ra.Suggestions {
			if ra.Suggestions[i] != rb.Suggestions[i] {
				t.Errorf("Reply(%q) suggestion %d diverged", query, i)
			}
		}
	}
}

func TestMatch(t *testing.T) {
	eng := New(knowledge.Load())
	m, ok := eng.Match("what is a black hole")
	if !ok {
		t.Fatalf("Match(what is a black hole) = no match")
	}
	if m.Pass != 1 {
		t.Errorf("Pass = %d, want 1", m.Pass)
	}
	if m.Entry != findEntry(t, "black hole") {
		t.Errorf("matched entry %v, want black hole entry", m.Entry.Keywords)
	}
	if m.Score < 43 {
		t.Errorf("Score = %d, want at least 43", m.Score)
	}
	if _, ok := eng.Match(""); ok {
		t.Errorf("Match(empty) reported a match")
	}
	if _, ok := eng.Match("zzz qqq"); ok {
		t.Errorf("Match(zzz qqq) reported a match")
	}
}

func TestCompose(t *testing.T) {
	eng := New(knowledge.Load(), WithRand(rand.New(rand.NewSource(3))))
	query := "what is a black hole"
	m, ok := eng.Match(query)
	if !ok {
		t.Fatalf("Match(%q) = no match", query)
	}

	res := eng.Compose(query, m, true)
	if !res.Matched {
		t.Fatalf("Compose did not report a match")
	}
	if res.Score != m.Score {
		t.Errorf("Score = %d, want %d", res.Score, m.Score)
	}
	want := make(map[string]bool)
	for _, r := range m.Entry.Replies {
		want[ScrubSignoff(r)] = true
	}
	if !want[res.Reply] {
		t.Errorf("Reply = %q, not a variant of the matched entry", res.Reply)
	}
	if res.QuestionType.String() != "what" {
		t.Errorf("QuestionType = %v, want what", res.QuestionType)
	}

	miss := eng.Compose("xyzzy plugh", Match{}, false)
	if miss.Matched {
		t.Fatalf("Compose(no match) reported a match")
	}
	if !strings.HasPrefix(miss.Reply, fallbackMessage) {
		t.Errorf("Reply = %q, want fallback prefix", miss.Reply)
	}
	if len(miss.Suggestions) != fallbackSuggestions {
		t.Errorf("got %d suggestions, want %d", len(miss.Suggestions), fallbackSuggestions)
	}

	if empty := eng.Compose("   ", Match{}, false); empty.Reply != emptyPrompt {
		t.Errorf("Compose(blank) = %q, want empty prompt", empty.Reply)
	}
}

func TestWithCorrector(t *testing.T) {
	entries := knowledge.Load()
	plain := New(entries)
	if _, ok := plain.Match("hullo frend"); ok {
		t.Fatalf("misspelled query matched without a corrector")
	}
	fixed := New(entries, WithCorrector(canned{"hullo frend": "hello friend"}))
	m, ok := fixed.Match("hullo frend")
	if !ok {
		t.Fatalf("corrected query did not match")
	}
	if m.Entry != findEntry(t, "hello") {
		t.Errorf("matched entry %v, want greeting entry", m.Entry.Keywords)
	}
}

func TestScrubSignoff(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
	}{
		{"trailing intro and question", "Hello! I'm Scholar. What can I do for you?", "Hello!"},
		{"ready to help tail", "Hey there! I'm Scholar and I'm ready to help!", "Hey there!"},
		{"would you like tail", "All good on my end! What would you like to know? I'm Scholar and I'm ready to help.", "All good on my end! What would you like to know?"},
		{"mid reply sweep", "Hi! I'm Scholar. Ask me anything.", "Hi! Ask me anything."},
		{"bare question tail", "Thanks for asking! What can I do for you?", "Thanks for asking!"},
		{"only signoff stays put", "I'm Scholar.", "I'm Scholar."},
		{"untouched", "Black holes are regions of space.", "Black holes are regions of space."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScrubSignoff(tt.in); got != tt.want {
				t.Errorf("ScrubSignoff(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func checkSuggestions(t *testing.T, got []string) {
	t.Helper()
	pool := make(map[string]bool, len(knowledge.Suggested))
	for _, s := range knowledge.Suggested {
		pool[s] = true
	}
	seen := make(map[string]bool, len(got))
	for _, s := range got {
		if !pool[s] {
			t.Errorf("suggestion %q not in the pool", s)
		}
		if seen[s] {
			t.Errorf("suggestion %q repeated", s)
		}
		seen[s] = true
	}
}

func BenchmarkReply(b *testing.B) {
	eng := New(knowledge.Load(), WithRand(rand.New(rand.NewSource(1))))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		eng.Reply("what is a black hole")
	}
}
