package benchmark

import (
	"fmt"
	"testing"

	"github.com/1Percent-hub/ScholarHub/internal/engine"
	"github.com/1Percent-hub/ScholarHub/internal/engine/rank"
	"github.com/1Percent-hub/ScholarHub/internal/engine/score"
	"github.com/1Percent-hub/ScholarHub/internal/knowledge"
)

// syntheticEntries builds a corpus of the given size with overlapping but
// distinct keyword sets, so ranking does real comparison work.
func syntheticEntries(n int) []*knowledge.Entry {
	subjects := []string{
		"gravity", "photosynthesis", "fractions", "volcanoes", "electricity",
		"cells", "planets", "acids", "triangles", "momentum", "enzymes",
		"climate", "magnetism", "evolution", "algebra", "waves",
	}
	entries := make([]*knowledge.Entry, 0, n)
	for i := 0; i < n; i++ {
		a := subjects[i%len(subjects)]
		b := subjects[(i+5)%len(subjects)]
		entries = append(entries, knowledge.NewEntry(
			[]string{fmt.Sprintf("%s and %s", a, b), fmt.Sprintf("%s basics %d", a, i)},
			[]string{fmt.Sprintf("Here is what you should know about %s and %s.", a, b)},
		))
	}
	return entries
}

// BenchmarkEngineMatch measures end-to-end matching over the shipped
// knowledge base for queries that hit and queries that miss.
func BenchmarkEngineMatch(b *testing.B) {
	eng := engine.New(knowledge.Load())
	queries := []struct {
		name  string
		query string
	}{
		{"hit", "what is gravity"},
		{"hit_phrased", "can you explain how photosynthesis works"},
		{"miss", "zorblatt frumious bandersnatch quux"},
	}
	for _, q := range queries {
		b.Run(q.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m, ok := eng.Match(q.query)
				_, _ = m, ok
			}
		})
	}
}

// BenchmarkEngineMatchParallel measures concurrent match throughput; the
// engine is immutable and lock-free after construction.
func BenchmarkEngineMatchParallel(b *testing.B) {
	eng := engine.New(knowledge.Load())
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			m, ok := eng.Match("what is gravity")
			_, _ = m, ok
		}
	})
}

// BenchmarkEngineReply includes reply selection and suggestion sampling on
// top of the match.
func BenchmarkEngineReply(b *testing.B) {
	eng := engine.New(knowledge.Load())
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		result := eng.Reply("what is gravity")
		_ = result
	}
}

// BenchmarkRankBest measures the ranking pass alone at growing corpus
// sizes.
func BenchmarkRankBest(b *testing.B) {
	sizes := []int{100, 1000, 5000}
	for _, n := range sizes {
		entries := syntheticEntries(n)
		q := score.Analyze("tell me about gravity and momentum")
		b.Run(fmt.Sprintf("entries_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				best, ok := rank.Best(q, entries)
				_, _ = best, ok
			}
		})
	}
}
