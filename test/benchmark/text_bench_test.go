// Package benchmark contains Go benchmarks for the matching pipeline:
// normalization, tokenization, expansion, scoring, and end-to-end engine
// matching, measuring throughput and allocation behaviour.
package benchmark

import (
	"fmt"
	"strings"
	"testing"

	"github.com/1Percent-hub/ScholarHub/internal/engine/expand"
	"github.com/1Percent-hub/ScholarHub/internal/engine/text"
	"github.com/1Percent-hub/ScholarHub/internal/engine/token"
)

var sampleMessages = map[string]string{
	"short": "What is gravity?",
	"typos": "whats the difference between speed and velocty, and how do i calcualte acceleration",
	"medium": `Can you explain how photosynthesis works in plants? I understand that
        chlorophyll absorbs sunlight but I am not sure how the light reactions
        and the Calvin cycle fit together, or where the oxygen we breathe
        actually comes from in the overall equation.`,
	"long": strings.Repeat(`Newton's laws describe the relationship between the motion of
        an object and the forces acting on it. The first law says an object stays at rest
        or in uniform motion unless acted on by a net force. The second law relates force,
        mass, and acceleration. The third law says every action has an equal and opposite
        reaction. These laws underpin classical mechanics and explain everything from
        orbital motion to why rockets work. `, 20),
}

func BenchmarkNormalize(b *testing.B) {
	for name, msg := range sampleMessages {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(msg)))
			for i := 0; i < b.N; i++ {
				normalized := text.Normalize(msg)
				_ = normalized
			}
		})
	}
}

func BenchmarkNormalizeParallel(b *testing.B) {
	msg := sampleMessages["medium"]
	b.ReportAllocs()
	b.SetBytes(int64(len(msg)))
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			normalized := text.Normalize(msg)
			_ = normalized
		}
	})
}

func BenchmarkTokenize(b *testing.B) {
	for name, msg := range sampleMessages {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(msg)))
			for i := 0; i < b.N; i++ {
				tokens := token.Tokenize(msg)
				_ = tokens
			}
		})
	}
}

func BenchmarkTokenizeVaryingSize(b *testing.B) {
	sizes := []int{10, 100, 500, 1000, 5000}
	baseWords := "what is the force of gravity on the moon "
	for _, size := range sizes {
		msg := strings.Repeat(baseWords, size/len(baseWords)+1)[:size]
		b.Run(fmt.Sprintf("bytes_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(msg)))
			for i := 0; i < b.N; i++ {
				tokens := token.Tokenize(msg)
				_ = tokens
			}
		})
	}
}

// BenchmarkExpand measures synonym expansion over token sets of increasing
// size.
func BenchmarkExpand(b *testing.B) {
	counts := []int{3, 8, 20}
	words := []string{
		"gravity", "force", "energy", "atom", "cell", "planet", "orbit",
		"acid", "enzyme", "fraction", "triangle", "velocity", "momentum",
		"photosynthesis", "mitosis", "electron", "molecule", "equation",
		"volcano", "climate",
	}
	for _, n := range counts {
		set := token.NewSet(words[:n]...)
		b.Run(fmt.Sprintf("tokens_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				expanded := expand.Expand(set)
				_ = expanded
			}
		})
	}
}
