package main

import (
	"fmt"

	"github.com/1Percent-hub/ScholarHub/internal/engine/expand"
	"github.com/1Percent-hub/ScholarHub/internal/engine/score"
	"github.com/1Percent-hub/ScholarHub/internal/engine/token"
)

func main() {
	q := score.Analyze("where is the library")
	fmt.Printf("Normalized: %q\n", q.Normalized)
	fmt.Printf("Tokens: %v\n", q.Tokens)
	fmt.Printf("Expanded: %v\n", q.Expanded)
	fmt.Printf("Topics: %v (names %v)\n", q.Topics, q.Topics.Names())
	fmt.Printf("Type: %v\n", q.Type)

	t := token.NewSet("where")
	fmt.Printf("Expand(where): %v\n", expand.Expand(t))
}
