package engine

import (
	"regexp"
	"strings"

	"github.com/1Percent-hub/ScholarHub/internal/engine/classify"
	"github.com/1Percent-hub/ScholarHub/internal/engine/score"
	"github.com/1Percent-hub/ScholarHub/internal/knowledge"
)

const (
	emptyPrompt = "Please type something!"

	fallbackMessage = "I'm Scholar, and I'm not sure about that one! Try asking about space, Earth, animals, the human body, " +
		"science, technology, history, geography, health, music, sports, maths, or ask for a fun fact or a joke!"

	matchSuggestions    = 5
	fallbackSuggestions = 6
)

// signoffPatterns strip trailing self-introductions from reply variants so
// the same entry reads naturally in any conversational position. Applied in
// order, most specific first.
var signoffPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s*i'm scholar[.!]?\s+what can i do for you\??\s*$`),
	regexp.MustCompile(`(?i)\s*i'm scholar[.!]?\s+what would you like to know\??\s*$`),
	regexp.MustCompile(`(?i)\s*i'm scholar[.!]?\s+what's your question\??\s*$`),
	regexp.MustCompile(`(?i)\s*i'm scholar and i'm ready to help[.!]?\s*$`),
	regexp.MustCompile(`(?i)\s*i'm scholar[.!,]?\s*$`),
	regexp.MustCompile(`(?i)\s*\.?\s*what can i do for you\??\s*$`),
}

// signoffAnywhere sweeps a leftover mid-reply "I'm Scholar." so greeting
// variants keep their tails.
var signoffAnywhere = regexp.MustCompile(`(?i)\s+i'm scholar[.!,]?\s*`)

// ScrubSignoff removes sign-off boilerplate from a reply and collapses the
// whitespace left behind. A reply that was nothing but sign-off comes back
// unchanged rather than empty.
func ScrubSignoff(reply string) string {
	s := reply
	for _, re := range signoffPatterns {
		s = re.ReplaceAllString(s, "")
	}
	s = signoffAnywhere.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return strings.TrimSpace(reply)
	}
	return s
}

// topicHint appends example questions to the fallback, chosen from the
// query's detected topics, or from its question type when no topic fired.
func topicHint(q score.Query) string {
	var examples []string
	for tp := 0; tp < classify.NumTopics; tp++ {
		if q.Topics.Has(classify.Topic(tp)) {
			pair := knowledge.TopicExamples[tp]
			examples = append(examples, pair[0], pair[1])
		}
	}
	if len(examples) >= 2 {
		return exampleHint(examples[0], examples[1])
	}
	if pair, ok := knowledge.TypeExamples[q.Type]; ok {
		return exampleHint(pair[0], pair[1])
	}
	return ""
}

func exampleHint(first, second string) string {
	return ` For example: "` + first + `" or "` + second + `".`
}
