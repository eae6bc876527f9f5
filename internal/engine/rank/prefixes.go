package rank

import "strings"

// questionPrefixes are the leading interrogative and imperative openers the
// fallback pass strips, most specific first. Order matters: only the first
// match is applied, so "what is the" must come before "what is".
var questionPrefixes = []string{
	"what is the",
	"what are the",
	"what is a",
	"what is",
	"what are",
	"who is the",
	"who is a",
	"who is",
	"where is the",
	"where is",
	"when did the",
	"when did",
	"when was the",
	"when was",
	"why do",
	"why does",
	"why is the",
	"why is",
	"how do you",
	"how do we",
	"how does",
	"how do",
	"how can i",
	"how can you",
	"how many",
	"how much",
	"can you tell me",
	"could you tell me",
	"tell me about",
	"tell me",
	"give me",
	"explain",
	"define",
	"do you know",
	"i want to know",
	"i wanna know",
	"can you explain",
	"could you explain",
	"what does",
	"what do",
	"where are",
	"when is",
	"why are",
	"how are",
	"is it true that",
	"is it true",
	"info on",
	"learn about",
	"teach me about",
	"who was",
	"who were",
	"where did",
	"why did",
	"how did",
	"i need to know",
	"just curious",
	"quick question",
	"random question",
	"one question",
	"can you answer",
	"could you answer",
	"please tell me",
	"i was wondering",
	"curious about",
}

// StripPrefix removes the first matching question prefix from normalized
// text, once. A prefix only matches when followed by more words; when
// nothing matches, or stripping would leave nothing, the input comes back
// unchanged.
func StripPrefix(normalized string) string {
	for _, p := range questionPrefixes {
		if !strings.HasPrefix(normalized, p+" ") {
			continue
		}
		rest := strings.TrimSpace(normalized[len(p):])
		if rest == "" {
			return normalized
		}
		return rest
	}
	return normalized
}
