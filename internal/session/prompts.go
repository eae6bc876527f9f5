package session

// CommandSuggestions are the follow-ups offered after a memory command,
// steering the user back to questions.
var CommandSuggestions = []string{
	"What is the capital of France?",
	"Tell me a fun fact",
	"How does the heart work?",
}

// missingFactPrompts suggest questions that fill gaps in what we know about
// the user, in preference order.
var missingFactPrompts = []struct {
	key    string
	prompt string
}{
	{"name", "What's your name?"},
	{"location", "Where are you from?"},
	{"likes", "What do you like?"},
	{"favorite", "What's your favourite thing?"},
	{"interested_in", "What are you interested in?"},
}

const (
	rememberHint = `You can say "remember that ..." or "my name is ..." and I'll remember.`
	welcomeHint  = "Tell me your name or what you like and I'll remember for next time!"

	// Below this many facts the remember hint keeps showing.
	hintFactThreshold = 3
)

// Prompts returns up to max questions that would fill missing facts.
func Prompts(s *Session, max int) []string {
	if max <= 0 {
		return nil
	}
	var out []string
	for _, p := range missingFactPrompts {
		if s.Fact(p.key) != "" {
			continue
		}
		out = append(out, p.prompt)
		if len(out) == max {
			break
		}
	}
	return out
}

// Hint returns the one-line memory hint for a session: a welcome line for
// brand-new sessions, a "remember that ..." nudge while the session has
// few facts, and nothing once memory is established.
func Hint(s *Session) string {
	if !s.HasFacts() {
		return welcomeHint
	}
	if len(s.FactKeys) < hintFactThreshold {
		return rememberHint
	}
	return ""
}

// CommandHint is the hint shown after a memory command: the remember nudge
// while facts are few, never the new-session welcome.
func CommandHint(s *Session) string {
	if len(s.FactKeys) < hintFactThreshold {
		return rememberHint
	}
	return ""
}
