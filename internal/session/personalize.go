package session

import (
	"strings"
	"unicode"
)

// greetingStarts are reply openings that can take the user's name, checked
// against the lowercased reply. Order matters: punctuated forms come before
// their bare-space twins so "hey!" wins over "hey ".
var greetingStarts = []string{
	"hey!", "hey ",
	"hi there!", "hi there ",
	"hello!", "hello ",
	"hi!", "hi ",
	"howdy!", "howdy ",
	"good morning!", "good morning ",
	"good afternoon!", "good afternoon ",
	"good evening!", "good evening ",
	"i'm doing great",
	"all good on my end",
	"glad that helped",
	"sure thing",
	"go ahead!",
	"of course!",
	"yes!",
	"welcome back!",
	"nice to meet you",
}

const maxNameLen = 80

// signoffPhrases are invitation questions that can take the name appended,
// wherever they sit in the reply.
var signoffPhrases = []string{
	"what can i do for you?",
	"what would you like to know?",
}

// Personalize inserts the user's name into a greeting-style reply, turning
// "Hey! What can I do for you?" into "Hey! alex! What can I do for you?".
// Replies without a greeting opening but with an invitation question get
// the name appended to the question instead. Replies that already mention
// the name come back unchanged.
func Personalize(reply, name string) string {
	name = strings.TrimSpace(name)
	if reply == "" || name == "" || len(name) > maxNameLen {
		return reply
	}
	lower := strings.ToLower(reply)
	if strings.Contains(lower, strings.ToLower(name)) {
		return reply
	}
	for _, start := range greetingStarts {
		if !strings.HasPrefix(lower, start) {
			continue
		}
		rest := strings.TrimLeft(reply[len(start):], " ")
		if rest == "" || startsUpper(rest) {
			head := strings.TrimRight(reply[:len(start)], " ")
			if !strings.HasSuffix(head, "!") {
				head = strings.TrimRight(head, ",")
			}
			if head != "" {
				return head + " " + name + "! " + rest
			}
		}
		break
	}
	for _, phrase := range signoffPhrases {
		if idx := strings.Index(lower, phrase); idx != -1 {
			q := idx + len(phrase) - 1
			return reply[:q] + ", " + name + reply[q:]
		}
	}
	return reply
}

// InjectTopic leads a fallback reply with the last topic the user asked
// about. Only replies that read like a fallback (they say "not sure" or
// "try asking") are touched, and only when they do not already mention the
// topic, so at most one reminder ever appears.
func InjectTopic(reply, lastTopic string) string {
	topic := strings.TrimSpace(lastTopic)
	if topic == "" || reply == "" {
		return reply
	}
	lower := strings.ToLower(reply)
	if !strings.Contains(lower, "not sure") && !strings.Contains(lower, "try asking") {
		return reply
	}
	if strings.Contains(lower, strings.ToLower(topic)) {
		return reply
	}
	return "Last time you asked about something like \"" + topic + "\". " + reply
}

const maxSuggestions = 5

// PersonalizeSuggestions leads the suggestion list with the user's stated
// interest, capping the result at five entries.
func PersonalizeSuggestions(base []string, interested string) []string {
	interested = strings.TrimSpace(interested)
	if interested == "" {
		return base
	}
	out := make([]string, 0, len(base)+1)
	out = append(out, "Tell me more about "+interested)
	out = append(out, base...)
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
