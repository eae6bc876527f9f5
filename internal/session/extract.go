package session

import (
	"regexp"
	"strings"
)

// Fact is one extracted key/value pair, e.g. {"name", "alex"}.
type Fact struct {
	Key   string
	Value string
}

const maxExtractLen = 2000

// factPatterns detect self-disclosures worth remembering. Applied in order
// against the lowercased, space-collapsed message; when two patterns fill
// the same key the later one wins, keeping the key's first position.
var factPatterns = []struct {
	re  *regexp.Regexp
	key string
}{
	{regexp.MustCompile(`\b(?:my name is|i'm called|call me|name is|i am)\s+([a-z][a-z\s\-']{0,48})`), "name"},
	{regexp.MustCompile(`\b(?:i'm|i am)\s+([a-z][a-z\s\-']{0,48}?)(?:\s*\.|,|\s+and\s+|$)`), "name"},
	{regexp.MustCompile(`\b(?:i (?:am from|live in|live at)|from)\s+([a-z][a-z0-9\s,\-']{0,48})`), "location"},
	{regexp.MustCompile(`\b(?:i (?:like|love|enjoy)|i'm into)\s+([a-z][a-z0-9\s,&\-']{0,48})`), "likes"},
	{regexp.MustCompile(`\b(?:i (?:don't like|hate|dislike))\s+([a-z][a-z0-9\s,&\-']{0,48})`), "dislikes"},
	{regexp.MustCompile(`\b(?:i (?:am|'m) a)\s+([a-z][a-z0-9\s\-']{0,48})`), "role"},
	{regexp.MustCompile(`\b(?:my (?:favorite|favourite) (?:is|thing is))\s+([a-z][a-z0-9\s\-']{0,48})`), "favorite"},
	{regexp.MustCompile(`\b(?:my (?:favorite|favourite))\s+([a-z][a-z0-9\s\-']{0,48})\s+is`), "favorite"},
	{regexp.MustCompile(`\b(?:remember that|don't forget)\s+(.+?)(?:\.|$)`), "note"},
	{regexp.MustCompile(`\b(?:i (?:have|got) a)\s+([a-z][a-z0-9\s\-']{0,30})`), "has"},
	{regexp.MustCompile(`\b(?:i'm (?:interested in|curious about))\s+([a-z][a-z0-9\s,&\-']{0,48})`), "interested_in"},
	{regexp.MustCompile(`\b(?:my (?:birthday|bday) is)\s+([a-z0-9\s/\-]{3,30})`), "birthday"},
	{regexp.MustCompile(`\b(?:i (?:work|study) (?:at|in))\s+([a-z][a-z0-9\s\-']{0,48})`), "work_or_study"},
	{regexp.MustCompile(`\b(?:my (?:mom|mother|dad|father) (?:is|name is))\s+([a-z][a-z\s\-']{0,40})`), "family"},
	{regexp.MustCompile(`\b(?:my (?:dog|cat|pet) (?:is named|is called)|(?:dog|cat|pet) name)\s+([a-z][a-z0-9\s\-']{0,30})`), "pet_name"},
	{regexp.MustCompile(`\b(?:my (?:best )?friend (?:is named|is called)|friend'?s name)\s+([a-z][a-z0-9\s\-']{0,30})`), "friend_name"},
	{regexp.MustCompile(`\b(?:i (?:go to|attend) (?:school|college|university at)?)\s+([a-z][a-z0-9\s\-']{0,48})`), "school"},
	{regexp.MustCompile(`\b(?:my (?:job|work) is)\s+([a-z][a-z0-9\s\-']{0,48})`), "job"},
	{regexp.MustCompile(`\b(?:i (?:was born in|grew up in))\s+([a-z][a-z0-9\s,\-']{0,48})`), "born_in"},
	{regexp.MustCompile(`\b(?:my (?:email|e-mail) is)\s+([a-z0-9@.\-]+)`), "email"},
	{regexp.MustCompile(`\b(?:my (?:favorite|favourite) (?:color|colour) is)\s+([a-z][a-z0-9\s\-']{0,20})`), "favorite_color"},
	{regexp.MustCompile(`\b(?:my (?:favorite|favourite) (?:food|meal) is)\s+([a-z][a-z0-9\s\-']{0,30})`), "favorite_food"},
	{regexp.MustCompile(`\b(?:my (?:favorite|favourite) (?:movie|film) is)\s+([a-z0-9][a-z0-9\s\-':&]{0,40})`), "favorite_movie"},
	{regexp.MustCompile(`\b(?:my (?:favorite|favourite) (?:sport|team) is)\s+([a-z][a-z0-9\s\-']{0,30})`), "favorite_sport"},
	{regexp.MustCompile(`\b(?:i (?:have|got) (?:a )?pet)\s+([a-z][a-z0-9\s\-']{0,30})`), "pet"},
	{regexp.MustCompile(`\b(?:my (?:hobby|hobbies) (?:is|are))\s+([a-z][a-z0-9\s,&\-']{0,48})`), "hobby"},
	{regexp.MustCompile(`\b(?:i (?:speak|know) (?:the )?language)\s+([a-z][a-z0-9\s\-']{0,30})`), "language"},
	{regexp.MustCompile(`\b(?:my (?:dream|goal) is to)\s+([a-z][a-z0-9\s\-']{0,48})`), "goal"},
	{regexp.MustCompile(`\b(?:remember (?:this|it):?)\s+(.+?)(?:\.|$)`), "note"},
	{regexp.MustCompile(`\b(?:save (?:this|that):?)\s+(.+?)(?:\.|$)`), "note"},
	{regexp.MustCompile(`\b(?:don't forget:?)\s+(.+?)(?:\.|$)`), "note"},
}

// notePrefixes catch bare "remember ..." style messages the regexes miss.
// Only the first matching prefix is tried, and it never overwrites a note a
// pattern already captured.
var notePrefixes = []string{"remember ", "store ", "save ", "don't forget "}

// factStopwords are words too generic to store on their own.
var factStopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "being": {}, "have": {}, "has": {}, "had": {},
	"do": {}, "does": {}, "did": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "may": {}, "might": {}, "must": {}, "can": {}, "to": {},
	"of": {}, "in": {}, "for": {}, "on": {}, "with": {}, "at": {}, "by": {},
	"from": {}, "as": {}, "into": {}, "through": {}, "during": {}, "and": {},
	"or": {}, "but": {}, "if": {}, "then": {}, "so": {}, "that": {},
	"this": {}, "it": {}, "its": {},
}

// selfIndicators mark first-person messages that may carry facts.
var selfIndicators = map[string]struct{}{
	"i": {}, "my": {}, "me": {}, "i'm": {}, "im": {}, "i've": {}, "ive": {},
	"i'll": {}, "ill": {}, "myself": {}, "we": {}, "our": {}, "us": {},
	"we're": {}, "weve": {}, "we'll": {},
}

var (
	questionLead  = regexp.MustCompile(`^(?:what|who|where|when|why|how)\s+(?:is|are|was|were|did|do|does|can|could|would)\b`)
	selfWordRe    = regexp.MustCompile(`[a-z']+`)
	longNumberRe  = regexp.MustCompile(`\d{4,}`)
	longAlnumRe   = regexp.MustCompile(`[a-z0-9]{20,}`)
	urlRe         = regexp.MustCompile(`https?://\S+|www\.\S+|[a-z0-9\-]+\.(?:com|org|net|io)\b`)
	emailRe       = regexp.MustCompile(`[a-z0-9_.+\-]+@[a-z0-9\-]+\.[a-z0-9\-.]+`)
	topicNoiseRe  = regexp.MustCompile(`\b(?:what|who|where|when|why|how|is|are|the|a|an)\b`)
	spaceCollapse = regexp.MustCompile(`\s+`)
)

// keyMaxLen tightens the value cap for selected keys.
var keyMaxLen = map[string]int{
	"name":          80,
	"email":         120,
	"location":      100,
	"likes":         200,
	"favorite":      100,
	"note":          500,
	"birthday":      30,
	"work_or_study": 100,
	"goal":          200,
}

// protectedKeys reject suspiciously long values outright.
var protectedKeys = map[string]struct{}{"name": {}, "email": {}, "location": {}}

// ExtractFacts pulls storable facts out of a user message. Question-like
// messages and values that look like secrets or junk yield nothing. The
// returned facts preserve pattern order.
func ExtractFacts(message string) []Fact {
	if message == "" || len(message) > maxExtractLen {
		return nil
	}
	text := normalizeForExtract(message)
	if len(text) < 3 || shouldSkipExtraction(text) {
		return nil
	}

	values := make(map[string]string)
	var order []string
	for _, p := range factPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		val := cleanValue(m[1])
		if val == "" {
			continue
		}
		if _, seen := values[p.key]; !seen {
			order = append(order, p.key)
		}
		values[p.key] = val
	}
	for _, prefix := range notePrefixes {
		if strings.HasPrefix(text, prefix) {
			if _, seen := values["note"]; !seen {
				if rest := cleanValue(text[len(prefix):]); rest != "" {
					values["note"] = rest
					order = append(order, "note")
				}
			}
			break
		}
	}

	out := make([]Fact, 0, len(order))
	for _, key := range order {
		val := values[key]
		if !safeToStore(key, val) || rejectForKey(key, val) {
			continue
		}
		out = append(out, Fact{Key: key, Value: clip(val, maxLenFor(key))})
	}
	return out
}

// InferTopic derives a short topic label from a message for the session's
// topic history, e.g. "what is the capital of france" becomes "capital of
// france".
func InferTopic(message string) string {
	m := clip(strings.ToLower(message), maxTopicLen)
	if m == "" {
		return ""
	}
	m = topicNoiseRe.ReplaceAllString(m, "")
	m = strings.TrimSpace(spaceCollapse.ReplaceAllString(m, " "))
	return clip(m, topicGlance)
}

func normalizeForExtract(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// shouldSkipExtraction reports whether the message is a question rather
// than a self-disclosure, so nothing in it should be stored.
func shouldSkipExtraction(text string) bool {
	if len(text) < 3 {
		return true
	}
	if questionLead.MatchString(text) {
		return true
	}
	for _, prefix := range []string{"tell me ", "give me ", "explain ", "define ", "list "} {
		if strings.HasPrefix(text, prefix) {
			return true
		}
	}
	if strings.Contains(text, "?") && !looksLikeSelfDisclosure(text) {
		return true
	}
	return false
}

func looksLikeSelfDisclosure(text string) bool {
	if len(text) < 5 {
		return false
	}
	first := false
	for _, w := range selfWordRe.FindAllString(text, -1) {
		if _, ok := selfIndicators[w]; ok {
			first = true
			break
		}
	}
	if !first {
		return false
	}
	for _, q := range []string{"what ", "who ", "where ", "when ", "why ", "how ", "is ", "are ", "can ", "could ", "would ", "do ", "does "} {
		if strings.HasPrefix(text, q) {
			if strings.Contains(text, "?") {
				return false
			}
			disclosing := false
			for _, p := range []string{"my ", "i'm ", "i am ", "i like ", "i love ", "my name ", "call me "} {
				if strings.Contains(text, p) {
					disclosing = true
					break
				}
			}
			if !disclosing {
				return false
			}
		}
	}
	return true
}

// cleanValue collapses whitespace and rejects values that are too short,
// too long, or made entirely of filler words.
func cleanValue(raw string) string {
	s := strings.Join(strings.Fields(raw), " ")
	if len(s) < 2 || len(s) > MaxFactValueLen {
		return ""
	}
	allStop := true
	for _, w := range strings.Fields(s) {
		if _, ok := factStopwords[w]; !ok {
			allStop = false
			break
		}
	}
	if allStop {
		return ""
	}
	return s
}

func looksLikeSecret(value string) bool {
	if len(value) < 10 {
		return false
	}
	return longNumberRe.MatchString(value) || longAlnumRe.MatchString(value)
}

func safeToStore(key, value string) bool {
	if key == "" || value == "" {
		return false
	}
	if looksLikeSecret(value) {
		return false
	}
	if _, ok := protectedKeys[key]; ok && len(value) > 100 {
		return false
	}
	return true
}

// rejectForKey blocks URL- and email-shaped values outside the keys meant
// to hold them. The email key is exempt from the URL check because every
// address also matches the bare-domain pattern.
func rejectForKey(key, value string) bool {
	if key == "note" || key == "email" {
		return false
	}
	return urlRe.MatchString(value) || emailRe.MatchString(value)
}

func maxLenFor(key string) int {
	if n, ok := keyMaxLen[key]; ok {
		return n
	}
	return MaxFactValueLen
}
