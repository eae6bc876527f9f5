package session

import (
	"regexp"
	"strings"
)

// Command identifies an explicit memory request, e.g. "what do you
// remember" or "forget my name".
type Command string

const (
	CmdRecall      Command = "recall"
	CmdForgetName  Command = "forget_name"
	CmdForgetLikes Command = "forget_likes"
	CmdClearAll    Command = "clear_all"
	CmdRememberMe  Command = "remember_me"
	CmdWhoAmI      Command = "who_am_i"
)

// commandPatterns map whole messages to commands. Order matters: the first
// match wins.
var commandPatterns = []struct {
	re  *regexp.Regexp
	cmd Command
}{
	{regexp.MustCompile(`^(?:what (?:do you |did you )?remember|what (?:have you )?got (?:stored|saved)|recall|your memory)\??\s*$`), CmdRecall},
	{regexp.MustCompile(`^(?:forget (?:my )?name|clear my name|remove my name)\??\s*$`), CmdForgetName},
	{regexp.MustCompile(`^(?:forget (?:that |what you know |everything about me)|clear (?:my )?memory|wipe (?:my )?memory|reset memory)\??\s*$`), CmdClearAll},
	{regexp.MustCompile(`^(?:forget (?:that i (?:like|love)|my (?:likes?|favorites?)))\??\s*$`), CmdForgetLikes},
	{regexp.MustCompile(`^(?:do you remember me|remember me\??)\s*$`), CmdRememberMe},
	{regexp.MustCompile(`^(?:who am i|what do you know about me)\??\s*$`), CmdWhoAmI},
	{regexp.MustCompile(`^(?:what (?:did you |do you )?remember about me)\??\s*$`), CmdRecall},
	{regexp.MustCompile(`^(?:show (?:me )?(?:my )?memory|display memory|list (?:my )?facts)\??\s*$`), CmdRecall},
	{regexp.MustCompile(`^(?:erase (?:my )?name|delete my name)\??\s*$`), CmdForgetName},
	{regexp.MustCompile(`^(?:erase (?:my )?memory|delete (?:my )?memory|clear (?:my )?data)\??\s*$`), CmdClearAll},
	{regexp.MustCompile(`^(?:do you know (?:my )?name|remember my name)\??\s*$`), CmdRememberMe},
	{regexp.MustCompile(`^(?:what (?:is )?my name|who (?:am )?i (?:again)?)\??\s*$`), CmdWhoAmI},
}

// DetectCommand reports whether the message is a memory command.
func DetectCommand(message string) (Command, bool) {
	text := normalizeForExtract(message)
	if text == "" {
		return "", false
	}
	for _, p := range commandPatterns {
		if p.re.MatchString(text) {
			return p.cmd, true
		}
	}
	return "", false
}

// Reply variants per command, sampled so repeated commands do not sound
// canned.
var (
	recallEmpty = []string{
		`I don't have anything stored about you yet. Tell me your name, what you like, or say "remember that ..." and I'll remember!`,
		"Nothing yet! Share something, like your name or what you're into, and I'll remember it.",
		"My memory's empty for you so far. Tell me a bit about yourself and I'll keep track.",
	}
	recallFull = []string{
		"Here's what I remember: %s.",
		"I've got this stored: %s.",
		"Sure! Here's what I know: %s.",
	}
	forgetNameReplies = []string{
		"I've forgotten your name. You can tell me again anytime.",
		"Done. I no longer remember your name. Say it again whenever you like.",
		"Cleared. I won't use your name until you tell me again.",
	}
	clearAllReplies = []string{
		"I've cleared my memory about you. I won't remember anything from before.",
		"All cleared. I've forgotten everything you told me.",
		"Done. My memory about you is reset. Tell me again if you'd like me to remember something.",
	}
	forgetLikesReplies = []string{
		"I've forgotten what you like. Tell me again if you want me to remember.",
		"Cleared. I no longer remember your likes or favourites.",
		"Done. I've forgotten your preferences.",
	}
	rememberMeYes = []string{
		"Yes! Here's what I remember: %s.",
		"I do! Here's what I remember: %s.",
		"Sure do. Here's what I remember: %s.",
	}
	rememberMeNo = []string{
		"I don't have anything stored yet. Tell me your name or something you like and I'll remember.",
		"Not yet! Share your name or a fact and I'll remember you next time.",
		"My memory's empty for you. Tell me a bit about yourself!",
	}
	whoAmIWithRest = []string{
		"You're %s! I also remember: %s.",
		"You're %s. I also remember: %s.",
	}
	whoAmINoName = []string{
		"I have this stored: %s.",
		"Here's what I know: %s.",
	}
)

// factLabels turn fact keys into display labels for memory summaries.
var factLabels = map[string]string{
	"name":           "Name",
	"location":       "From / live",
	"likes":          "Likes",
	"dislikes":       "Dislikes",
	"favorite":       "Favourite",
	"role":           "Role",
	"note":           "Note",
	"interested_in":  "Interested in",
	"birthday":       "Birthday",
	"work_or_study":  "Work / study",
	"family":         "Family",
	"pet_name":       "Pet's name",
	"has":            "Has",
	"friend_name":    "Friend's name",
	"school":         "School",
	"job":            "Job",
	"born_in":        "Born in",
	"email":          "Email",
	"favorite_color": "Favourite colour",
	"favorite_food":  "Favourite food",
	"favorite_movie": "Favourite movie",
	"favorite_sport": "Favourite sport",
	"pet":            "Pet",
	"hobby":          "Hobby",
	"language":       "Language",
	"goal":           "Goal",
}

// FactsSummary renders stored facts as "Name: alex; Likes: dogs" in
// insertion order, or "" when nothing is stored.
func FactsSummary(s *Session) string {
	if !s.HasFacts() {
		return ""
	}
	parts := make([]string, 0, len(s.FactKeys))
	for _, key := range s.FactKeys {
		parts = append(parts, labelFor(key)+": "+s.Facts[key])
	}
	return strings.Join(parts, "; ")
}

// summaryExcluding is FactsSummary without the given key.
func summaryExcluding(s *Session, skip string) string {
	parts := make([]string, 0, len(s.FactKeys))
	for _, key := range s.FactKeys {
		if key == skip {
			continue
		}
		parts = append(parts, labelFor(key)+": "+s.Facts[key])
	}
	return strings.Join(parts, "; ")
}

func labelFor(key string) string {
	if label, ok := factLabels[key]; ok {
		return label
	}
	words := strings.Split(key, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
