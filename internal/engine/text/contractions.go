package text

// contractions maps contracted (and commonly un-apostrophed) forms to their
// expansions so "what's", "whats", and "what is" all match the same entries.
// Every value is a fixed point of the table: no value contains a word that is
// itself a key, which is what makes Normalize idempotent.
var contractions = map[string]string{
	"what's":    "what is",
	"whats":     "what is",
	"who's":     "who is",
	"whos":      "who is",
	"where's":   "where is",
	"wheres":    "where is",
	"how's":     "how is",
	"hows":      "how is",
	"that's":    "that is",
	"thats":     "that is",
	"it's":      "it is",
	"its":       "it is",
	"there's":   "there is",
	"theres":    "there is",
	"here's":    "here is",
	"heres":     "here is",
	"they're":   "they are",
	"theyre":    "they are",
	"we're":     "we are",
	"were":      "we are",
	"you're":    "you are",
	"youre":     "you are",
	"you've":    "you have",
	"youve":     "you have",
	"i've":      "i have",
	"ive":       "i have",
	"we've":     "we have",
	"weve":      "we have",
	"they've":   "they have",
	"theyve":    "they have",
	"i'm":       "i am",
	"im":        "i am",
	"don't":     "do not",
	"dont":      "do not",
	"doesn't":   "does not",
	"doesnt":    "does not",
	"isn't":     "is not",
	"isnt":      "is not",
	"aren't":    "are not",
	"arent":     "are not",
	"wasn't":    "was not",
	"wasnt":     "was not",
	"weren't":   "we are not",
	"werent":    "we are not",
	"haven't":   "have not",
	"havent":    "have not",
	"hasn't":    "has not",
	"hasnt":     "has not",
	"hadn't":    "had not",
	"hadnt":     "had not",
	"won't":     "will not",
	"wont":      "will not",
	"wouldn't":  "would not",
	"wouldnt":   "would not",
	"couldn't":  "could not",
	"couldnt":   "could not",
	"shouldn't": "should not",
	"shouldnt":  "should not",
	"can't":     "can not",
	"cant":      "can not",
	"cannot":    "can not",
}
