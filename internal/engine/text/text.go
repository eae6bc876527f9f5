// Package text normalizes raw chat messages into the canonical form the
// matching pipeline works on: contractions expanded, common misspellings
// fixed, sentence punctuation stripped, whitespace collapsed, lowercased.
package text

import "strings"

// punctReplacer maps sentence punctuation to spaces. Apostrophes survive this
// stage so contraction lookups see them; the tokenizer discards them later.
var punctReplacer = strings.NewReplacer(
	"?", " ", "!", " ", ".", " ", ",", " ", ";", " ", ":", " ",
	"(", " ", ")", " ", "[", " ", "]", " ", "{", " ", "}", " ",
)

// Normalize runs the full normalization pipeline and returns the canonical
// matching form of s. Empty or all-punctuation input yields "".
//
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s). The
// contraction and typo tables only map to words outside their own key sets,
// so a second pass finds nothing to rewrite.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	t := strings.ToLower(s)
	t = mapWords(t, contractions)
	t = mapWords(t, typos)
	t = punctReplacer.Replace(t)
	return strings.Join(strings.Fields(t), " ")
}

// mapWords rewrites every word of s found in table with its replacement.
// Words are maximal runs of lowercase letters, digits, and apostrophes;
// everything between them passes through untouched.
func mapWords(s string, table map[string]string) string {
	var b strings.Builder
	b.Grow(len(s) + 16)
	for i := 0; i < len(s); {
		if !isWordByte(s[i]) {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := i + 1
		for j < len(s) && isWordByte(s[j]) {
			j++
		}
		word := s[i:j]
		rep, ok := table[word]
		if !ok {
			// Quoted words ('cant') still map once the quotes come off.
			if trimmed := strings.Trim(word, "'"); trimmed != word {
				rep, ok = table[trimmed]
			}
		}
		if ok {
			b.WriteString(rep)
		} else {
			b.WriteString(word)
		}
		i = j
	}
	return b.String()
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '\''
}
