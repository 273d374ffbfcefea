package textmatch

import "strings"

// punctuation is the fixed set of characters replaced by a space during normalisation.
const punctuation = "。．，、,.;:!?()[]{}\"“”'’-_/\\|"

// Normalize canonicalises s for comparison: lower-case, punctuation replaced
// with spaces, whitespace runs collapsed to a single space, trimmed.
// Normalize(Normalize(s)) == Normalize(s) for all s.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
