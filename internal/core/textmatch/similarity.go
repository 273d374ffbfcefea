package textmatch

import (
	"strings"
	"unicode/utf8"
)

// MinTokenLength is the shortest word token kept for Jaccard scoring.
// Shorter tokens are mostly particles and stop-words.
const MinTokenLength = 3

// Similarity scores a and b in [0,1]. It is symmetric.
// The bigram metric is used when either string is CJK-like.
func Similarity(a, b string) float64 {
	if IsCJKLike(a) || IsCJKLike(b) {
		return Dice(a, b)
	}
	return Jaccard(a, b)
}

// Bigrams returns every overlapping two-rune window of the normalised,
// space-stripped form of s.
func Bigrams(s string) []string {
	runes := []rune(strings.ReplaceAll(Normalize(s), " ", ""))
	if len(runes) < 2 {
		return nil
	}

	grams := make([]string, 0, len(runes)-1)
	for i := range len(runes) - 1 {
		grams = append(grams, string(runes[i:i+2]))
	}
	return grams
}

// Dice computes 2|A∩B| / (|A|+|B|) over the bigram multisets of a and b.
// A bigram twice in A and once in B contributes one to the intersection.
func Dice(a, b string) float64 {
	gramsA := Bigrams(a)
	gramsB := Bigrams(b)
	if len(gramsA) == 0 || len(gramsB) == 0 {
		return 0
	}

	counts := make(map[string]int, len(gramsA))
	for _, g := range gramsA {
		counts[g]++
	}

	intersection := 0
	for _, g := range gramsB {
		if counts[g] > 0 {
			intersection++
			counts[g]--
		}
	}

	return float64(2*intersection) / float64(len(gramsA)+len(gramsB))
}

// Tokens returns the normalised whitespace tokens of s that are at least
// MinTokenLength characters long. Duplicates are kept.
func Tokens(s string) []string {
	fields := strings.Fields(Normalize(s))
	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= MinTokenLength {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Jaccard computes |A∩B| / |A∪B| over the token sets of a and b.
func Jaccard(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for t := range setA {
		if setB[t] {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]bool {
	tokens := Tokens(s)
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
