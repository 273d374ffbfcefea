package textmatch

// IsCJKLike reports whether s contains any Hiragana, Katakana or CJK ideograph.
// A single such rune is enough.
func IsCJKLike(s string) bool {
	for _, r := range s {
		if isCJKRune(r) {
			return true
		}
	}
	return false
}

func isCJKRune(r rune) bool {
	switch {
	case r >= 0x3040 && r <= 0x30FF: // Hiragana, Katakana
		return true
	case r >= 0x3400 && r <= 0x9FFF: // CJK Extension A, Unified Ideographs
		return true
	default:
		return false
	}
}
