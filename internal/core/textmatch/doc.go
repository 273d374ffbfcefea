// Package textmatch provides the text comparison primitives used to route
// questions: normalisation, script detection and similarity scoring.
//
// Two metrics are used. Strings containing Hiragana, Katakana or CJK
// ideographs are scored with the Dice coefficient over character bigrams,
// since those scripts have no whitespace word boundaries. Everything else
// is scored with Jaccard similarity over word tokens of three or more
// characters. If either operand is CJK-like the bigram metric is used.
//
// All functions are pure and safe for concurrent use.
package textmatch
