package domain

import "fmt"

// Language tags the phrasings and answers of a FAQ group.
type Language string

// Supported corpus languages.
const (
	// LanguageJA is Japanese.
	LanguageJA Language = "ja"

	// LanguageEN is English.
	LanguageEN Language = "en"
)

// IsValid returns true if the language is one the corpus carries.
func (l Language) IsValid() bool {
	return l == LanguageJA || l == LanguageEN
}

// String returns the string representation.
func (l Language) String() string {
	return string(l)
}

// FaqPhrasings holds representative question phrasings per language.
type FaqPhrasings struct {
	JA []string `yaml:"ja"`
	EN []string `yaml:"en"`
}

// FaqAnswers holds exactly one answer per language.
type FaqAnswers struct {
	JA string `yaml:"ja"`
	EN string `yaml:"en"`
}

// FaqGroup is an immutable static question/answer group.
// Title is a human label and is never matched against.
type FaqGroup struct {
	Title     string       `yaml:"title"`
	Questions FaqPhrasings `yaml:"questions"`
	Answers   FaqAnswers   `yaml:"answers"`
}

// Answer returns the answer in the given language.
// Unknown languages fall back to Japanese.
func (g FaqGroup) Answer(lang Language) string {
	if lang == LanguageEN {
		return g.Answers.EN
	}
	return g.Answers.JA
}

// PhrasingCount returns the number of phrasings across both languages.
func (g FaqGroup) PhrasingCount() int {
	return len(g.Questions.JA) + len(g.Questions.EN)
}

// Validate checks the group carries at least one phrasing and both answers.
func (g FaqGroup) Validate() error {
	if g.PhrasingCount() == 0 {
		return fmt.Errorf("%w: group %q has no phrasings", ErrInvalidCorpus, g.Title)
	}
	if g.Answers.JA == "" || g.Answers.EN == "" {
		return fmt.Errorf("%w: group %q is missing an answer", ErrInvalidCorpus, g.Title)
	}
	return nil
}

// FaqMatch is the best static corpus match for a question.
type FaqMatch struct {
	// GroupIndex is the position of the group in corpus order.
	GroupIndex int

	// Group is the matched group.
	Group FaqGroup

	// Language is the list the best phrasing came from.
	Language Language

	// Phrasing is the exact phrasing that produced Score.
	Phrasing string

	// Score is the similarity in [0,1].
	Score float64
}

// QuickTemplate is a canned question offered to the user as a starting point.
type QuickTemplate struct {
	Label string `yaml:"label"`
	Text  string `yaml:"text"`
}

// TemplateSection groups quick templates under a heading.
type TemplateSection struct {
	Title string          `yaml:"title"`
	Items []QuickTemplate `yaml:"items"`
}
