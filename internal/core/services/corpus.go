package services

import (
	"github.com/custodia-labs/faqdesk/internal/core/domain"
	"github.com/custodia-labs/faqdesk/internal/core/ports/driven"
	"github.com/custodia-labs/faqdesk/internal/core/ports/driving"
	"github.com/custodia-labs/faqdesk/internal/core/textmatch"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// CorpusService matches questions against the static FAQ corpus.
// The corpus is read once at construction and never changes.
type CorpusService struct {
	groups    []domain.FaqGroup
	templates []domain.TemplateSection
}

// NewCorpusService creates a corpus service from a corpus source.
func NewCorpusService(source driven.CorpusSource) *CorpusService {
	return &CorpusService{
		groups:    source.Groups(),
		templates: source.Templates(),
	}
}

// FindBestMatch scores question against every phrasing of every group,
// Japanese phrasings before English within a group. A later phrasing only
// replaces the best on a strictly greater score, so ties keep the first.
// The caller applies the acceptance threshold.
func (s *CorpusService) FindBestMatch(question string) (domain.FaqMatch, bool) {
	var best domain.FaqMatch
	found := false

	consider := func(gi int, lang domain.Language, phrasing string) {
		score := textmatch.Similarity(question, phrasing)
		if !found || score > best.Score {
			best = domain.FaqMatch{
				GroupIndex: gi,
				Group:      s.groups[gi],
				Language:   lang,
				Phrasing:   phrasing,
				Score:      score,
			}
			found = true
		}
	}

	for gi, g := range s.groups {
		for _, p := range g.Questions.JA {
			consider(gi, domain.LanguageJA, p)
		}
		for _, p := range g.Questions.EN {
			consider(gi, domain.LanguageEN, p)
		}
	}

	return best, found
}

// Groups returns the FAQ groups in corpus order.
func (s *CorpusService) Groups() []domain.FaqGroup {
	out := make([]domain.FaqGroup, len(s.groups))
	copy(out, s.groups)
	return out
}

// Templates returns the quick-question template sections.
func (s *CorpusService) Templates() []domain.TemplateSection {
	out := make([]domain.TemplateSection, len(s.templates))
	copy(out, s.templates)
	return out
}
