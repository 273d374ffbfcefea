package driving

import "github.com/custodia-labs/faqdesk/internal/core/domain"

// CorpusService exposes the static FAQ corpus.
type CorpusService interface {
	// FindBestMatch scores question against every phrasing and returns the best.
	// Returns false when the corpus has no phrasings.
	FindBestMatch(question string) (domain.FaqMatch, bool)

	// Groups returns the FAQ groups in corpus order.
	Groups() []domain.FaqGroup

	// Templates returns the quick-question template sections.
	Templates() []domain.TemplateSection
}
