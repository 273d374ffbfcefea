package driven

import "github.com/custodia-labs/faqdesk/internal/core/domain"

// CorpusSource supplies the static FAQ corpus and quick-question templates.
// Both are fixed for the lifetime of the process.
type CorpusSource interface {
	// Groups returns the FAQ groups in corpus order.
	Groups() []domain.FaqGroup

	// Templates returns the quick-question template sections in display order.
	Templates() []domain.TemplateSection
}
