package driving

import (
	"context"

	"github.com/custodia-labs/faqdesk/internal/core/domain"
)

// AnswerCacheService stores previously received remote answers.
type AnswerCacheService interface {
	// LookupExact returns the entry whose key equals the normalised question.
	LookupExact(ctx context.Context, question string) (domain.CacheEntry, bool)

	// LookupFuzzy returns the best sufficiently similar entry of the same script class.
	LookupFuzzy(ctx context.Context, question string) (domain.CacheMatch, bool)

	// Put records an answer as the newest entry, replacing any entry with the same key.
	Put(ctx context.Context, question, answer string)

	// Entries returns the cached entries, newest first.
	Entries(ctx context.Context) []domain.CacheEntry

	// Clear removes every entry.
	Clear(ctx context.Context)
}
