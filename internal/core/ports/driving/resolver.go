package driving

import (
	"context"

	"github.com/custodia-labs/faqdesk/internal/core/domain"
)

// ResolverService routes a question through the static FAQ, the answer
// cache and the remote answer service, holding one resolution at a time.
//
// Every method returns the resolution now held. Choice methods take the
// SuggestionID of the resolution they answer; a mismatched ID returns
// domain.ErrNoPendingSuggestion and leaves the state unchanged.
type ResolverService interface {
	// Ask starts a new resolution for question, discarding any finished one.
	// Returns domain.ErrSuggestionPending while a choice is outstanding.
	Ask(ctx context.Context, question string) (domain.Resolution, error)

	// UseFaqAnswer accepts the suggested FAQ entry in the given language.
	UseFaqAnswer(suggestionID string, lang domain.Language) (domain.Resolution, error)

	// AskAnyway declines the FAQ suggestion and continues with the cache and remote steps.
	AskAnyway(ctx context.Context, suggestionID string) (domain.Resolution, error)

	// UseCachedAnswer accepts the similar cached answer.
	UseCachedAnswer(suggestionID string) (domain.Resolution, error)

	// AskRemoteInstead declines the similar cached answer and calls the remote service.
	AskRemoteInstead(ctx context.Context, suggestionID string) (domain.Resolution, error)

	// Cancel drops the pending suggestion and returns to idle.
	Cancel(suggestionID string) (domain.Resolution, error)

	// Current returns the held resolution.
	Current() domain.Resolution
}
