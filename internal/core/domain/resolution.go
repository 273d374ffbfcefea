package domain

// ResolutionKind identifies the state of the answer-resolution pipeline.
type ResolutionKind int

const (
	// ResolutionIdle means no question is being resolved.
	ResolutionIdle ResolutionKind = iota

	// ResolutionAwaitingFaqChoice means a static FAQ group matched and the user must choose.
	ResolutionAwaitingFaqChoice

	// ResolutionAwaitingCacheChoice means a similar cached question matched and the user must choose.
	ResolutionAwaitingCacheChoice

	// ResolutionFromFaq means a static FAQ answer was delivered.
	ResolutionFromFaq

	// ResolutionFromCache means an exact cache hit was delivered.
	ResolutionFromCache

	// ResolutionFromSimilarCache means a fuzzy cache hit was accepted and delivered.
	ResolutionFromSimilarCache

	// ResolutionFromRemote means the remote answer service answered.
	ResolutionFromRemote

	// ResolutionFailed means the remote answer service failed.
	ResolutionFailed
)

// String returns the string representation of the kind.
func (k ResolutionKind) String() string {
	switch k {
	case ResolutionIdle:
		return "idle"
	case ResolutionAwaitingFaqChoice:
		return "awaiting_faq_choice"
	case ResolutionAwaitingCacheChoice:
		return "awaiting_cache_choice"
	case ResolutionFromFaq:
		return "resolved_from_faq"
	case ResolutionFromCache:
		return "resolved_from_cache"
	case ResolutionFromSimilarCache:
		return "resolved_from_similar_cache"
	case ResolutionFromRemote:
		return "resolved_from_remote"
	case ResolutionFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsAwaiting returns true if the pipeline holds a suggestion.
func (k ResolutionKind) IsAwaiting() bool {
	return k == ResolutionAwaitingFaqChoice || k == ResolutionAwaitingCacheChoice
}

// IsTerminal returns true if the pipeline finished with an answer or a failure.
func (k ResolutionKind) IsTerminal() bool {
	switch k {
	case ResolutionFromFaq, ResolutionFromCache, ResolutionFromSimilarCache,
		ResolutionFromRemote, ResolutionFailed:
		return true
	default:
		return false
	}
}

// Resolution is the single tagged state value of the pipeline.
// Only the fields belonging to Kind are populated.
type Resolution struct {
	Kind ResolutionKind

	// Question is the trimmed question being resolved.
	Question string

	// SuggestionID identifies the pending suggestion in awaiting states.
	SuggestionID string

	// Faq is set in ResolutionAwaitingFaqChoice.
	Faq *FaqMatch

	// Cache is set in ResolutionAwaitingCacheChoice and ResolutionFromSimilarCache.
	Cache *CacheMatch

	// Language is the answer language chosen in ResolutionFromFaq.
	Language Language

	// Answer is set in every resolved kind.
	Answer string

	// Err is set in ResolutionFailed.
	Err error
}

// Idle returns the empty pipeline state.
func Idle() Resolution {
	return Resolution{Kind: ResolutionIdle}
}

// RemoteCalled returns true if the answer came from the remote service.
func (r Resolution) RemoteCalled() bool {
	return r.Kind == ResolutionFromRemote
}

// Banner returns the marker shown above a delivered answer.
func (r Resolution) Banner() string {
	switch r.Kind {
	case ResolutionFromFaq:
		return "(Top FAQ — no API call)"
	case ResolutionFromCache:
		return "(Cache hit — no API call)"
	case ResolutionFromSimilarCache:
		return "(Similar cache — NO API call)"
	default:
		return ""
	}
}

// Note returns the short status line for the resolution.
func (r Resolution) Note() string {
	switch r.Kind {
	case ResolutionFromFaq:
		return "Top FAQ used (no API call)."
	case ResolutionFromCache:
		return "Exact cache hit (no API call)."
	case ResolutionFromSimilarCache:
		return "Used similar cache (no API call)."
	case ResolutionFromRemote:
		return "Saved to cache."
	case ResolutionAwaitingFaqChoice, ResolutionAwaitingCacheChoice:
		return "Please choose an option below."
	default:
		return ""
	}
}
