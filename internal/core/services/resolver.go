package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/faqdesk/internal/core/domain"
	"github.com/custodia-labs/faqdesk/internal/core/ports/driven"
	"github.com/custodia-labs/faqdesk/internal/core/ports/driving"
	"github.com/custodia-labs/faqdesk/internal/logger"
)

// Ensure Resolver implements the interface.
var _ driving.ResolverService = (*Resolver)(nil)

// Resolver runs the answer-resolution pipeline for one user:
//
//  1. static FAQ match at or above the static threshold: suggest it and wait
//  2. exact cache hit: deliver it
//  3. similar cache hit: suggest it and wait
//  4. otherwise ask the remote service and cache the answer
//
// It holds a single domain.Resolution. Methods are serialised, including
// the remote call, so at most one remote request is in flight.
type Resolver struct {
	mu       sync.Mutex
	corpus   driving.CorpusService
	cache    driving.AnswerCacheService
	answerer driven.Answerer
	match    domain.MatchSettings
	newID    func() string
	state    domain.Resolution
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithResolverMatchSettings overrides the static threshold.
func WithResolverMatchSettings(m domain.MatchSettings) ResolverOption {
	return func(r *Resolver) { r.match = m }
}

// WithIDGenerator overrides how suggestion IDs are minted.
func WithIDGenerator(newID func() string) ResolverOption {
	return func(r *Resolver) { r.newID = newID }
}

// NewResolver creates a resolver in the idle state.
func NewResolver(
	corpus driving.CorpusService,
	cache driving.AnswerCacheService,
	answerer driven.Answerer,
	opts ...ResolverOption,
) *Resolver {
	r := &Resolver{
		corpus:   corpus,
		cache:    cache,
		answerer: answerer,
		match:    domain.DefaultMatchSettings(),
		newID:    uuid.NewString,
		state:    domain.Idle(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetMatchSettings replaces the routing thresholds for subsequent questions.
func (r *Resolver) SetMatchSettings(m domain.MatchSettings) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.match = m
}

// Current returns the held resolution.
func (r *Resolver) Current() domain.Resolution {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Ask starts resolving question. A blank question is rejected without
// touching the state. A remote failure yields a ResolutionFailed state and
// the same error.
func (r *Resolver) Ask(ctx context.Context, question string) (domain.Resolution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q := strings.TrimSpace(question)
	if q == "" {
		return r.state, domain.ErrEmptyQuestion
	}
	if r.state.Kind.IsAwaiting() {
		return r.state, domain.ErrSuggestionPending
	}

	logger.Section("Resolve")
	logger.Debug("question: %q", q)
	r.state = domain.Idle()

	if best, ok := r.corpus.FindBestMatch(q); ok {
		accepted := best.Score >= r.match.StaticThreshold
		logger.Score("static faq", best.Score, r.match.StaticThreshold, accepted)
		if accepted {
			logger.Info("suggesting FAQ %q via %s phrasing %q", best.Group.Title, best.Language, best.Phrasing)
			r.state = domain.Resolution{
				Kind:         domain.ResolutionAwaitingFaqChoice,
				Question:     q,
				SuggestionID: r.newID(),
				Faq:          &best,
			}
			return r.state, nil
		}
	}

	return r.continueFromExact(ctx, q)
}

// UseFaqAnswer delivers the suggested group's answer in lang.
func (r *Resolver) UseFaqAnswer(suggestionID string, lang domain.Language) (domain.Resolution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkPending(domain.ResolutionAwaitingFaqChoice, suggestionID); err != nil {
		return r.state, err
	}
	if !lang.IsValid() {
		return r.state, fmt.Errorf("%w: unsupported language %q", domain.ErrInvalidInput, lang)
	}

	faq := r.state.Faq
	r.state = domain.Resolution{
		Kind:     domain.ResolutionFromFaq,
		Question: r.state.Question,
		Faq:      faq,
		Language: lang,
		Answer:   faq.Group.Answer(lang),
	}
	logger.Info("delivered FAQ %q (%s)", faq.Group.Title, lang)
	return r.state, nil
}

// AskAnyway declines the FAQ suggestion and continues with the cache.
func (r *Resolver) AskAnyway(ctx context.Context, suggestionID string) (domain.Resolution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkPending(domain.ResolutionAwaitingFaqChoice, suggestionID); err != nil {
		return r.state, err
	}

	q := r.state.Question
	r.state = domain.Idle()
	return r.continueFromExact(ctx, q)
}

// UseCachedAnswer delivers the suggested similar entry without re-caching it.
func (r *Resolver) UseCachedAnswer(suggestionID string) (domain.Resolution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkPending(domain.ResolutionAwaitingCacheChoice, suggestionID); err != nil {
		return r.state, err
	}

	match := r.state.Cache
	r.state = domain.Resolution{
		Kind:     domain.ResolutionFromSimilarCache,
		Question: r.state.Question,
		Cache:    match,
		Answer:   match.Entry.Answer,
	}
	return r.state, nil
}

// AskRemoteInstead declines the similar entry and asks the remote service.
func (r *Resolver) AskRemoteInstead(ctx context.Context, suggestionID string) (domain.Resolution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkPending(domain.ResolutionAwaitingCacheChoice, suggestionID); err != nil {
		return r.state, err
	}

	q := r.state.Question
	r.state = domain.Idle()
	return r.callRemote(ctx, q)
}

// Cancel drops a pending suggestion of either kind.
func (r *Resolver) Cancel(suggestionID string) (domain.Resolution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.state.Kind.IsAwaiting() || r.state.SuggestionID != suggestionID {
		return r.state, domain.ErrNoPendingSuggestion
	}

	r.state = domain.Idle()
	return r.state, nil
}

func (r *Resolver) checkPending(kind domain.ResolutionKind, suggestionID string) error {
	if r.state.Kind != kind || r.state.SuggestionID != suggestionID {
		return domain.ErrNoPendingSuggestion
	}
	return nil
}

// continueFromExact runs the cache steps and, if both miss, the remote step.
// Callers hold r.mu.
func (r *Resolver) continueFromExact(ctx context.Context, q string) (domain.Resolution, error) {
	if entry, ok := r.cache.LookupExact(ctx, q); ok {
		logger.Info("exact cache hit for key %q", entry.Key)
		r.state = domain.Resolution{
			Kind:     domain.ResolutionFromCache,
			Question: q,
			Answer:   entry.Answer,
		}
		return r.state, nil
	}

	if match, ok := r.cache.LookupFuzzy(ctx, q); ok {
		logger.Info("suggesting cached question %q", match.Entry.Question)
		r.state = domain.Resolution{
			Kind:         domain.ResolutionAwaitingCacheChoice,
			Question:     q,
			SuggestionID: r.newID(),
			Cache:        &match,
		}
		return r.state, nil
	}

	return r.callRemote(ctx, q)
}

// callRemote asks the remote service and caches a successful answer.
// Callers hold r.mu.
func (r *Resolver) callRemote(ctx context.Context, q string) (domain.Resolution, error) {
	done := logger.Timed("remote answer")
	answer, err := r.answerer.Answer(ctx, q)
	done()

	if err != nil {
		logger.Warn("remote answer failed: %v", err)
		r.state = domain.Resolution{
			Kind:     domain.ResolutionFailed,
			Question: q,
			Err:      err,
		}
		return r.state, fmt.Errorf("remote answer: %w", err)
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = domain.NoAnswerMarker
	}
	r.cache.Put(ctx, q, answer)

	r.state = domain.Resolution{
		Kind:     domain.ResolutionFromRemote,
		Question: q,
		Answer:   answer,
	}
	return r.state, nil
}
