package driven

import "context"

// Answerer sends a free-text question to the remote answer service and
// returns its answer text.
//
// The service is opaque: whatever sits behind the endpoint (a workflow
// engine, an LLM, a human queue) only has to return an answer for the
// question. Implementations return a *domain.TransportError for non-2xx
// responses and domain.ErrRemoteNotConfigured when no endpoint is set.
// An empty answer is not an error.
type Answerer interface {
	Answer(ctx context.Context, question string) (string, error)
}
