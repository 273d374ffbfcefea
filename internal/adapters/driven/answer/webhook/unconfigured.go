package webhook

import (
	"context"

	"github.com/custodia-labs/faqdesk/internal/core/domain"
	"github.com/custodia-labs/faqdesk/internal/core/ports/driven"
)

// Ensure Unconfigured implements the interface.
var _ driven.Answerer = Unconfigured{}

// Unconfigured is the answerer used when no endpoint is set.
// Every call fails with domain.ErrRemoteNotConfigured.
type Unconfigured struct{}

// Answer always returns domain.ErrRemoteNotConfigured.
func (Unconfigured) Answer(context.Context, string) (string, error) {
	return "", domain.ErrRemoteNotConfigured
}

// New returns a Client for a configured endpoint and Unconfigured otherwise.
func New(settings domain.RemoteSettings) driven.Answerer {
	if !settings.IsConfigured() {
		return Unconfigured{}
	}
	client, err := NewClient(Config{
		URL:     settings.URL,
		Token:   settings.Token,
		Timeout: settings.Timeout,
	})
	if err != nil {
		return Unconfigured{}
	}
	return client
}
