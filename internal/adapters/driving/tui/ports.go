// Package tui provides an interactive terminal user interface for faqdesk.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/faqdesk/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Resolver runs the answer-resolution pipeline.
	Resolver driving.ResolverService

	// Corpus provides the FAQ groups and quick templates.
	Corpus driving.CorpusService

	// Mail composes the office confirmation mail.
	Mail driving.MailService

	// Actions copies answers and opens the mail client.
	Actions driving.AnswerActionService

	// Cooldown paces questions sent from the input.
	Cooldown driving.CooldownGate

	// Settings exposes the current settings.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(resolver driving.ResolverService, corpus driving.CorpusService) *Ports {
	return &Ports{
		Resolver: resolver,
		Corpus:   corpus,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Resolver == nil {
		return ErrMissingResolver
	}
	if p.Corpus == nil {
		return ErrMissingCorpus
	}
	return nil
}
