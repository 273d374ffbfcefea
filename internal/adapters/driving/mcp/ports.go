package mcp

import (
	"github.com/custodia-labs/faqdesk/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Resolver runs the answer-resolution pipeline.
	Resolver driving.ResolverService

	// Corpus provides the FAQ groups.
	Corpus driving.CorpusService

	// Cooldown paces ask calls. Optional.
	Cooldown driving.CooldownGate
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Resolver == nil {
		return ErrMissingResolver
	}
	if p.Corpus == nil {
		return ErrMissingCorpus
	}
	return nil
}
