// Package corpus provides the compiled-in static FAQ corpus.
//
// The corpus is a YAML document embedded into the binary, so answering a
// static FAQ never touches the network or the filesystem.
package corpus

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/faqdesk/internal/core/domain"
	"github.com/custodia-labs/faqdesk/internal/core/ports/driven"
)

//go:embed faq.yaml
var embeddedCorpus []byte

// Ensure Source implements the interface.
var _ driven.CorpusSource = (*Source)(nil)

// document is the on-disk shape of the corpus.
type document struct {
	Groups    []domain.FaqGroup        `yaml:"groups"`
	Templates []domain.TemplateSection `yaml:"templates"`
}

// Source is an immutable corpus decoded from YAML.
type Source struct {
	groups    []domain.FaqGroup
	templates []domain.TemplateSection
}

// Embedded returns the corpus compiled into the binary.
// It panics if the embedded document is invalid, which a test guards against.
func Embedded() *Source {
	src, err := Parse(embeddedCorpus)
	if err != nil {
		panic(fmt.Sprintf("embedded FAQ corpus: %v", err))
	}
	return src
}

// Parse decodes and validates a corpus document.
func Parse(data []byte) (*Source, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCorpus, err)
	}
	if len(doc.Groups) == 0 {
		return nil, fmt.Errorf("%w: no FAQ groups", domain.ErrInvalidCorpus)
	}
	for i, g := range doc.Groups {
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("group %d: %w", i, err)
		}
	}
	return &Source{groups: doc.Groups, templates: doc.Templates}, nil
}

// Groups returns the FAQ groups in corpus order.
func (s *Source) Groups() []domain.FaqGroup {
	return s.groups
}

// Templates returns the quick-question template sections.
func (s *Source) Templates() []domain.TemplateSection {
	return s.templates
}
