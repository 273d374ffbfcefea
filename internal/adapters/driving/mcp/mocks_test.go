package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/faqdesk/internal/core/domain"
)

// mockResolver is a mock implementation of driving.ResolverService.
type mockResolver struct {
	result domain.Resolution
	err    error
	calls  []string
}

func (m *mockResolver) Ask(_ context.Context, question string) (domain.Resolution, error) {
	m.calls = append(m.calls, "ask:"+question)
	return m.result, m.err
}

func (m *mockResolver) UseFaqAnswer(_ string, lang domain.Language) (domain.Resolution, error) {
	m.calls = append(m.calls, "faq:"+string(lang))
	return m.result, m.err
}

func (m *mockResolver) AskAnyway(_ context.Context, _ string) (domain.Resolution, error) {
	m.calls = append(m.calls, "ask_anyway")
	return m.result, m.err
}

func (m *mockResolver) UseCachedAnswer(_ string) (domain.Resolution, error) {
	m.calls = append(m.calls, "use_cache")
	return m.result, m.err
}

func (m *mockResolver) AskRemoteInstead(_ context.Context, _ string) (domain.Resolution, error) {
	m.calls = append(m.calls, "ask_remote")
	return m.result, m.err
}

func (m *mockResolver) Cancel(_ string) (domain.Resolution, error) {
	m.calls = append(m.calls, "cancel")
	return m.result, m.err
}

func (m *mockResolver) Current() domain.Resolution {
	return m.result
}

// mockCorpus is a mock implementation of driving.CorpusService.
type mockCorpus struct {
	groups []domain.FaqGroup
	match  *domain.FaqMatch
}

func (m *mockCorpus) FindBestMatch(_ string) (domain.FaqMatch, bool) {
	if m.match == nil {
		return domain.FaqMatch{}, false
	}
	return *m.match, true
}

func (m *mockCorpus) Groups() []domain.FaqGroup {
	return m.groups
}

func (m *mockCorpus) Templates() []domain.TemplateSection {
	return nil
}

// mockCooldown is a mock implementation of driving.CooldownGate.
type mockCooldown struct {
	allow     bool
	remaining int
	allowed   int
}

func (m *mockCooldown) Allow() bool {
	m.allowed++
	return m.allow
}

func (m *mockCooldown) Remaining() time.Duration {
	return time.Duration(m.remaining) * time.Second
}

func (m *mockCooldown) RemainingSeconds() int {
	return m.remaining
}

func testGroups() []domain.FaqGroup {
	return []domain.FaqGroup{
		{
			Title:     "Dormitory",
			Questions: domain.FaqPhrasings{JA: []string{"寮はありますか"}, EN: []string{"Is there a dorm?"}},
			Answers:   domain.FaqAnswers{JA: "寮があります。", EN: "There is a dorm."},
		},
	}
}
