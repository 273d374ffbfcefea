package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/faqdesk/internal/adapters/driven/corpus"
	"github.com/custodia-labs/faqdesk/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/faqdesk/internal/core/domain"
	"github.com/custodia-labs/faqdesk/internal/core/services"
)

// stubAnswerer is a remote answer service that counts its calls.
type stubAnswerer struct {
	mu     sync.Mutex
	answer string
	err    error
	calls  int
}

func (s *stubAnswerer) Answer(context.Context, string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.answer, s.err
}

func (s *stubAnswerer) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// stubActions records clipboard and mail calls.
type stubActions struct {
	copied string
	opened *domain.OfficeMail
	err    error
}

func (a *stubActions) CopyToClipboard(_ context.Context, text string) error {
	a.copied = text
	return a.err
}

func (a *stubActions) OpenMail(_ context.Context, mail domain.OfficeMail) error {
	a.opened = &mail
	return a.err
}

// testServices wires real services over the embedded corpus and an
// in-memory cache slot.
type testServices struct {
	answerer *stubAnswerer
	cache    *services.AnswerCache
	actions  *stubActions
	settings *services.SettingsService
}

func wireTestServices(t *testing.T, answerer *stubAnswerer) *testServices {
	t.Helper()
	t.Setenv(services.EnvRemoteURL, "")
	t.Setenv(services.EnvRemoteToken, "")

	corpusService := services.NewCorpusService(corpus.Embedded())
	cache := services.NewAnswerCache(memory.NewCacheSlot())
	resolver := services.NewResolver(corpusService, cache, answerer)
	settings := services.NewSettingsService(memory.NewConfigStore())
	actions := &stubActions{}

	SetServices(Services{
		Resolver: resolver,
		Corpus:   corpusService,
		Cache:    cache,
		Settings: settings,
		Mail:     services.NewMailService(),
		Actions:  actions,
	})
	t.Cleanup(func() { SetServices(Services{}) })

	return &testServices{answerer: answerer, cache: cache, actions: actions, settings: settings}
}

// runCommand executes the root command with args and returns everything it printed.
func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// resetFlags restores every flag to its default so runs do not leak into each other.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
