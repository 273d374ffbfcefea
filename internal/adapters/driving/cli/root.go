// Package cli provides the cobra command tree for faqdesk.
package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/faqdesk/internal/core/ports/driving"
	"github.com/custodia-labs/faqdesk/internal/logger"
)

// version is set at build time.
var version = "dev"

var verbose bool

// Services holds the core services the commands drive.
type Services struct {
	Resolver driving.ResolverService
	Corpus   driving.CorpusService
	Cache    driving.AnswerCacheService
	Settings driving.SettingsService
	Mail     driving.MailService
	Actions  driving.AnswerActionService
	Cooldown driving.CooldownGate
}

var (
	resolverService driving.ResolverService
	corpusService   driving.CorpusService
	cacheService    driving.AnswerCacheService
	settingsService driving.SettingsService
	mailService     driving.MailService
	actionService   driving.AnswerActionService
	cooldownGate    driving.CooldownGate

	// configWatcher starts live config reload for long-running commands.
	// onReload runs after new settings have been applied.
	configWatcher func(ctx context.Context, onReload func()) error

	now = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "faqdesk",
	Short: "FAQ desk for the RSJP/RWJP programs",
	Long: `faqdesk answers questions about the RSJP/RWJP short-term programs.

A question is matched against the built-in FAQ first, then against answers
saved from earlier questions, and only then sent to the remote answer service.

RSJP / RWJP only. Other Ritsumeikan programs are out of scope.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline decisions to stderr")
}

// SetServices wires the core services into the commands.
func SetServices(s Services) {
	resolverService = s.Resolver
	corpusService = s.Corpus
	cacheService = s.Cache
	settingsService = s.Settings
	mailService = s.Mail
	actionService = s.Actions
	cooldownGate = s.Cooldown
}

// SetConfigWatcher registers the function that starts config live reload.
// It is invoked by the tui and mcp commands.
func SetConfigWatcher(watch func(ctx context.Context, onReload func()) error) {
	configWatcher = watch
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// startConfigWatcher starts live reload if one is registered.
// A watcher failure is logged and does not stop the command.
func startConfigWatcher(ctx context.Context, onReload func()) {
	if configWatcher == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if onReload == nil {
		onReload = func() {}
	}
	if err := configWatcher(ctx, onReload); err != nil {
		logger.Warn("config live reload disabled: %v", err)
	}
}
