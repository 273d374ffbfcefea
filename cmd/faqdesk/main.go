// Command faqdesk answers questions about the RSJP/RWJP programs from the
// built-in FAQ, a local answer cache and a remote answer service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/faqdesk/internal/adapters/driven/answer/webhook"
	"github.com/custodia-labs/faqdesk/internal/adapters/driven/clipboard"
	configfile "github.com/custodia-labs/faqdesk/internal/adapters/driven/config/file"
	"github.com/custodia-labs/faqdesk/internal/adapters/driven/corpus"
	"github.com/custodia-labs/faqdesk/internal/adapters/driven/opener"
	filestorage "github.com/custodia-labs/faqdesk/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/faqdesk/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/faqdesk/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/faqdesk/internal/adapters/driving/cli"
	"github.com/custodia-labs/faqdesk/internal/core/domain"
	"github.com/custodia-labs/faqdesk/internal/core/ports/driven"
	"github.com/custodia-labs/faqdesk/internal/core/services"
	"github.com/custodia-labs/faqdesk/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if _, err := configfile.LoadDotEnv(); err != nil {
		logger.Warn("reading .env: %v", err)
	}

	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return err
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading settings: %v\n", err)
		return err
	}
	if err := settings.Match.Validate(); err != nil {
		logger.Warn("match settings ignored: %v", err)
		settings.Match = domain.DefaultMatchSettings()
	}

	slot, closeSlot, err := openCacheSlot(settings.Cache.Backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening answer cache: %v\n", err)
		return err
	}
	defer closeSlot()

	corpusService := services.NewCorpusService(corpus.Embedded())
	cacheService := services.NewAnswerCache(slot,
		services.WithMaxEntries(settings.Cache.MaxEntries),
		services.WithMatchSettings(settings.Match),
	)
	answerer := webhook.NewSwitch(settings.Remote)
	resolver := services.NewResolver(corpusService, cacheService, answerer,
		services.WithResolverMatchSettings(settings.Match),
	)
	cooldown := services.NewCooldown(settings.Ask.Cooldown)

	cli.SetServices(cli.Services{
		Resolver: resolver,
		Corpus:   corpusService,
		Cache:    cacheService,
		Settings: settingsService,
		Mail:     services.NewMailService(),
		Actions:  services.NewAnswerActionService(clipboard.New(), opener.New()),
		Cooldown: cooldown,
	})
	cli.SetVersion(version)

	// The cache backend and size are fixed for the life of the process.
	cli.SetConfigWatcher(func(ctx context.Context, onReload func()) error {
		return configStore.Watch(ctx, configfile.DefaultWatchDebounce, func() {
			next, err := settingsService.Get()
			if err != nil {
				logger.Warn("reloading settings: %v", err)
				return
			}
			if err := next.Match.Validate(); err != nil {
				logger.Warn("reloaded match settings ignored: %v", err)
			} else {
				resolver.SetMatchSettings(next.Match)
				cacheService.SetMatchSettings(next.Match)
			}
			answerer.Update(next.Remote)
			cooldown.SetInterval(next.Ask.Cooldown)
			logger.Info("settings reloaded from %s", configStore.Path())
			onReload()
		})
	})

	return cli.Execute(ctx)
}

// openCacheSlot opens the persisted cache slot for backend.
// The returned func releases it.
func openCacheSlot(backend domain.CacheBackend) (driven.CacheSlot, func(), error) {
	switch backend {
	case domain.CacheBackendFile:
		slot, err := filestorage.NewCacheSlot("")
		if err != nil {
			return nil, nil, err
		}
		return slot, func() {}, nil
	case domain.CacheBackendMemory:
		return memory.NewCacheSlot(), func() {}, nil
	default:
		store, err := sqlite.NewStore("")
		if err != nil {
			return nil, nil, err
		}
		return store.CacheSlot(domain.CacheSlotName), func() {
			if err := store.Close(); err != nil {
				logger.Warn("closing cache store: %v", err)
			}
		}, nil
	}
}
