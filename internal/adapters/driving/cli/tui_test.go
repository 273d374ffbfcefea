package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui"
)

func TestTUICmd_Registered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"tui"})

	require.NoError(t, err)
	assert.Equal(t, "tui", cmd.Name())
}

func TestTUIPorts_FromServices(t *testing.T) {
	wireTestServices(t, &stubAnswerer{})

	ports := tuiPorts()

	assert.Equal(t, resolverService, ports.Resolver)
	assert.Equal(t, corpusService, ports.Corpus)
	assert.Equal(t, mailService, ports.Mail)
	assert.Equal(t, actionService, ports.Actions)
	assert.NoError(t, ports.Validate())
}

func TestTUIPorts_Unwired(t *testing.T) {
	SetServices(Services{})

	err := tuiPorts().Validate()

	assert.ErrorIs(t, err, tui.ErrMissingResolver)
}

func TestMCPServeCmd_Flags(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"mcp", "serve"})
	require.NoError(t, err)

	flag := cmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_Unwired(t *testing.T) {
	SetServices(Services{})

	_, err := runCommand(t, "", "mcp", "serve")

	assert.Error(t, err)
}

func TestStartConfigWatcher(t *testing.T) {
	t.Cleanup(func() { SetConfigWatcher(nil) })

	t.Run("no watcher registered", func(t *testing.T) {
		SetConfigWatcher(nil)
		assert.NotPanics(t, func() { startConfigWatcher(context.Background(), nil) })
	})

	t.Run("passes the reload hook", func(t *testing.T) {
		reloaded := false
		SetConfigWatcher(func(_ context.Context, onReload func()) error {
			onReload()
			return nil
		})

		startConfigWatcher(context.Background(), func() { reloaded = true })

		assert.True(t, reloaded)
	})

	t.Run("nil hook is replaced", func(t *testing.T) {
		SetConfigWatcher(func(_ context.Context, onReload func()) error {
			onReload()
			return nil
		})

		assert.NotPanics(t, func() { startConfigWatcher(context.Background(), nil) })
	})

	t.Run("watcher error does not propagate", func(t *testing.T) {
		SetConfigWatcher(func(context.Context, func()) error {
			return errors.New("no inotify")
		})

		assert.NotPanics(t, func() { startConfigWatcher(context.Background(), nil) })
	})
}
