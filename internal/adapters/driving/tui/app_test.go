package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui/views/ask"
	"github.com/custodia-labs/faqdesk/internal/core/domain"
)

func newTestPorts() *Ports {
	return &Ports{
		Resolver: &MockResolverService{},
		Corpus: &MockCorpusService{GroupsList: []domain.FaqGroup{{
			Title:   "Dormitory",
			Answers: domain.FaqAnswers{JA: "寮があります。", EN: "There is a dorm."},
		}}},
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)
	app.SetDimensions(100, 40)
	return app
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewAsk, app.CurrentView())
	assert.False(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{Corpus: &MockCorpusService{}})

	assert.ErrorIs(t, err, ErrMissingResolver)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, app, app.WithContext(ctx))
}

func TestApp_Init(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	assert.NotNil(t, app.Init())
}

func TestApp_View_NotReady(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Nil(t, cmd)
	assert.True(t, model.(*App).Ready())
	assert.Contains(t, app.View(), "FAQ Desk")
}

func TestApp_Update_CtrlCQuits(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_QuitMessage(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_SwitchToFaqAndBack(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, messages.ViewFaq, app.CurrentView())
	assert.Contains(t, app.View(), "Dormitory")

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, messages.ViewAsk, app.CurrentView())
}

func TestApp_HelpView(t *testing.T) {
	app := newTestApp(t)

	app.Update(messages.ViewChanged{View: messages.ViewHelp})
	assert.Equal(t, messages.ViewHelp, app.CurrentView())

	out := app.View()
	assert.Contains(t, out, "Help")
	assert.Contains(t, out, "mail the office")

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewAsk, app.CurrentView())
}

func TestApp_ResolutionReachesAskViewFromFaq(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewFaq})

	app.Update(messages.ResolutionUpdated{Resolution: domain.Resolution{
		Kind:   domain.ResolutionFromRemote,
		Answer: "Answer text.",
	}})

	assert.Equal(t, ask.ModeAnswered, app.AskView().Mode())
}

func TestApp_ConfigReloaded(t *testing.T) {
	app := newTestApp(t)

	app.Update(messages.ConfigReloaded{})

	assert.Contains(t, app.View(), "Settings reloaded")
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewFaq})

	app.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, app.Err(), "boom")
	assert.Equal(t, messages.ViewAsk, app.CurrentView())
	assert.Contains(t, app.View(), "Error: boom")
}
