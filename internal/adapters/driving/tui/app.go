package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui/views/ask"
	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui/views/faq"
	"github.com/custodia-labs/faqdesk/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	askView *ask.View
	faqView *faq.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		keymap: km,
		askView: ask.NewView(s, km, ask.Services{
			Resolver: ports.Resolver,
			Corpus:   ports.Corpus,
			Mail:     ports.Mail,
			Actions:  ports.Actions,
			Cooldown: ports.Cooldown,
		}),
		faqView:     faq.NewView(s, km, ports.Corpus),
		currentView: messages.ViewAsk,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.askView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("faqdesk - RSJP/RWJP FAQ"),
		a.askView.Init(),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewAsk:
			a.askView, cmd = a.askView.Update(msg)
		case messages.ViewFaq:
			a.faqView, cmd = a.faqView.Update(msg)
		case messages.ViewHelp:
			if keymap.Matches(msg.String(), a.keymap.Back) || keymap.Matches(msg.String(), a.keymap.Help) {
				a.currentView = messages.ViewAsk
			}
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewFaq {
			return a, a.faqView.Init()
		}
		return a, nil

	case messages.ConfigReloaded:
		a.askView.SetStatus("Settings reloaded")
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.currentView = messages.ViewAsk

	case messages.Quit:
		return a, tea.Quit
	}

	// Pipeline results, ticks and action outcomes belong to the ask view
	// whichever view is showing.
	a.askView, cmd = a.askView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewFaq:
		return a.faqView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.askView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	rows := [][2]string{
		{"enter", "ask the question"},
		{"alt+enter", "new line"},
		{"tab", "fill a quick template"},
		{"↑/↓, 1-3", "pick an option"},
		{"esc", "cancel a suggestion / back"},
		{"n", "new question"},
		{"c", "copy the answer"},
		{"m", "mail the office to confirm"},
		{"ctrl+f", "browse the FAQ"},
		{"ctrl+c", "quit"},
	}

	lines := []string{a.styles.Title.Render("Help"), ""}
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("  %-12s %s", r[0], r[1]))
	}
	lines = append(lines,
		"",
		a.styles.Muted.Render(domain.ScopeNote),
		"",
		a.styles.Help.Render("[esc] back"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// AskView returns the ask view.
func (a *App) AskView() *ask.View {
	return a.askView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.askView.SetDimensions(width, height)
	a.faqView.SetDimensions(width, height)
}
