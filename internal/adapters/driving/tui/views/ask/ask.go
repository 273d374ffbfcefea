// Package ask provides the question and answer view for the TUI.
package ask

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/faqdesk/internal/core/domain"
	"github.com/custodia-labs/faqdesk/internal/core/ports/driving"
)

const savedAtLayout = "2006-01-02 15:04"

// Mode is what the view is waiting for.
type Mode int

const (
	// ModeInput means the user is typing a question.
	ModeInput Mode = iota
	// ModeThinking means a resolver call is in flight.
	ModeThinking
	// ModeChoosing means a suggestion waits for a choice.
	ModeChoosing
	// ModeAnswered means an answer or a failure is shown.
	ModeAnswered
)

// Services are the core services the view drives. Only Resolver is required.
type Services struct {
	Resolver driving.ResolverService
	Corpus   driving.CorpusService
	Mail     driving.MailService
	Actions  driving.AnswerActionService
	Cooldown driving.CooldownGate
}

// View is the ask screen: question input, suggestion choices, the answer
// and a status bar with the cooldown countdown.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.AskInput
	choices   *list.ChoiceList
	statusbar *status.Bar
	spinner   spinner.Model

	services Services
	ctx      context.Context
	now      func() time.Time

	// tickInterval paces the cooldown countdown.
	tickInterval time.Duration

	resolution  domain.Resolution
	templates   []domain.QuickTemplate
	templateIdx int
	mode        Mode

	width  int
	height int
	ready  bool
}

// NewView creates a new ask view.
func NewView(s *styles.Styles, km *keymap.KeyMap, services Services) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	var templates []domain.QuickTemplate
	if services.Corpus != nil {
		for _, section := range services.Corpus.Templates() {
			templates = append(templates, section.Items...)
		}
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = s.Subtitle

	return &View{
		styles:       s,
		keymap:       km,
		input:        input.NewAskInput(s, km),
		choices:      list.NewChoiceList(s),
		statusbar:    status.NewBar(s, km),
		spinner:      sp,
		services:     services,
		ctx:          context.Background(),
		now:          time.Now,
		tickInterval: time.Second,
		resolution:   domain.Idle(),
		templates:    templates,
		mode:         ModeInput,
		width:        80,
		height:       24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the ask view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ResolutionUpdated:
		return v, v.handleResolution(msg)

	case messages.CooldownTick:
		return v, v.handleCooldownTick()

	case messages.ActionCompleted:
		if msg.Err != nil {
			v.statusbar.SetMessage(msg.Err.Error())
		} else {
			v.statusbar.SetMessage(msg.Message)
		}
		return v, nil

	case messages.ErrorOccurred:
		v.mode = ModeAnswered
		v.resolution = domain.Resolution{Kind: domain.ResolutionFailed, Err: msg.Err}
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil

	case spinner.TickMsg:
		if v.mode != ModeThinking {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	if v.mode == ModeInput {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

// handleKeyMsg processes keyboard input by mode.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	if keymap.Matches(k, v.keymap.Faq) && v.mode != ModeThinking {
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewFaq} }
	}

	switch v.mode {
	case ModeInput:
		switch {
		case keymap.Matches(k, v.keymap.Submit):
			return v, v.submit()
		case keymap.Matches(k, v.keymap.Template):
			v.nextTemplate()
			return v, nil
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd

	case ModeThinking:
		// Keys are ignored while a call is in flight.
		return v, nil

	case ModeChoosing:
		switch {
		case keymap.Matches(k, v.keymap.Select):
			return v, v.choose(v.choices.Selected())
		case keymap.Matches(k, v.keymap.Back):
			return v, v.cancel()
		}
		v.choices, _ = v.choices.Update(msg)
		return v, nil

	case ModeAnswered:
		switch {
		case keymap.Matches(k, v.keymap.NewQuestion):
			return v, v.newQuestion()
		case keymap.Matches(k, v.keymap.Copy):
			return v, v.copyAnswer()
		case keymap.Matches(k, v.keymap.Mail):
			return v, v.mailOffice()
		case keymap.Matches(k, v.keymap.Help):
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewHelp} }
		}
	}
	return v, nil
}

// submit sends the question if the cooldown allows it.
func (v *View) submit() tea.Cmd {
	question := strings.TrimSpace(v.input.Value())
	if question == "" {
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(domain.ErrEmptyQuestion.Error())
		return nil
	}
	if v.services.Resolver == nil {
		return func() tea.Msg { return messages.ErrorOccurred{Err: ErrNoResolver} }
	}

	pending := v.services.Resolver.Current().Kind.IsAwaiting()
	if gate := v.services.Cooldown; gate != nil && !pending && !gate.Allow() {
		v.statusbar.SetMessage(fmt.Sprintf("%s (%ds)", domain.ErrCooldownActive, gate.RemainingSeconds()))
		v.statusbar.SetCooldown(gate.RemainingSeconds())
		return v.tick()
	}

	v.startThinking()
	resolver := v.services.Resolver
	ctx := v.ctx
	cmds := []tea.Cmd{
		v.spinner.Tick,
		func() tea.Msg {
			res, err := resolver.Ask(ctx, question)
			return messages.ResolutionUpdated{Resolution: res, Err: err}
		},
	}
	if v.services.Cooldown != nil {
		v.statusbar.SetCooldown(v.services.Cooldown.RemainingSeconds())
		cmds = append(cmds, v.tick())
	}
	return tea.Batch(cmds...)
}

// choose answers the pending suggestion with the option at index.
//
// FAQ suggestion: 0 Japanese, 1 English, 2 ask anyway.
// Cache suggestion: 0 use saved answer, 1 ask remote, 2 cancel.
func (v *View) choose(index int) tea.Cmd {
	resolver := v.services.Resolver
	if resolver == nil {
		return func() tea.Msg { return messages.ErrorOccurred{Err: ErrNoResolver} }
	}
	ctx := v.ctx
	id := v.resolution.SuggestionID

	var step func() (domain.Resolution, error)
	remote := false
	switch v.resolution.Kind {
	case domain.ResolutionAwaitingFaqChoice:
		switch index {
		case 0:
			step = func() (domain.Resolution, error) { return resolver.UseFaqAnswer(id, domain.LanguageJA) }
		case 1:
			step = func() (domain.Resolution, error) { return resolver.UseFaqAnswer(id, domain.LanguageEN) }
		default:
			step = func() (domain.Resolution, error) { return resolver.AskAnyway(ctx, id) }
			remote = true
		}
	case domain.ResolutionAwaitingCacheChoice:
		switch index {
		case 0:
			step = func() (domain.Resolution, error) { return resolver.UseCachedAnswer(id) }
		case 1:
			step = func() (domain.Resolution, error) { return resolver.AskRemoteInstead(ctx, id) }
			remote = true
		default:
			step = func() (domain.Resolution, error) { return resolver.Cancel(id) }
		}
	default:
		return nil
	}

	run := func() tea.Msg {
		res, err := step()
		return messages.ResolutionUpdated{Resolution: res, Err: err}
	}
	if remote {
		v.startThinking()
		return tea.Batch(v.spinner.Tick, run)
	}
	return run
}

// cancel drops the pending suggestion.
func (v *View) cancel() tea.Cmd {
	resolver := v.services.Resolver
	if resolver == nil {
		return nil
	}
	id := v.resolution.SuggestionID
	return func() tea.Msg {
		res, err := resolver.Cancel(id)
		return messages.ResolutionUpdated{Resolution: res, Err: err}
	}
}

func (v *View) startThinking() {
	v.mode = ModeThinking
	v.input.Blur()
	v.statusbar.SetState(status.StateThinking)
	v.statusbar.SetMessage("")
}

// handleResolution moves the view to the mode matching the new state.
func (v *View) handleResolution(msg messages.ResolutionUpdated) tea.Cmd {
	res := msg.Resolution

	if msg.Err != nil && res.Kind != domain.ResolutionFailed {
		// Stale or rejected step: keep the held state, show the error.
		v.statusbar.SetMessage(msg.Err.Error())
		if errors.Is(msg.Err, domain.ErrSuggestionPending) {
			v.resolution = res
			v.enterChoosing()
		} else if v.mode == ModeThinking {
			v.mode = ModeInput
			v.statusbar.SetState(status.StateError)
			return v.input.Focus()
		}
		return nil
	}

	v.resolution = res
	switch {
	case res.Kind.IsAwaiting():
		v.enterChoosing()
		return nil
	case res.Kind == domain.ResolutionFailed:
		v.mode = ModeAnswered
		v.statusbar.SetState(status.StateError)
		if res.Err != nil {
			v.statusbar.SetMessage(res.Err.Error())
		}
		return nil
	case res.Kind.IsTerminal():
		v.mode = ModeAnswered
		v.statusbar.SetState(status.StateAnswered)
		v.statusbar.SetMessage(res.Note())
		return nil
	default:
		// Cancelled back to idle.
		v.mode = ModeInput
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage("")
		return v.input.Focus()
	}
}

func (v *View) enterChoosing() {
	v.mode = ModeChoosing
	v.input.Blur()
	v.statusbar.SetState(status.StateChoosing)

	switch v.resolution.Kind {
	case domain.ResolutionAwaitingFaqChoice:
		g := v.resolution.Faq.Group
		v.choices.SetItems([]list.Item{
			{Label: "日本語の回答を表示", Detail: g.Answers.JA},
			{Label: "Show English answer", Detail: g.Answers.EN},
			{Label: "Ask anyway / それでも質問する", Detail: "Check saved answers, then ask the remote service"},
		})
	case domain.ResolutionAwaitingCacheChoice:
		v.choices.SetItems([]list.Item{
			{Label: "Use saved answer (no API call)", Detail: v.resolution.Cache.Entry.Answer},
			{Label: "Ask the remote service instead"},
			{Label: "Cancel"},
		})
	}
}

// handleCooldownTick refreshes the countdown and keeps ticking until it ends.
func (v *View) handleCooldownTick() tea.Cmd {
	gate := v.services.Cooldown
	if gate == nil {
		v.statusbar.SetCooldown(0)
		return nil
	}
	remaining := gate.RemainingSeconds()
	v.statusbar.SetCooldown(remaining)
	if remaining <= 0 {
		return nil
	}
	return v.tick()
}

func (v *View) tick() tea.Cmd {
	return tea.Tick(v.tickInterval, func(time.Time) tea.Msg { return messages.CooldownTick{} })
}

// nextTemplate fills the input with the next quick template.
func (v *View) nextTemplate() {
	if len(v.templates) == 0 {
		return
	}
	t := v.templates[v.templateIdx%len(v.templates)]
	v.templateIdx++
	v.input.SetValue(t.Text)
	v.statusbar.SetMessage("Template: " + t.Label)
}

func (v *View) newQuestion() tea.Cmd {
	v.mode = ModeInput
	v.input.Reset()
	v.choices.SetItems(nil)
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
	return v.input.Focus()
}

func (v *View) copyAnswer() tea.Cmd {
	actions := v.services.Actions
	text := v.resolution.Answer
	ctx := v.ctx
	return func() tea.Msg {
		if actions == nil {
			return messages.ActionCompleted{Err: ErrNoActions}
		}
		if text == "" {
			return messages.ActionCompleted{Message: "Nothing to copy"}
		}
		if err := actions.CopyToClipboard(ctx, text); err != nil {
			return messages.ActionCompleted{Err: fmt.Errorf("copy: %w", err)}
		}
		return messages.ActionCompleted{Message: "Copied to clipboard"}
	}
}

func (v *View) mailOffice() tea.Cmd {
	actions := v.services.Actions
	mailer := v.services.Mail
	if actions == nil || mailer == nil {
		return func() tea.Msg { return messages.ActionCompleted{Err: ErrNoActions} }
	}
	mail := mailer.Compose(v.resolution.Question, v.resolution.Answer, v.now())
	ctx := v.ctx
	return func() tea.Msg {
		if err := actions.OpenMail(ctx, mail); err != nil {
			return messages.ActionCompleted{Err: fmt.Errorf("mail: %w", err)}
		}
		return messages.ActionCompleted{Message: "Opening mail client..."}
	}
}

// View renders the ask view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 12)
	sections = append(sections,
		v.styles.Title.Render("RSJP/RWJP FAQ Desk"),
		v.styles.Muted.Render(domain.ScopeNote),
		"",
		v.input.View(),
		"",
	)

	switch v.mode {
	case ModeThinking:
		sections = append(sections, v.spinner.View()+" "+v.styles.Muted.Render("Thinking..."))
	case ModeChoosing:
		sections = append(sections, v.renderSuggestion(), "", v.choices.View())
	case ModeAnswered:
		sections = append(sections, v.renderAnswer())
	case ModeInput:
		if len(v.templates) > 0 {
			sections = append(sections, v.styles.Help.Render("tab: fill a quick template"))
		}
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderSuggestion() string {
	var lines []string
	switch v.resolution.Kind {
	case domain.ResolutionAwaitingFaqChoice:
		m := v.resolution.Faq
		lines = []string{
			v.styles.Warning.Render("A matching FAQ entry was found."),
			"FAQ: " + m.Group.Title,
			"Matched: " + m.Phrasing,
			fmt.Sprintf("Similarity: %.2f", m.Score),
		}
	case domain.ResolutionAwaitingCacheChoice:
		m := v.resolution.Cache
		lines = []string{
			v.styles.Warning.Render("A similar question was answered before."),
			"Question: " + m.Entry.Question,
			"Saved at: " + m.Entry.SavedTime().Format(savedAtLayout),
			fmt.Sprintf("Similarity: %.2f", m.Score),
		}
	}
	return v.styles.Suggestion.Width(v.contentWidth()).Render(strings.Join(lines, "\n"))
}

func (v *View) renderAnswer() string {
	res := v.resolution
	if res.Kind == domain.ResolutionFailed {
		msg := "unknown error"
		if res.Err != nil {
			msg = res.Err.Error()
		}
		return v.styles.Error.Width(v.contentWidth()).Render("Error: " + msg)
	}

	sections := make([]string, 0, 6)
	if banner := res.Banner(); banner != "" {
		sections = append(sections, v.styles.Banner.Render(banner))
	}
	if res.Kind == domain.ResolutionFromSimilarCache && res.Cache != nil {
		sections = append(sections, v.styles.Muted.Render(fmt.Sprintf(
			"Matched question: %s\nSaved at: %s\nSimilarity: %.2f",
			res.Cache.Entry.Question,
			res.Cache.Entry.SavedTime().Format(savedAtLayout),
			res.Cache.Score,
		)))
	}
	sections = append(sections,
		v.styles.Answer.Width(v.contentWidth()).Render(strings.TrimSpace(res.Answer)),
		"",
		v.styles.Disclaimer.Width(v.contentWidth()).Render(domain.DisclaimerBlock()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) contentWidth() int {
	w := v.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.choices.SetDimensions(width, height-16)
	v.statusbar.SetWidth(width)
}

// SetStatus shows a transient notice in the status bar.
func (v *View) SetStatus(message string) {
	v.statusbar.SetMessage(message)
}

// Mode returns what the view is waiting for.
func (v *View) Mode() Mode {
	return v.mode
}

// Resolution returns the last resolver state the view received.
func (v *View) Resolution() domain.Resolution {
	return v.resolution
}

// Question returns the current input text.
func (v *View) Question() string {
	return v.input.Value()
}

// SetQuestion replaces the input text.
func (v *View) SetQuestion(q string) {
	v.input.SetValue(q)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// InputFocused returns whether the question input has focus.
func (v *View) InputFocused() bool {
	return v.mode == ModeInput
}
