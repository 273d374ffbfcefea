// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui/styles"
)

const (
	defaultHeight = 3
	charLimit     = 1000
)

// AskInput wraps a bubbles textarea for multi-line questions.
// Enter is left to the caller; the newline binding inserts line breaks.
type AskInput struct {
	textarea textarea.Model
	styles   *styles.Styles
	width    int
}

// NewAskInput creates a new question input component.
func NewAskInput(s *styles.Styles, km *keymap.KeyMap) *AskInput {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	ta := textarea.New()
	ta.Placeholder = "例: 寮の門限は何時ですか？ / e.g. Is accommodation included?"
	ta.ShowLineNumbers = false
	ta.CharLimit = charLimit
	ta.SetHeight(defaultHeight)
	ta.SetWidth(60)
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys(km.Newline.Keys()...))
	ta.Focus()

	return &AskInput{
		textarea: ta,
		styles:   s,
		width:    60,
	}
}

// Init initialises the input.
func (a *AskInput) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles input messages.
func (a *AskInput) Update(msg tea.Msg) (*AskInput, tea.Cmd) {
	var cmd tea.Cmd
	a.textarea, cmd = a.textarea.Update(msg)
	return a, cmd
}

// View renders the input.
func (a *AskInput) View() string {
	label := a.styles.Title.Render("Question")
	field := a.styles.InputField.Render(a.textarea.View())
	return lipgloss.JoinVertical(lipgloss.Left, label, field)
}

// Value returns the current input value.
func (a *AskInput) Value() string {
	return a.textarea.Value()
}

// SetValue sets the input value.
func (a *AskInput) SetValue(value string) {
	a.textarea.SetValue(value)
}

// Focus sets focus on the input.
func (a *AskInput) Focus() tea.Cmd {
	return a.textarea.Focus()
}

// Blur removes focus from the input.
func (a *AskInput) Blur() {
	a.textarea.Blur()
}

// Focused returns whether the input is focused.
func (a *AskInput) Focused() bool {
	return a.textarea.Focused()
}

// SetWidth sets the width of the input.
func (a *AskInput) SetWidth(width int) {
	a.width = width
	// Account for border and padding
	inner := width - 4
	if inner < 20 {
		inner = 20
	}
	a.textarea.SetWidth(inner)
}

// Width returns the current width.
func (a *AskInput) Width() int {
	return a.width
}

// Reset clears the input.
func (a *AskInput) Reset() {
	a.textarea.Reset()
}
