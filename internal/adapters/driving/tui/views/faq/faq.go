// Package faq provides the FAQ browsing view for the TUI.
package faq

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/faqdesk/internal/core/domain"
	"github.com/custodia-labs/faqdesk/internal/core/ports/driving"
)

// View lists the FAQ groups and shows one group in the chosen language.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	list   *list.ChoiceList
	corpus driving.CorpusService

	groups   []domain.FaqGroup
	expanded bool
	language domain.Language

	width  int
	height int
	ready  bool
}

// NewView creates a new FAQ view.
func NewView(s *styles.Styles, km *keymap.KeyMap, corpus driving.CorpusService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:   s,
		keymap:   km,
		list:     list.NewChoiceList(s),
		corpus:   corpus,
		language: domain.LanguageJA,
		width:    80,
		height:   24,
	}
	v.load()
	return v
}

func (v *View) load() {
	if v.corpus == nil {
		return
	}
	v.groups = v.corpus.Groups()
	items := make([]list.Item, len(v.groups))
	for i, g := range v.groups {
		items[i] = list.Item{Label: g.Title}
	}
	v.list.SetItems(items)
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	v.expanded = false
	return nil
}

// Update handles messages for the FAQ view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		k := msg.String()
		switch {
		case keymap.Matches(k, v.keymap.Back):
			if v.expanded {
				v.expanded = false
				return v, nil
			}
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewAsk} }
		case keymap.Matches(k, v.keymap.Language):
			v.ToggleLanguage()
			return v, nil
		case keymap.Matches(k, v.keymap.Select):
			if len(v.groups) > 0 {
				v.expanded = !v.expanded
			}
			return v, nil
		}
		if !v.expanded {
			v.list, _ = v.list.Update(msg)
		}
	}
	return v, nil
}

// View renders the FAQ view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	header := v.styles.Title.Render("Top FAQ") + "  " +
		v.styles.Muted.Render(fmt.Sprintf("[%s]", strings.ToUpper(string(v.language))))

	var body string
	switch {
	case len(v.groups) == 0:
		body = v.styles.Muted.Render("No FAQ entries")
	case v.expanded:
		body = v.renderGroup(v.groups[v.list.Selected()])
	default:
		body = v.list.View()
	}

	help := v.styles.Help.Render("enter: open | l: ja/en | esc: back")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", help)
}

func (v *View) renderGroup(g domain.FaqGroup) string {
	questions := g.Questions.JA
	if v.language == domain.LanguageEN {
		questions = g.Questions.EN
	}

	lines := []string{v.styles.Subtitle.Render(g.Title), ""}
	for _, q := range questions {
		lines = append(lines, v.styles.Muted.Render("• "+q))
	}
	w := v.width - 4
	if w < 20 {
		w = 20
	}
	lines = append(lines, "", v.styles.Answer.Width(w).Render(g.Answer(v.language)))
	return strings.Join(lines, "\n")
}

// ToggleLanguage switches between Japanese and English.
func (v *View) ToggleLanguage() {
	if v.language == domain.LanguageJA {
		v.language = domain.LanguageEN
	} else {
		v.language = domain.LanguageJA
	}
}

// Language returns the display language.
func (v *View) Language() domain.Language {
	return v.language
}

// Expanded returns whether a group is open.
func (v *View) Expanded() bool {
	return v.expanded
}

// Selected returns the highlighted group index.
func (v *View) Selected() int {
	return v.list.Selected()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.list.SetDimensions(width, height-6)
}
