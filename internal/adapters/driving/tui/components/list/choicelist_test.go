package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []Item {
	return []Item{
		{Label: "Use Japanese answer"},
		{Label: "Use English answer"},
		{Label: "Ask anyway", Detail: "Skip the FAQ and ask the remote service"},
	}
}

func TestNewChoiceList(t *testing.T) {
	c := NewChoiceList(nil)

	require.NotNil(t, c)
	assert.Zero(t, c.Count())
	assert.Contains(t, c.View(), "Nothing to choose")
}

func TestChoiceList_Navigation(t *testing.T) {
	c := NewChoiceList(nil)
	c.SetItems(testItems())

	c, _ = c.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, c.Selected())

	c, _ = c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 2, c.Selected())

	c, _ = c.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, c.Selected(), "stays on last row")

	c, _ = c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 1, c.Selected())

	c, _ = c.Update(tea.KeyMsg{Type: tea.KeyUp})
	c, _ = c.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, c.Selected(), "stays on first row")
}

func TestChoiceList_DigitSelects(t *testing.T) {
	c := NewChoiceList(nil)
	c.SetItems(testItems())

	c, _ = c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	assert.Equal(t, 2, c.Selected())

	c, _ = c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("9")})
	assert.Equal(t, 2, c.Selected(), "out of range digit is ignored")
}

func TestChoiceList_ViewMarksSelection(t *testing.T) {
	c := NewChoiceList(nil)
	c.SetItems(testItems())
	c.SetSelected(1)

	view := c.View()

	assert.Contains(t, view, "> 2. Use English answer")
	assert.Contains(t, view, "  1. Use Japanese answer")
	assert.Contains(t, view, "Skip the FAQ")
}

func TestChoiceList_SetItemsResetsSelection(t *testing.T) {
	c := NewChoiceList(nil)
	c.SetItems(testItems())
	c.SetSelected(2)

	c.SetItems(testItems()[:1])

	assert.Equal(t, 0, c.Selected())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "寮の門限は何時...", truncate("寮の門限は何時ですか？ずっと長い質問", 10))
}
