// Package list provides list display components for the TUI.
package list

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui/styles"
)

// Item is one selectable row.
type Item struct {
	// Label is the row text.
	Label string

	// Detail is an optional muted line under the label.
	Detail string
}

// ChoiceList is a navigable list of options. Rows are numbered from 1 and
// a digit key selects the matching row directly.
type ChoiceList struct {
	items    []Item
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewChoiceList creates a new choice list component.
func NewChoiceList(s *styles.Styles) *ChoiceList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ChoiceList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (c *ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (c *ChoiceList) Update(msg tea.Msg) (*ChoiceList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			c.MoveUp()
		case tea.KeyDown:
			c.MoveDown()
		default:
			switch s := msg.String(); s {
			case "k":
				c.MoveUp()
			case "j":
				c.MoveDown()
			default:
				if n, err := strconv.Atoi(s); err == nil {
					c.SetSelected(n - 1)
				}
			}
		}
	}
	return c, nil
}

// View renders the list.
func (c *ChoiceList) View() string {
	if len(c.items) == 0 {
		return c.styles.Muted.Render("Nothing to choose")
	}

	// Each row takes up to two lines.
	visible := c.height / 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if c.selected >= visible {
		start = c.selected - visible + 1
	}
	end := start + visible
	if end > len(c.items) {
		end = len(c.items)
	}

	lines := make([]string, 0, (end-start)*2)
	for i := start; i < end; i++ {
		lines = append(lines, c.renderItem(i))
	}
	return strings.Join(lines, "\n")
}

func (c *ChoiceList) renderItem(index int) string {
	item := c.items[index]
	label := strconv.Itoa(index+1) + ". " + item.Label

	var row string
	if index == c.selected {
		row = c.styles.Selected.Render("> " + label)
	} else {
		row = c.styles.Normal.Render("  " + label)
	}
	if item.Detail == "" {
		return row
	}
	return row + "\n" + c.styles.Muted.Render("     "+truncate(item.Detail, c.width-6))
}

// truncate caps s at n runes.
func truncate(s string, n int) string {
	if n < 10 {
		n = 10
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// SetItems replaces the rows and selects the first.
func (c *ChoiceList) SetItems(items []Item) {
	c.items = items
	c.selected = 0
}

// Items returns the rows.
func (c *ChoiceList) Items() []Item {
	return c.items
}

// Selected returns the index of the selected row.
func (c *ChoiceList) Selected() int {
	return c.selected
}

// SetSelected sets the selected index. Out of range indices are ignored.
func (c *ChoiceList) SetSelected(index int) {
	if index >= 0 && index < len(c.items) {
		c.selected = index
	}
}

// MoveUp moves selection up.
func (c *ChoiceList) MoveUp() {
	if c.selected > 0 {
		c.selected--
	}
}

// MoveDown moves selection down.
func (c *ChoiceList) MoveDown() {
	if c.selected < len(c.items)-1 {
		c.selected++
	}
}

// SetDimensions sets the component dimensions.
func (c *ChoiceList) SetDimensions(width, height int) {
	c.width = width
	c.height = height
}

// Count returns the number of rows.
func (c *ChoiceList) Count() int {
	return len(c.items)
}
