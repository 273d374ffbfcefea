// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/faqdesk/internal/core/domain"
)

// ResolutionUpdated carries the resolver state after an ask or a choice.
// Err is set when the step failed; Resolution is still the held state.
type ResolutionUpdated struct {
	Resolution domain.Resolution
	Err        error
}

// CooldownTick drives the ask button countdown.
type CooldownTick struct{}

// ActionCompleted reports the outcome of copy or mail.
type ActionCompleted struct {
	Message string
	Err     error
}

// ConfigReloaded signals the settings file changed on disk.
type ConfigReloaded struct{}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewAsk is the question input and answer view.
	ViewAsk ViewType = iota
	// ViewFaq is the FAQ browser.
	ViewFaq
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewAsk:
		return "ask"
	case ViewFaq:
		return "faq"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
