// Package clipboard adapts the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/custodia-labs/faqdesk/internal/core/ports/driven"
)

// Ensure System implements the interface.
var _ driven.Clipboard = System{}

// System writes to the OS clipboard.
type System struct{}

// New returns the system clipboard, or nil when no clipboard utility is
// available (e.g. a headless Linux box without xclip or wl-copy).
func New() driven.Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return System{}
}

// WriteAll replaces the clipboard contents.
func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
