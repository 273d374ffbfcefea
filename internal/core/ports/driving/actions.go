package driving

import (
	"context"

	"github.com/custodia-labs/faqdesk/internal/core/domain"
)

// AnswerActionService provides actions on a delivered answer for external actors.
// This is used by TUI and CLI adapters.
type AnswerActionService interface {
	// CopyToClipboard copies text to the system clipboard.
	CopyToClipboard(ctx context.Context, text string) error

	// OpenMail opens the composed office email in the default mail client.
	OpenMail(ctx context.Context, mail domain.OfficeMail) error
}
