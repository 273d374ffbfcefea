package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/faqdesk/internal/core/domain"
	"github.com/custodia-labs/faqdesk/internal/core/ports/driven"
	"github.com/custodia-labs/faqdesk/internal/core/ports/driving"
)

// Ensure AnswerActionService implements the interface.
var _ driving.AnswerActionService = (*AnswerActionService)(nil)

// errNoOpener is returned when no URL opener is wired.
var errNoOpener = errors.New("no URL opener available")

// AnswerActionService provides actions on a delivered answer.
// Either dependency may be nil.
type AnswerActionService struct {
	clipboard driven.Clipboard
	opener    driven.URLOpener
}

// NewAnswerActionService creates a new answer action service.
func NewAnswerActionService(clipboard driven.Clipboard, opener driven.URLOpener) *AnswerActionService {
	return &AnswerActionService{
		clipboard: clipboard,
		opener:    opener,
	}
}

// CopyToClipboard copies text to the system clipboard.
// Failures wrap domain.ErrClipboardUnavailable.
func (s *AnswerActionService) CopyToClipboard(_ context.Context, text string) error {
	if s.clipboard == nil {
		return domain.ErrClipboardUnavailable
	}
	if err := s.clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrClipboardUnavailable, err)
	}
	return nil
}

// OpenMail opens the composed office email in the default mail client.
func (s *AnswerActionService) OpenMail(_ context.Context, mail domain.OfficeMail) error {
	if s.opener == nil {
		return errNoOpener
	}
	if err := s.opener.Open(mail.MailtoURL()); err != nil {
		return fmt.Errorf("open mail client: %w", err)
	}
	return nil
}
