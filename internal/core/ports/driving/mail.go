package driving

import (
	"time"

	"github.com/custodia-labs/faqdesk/internal/core/domain"
)

// MailService composes the confirmation email sent to the programme office.
type MailService interface {
	// Compose builds the email for a question and the answer shown to the user.
	Compose(question, answer string, now time.Time) domain.OfficeMail
}
