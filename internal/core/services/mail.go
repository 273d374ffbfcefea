package services

import (
	"strings"
	"time"

	"github.com/custodia-labs/faqdesk/internal/core/domain"
	"github.com/custodia-labs/faqdesk/internal/core/ports/driving"
)

// Ensure MailService implements the interface.
var _ driving.MailService = (*MailService)(nil)

// mailTimeLayout renders the local timestamp as YYYY-MM-DD HH:MM.
const mailTimeLayout = "2006-01-02 15:04"

// MailService composes the pre-filled office confirmation email.
type MailService struct{}

// NewMailService creates a new mail service.
func NewMailService() *MailService {
	return &MailService{}
}

// Compose builds the email for question and the answer the user was shown.
// The answer is clipped to domain.MailAnswerLimit characters.
func (s *MailService) Compose(question, answer string, now time.Time) domain.OfficeMail {
	body := strings.Join([]string{
		"Hello RSJP/RWJP Office,",
		"",
		"Please fill in [1] and [3] before sending.",
		"",
		"Please help me with the question below.",
		"",
		"[Time] " + now.Local().Format(mailTimeLayout),
		"",
		"[1] Your information",
		"- Full name:",
		"- Email:",
		"- Program: (RSJP / RWJP / RSJP Express / RWJP Express / Not sure)",
		"- Campus: (OIC / Kinugasa / BKC / Not sure)",
		"",
		"[2] Your question",
		"- Question: " + strings.TrimSpace(question),
		"",
		"[3] What is unclear (please write in one line)",
		"- What I still do not understand:",
		"",
		"[Urgency]",
		"- Today / This week / Not urgent",
		"",
		"[4] AI answer (for reference only)",
		"- AI answer: " + clip(answer, domain.MailAnswerLimit),
		"",
		"Thank you.",
		"",
		"----",
		"Sent from RSJP/RWJP FAQ desk",
	}, "\n")

	return domain.OfficeMail{
		To:      domain.OfficeEmail,
		Subject: domain.OfficeMailSubject,
		Body:    body,
	}
}

// clip trims s and caps it at n runes, marking the cut.
func clip(s string, n int) string {
	t := strings.TrimSpace(s)
	runes := []rune(t)
	if len(runes) <= n {
		return t
	}
	return string(runes[:n]) + domain.TruncationMarker
}
