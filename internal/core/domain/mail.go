package domain

import (
	"net/url"
	"strings"
)

// Office mail constants.
const (
	// OfficeEmail is the programme office address.
	OfficeEmail = "rsjprwjp@st.ritsumei.ac.jp"

	// OfficeMailSubject is the fixed subject line.
	OfficeMailSubject = "[RSJP/RWJP FAQ] Question (please confirm)"

	// MailAnswerLimit caps the answer copied into the mail body, in characters.
	MailAnswerLimit = 800

	// TruncationMarker is appended to a capped answer.
	TruncationMarker = "\n...(truncated)"
)

// OfficeMail is a pre-filled message for the user's mail client.
// It is never sent by faqdesk directly.
type OfficeMail struct {
	To      string
	Subject string
	Body    string
}

// MailtoURL encodes the message as a mailto: URL.
func (m OfficeMail) MailtoURL() string {
	return "mailto:" + encodeComponent(m.To) +
		"?subject=" + encodeComponent(m.Subject) +
		"&body=" + encodeComponent(m.Body)
}

// encodeComponent percent-encodes s with spaces as %20, which mail clients expect.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
