package gateway

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/snapfeedhq/snapfeed/internal/structs"
	"github.com/snapfeedhq/snapfeed/pkg/ctxlogger"
)

var _ Mailer = (*SMTPMailer)(nil)

// SMTPMailer sends the feedback notification to the site owner over plain
// SMTP. Auth is optional; local relays usually run without it.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	to       string
}

func NewSMTPMailer(host, port, username, password, from, to string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		to:       to,
	}
}

func (m SMTPMailer) SendFeedbackEmail(ctx context.Context, submission structs.FeedbackSubmission) error {
	var body strings.Builder
	body.WriteString("From: " + m.from + "\r\n")
	body.WriteString("To: " + m.to + "\r\n")
	body.WriteString("Reply-To: " + submission.Email + "\r\n")
	body.WriteString("Subject: New feedback from " + submission.Email + "\r\n")
	body.WriteString("\r\n")
	body.WriteString("You received feedback from: " + submission.Email + "\r\n\r\n")
	body.WriteString(submission.Message + "\r\n")

	addr := m.host + ":" + m.port

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{m.to}, []byte(body.String())); err != nil {
		return fmt.Errorf("send feedback email for submission %s: %w", submission.ID, err)
	}

	ctxlogger.GetLogger(ctx).Info("feedback email sent",
		"submission_id", submission.ID.String(),
		"reply_to", submission.Email,
	)

	return nil
}
