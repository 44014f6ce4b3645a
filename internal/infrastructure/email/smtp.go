package email

import (
	"context"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

// Notifier emails ticket submitters.
type Notifier interface {
	TicketReceived(ctx context.Context, t *ticket.Ticket) error
	StatusChanged(ctx context.Context, t *ticket.Ticket, previous vo.Status) error
}

// NewNotifier returns an SMTP notifier, or one that does nothing when email
// is disabled.
func NewNotifier(cfg config.EmailConfig, baseURL string, log logger.Interface) Notifier {
	if !cfg.Enabled || cfg.SMTPHost == "" {
		log.Infow("email notifications disabled")
		return nopNotifier{}
	}
	return NewSMTPNotifier(cfg, baseURL, log)
}

type SMTPNotifier struct {
	config  config.EmailConfig
	baseURL string
	send    func(m *gomail.Message) error
	logger  logger.Interface
}

func NewSMTPNotifier(cfg config.EmailConfig, baseURL string, log logger.Interface) *SMTPNotifier {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	return &SMTPNotifier{
		config:  cfg,
		baseURL: baseURL,
		send: func(m *gomail.Message) error {
			return dialer.DialAndSend(m)
		},
		logger: log,
	}
}

func (s *SMTPNotifier) TicketReceived(_ context.Context, t *ticket.Ticket) error {
	subject := fmt.Sprintf("[Ticket #%d] We received your request", t.ID())
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p>Hello %s,</p>
			<p>Your IT support ticket <strong>#%d</strong> "%s" has been received.</p>
			<p>You can check its status at <a href="%s">%s</a> with your ticket ID and email address.</p>
		</body>
		</html>
	`, html.EscapeString(t.SubmitterName()), t.ID(), html.EscapeString(t.Title()), s.statusURL(), s.statusURL())

	plainBody := fmt.Sprintf(`
Hello %s,

Your IT support ticket #%d "%s" has been received.

You can check its status at %s with your ticket ID and email address.
	`, t.SubmitterName(), t.ID(), t.Title(), s.statusURL())

	return s.sendEmail(t.SubmitterEmail(), subject, htmlBody, plainBody)
}

func (s *SMTPNotifier) StatusChanged(_ context.Context, t *ticket.Ticket, previous vo.Status) error {
	subject := fmt.Sprintf("[Ticket #%d] Status changed to %s", t.ID(), t.Status())
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p>Hello %s,</p>
			<p>The status of your ticket <strong>#%d</strong> "%s" changed from %s to <strong>%s</strong>.</p>
		</body>
		</html>
	`, html.EscapeString(t.SubmitterName()), t.ID(), html.EscapeString(t.Title()), previous, t.Status())

	plainBody := fmt.Sprintf(`
Hello %s,

The status of your ticket #%d "%s" changed from %s to %s.
	`, t.SubmitterName(), t.ID(), t.Title(), previous, t.Status())

	return s.sendEmail(t.SubmitterEmail(), subject, htmlBody, plainBody)
}

func (s *SMTPNotifier) statusURL() string {
	return s.baseURL + "/status"
}

func (s *SMTPNotifier) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Debugw("email sent", "to", to, "subject", subject)
	return nil
}

type nopNotifier struct{}

func (nopNotifier) TicketReceived(context.Context, *ticket.Ticket) error { return nil }

func (nopNotifier) StatusChanged(context.Context, *ticket.Ticket, vo.Status) error { return nil }
