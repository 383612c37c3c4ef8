package notify

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/marsnewbie/kiwipure-cleaning/internal/config"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase/interfaces"
)

// SMTPNotifier e-mails the business inbox. Customer replies go straight to the
// submitter through Reply-To.
type SMTPNotifier struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       string
}

var _ interfaces.INotifier = (*SMTPNotifier)(nil)

func NewSMTPNotifier(cfg config.NotifyConfig) *SMTPNotifier {
	return &SMTPNotifier{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.From,
		to:       cfg.To,
	}
}

func (s *SMTPNotifier) QuoteSubmitted(ctx context.Context, q entities.Quote) error {
	subject, body, err := renderQuote(q)
	if err != nil {
		return err
	}
	return s.send(ctx, q.Input.ClientEmail, subject, body)
}

func (s *SMTPNotifier) ContactReceived(ctx context.Context, m entities.ContactMessage) error {
	subject, body, err := renderContact(m)
	if err != nil {
		return err
	}
	return s.send(ctx, m.Email, subject, body)
}

func (s *SMTPNotifier) message(replyTo, subject, body string) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return nil, fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(s.to); err != nil {
		return nil, fmt.Errorf("smtp to: %w", err)
	}
	if replyTo != "" {
		if err := msg.ReplyTo(replyTo); err != nil {
			return nil, fmt.Errorf("smtp reply-to: %w", err)
		}
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)
	return msg, nil
}

func (s *SMTPNotifier) send(ctx context.Context, replyTo, subject, body string) error {
	msg, err := s.message(replyTo, subject, body)
	if err != nil {
		return err
	}

	opts := []gomail.Option{
		gomail.WithPort(s.port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15 * time.Second),
	}
	if s.username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.username),
			gomail.WithPassword(s.password),
		)
	}
	client, err := gomail.NewClient(s.host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
