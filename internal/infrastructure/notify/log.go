package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase/interfaces"
)

// LogNotifier writes notifications to the log. Used when SMTP is not configured.
type LogNotifier struct {
	log zerolog.Logger
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With().Str("component", "notify").Logger()}
}

func (n *LogNotifier) QuoteSubmitted(_ context.Context, q entities.Quote) error {
	subject, body, err := renderQuote(q)
	if err != nil {
		return err
	}
	n.log.Info().Str("quote_id", q.ID).Str("subject", subject).Msg(body)
	return nil
}

func (n *LogNotifier) ContactReceived(_ context.Context, m entities.ContactMessage) error {
	subject, body, err := renderContact(m)
	if err != nil {
		return err
	}
	n.log.Info().Str("contact_id", m.ID).Str("subject", subject).Msg(body)
	return nil
}
