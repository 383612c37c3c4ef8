package interfaces

import (
	"context"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
)

// INotifier tells the business about new submissions.
type INotifier interface {
	QuoteSubmitted(ctx context.Context, q entities.Quote) error
	ContactReceived(ctx context.Context, m entities.ContactMessage) error
}
