package interfaces

import (
	"context"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
)

// IContactRepository stores contact form messages.
type IContactRepository interface {
	Create(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error)
	GetByID(ctx context.Context, id string) (entities.ContactMessage, error)
}
