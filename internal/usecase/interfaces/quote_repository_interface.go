package interfaces

import (
	"context"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
)

// IQuoteRepository stores submitted quotes.
//
// GetByID returns a zero Quote and nil error when the id is unknown.
// List with an empty status returns every quote, newest first.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error)
}
