package interfaces

import (
	"context"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
)

type IDepositRepository interface {
	Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.DepositPayment, error)
}
