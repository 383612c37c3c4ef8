// Package sqlstore implements the repositories on gorm, for postgres or sqlite.
package sqlstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase/interfaces"
)

var (
	_ interfaces.IQuoteRepository   = (*QuoteRepository)(nil)
	_ interfaces.IContactRepository = (*ContactRepository)(nil)
	_ interfaces.IDepositRepository = (*DepositRepository)(nil)
)

func createErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return interfaces.ErrAlreadyExists
	}
	return err
}

type QuoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

func (r *QuoteRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	m := quoteToModel(q)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Quote{}, createErr(err)
	}
	return q, nil
}

func (r *QuoteRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	var m QuoteModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, err
	}
	return m.toEntity(), nil
}

func (r *QuoteRepository) List(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", string(status))
	}
	var rows []QuoteModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, c entities.ContactMessage) (entities.ContactMessage, error) {
	m := contactToModel(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.ContactMessage{}, createErr(err)
	}
	return c, nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id string) (entities.ContactMessage, error) {
	var m ContactModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ContactMessage{}, nil
	}
	if err != nil {
		return entities.ContactMessage{}, err
	}
	return m.toEntity(), nil
}

type DepositRepository struct {
	db *gorm.DB
}

func NewDepositRepository(db *gorm.DB) *DepositRepository {
	return &DepositRepository{db: db}
}

func (r *DepositRepository) Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
	m := depositToModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.DepositPayment{}, createErr(err)
	}
	return p, nil
}

func (r *DepositRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.DepositPayment, error) {
	var rows []DepositModel
	if err := r.db.WithContext(ctx).Where("quote_id = ?", quoteID).Order("date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.DepositPayment, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}
