package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/validation"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase/interfaces"
)

var (
	ErrContactNotFound  = errors.New("contact message not found")
	ErrInvalidContactID = errors.New("invalid contact message id")
)

type IContactUseCase interface {
	Submit(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error)
	GetByID(ctx context.Context, id string) (entities.ContactMessage, error)
}

type ContactUseCase struct {
	repo      interfaces.IContactRepository
	validator *validation.Validator
	notifier  interfaces.INotifier
	phone     interfaces.IPhoneNormalizer
	log       zerolog.Logger
	now       func() time.Time
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(repo interfaces.IContactRepository, notifier interfaces.INotifier, phone interfaces.IPhoneNormalizer, log zerolog.Logger) *ContactUseCase {
	return &ContactUseCase{
		repo:      repo,
		validator: validation.New(),
		notifier:  notifier,
		phone:     phone,
		log:       log.With().Str("component", "contact.usecase").Logger(),
		now:       time.Now,
	}
}

func (u *ContactUseCase) Submit(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Phone = strings.TrimSpace(m.Phone)
	m.Message = strings.TrimSpace(m.Message)

	if err := u.validator.Contact(m); err != nil {
		u.log.Info().Strs("errors", validation.Messages(err)).Msg("contact message rejected")
		return entities.ContactMessage{}, err
	}
	if u.phone != nil {
		m.Phone = u.phone.Normalize(m.Phone)
	}

	m.ID = uuid.NewString()
	m.Status = entities.ContactStatusNew
	m.CreatedAt = u.now().UTC()

	created, err := u.repo.Create(ctx, m)
	if err != nil {
		u.log.Error().Err(err).Str("contact_id", m.ID).Msg("contact repository create failed")
		return entities.ContactMessage{}, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	u.log.Info().Str("contact_id", created.ID).Msg("contact message stored")

	if u.notifier != nil {
		if err := u.notifier.ContactReceived(ctx, created); err != nil {
			u.log.Warn().Err(err).Str("contact_id", created.ID).Msg("contact notification failed")
		}
	}
	return created, nil
}

func (u *ContactUseCase) GetByID(ctx context.Context, id string) (entities.ContactMessage, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ContactMessage{}, ErrInvalidContactID
	}
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ContactMessage{}, err
	}
	if m.ID == "" {
		return entities.ContactMessage{}, ErrContactNotFound
	}
	return m, nil
}
