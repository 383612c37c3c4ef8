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
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/pricing"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/validation"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrInvalidQuoteID    = errors.New("invalid quote id")
	ErrSubmissionFailed  = errors.New("submission failed")
	ErrDocumentsDisabled = errors.New("quote documents not configured")
)

// IQuoteUseCase accepts quote requests from the website and serves them back
// to the back-office.
//
// Submit is the only write. Status changes after creation belong to the back-office.
type IQuoteUseCase interface {
	Submit(ctx context.Context, variant string, in entities.QuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error)
	RenderPDF(ctx context.Context, id string) ([]byte, error)
	ExportXLSX(ctx context.Context, status entities.QuoteStatus) ([]byte, error)
}

type QuoteUseCase struct {
	repo      interfaces.IQuoteRepository
	registry  *pricing.Registry
	validator *validation.Validator
	notifier  interfaces.INotifier
	phone     interfaces.IPhoneNormalizer
	sheet     interfaces.IQuoteSheetRenderer
	exporter  interfaces.IQuoteExporter
	log       zerolog.Logger
	now       func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)
var _ pricing.Submitter = (*QuoteUseCase)(nil)

type QuoteOption func(*QuoteUseCase)

func WithQuoteDocuments(sheet interfaces.IQuoteSheetRenderer, exporter interfaces.IQuoteExporter) QuoteOption {
	return func(u *QuoteUseCase) {
		u.sheet = sheet
		u.exporter = exporter
	}
}

func WithQuotePhoneNormalizer(p interfaces.IPhoneNormalizer) QuoteOption {
	return func(u *QuoteUseCase) { u.phone = p }
}

func WithQuoteClock(now func() time.Time) QuoteOption {
	return func(u *QuoteUseCase) { u.now = now }
}

func NewQuoteUseCase(repo interfaces.IQuoteRepository, registry *pricing.Registry, notifier interfaces.INotifier, log zerolog.Logger, opts ...QuoteOption) *QuoteUseCase {
	u := &QuoteUseCase{
		repo:      repo,
		registry:  registry,
		validator: validation.New(),
		notifier:  notifier,
		log:       log.With().Str("component", "quote.usecase").Logger(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Submit validates, prices and stores a quote request with status pending.
//
// The price is always computed here; whatever the browser displayed is not trusted.
func (u *QuoteUseCase) Submit(ctx context.Context, variant string, in entities.QuoteInput) (entities.Quote, error) {
	in = in.Normalize()
	if err := u.validator.Quote(in); err != nil {
		u.log.Info().Strs("errors", validation.Messages(err)).Msg("quote rejected")
		return entities.Quote{}, err
	}

	engine, err := u.registry.Resolve(variant)
	if err != nil {
		return entities.Quote{}, err
	}
	if !in.PremisesType.IsKnown() {
		u.log.Warn().Str("building_type", string(in.PremisesType)).Msg("building type not in the standard list, priced as other")
	}
	if !in.Frequency.IsKnown() {
		u.log.Warn().Str("frequency", string(in.Frequency)).Msg("frequency not in the standard list")
	}

	if u.phone != nil {
		in.ClientPhone = u.phone.Normalize(in.ClientPhone)
	}

	est := engine.Estimate(in)
	q := entities.NewPendingQuote(uuid.NewString(), in, est, u.now().UTC())

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		u.log.Error().Err(err).Str("quote_id", q.ID).Msg("quote repository create failed")
		return entities.Quote{}, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	u.log.Info().
		Str("quote_id", created.ID).
		Str("variant", string(created.PricingVariant)).
		Float64("estimated_price", created.EstimatedPrice).
		Msg("quote created")

	if u.notifier != nil {
		if err := u.notifier.QuoteSubmitted(ctx, created); err != nil {
			u.log.Warn().Err(err).Str("quote_id", created.ID).Msg("quote notification failed")
		}
	}
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error) {
	return u.repo.List(ctx, entities.QuoteStatus(strings.ToLower(strings.TrimSpace(string(status)))))
}

func (u *QuoteUseCase) RenderPDF(ctx context.Context, id string) ([]byte, error) {
	if u.sheet == nil {
		return nil, ErrDocumentsDisabled
	}
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.sheet.QuoteSheet(q)
}

func (u *QuoteUseCase) ExportXLSX(ctx context.Context, status entities.QuoteStatus) ([]byte, error) {
	if u.exporter == nil {
		return nil, ErrDocumentsDisabled
	}
	quotes, err := u.List(ctx, status)
	if err != nil {
		return nil, err
	}
	u.log.Info().Str("status", string(status)).Int("count", len(quotes)).Msg("exporting quotes")
	return u.exporter.QuotesWorkbook(quotes)
}
