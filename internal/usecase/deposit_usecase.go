package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase/interfaces"
)

var (
	ErrDepositNotFound                = errors.New("deposit not found")
	ErrInvalidDepositQuoteID          = errors.New("invalid quote_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrQuoteNotAccepted               = errors.New("quote not accepted")
	ErrInvalidDepositAmount           = errors.New("deposit amount must be greater than 0")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IDepositUseCase takes deposits against quotes the back-office has accepted.
//
// The quote's status is read, never written.
type IDepositUseCase interface {
	CreateDeposit(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.DepositPayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.DepositPayment, error)
	LatestByQuoteID(ctx context.Context, quoteID string) (entities.DepositPayment, error)
}

// DepositSettings tunes the deposit flow.
type DepositSettings struct {
	Percent        float64
	MockMode       bool
	TestPayerEmail string
}

type DepositUseCase struct {
	repo      interfaces.IDepositRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
	settings  DepositSettings
	log       zerolog.Logger
}

var _ IDepositUseCase = (*DepositUseCase)(nil)

func NewDepositUseCase(repo interfaces.IDepositRepository, quoteRepo interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway, settings DepositSettings, log zerolog.Logger) *DepositUseCase {
	return &DepositUseCase{
		repo:      repo,
		quoteRepo: quoteRepo,
		gateway:   gateway,
		settings:  settings,
		log:       log.With().Str("component", "deposit.usecase").Logger(),
	}
}

// DepositAmount is percent of price, rounded to cents.
func DepositAmount(price, percent float64) float64 {
	return math.Round(price*percent) / 100
}

func (u *DepositUseCase) CreateDeposit(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.DepositPayment, error) {
	mockMode := u.settings.MockMode
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.DepositPayment{}, ErrInvalidDepositQuoteID
	}
	log := u.log.With().Str("quote_id", quoteID).Logger()
	log.Info().Int("payload_len", len(mpPayload)).Msg("create deposit start")

	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Info().Msg("invalid payload")
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.DepositPayment{}, ErrPaymentGatewayNotConfigured
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		log.Error().Err(err).Msg("failed loading quote")
		return entities.DepositPayment{}, err
	}
	if q.ID == "" {
		return entities.DepositPayment{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusAccepted {
		log.Info().Str("status", string(q.Status)).Msg("quote not accepted")
		return entities.DepositPayment{}, ErrQuoteNotAccepted
	}

	amount := DepositAmount(q.EstimatedPrice, u.settings.Percent)
	if amount <= 0 {
		return entities.DepositPayment{}, ErrInvalidDepositAmount
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		return entities.DepositPayment{}, ErrInvalidMPPayload
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Info().Msg("missing payment_method_id")
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
		u.ensurePayerDefaults(reqMap, q)
		if !hasPayer(reqMap) {
			log.Info().Msg("missing payer")
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = quoteID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Cleaning quote deposit %s", quoteID)
	}
	// The quote is the source of truth for the amount.
	reqMap["transaction_amount"] = amount
	setQuoteCurrency(reqMap)
	mpPayload, err = json.Marshal(reqMap)
	if err != nil {
		return entities.DepositPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.Error().Err(err).Msg("payment gateway failed")
		return entities.DepositPayment{}, classifyGatewayError(err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn().Err(err).Msg("provider response unmarshal failed")
	}

	p := entities.DepositPayment{
		ID:           providerPaymentID,
		QuoteID:      quoteID,
		Amount:       amount,
		Date:         time.Now().UTC(),
		Status:       entities.PaymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error().Err(err).Str("payment_id", p.ID).Msg("deposit repository create failed")
		return entities.DepositPayment{}, err
	}
	log.Info().Str("payment_id", created.ID).Str("status", string(created.Status)).Float64("amount", amount).Msg("deposit recorded")
	return created, nil
}

func (u *DepositUseCase) ensurePayerDefaults(m map[string]any, q entities.Quote) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.settings.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if q.Input.ClientEmail != "" {
		payer["email"] = q.Input.ClientEmail
	}
}

// DepositCurrency is the currency quotes are priced in. Payments carry no currency
// field, so the provider charges in the account's own currency; the quote currency
// is recorded in the payment metadata.
const DepositCurrency = "NZD"

func setQuoteCurrency(m map[string]any) {
	meta, ok := m["metadata"].(map[string]any)
	if !ok {
		meta = map[string]any{}
	}
	meta["quote_currency"] = DepositCurrency
	m["metadata"] = meta
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found"), strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved"), strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\""), strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\""), strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}

func (u *DepositUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.DepositPayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidDepositQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

// LatestByQuoteID returns the most recent deposit for a quote.
func (u *DepositUseCase) LatestByQuoteID(ctx context.Context, quoteID string) (entities.DepositPayment, error) {
	items, err := u.ListByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if len(items) == 0 {
		return entities.DepositPayment{}, ErrDepositNotFound
	}
	latest := items[0]
	for _, p := range items[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}
