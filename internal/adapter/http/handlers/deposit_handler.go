package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	response "github.com/marsnewbie/kiwipure-cleaning/internal/adapter/http/dto/response"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase"
	"github.com/marsnewbie/kiwipure-cleaning/pkg"
)

// DepositHandler takes deposits for accepted quotes.
type DepositHandler struct {
	usecase  usecase.IDepositUseCase
	mockMode bool
}

func NewDepositHandler(uc usecase.IDepositUseCase, mockMode bool) *DepositHandler {
	return &DepositHandler{usecase: uc, mockMode: mockMode}
}

// CreateDeposit godoc
// @Summary      Pay a deposit for an accepted quote
// @Description  Accepts either a raw MercadoPago payment body or {"mp_payload": {...}}.
// @Tags         deposits
// @Accept       json
// @Produce      json
// @Param        quote_id  path      string                        true  "Quote ID"
// @Param        body      body      object                        true  "Payment body"
// @Success      200       {object}  response.DepositResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /deposits/{quote_id} [post]
func (h *DepositHandler) CreateDeposit(c *gin.Context) {
	quoteID := c.Param("quote_id")
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			c.JSON(errInvalidJSON.HTTPStatus, errInvalidJSON.ToHTTPError())
			return
		}
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateDeposit(c.Request.Context(), quoteID, mpPayload)
	if err != nil {
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDeposit(created))
}

// GetDeposit godoc
// @Summary  Latest deposit for a quote
// @Tags     deposits
// @Produce  json
// @Param    quote_id  path      string  true  "Quote ID"
// @Success  200       {object}  response.DepositResponse
// @Failure  404       {object}  pkg.HTTPError
// @Router   /deposits/{quote_id} [get]
func (h *DepositHandler) GetDeposit(c *gin.Context) {
	latest, err := h.usecase.LatestByQuoteID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDeposit(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if s := strings.TrimSpace(string(wrapped)); s == "" || s == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}

func mapDepositError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDepositQuoteID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this MercadoPago account", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENTS_UNAVAILABLE", "Payments are not available", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotAccepted):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ACCEPTED", "Quote has not been accepted", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidDepositAmount):
		return pkg.NewDomainErrorSimple("INVALID_DEPOSIT_AMOUNT", "Quote has no price to take a deposit against", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositNotFound):
		return pkg.NewDomainErrorSimple("DEPOSIT_NOT_FOUND", "Deposit not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
