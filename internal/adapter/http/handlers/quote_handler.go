package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/marsnewbie/kiwipure-cleaning/internal/adapter/http/dto/request"
	response "github.com/marsnewbie/kiwipure-cleaning/internal/adapter/http/dto/response"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase"
	"github.com/marsnewbie/kiwipure-cleaning/pkg"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// QuoteHandler handles quote requests from the website and the back-office reads.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote godoc
// @Summary      Submit a quote request
// @Description  Validates the form, prices it on the server and stores it as pending.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.QuoteRequest  true  "Quote form"
// @Success      201   {object}  response.QuoteCreatedResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJSON.HTTPStatus, errInvalidJSON.ToHTTPError())
		return
	}

	q, err := h.usecase.Submit(c.Request.Context(), payload.Variant, payload.ToInput())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteCreated(q))
}

// GetQuote godoc
// @Summary  Get a stored quote
// @Tags     quotes
// @Produce  json
// @Param    id   path      string  true  "Quote ID"
// @Success  200  {object}  response.QuoteResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// GetQuotePDF godoc
// @Summary  Download a quote summary
// @Tags     quotes
// @Produce  application/pdf
// @Param    id   path  string  true  "Quote ID"
// @Success  200  {file}  file
// @Failure  404  {object}  pkg.HTTPError
// @Router   /quotes/{id}/pdf [get]
func (h *QuoteHandler) GetQuotePDF(c *gin.Context) {
	id := c.Param("id")
	data, err := h.usecase.RenderPDF(c.Request.Context(), id)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="quote-%s.pdf"`, id))
	c.Data(http.StatusOK, contentTypePDF, data)
}

// ExportQuotes godoc
// @Summary  Export quotes as a spreadsheet
// @Tags     quotes
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    status  query  string  false  "Only quotes with this status"
// @Success  200  {file}  file
// @Router   /quotes/export [get]
func (h *QuoteHandler) ExportQuotes(c *gin.Context) {
	data, err := h.usecase.ExportXLSX(c.Request.Context(), entities.QuoteStatus(c.Query("status")))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="quotes.xlsx"`)
	c.Data(http.StatusOK, contentTypeXLSX, data)
}

func mapQuoteError(err error) *pkg.AppError {
	if appErr, ok := mapSubmissionError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentsDisabled):
		return errDocumentsUnavailable
	default:
		return internalError(err)
	}
}
