package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/marsnewbie/kiwipure-cleaning/internal/adapter/http/dto/request"
	response "github.com/marsnewbie/kiwipure-cleaning/internal/adapter/http/dto/response"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase"
)

// EstimateHandler serves the live price shown beside the quote forms.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// PreviewEstimate godoc
// @Summary      Preview a quote price
// @Description  Prices the form without storing it. Incomplete forms price to zero.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        body  body      request.QuoteRequest  true  "Quote form"
// @Success      200   {object}  response.EstimateResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /estimates/preview [post]
func (h *EstimateHandler) PreviewEstimate(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJSON.HTTPStatus, errInvalidJSON.ToHTTPError())
		return
	}

	est, err := h.usecase.Preview(c.Request.Context(), payload.Variant, payload.ToInput())
	if err != nil {
		appErr, ok := mapSubmissionError(err)
		if !ok {
			appErr = internalError(err)
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(est))
}

// ListVariants godoc
// @Summary  List pricing variants
// @Tags     estimates
// @Produce  json
// @Success  200  {array}  response.VariantResponse
// @Router   /pricing/variants [get]
func (h *EstimateHandler) ListVariants(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromVariants(h.usecase.Variants()))
}
