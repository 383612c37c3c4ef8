package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/marsnewbie/kiwipure-cleaning/internal/adapter/http/dto/request"
	response "github.com/marsnewbie/kiwipure-cleaning/internal/adapter/http/dto/response"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase"
	"github.com/marsnewbie/kiwipure-cleaning/pkg"
)

type ContactHandler struct {
	usecase usecase.IContactUseCase
}

func NewContactHandler(uc usecase.IContactUseCase) *ContactHandler {
	return &ContactHandler{usecase: uc}
}

// CreateContact godoc
// @Summary  Send a contact message
// @Tags     contact
// @Accept   json
// @Produce  json
// @Param    body  body      request.ContactRequest  true  "Contact form"
// @Success  201   {object}  response.ContactCreatedResponse
// @Failure  422   {object}  pkg.HTTPError
// @Failure  502   {object}  pkg.HTTPError
// @Router   /contact [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJSON.HTTPStatus, errInvalidJSON.ToHTTPError())
		return
	}

	m, err := h.usecase.Submit(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromContactCreated(m))
}

// GetContact godoc
// @Summary  Get a contact message
// @Tags     contact
// @Produce  json
// @Param    id   path      string  true  "Message ID"
// @Success  200  {object}  response.ContactResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /contact/{id} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	m, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContact(m))
}

func mapContactError(err error) *pkg.AppError {
	if appErr, ok := mapSubmissionError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidContactID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContactNotFound):
		return pkg.NewDomainErrorSimple("CONTACT_NOT_FOUND", "Contact message not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
