package handlers

import (
	"errors"
	"net/http"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/pricing"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/validation"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase"
	"github.com/marsnewbie/kiwipure-cleaning/pkg"
)

var (
	errInvalidJSON          = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errSubmissionFailed     = pkg.NewDomainErrorSimple("SUBMISSION_FAILED", "We could not submit your request. Please try again.", http.StatusBadGateway)
	errDocumentsUnavailable = pkg.NewDomainErrorSimple("DOCUMENTS_UNAVAILABLE", "Documents are not available", http.StatusServiceUnavailable)
)

// mapSubmissionError covers the errors every form submission can produce.
// ok is false when err is none of them.
func mapSubmissionError(err error) (appErr *pkg.AppError, ok bool) {
	var ve *validation.Error
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainError("VALIDATION_FAILED", ve.Error(), err, http.StatusUnprocessableEntity).WithDetails(ve.Messages), true
	case errors.Is(err, pricing.ErrVariantRequired):
		return pkg.NewDomainErrorSimple("VARIANT_REQUIRED", "A pricing variant is required", http.StatusBadRequest), true
	case errors.Is(err, pricing.ErrUnknownVariant):
		return pkg.NewDomainErrorSimple("UNKNOWN_VARIANT", "Unknown pricing variant", http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrSubmissionFailed):
		return pkg.NewDomainError(errSubmissionFailed.Code, errSubmissionFailed.Message, err, errSubmissionFailed.HTTPStatus), true
	}
	return nil, false
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
