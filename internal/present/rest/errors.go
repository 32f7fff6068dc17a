package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/tapi-calorie/tapi/internal/domain"
	"github.com/tapi-calorie/tapi/internal/handle"
	"github.com/tapi-calorie/tapi/internal/present/rest/presenter"
	"github.com/tapi-calorie/tapi/internal/schema"
)

// respondError turns the four expected failure kinds into error documents.
// Anything else is an internal error.
func (h *Handler) respondError(c echo.Context, err error) error {
	profile := h.config.Hypermedia.ErrorProfile

	var (
		violation *schema.ViolationError
		notFound  domain.NotFoundError
		conflict  domain.ConflictError
	)

	switch {
	case errors.Is(err, errUnsupportedMediaType):
		return presenter.Error(c, http.StatusUnsupportedMediaType, profile,
			"Unsupported media type", "Request body must be a JSON document sent as application/json")
	case errors.As(err, &violation):
		return presenter.Error(c, http.StatusBadRequest, profile,
			"Invalid JSON document", violation.Error())
	case errors.Is(err, handle.ErrMalformedHandle), errors.Is(err, errMalformedPath):
		return presenter.Error(c, http.StatusNotFound, profile,
			"Resource not found", "The handle does not name any resource")
	case errors.As(err, &notFound):
		return presenter.Error(c, http.StatusNotFound, profile,
			"Resource not found", notFound.Error())
	case errors.As(err, &conflict):
		return presenter.Error(c, http.StatusConflict, profile,
			"Conflict", conflict.Error())
	}

	return presenter.InternalError(c, err)
}
