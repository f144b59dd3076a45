package strategy

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/straddleshift/configapi/shared/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SaveRequest is the save payload: the client key plus the raw form values.
type SaveRequest struct {
	ClientID string `json:"client_id"`
	RawSubmission
}

// GetConfig returns the current document for a client.
func (h *Handler) GetConfig(c echo.Context) error {
	clientID := c.QueryParam("client_id")

	config, err := h.service.LoadExisting(c.Request().Context(), clientID)
	if err != nil {
		return errorResponse(c, err)
	}
	if config == nil {
		return response.ErrorResponse(c, http.StatusNotFound, "DataException", "No document yet for this client_id and strategy_id")
	}

	return response.SuccessResponse(c, config)
}

// GetPrefill returns the form values for a client, coerced from the stored
// document with defaults for anything missing.
func (h *Handler) GetPrefill(c echo.Context) error {
	clientID := c.QueryParam("client_id")

	sub, err := h.service.Prefill(c.Request().Context(), clientID)
	if err != nil {
		return errorResponse(c, err)
	}

	return response.SuccessResponse(c, sub)
}

// GetAllowedTimes returns the allowed trading window timestamps.
func (h *Handler) GetAllowedTimes(c echo.Context) error {
	return response.SuccessResponse(c, map[string]interface{}{
		"min":   MinTime.String(),
		"max":   MaxTime.String(),
		"times": Grid.Labels(),
	})
}

// SaveConfig validates and persists a submission, then reports the stored
// document, with a warning attached when the audit append failed.
func (h *Handler) SaveConfig(c echo.Context) error {
	var req SaveRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}

	config, warning, err := h.service.Save(c.Request().Context(), req.ClientID, req.RawSubmission)
	if err != nil {
		return errorResponse(c, err)
	}

	if warning != "" {
		return response.SuccessResponseWithWarning(c, config, warning)
	}
	return response.SuccessResponse(c, config)
}

// errorResponse maps the service error taxonomy onto HTTP responses.
func errorResponse(c echo.Context, err error) error {
	var identityErr *IdentityError
	if errors.As(err, &identityErr) {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", identityErr.Error())
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return response.ValidationErrorResponse(c, validationErr.Messages())
	}

	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return response.ErrorResponse(c, http.StatusInternalServerError, "StoreException", storeErr.Error())
	}

	return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
}
