package dto

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plateworks/caterops/internal/domain"
)

// traceIDKey is the gin context key middleware uses to stash the trace ID.
const traceIDKey = "trace_id"

// GetTraceID extracts the trace ID for error responses. The context value
// set by middleware wins; the request ID header is the fallback.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get(traceIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}

		return ""
	}

	return c.Request.Header.Get("X-Request-ID")
}

// HandleError maps a domain error to the standard error envelope and
// writes it. Handlers call this for any error from the application layer.
func HandleError(c *gin.Context, err error) {
	status, resp := mapError(err)
	resp.TraceID = GetTraceID(c)

	c.JSON(status, resp)
}

// RespondValidationError writes the standard envelope for a request
// binding or validation failure, with per-field details when available.
func RespondValidationError(c *gin.Context, err error) {
	resp := NewErrorResponseWithDetails(
		ErrorCodeValidation,
		"request validation failed",
		ValidationErrors(err),
	)
	resp.TraceID = GetTraceID(c)

	c.JSON(http.StatusBadRequest, resp)
}

// mapError translates domain errors to HTTP status and error envelope.
// Unknown errors get a generic message to avoid leaking internals.
func mapError(err error) (int, *ErrorResponse) {
	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsInvalidTransition(err):
		return http.StatusUnprocessableEntity, NewErrorResponse(ErrorCodeInvalidTransition, err.Error())

	case domain.IsConflict(err):
		return http.StatusConflict, NewErrorResponse(ErrorCodeConflict, err.Error())

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

		return http.StatusBadRequest, resp

	case domain.IsForbidden(err):
		return http.StatusForbidden, NewErrorResponse(ErrorCodeForbidden, err.Error())

	case domain.IsNotification(err):
		return http.StatusBadGateway, NewErrorResponse(ErrorCodeNotification, err.Error())

	case domain.IsUnavailable(err):
		var unavailableErr *domain.UnavailableError

		service := "service"
		if errors.As(err, &unavailableErr) {
			service = unavailableErr.Service
		}

		return http.StatusServiceUnavailable, NewErrorResponse(
			ErrorCodeUnavailable,
			fmt.Sprintf("%s temporarily unavailable", service),
		)

	default:
		return http.StatusInternalServerError, NewErrorResponse(
			ErrorCodeInternal,
			"an internal error occurred",
		)
	}
}
