package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/artify-ai/artify-backend/internal/domain/error"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// httpStatus maps domain errors to HTTP status codes
func httpStatus(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, domainerr.ErrInvalidCredentials),
		errors.Is(err, domainerr.ErrInvalidIdentityToken):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrUserNotFound),
		errors.Is(err, domainerr.ErrTransactionNotFound),
		errors.Is(err, domainerr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrDuplicateUser),
		errors.Is(err, domainerr.ErrDuplicateExternalID):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrNegativeAmount),
		errors.Is(err, domainerr.ErrInvalidUserID),
		errors.Is(err, domainerr.ErrInvalidEmail),
		errors.Is(err, domainerr.ErrInvalidExternalID),
		errors.Is(err, domainerr.ErrInvalidRequest),
		errors.Is(err, domainerr.ErrInvalidSignature),
		errors.Is(err, domainerr.ErrMalformedPayload):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrProvider):
		return http.StatusBadGateway
	case errors.Is(err, domainerr.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a standardized error response for a domain error
func respondError(c *gin.Context, err error) {
	status := httpStatus(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		// Internal details stay in the logs
		message = "Internal server error"
		if errors.Is(err, domainerr.ErrProvider) {
			message = "Upstream provider error"
		}
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBadRequest writes a 400 for request binding failures
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format",
		Details: err.Error(),
	})
}
