package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/artify-ai/artify-backend/internal/domain/error"
	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
	"github.com/artify-ai/artify-backend/internal/domain/port/persistence"
	"github.com/artify-ai/artify-backend/internal/domain/port/security"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware
const (
	// ContextUserID holds the authenticated user's ID
	ContextUserID = "userID"
	// ContextUser holds the authenticated user entity, set by RequireAdmin
	ContextUser = "user"
)

// RequireAuth validates the bearer token and stores the user ID in the context
func RequireAuth(tokens security.TokenIssuer, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Message: "Missing or malformed Authorization header",
			})
			return
		}

		userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			logger.Warn("Rejected session token", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Message: "Invalid or expired session token",
			})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// RequireAdmin loads the authenticated user and rejects non-admins.
// Must run after RequireAuth.
func RequireAdmin(userRepo persistence.UserRepository, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint64(ContextUserID)

		user, err := userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Message: "Invalid session",
			})
			return
		}

		if !user.IsAdmin() {
			logger.Warn("Non-admin attempted admin endpoint", map[string]any{
				"user_id": userID,
				"path":    c.Request.URL.Path,
			})
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Message: "Admin access required",
			})
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}
