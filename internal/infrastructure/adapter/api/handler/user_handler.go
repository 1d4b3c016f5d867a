package handler

import (
	"net/http"

	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
	userUseCase "github.com/artify-ai/artify-backend/internal/domain/usecase/user"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/api/dto"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user-facing HTTP requests
type UserHandler struct {
	userService *userUseCase.Service
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userService *userUseCase.Service, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// Me handles the GET /user/me endpoint
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetUint64(middleware.ContextUserID)

	user, err := h.userService.Profile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// History handles the GET /user/transactions endpoint
func (h *UserHandler) History(c *gin.Context) {
	userID := c.GetUint64(middleware.ContextUserID)

	transactions, err := h.userService.History(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, dto.NewTransactionResponse(transaction))
	}
	c.JSON(http.StatusOK, responses)
}
