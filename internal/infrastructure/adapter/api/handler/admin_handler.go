package handler

import (
	"net/http"
	"strconv"

	"github.com/artify-ai/artify-backend/internal/domain/entity"
	domainerr "github.com/artify-ai/artify-backend/internal/domain/error"
	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
	adminUseCase "github.com/artify-ai/artify-backend/internal/domain/usecase/admin"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles administrative HTTP requests
type AdminHandler struct {
	adminService *adminUseCase.Service
	logger       coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(adminService *adminUseCase.Service, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

func parseUserID(c *gin.Context) (uint64, bool) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid user ID format",
		})
		return 0, false
	}
	return userID, true
}

// ListUsers handles the GET /admin/users endpoint
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewUserResponse(user))
	}
	c.JSON(http.StatusOK, responses)
}

// Stats handles the GET /admin/stats endpoint
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		TotalUsers:            stats.TotalUsers,
		TotalCredits:          stats.TotalCredits,
		CompletedTransactions: stats.CompletedTransactions,
	})
}

// DeleteUser handles the DELETE /admin/users/:id endpoint
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateRole handles the PATCH /admin/users/:id/role endpoint
func (h *AdminHandler) UpdateRole(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req dto.RoleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.adminService.UpdateRole(c.Request.Context(), userID, entity.Role(req.Role)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GiftCredits handles the POST /admin/users/:id/gift endpoint
func (h *AdminHandler) GiftCredits(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req dto.GiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	newBalance, err := h.adminService.GiftCredits(c.Request.Context(), userID, req.Credits)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GiftResponse{
		UserID:     userID,
		Credits:    req.Credits,
		NewBalance: newBalance,
	})
}
