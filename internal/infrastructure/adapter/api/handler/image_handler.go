package handler

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/artify-ai/artify-backend/internal/domain/entity"
	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
	"github.com/artify-ai/artify-backend/internal/domain/port/provider"
	creditsUseCase "github.com/artify-ai/artify-backend/internal/domain/usecase/credits"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/api/dto"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ImageHandler handles paid image operation HTTP requests
type ImageHandler struct {
	executor      *creditsUseCase.Executor
	imageProvider provider.ImageProvider
	imageCost     int64
	uploadDir     string
	logger        coreport.Logger
}

// NewImageHandler creates a new image handler instance
func NewImageHandler(
	executor *creditsUseCase.Executor,
	imageProvider provider.ImageProvider,
	imageCost int64,
	uploadDir string,
	logger coreport.Logger,
) *ImageHandler {
	if uploadDir == "" {
		uploadDir = os.TempDir()
	}
	return &ImageHandler{
		executor:      executor,
		imageProvider: imageProvider,
		imageCost:     imageCost,
		uploadDir:     uploadDir,
		logger:        logger,
	}
}

// Generate handles the POST /ai/generate endpoint
func (h *ImageHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	userID := c.GetUint64(middleware.ContextUserID)

	receipt, err := h.executor.Execute(c.Request.Context(), userID, h.imageCost, entity.TypeImageGeneration,
		func(ctx context.Context) (string, error) {
			return h.imageProvider.Generate(ctx, req.Prompt)
		})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ImageResponse{
		URL:        receipt.ResultURL,
		Cost:       receipt.Cost,
		NewBalance: receipt.NewBalance,
	})
}

// Edit handles the POST /ai/edit endpoint (multipart image + prompt)
func (h *ImageHandler) Edit(c *gin.Context) {
	prompt := c.PostForm("prompt")
	if prompt == "" {
		respondBadRequest(c, fmt.Errorf("prompt is required"))
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	sourcePath, cleanup, err := h.saveUpload(c, file)
	if err != nil {
		respondError(c, err)
		return
	}
	defer cleanup()

	userID := c.GetUint64(middleware.ContextUserID)

	receipt, err := h.executor.Execute(c.Request.Context(), userID, h.imageCost, entity.TypeImageEdit,
		func(ctx context.Context) (string, error) {
			return h.imageProvider.Edit(ctx, sourcePath, prompt)
		})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ImageResponse{
		URL:        receipt.ResultURL,
		Cost:       receipt.Cost,
		NewBalance: receipt.NewBalance,
	})
}

// Variation handles the POST /ai/variation endpoint (multipart image)
func (h *ImageHandler) Variation(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	sourcePath, cleanup, err := h.saveUpload(c, file)
	if err != nil {
		respondError(c, err)
		return
	}
	defer cleanup()

	userID := c.GetUint64(middleware.ContextUserID)

	receipt, err := h.executor.Execute(c.Request.Context(), userID, h.imageCost, entity.TypeImageVariation,
		func(ctx context.Context) (string, error) {
			return h.imageProvider.Variation(ctx, sourcePath)
		})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ImageResponse{
		URL:        receipt.ResultURL,
		Cost:       receipt.Cost,
		NewBalance: receipt.NewBalance,
	})
}

// saveUpload stores the uploaded file under a unique name. The cleanup
// function removes it and must be called on every exit path.
func (h *ImageHandler) saveUpload(c *gin.Context, file *multipart.FileHeader) (string, func(), error) {
	path := filepath.Join(h.uploadDir, uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", nil, err
	}

	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			h.logger.Warn("Failed to remove uploaded temp file", map[string]any{
				"path":  path,
				"error": err.Error(),
			})
		}
	}
	return path, cleanup, nil
}
