package handlers

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/devmarket/devmarket-backend/internal/dto"
	"github.com/devmarket/devmarket-backend/internal/middleware"
	"github.com/devmarket/devmarket-backend/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadHandler stores product images in object storage and hands back
// the public URL for the product's image field.
type UploadHandler struct {
	uploader storage.Uploader
}

func NewUploadHandler(uploader storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	if h.uploader == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Error: true, Message: "Image storage is not configured",
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Image file is required",
		})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Only image uploads are allowed",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to read uploaded file",
		})
	}
	defer file.Close()

	objectName := "products/" + userID.String() + "/" + uuid.NewString() + filepath.Ext(fileHeader.Filename)
	url, err := h.uploader.Upload(c.UserContext(), objectName, contentType, file)
	if err != nil {
		slog.Error("image upload failed", "user_id", userID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store image",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
