package handlers

import (
	"encoding/json"
	"strconv"

	"github.com/devmarket/devmarket-backend/internal/dto"
	"github.com/devmarket/devmarket-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingsHandler manages admin-editable platform settings.
type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

// GetSettings returns all settings as a typed key/value map (public).
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	var settings []models.Setting
	if err := h.db.Find(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch settings",
		})
	}

	result := make(map[string]interface{})
	for _, s := range settings {
		result[s.Key] = typedValue(s)
	}

	return c.JSON(result)
}

// SetKey sets or updates a settings key (admin only).
func (h *SettingsHandler) SetKey(c *fiber.Ctx) error {
	key := c.Params("key", "")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Key parameter is required",
		})
	}

	var payload struct {
		Value string `json:"value"`
		Type  string `json:"type"` // string, bool, int, json
	}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if payload.Value == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Value is required",
		})
	}
	if payload.Type == "" {
		payload.Type = "string"
	}

	var setting models.Setting
	err := h.db.Where("key = ?", key).First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		setting = models.Setting{
			ID:    uuid.New(),
			Key:   key,
			Value: payload.Value,
			Type:  payload.Type,
		}
		if err := h.db.Create(&setting).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to create setting",
			})
		}
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to query setting",
		})
	} else {
		setting.Value = payload.Value
		setting.Type = payload.Type
		if err := h.db.Save(&setting).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to update setting",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Setting updated successfully",
		"setting": fiber.Map{
			"key":   setting.Key,
			"value": setting.Value,
			"type":  setting.Type,
		},
	})
}

// DeleteKey deletes a settings key (admin only).
func (h *SettingsHandler) DeleteKey(c *fiber.Ctx) error {
	key := c.Params("key", "")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Key parameter is required",
		})
	}

	result := h.db.Where("key = ?", key).Delete(&models.Setting{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete setting",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Setting not found",
		})
	}

	return c.JSON(fiber.Map{"message": "Setting deleted successfully"})
}

// SeedDefaults creates default settings that don't exist yet.
func (h *SettingsHandler) SeedDefaults() error {
	defaults := []models.Setting{
		{Key: "platform_name", Value: "DevMarket", Type: "string"},
		{Key: "maintenance_mode", Value: "false", Type: "bool"},
		{Key: "announcement_title", Value: "", Type: "string"},
		{Key: "announcement_message", Value: "", Type: "string"},
		{Key: "max_products_per_developer", Value: "50", Type: "int"},
	}

	for _, def := range defaults {
		var existing models.Setting
		err := h.db.Where("key = ?", def.Key).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			def.ID = uuid.New()
			if err := h.db.Create(&def).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func typedValue(s models.Setting) interface{} {
	switch s.Type {
	case "bool":
		v, _ := strconv.ParseBool(s.Value)
		return v
	case "int":
		v, _ := strconv.Atoi(s.Value)
		return v
	case "json":
		var v interface{}
		json.Unmarshal([]byte(s.Value), &v)
		return v
	default:
		return s.Value
	}
}
