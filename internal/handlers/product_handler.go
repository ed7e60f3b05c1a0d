package handlers

import (
	"errors"

	"github.com/devmarket/devmarket-backend/internal/dto"
	"github.com/devmarket/devmarket-backend/internal/middleware"
	"github.com/devmarket/devmarket-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func isValidationErr(err error) bool {
	return errors.Is(err, services.ErrFieldRequired) ||
		errors.Is(err, services.ErrInvalidCategory) ||
		errors.Is(err, services.ErrInvalidPrice) ||
		errors.Is(err, services.ErrInvalidDiscount)
}

// ListOwn returns the calling developer's products.
func (h *ProductHandler) ListOwn(c *fiber.Ctx) error {
	developerID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	products, err := h.productService.ListByDeveloper(developerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch products",
		})
	}

	return c.JSON(products)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	developerID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	product, err := h.productService.Create(developerID, &req)
	if err != nil {
		if isValidationErr(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product submitted for review",
		"product": product,
	})
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	developerID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	product, err := h.productService.Update(developerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrNotOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case isValidationErr(err):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update product",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Product updated and moved back to review",
		"product": product,
	})
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	developerID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.DeleteProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.productService.Delete(developerID, req.ID); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrNotOwner) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete product",
		})
	}

	return c.JSON(fiber.Map{
		"message":          "Product deleted successfully",
		"deletedProductId": req.ID,
	})
}

// ListAll returns every product with developer contact fields, filtered
// by optional status and category query params. Admin only.
func (h *ProductHandler) ListAll(c *fiber.Ctx) error {
	status := c.Query("status", "")
	category := c.Query("category", "")

	products, err := h.productService.ListAll(status, category)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch products",
		})
	}

	return c.JSON(products)
}

// UpdateStatus is the admin review action.
func (h *ProductHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateProductStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	product, err := h.productService.UpdateStatus(&req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrInvalidProductStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update product status",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Product status updated successfully",
		"product": product,
	})
}
