package dto

import (
	"github.com/google/uuid"

	"github.com/devmarket/devmarket-backend/internal/models"
)

type CreateProductRequest struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	Discount    *int     `json:"discount,omitempty"`
	Href        string   `json:"href"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Tools       []string `json:"tools,omitempty"`
}

// UpdateProductRequest is a partial update; nil fields are left
// untouched. Status and admin notes are deliberately absent.
type UpdateProductRequest struct {
	ID          uuid.UUID `json:"id"`
	Title       *string   `json:"title,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Discount    *int      `json:"discount,omitempty"`
	Href        *string   `json:"href,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Description *string   `json:"description,omitempty"`
	Tools       *[]string `json:"tools,omitempty"`
}

type DeleteProductRequest struct {
	ID uuid.UUID `json:"id"`
}

type UpdateProductStatusRequest struct {
	ID         uuid.UUID `json:"id"`
	Status     string    `json:"status"`
	AdminNotes *string   `json:"admin_notes,omitempty"`
}

// AdminProduct is a product row joined with its developer's contact
// fields for the admin listing.
type AdminProduct struct {
	models.Product
	DeveloperName  string `json:"developer_name"`
	DeveloperEmail string `json:"developer_email"`
	DeveloperPhone string `json:"developer_phone"`
}
