package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	CategoryWebsite = "Website"
	CategoryWebApp  = "WebApp"
)

// ValidCategory reports whether c is one of the two catalog categories.
func ValidCategory(c string) bool {
	return c == CategoryWebsite || c == CategoryWebApp
}

// Product is a developer-submitted catalog entry. DeveloperID is set at
// creation and never changes; status is only moved off "pending" by an
// admin.
type Product struct {
	ID          uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DeveloperID uuid.UUID                   `gorm:"type:uuid;not null;index" json:"developer_id"`
	Title       string                      `gorm:"size:255;not null" json:"title"`
	Category    string                      `gorm:"size:50;not null" json:"category"`
	Price       float64                     `gorm:"not null" json:"price"`
	Discount    int                         `gorm:"default:0" json:"discount"`
	Href        string                      `gorm:"size:500;not null" json:"href"`
	Image       string                      `gorm:"size:500;not null" json:"image"`
	Description string                      `gorm:"type:text;not null" json:"description"`
	Tools       datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tools"`
	Status      string                      `gorm:"size:20;not null;default:'pending';index" json:"status"`
	AdminNotes  string                      `gorm:"size:1000" json:"admin_notes,omitempty"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
	Developer   Profile                     `gorm:"foreignKey:DeveloperID" json:"-"`
}
