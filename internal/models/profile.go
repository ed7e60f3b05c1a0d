package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds a user's public contact attributes. A row is only
// materialized the first time the account transitions to approved; the
// primary key equals the user id, so the upsert guard in the user
// service guarantees at most one row per user.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName  string    `gorm:"size:255;not null" json:"full_name"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Role      string    `gorm:"size:20;not null" json:"role"`
	Location  *string   `gorm:"size:255" json:"location,omitempty"`
	Bio       *string   `gorm:"type:text" json:"bio,omitempty"`
	LinkedIn  *string   `gorm:"column:linkedin;size:255" json:"linkedin,omitempty"`
	GitHub    *string   `gorm:"column:github;size:255" json:"github,omitempty"`
	Expertise *string   `gorm:"size:255" json:"expertise,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
