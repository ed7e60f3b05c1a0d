package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin     = "admin"
	RoleDeveloper = "developer"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidRole reports whether r is one of the two account roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleDeveloper
}

// ValidStatus reports whether s is one of the three review states.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// User is the identity record. Role and status live here, making this
// table the single source of truth for every role gate.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Role      string         `gorm:"size:20;not null;default:'developer'" json:"role"`
	Status    string         `gorm:"size:20;not null;default:'pending'" json:"status"`
	FullName  string         `gorm:"size:255" json:"full_name"`
	Phone     string         `gorm:"size:50" json:"phone"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
