package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/devmarket/devmarket-backend/internal/dto"
	"github.com/devmarket/devmarket-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSelfDelete           = errors.New("cannot delete your own account")
	ErrInvalidAccountStatus = errors.New("status must be pending, approved, or rejected")
)

// UserService owns the account approval workflow. It also backs the
// role middleware: every role gate resolves the caller's role through
// ResolveRole, so the users table is the only role source of truth.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) ResolveRole(userID uuid.UUID) (string, error) {
	var user models.User
	if err := s.db.Select("role").First(&user, "id = ?", userID).Error; err != nil {
		return "", ErrUserNotFound
	}
	return user.Role, nil
}

// UpdateStatus moves an account between pending, approved and rejected.
// Any transition is legal and repeating one is a no-op. On a transition
// into approved the user's profile row is materialized; a failure there
// is logged and swallowed so the approval itself still succeeds.
func (s *UserService) UpdateStatus(req *dto.UpdateUserStatusRequest) (*models.User, error) {
	if !models.ValidStatus(req.Status) {
		return nil, ErrInvalidAccountStatus
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", req.UserID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if err := s.db.Model(&user).Update("status", req.Status).Error; err != nil {
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}
	user.Status = req.Status

	if req.Status == models.StatusApproved {
		if err := s.ensureProfile(&user); err != nil {
			slog.Error("profile creation on approval failed",
				"user_id", user.ID.String(), "error", err.Error())
		}
	}

	return &user, nil
}

// ensureProfile inserts the profile row copied from the identity record.
// ON CONFLICT DO NOTHING makes it safe under concurrent approvals of the
// same user.
func (s *UserService) ensureProfile(user *models.User) error {
	profile := models.Profile{
		ID:       user.ID,
		FullName: user.FullName,
		Phone:    user.Phone,
		Email:    user.Email,
		Role:     user.Role,
	}
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&profile).Error
}

// Delete soft-deletes the identity record. The user's profile and
// products are deliberately left in place; admins can still review
// orphaned products. Admins cannot delete themselves.
func (s *UserService) Delete(callerID, userID uuid.UUID) error {
	if callerID == userID {
		return ErrSelfDelete
	}

	result := s.db.Delete(&models.User{}, "id = ?", userID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
