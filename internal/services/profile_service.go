package services

import (
	"errors"
	"fmt"

	"github.com/devmarket/devmarket-backend/internal/dto"
	"github.com/devmarket/devmarket-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Get returns the caller's profile. A missing row means the account has
// never been approved.
func (s *ProfileService) Get(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", userID).Error; err != nil {
		return nil, ErrProfileNotFound
	}
	return &profile, nil
}

// Update applies a partial edit to the caller's own profile. GitHub and
// expertise are developer-only fields; the admin endpoint passes
// devFields=false and they are ignored there.
func (s *ProfileService) Update(userID uuid.UUID, req *dto.UpdateProfileRequest, devFields bool) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", userID).Error; err != nil {
		return nil, ErrProfileNotFound
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		if *req.FullName == "" {
			return nil, fmt.Errorf("%w: full_name", ErrFieldRequired)
		}
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.LinkedIn != nil {
		updates["linkedin"] = *req.LinkedIn
	}
	if devFields {
		if req.GitHub != nil {
			updates["github"] = *req.GitHub
		}
		if req.Expertise != nil {
			updates["expertise"] = *req.Expertise
		}
	}

	if len(updates) == 0 {
		return &profile, nil
	}

	if err := s.db.Model(&profile).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &profile, nil
}
