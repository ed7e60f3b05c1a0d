package dto

import "github.com/google/uuid"

type UpdateUserStatusRequest struct {
	UserID uuid.UUID `json:"userId"`
	Status string    `json:"status"`
}

type DeleteUserRequest struct {
	UserID uuid.UUID `json:"userId"`
}
