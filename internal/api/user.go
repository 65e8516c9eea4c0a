// File: internal/api/user.go
package api

import (
	"time"

	"options-lab/internal/model"
)

// UserResponse 對外的使用者表示，永不包含 password_hash
// swagger:model api.UserResponse
type UserResponse struct {
	ID              string    `json:"id" example:"8e4f72e6-1d18-4f0e-9ccb-854a1f9f2d5a"`
	Username        string    `json:"username" example:"alice"`
	Email           string    `json:"email" example:"alice@example.com"`
	ExperienceLevel string    `json:"experienceLevel" example:"NOVICE"`
	CreatedAt       time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z"`
	UpdatedAt       time.Time `json:"updatedAt" example:"2025-05-01T15:04:05Z"`
}

// NewUserResponse 由資料列組裝回應
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		ExperienceLevel: string(u.ExperienceLevel),
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// swagger:model api.UpdateProfileRequest
type UpdateProfileRequest struct {
	Username        *string `json:"username,omitempty" validate:"omitempty,min=1" example:"alice"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email" example:"alice@example.com"`
	ExperienceLevel *string `json:"experienceLevel,omitempty" validate:"omitempty,oneof=NOVICE INTERMEDIATE ADVANCED EXPERT" example:"INTERMEDIATE"`
}

// swagger:model api.ExistsResponse
type ExistsResponse struct {
	Exists bool `json:"exists"`
}
