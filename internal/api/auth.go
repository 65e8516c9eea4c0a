// File: internal/api/auth.go
package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Username        string `json:"username" validate:"required" example:"alice"`
	Email           string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password        string `json:"password" validate:"required,min=6" example:"Secret123!"`
	ExperienceLevel string `json:"experienceLevel,omitempty" validate:"omitempty,oneof=NOVICE INTERMEDIATE ADVANCED EXPERT" example:"NOVICE"`
}

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}

// swagger:model api.ChangePasswordRequest
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required" example:"Secret123!"`
	NewPassword     string `json:"newPassword" validate:"required,min=6" example:"NewSecret456!"`
}

// swagger:model api.RefreshRequest
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required" example:"eyJhbGciOi..."`
}

// AuthResponse 註冊與登入成功時回傳使用者與雙令牌
// swagger:model api.AuthResponse
type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken" example:"eyJhbGciOi..."`
	RefreshToken string       `json:"refreshToken" example:"eyJhbGciOi..."`
}

// swagger:model api.RefreshResponse
type RefreshResponse struct {
	AccessToken string `json:"accessToken" example:"eyJhbGciOi..."`
}

// TokenPayload 解碼後的存取令牌內容
// swagger:model api.TokenPayload
type TokenPayload struct {
	Sub      string `json:"sub" example:"8e4f72e6-1d18-4f0e-9ccb-854a1f9f2d5a"`
	Email    string `json:"email" example:"alice@example.com"`
	Username string `json:"username" example:"alice"`
}

// ValidateTokenResponse 永不失敗的令牌檢查回應
// swagger:model api.ValidateTokenResponse
type ValidateTokenResponse struct {
	Valid   bool          `json:"valid"`
	Payload *TokenPayload `json:"payload,omitempty"`
}
