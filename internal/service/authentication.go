// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"options-lab/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// 兩類令牌使用獨立密鑰，縮小單一密鑰外洩的影響範圍
const (
	AccessTokenTTL  = time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour

	accessSecretEnv  = "JWT_SECRET"
	refreshSecretEnv = "JWT_REFRESH_SECRET"
)

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// 測試替換點
var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// AuthenticateUser 根據使用者結構和明文密碼驗證
func AuthenticateUser(ctx context.Context, user model.User, password string) error {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return errors.New("invalid password")
	}
	return nil
}

func issueToken(user model.User, secretEnv string, ttl time.Duration) (string, error) {
	secret := os.Getenv(secretEnv)
	if secret == "" {
		return "", fmt.Errorf("%s not set", secretEnv)
	}

	now := timeNow()
	claims := CustomClaims{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func verifyToken(tokenString, secretEnv string) (*CustomClaims, error) {
	secret := os.Getenv(secretEnv)
	if secret == "" {
		return nil, fmt.Errorf("%s not set", secretEnv)
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// IssueAccessToken 簽發一小時效期的存取令牌
func IssueAccessToken(user model.User) (string, error) {
	return issueToken(user, accessSecretEnv, AccessTokenTTL)
}

// IssueRefreshToken 簽發七天效期的更新令牌
func IssueRefreshToken(user model.User) (string, error) {
	return issueToken(user, refreshSecretEnv, RefreshTokenTTL)
}

// VerifyAccessToken 驗證並解析存取令牌
func VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	return verifyToken(tokenString, accessSecretEnv)
}

// VerifyRefreshToken 驗證並解析更新令牌
func VerifyRefreshToken(tokenString string) (*CustomClaims, error) {
	return verifyToken(tokenString, refreshSecretEnv)
}
