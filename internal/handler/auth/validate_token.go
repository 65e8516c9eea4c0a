// File: internal/handler/auth/validate_token.go
package auth

import (
	"net/http"
	"strings"

	"options-lab/internal/api"

	"github.com/labstack/echo/v4"
)

// ValidateTokenHandler 檢查存取令牌，永遠回覆 200
// 缺少標頭、格式錯誤、簽章不符或過期一律回 {valid: false}
// @Summary     驗證存取令牌
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.ValidateTokenResponse
// @Router      /auth/validate-token [post]
func ValidateTokenHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusOK, api.ValidateTokenResponse{Valid: false})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return c.JSON(http.StatusOK, api.ValidateTokenResponse{Valid: false})
		}

		claims, err := verifyAccessToken(parts[1])
		if err != nil {
			return c.JSON(http.StatusOK, api.ValidateTokenResponse{Valid: false})
		}

		return c.JSON(http.StatusOK, api.ValidateTokenResponse{
			Valid: true,
			Payload: &api.TokenPayload{
				Sub:      claims.UserID,
				Email:    claims.Email,
				Username: claims.Username,
			},
		})
	}
}
