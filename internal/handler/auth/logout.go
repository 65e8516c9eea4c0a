// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"options-lab/internal/api"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 登出當前使用者
// 伺服器端沒有令牌撤銷清單，登出僅是確認；已簽發的存取令牌
// 在自然到期前仍然有效，用戶端應自行丟棄令牌。
// @Summary     登出使用者
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/logout [post]
func LogoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := currentClaims(c); !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "logged out"})
	}
}
