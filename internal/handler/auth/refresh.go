// File: internal/handler/auth/refresh.go
package auth

import (
	"net/http"

	"options-lab/internal/api"
	"options-lab/internal/database"

	"github.com/labstack/echo/v4"
)

// RefreshHandler 以更新令牌換發新的存取令牌
// @Summary     更新存取令牌
// @Description 驗證更新令牌並簽發新的存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.RefreshRequest true "更新令牌"
// @Success     200  {object} api.RefreshResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/refresh [post]
func RefreshHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RefreshRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		claims, err := verifyRefreshToken(req.RefreshToken)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid refresh token"})
		}

		// 重新載入使用者，已刪除的帳號不得換發
		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid refresh token"})
		}

		accessToken, err := issueAccessToken(*user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.RefreshResponse{AccessToken: accessToken})
	}
}
