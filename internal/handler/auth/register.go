// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"options-lab/internal/api"
	"options-lab/internal/database"
	"options-lab/internal/model"
	"options-lab/internal/store"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 註冊新使用者並簽發雙令牌
// @Summary     註冊使用者
// @Description 建立新帳號並回傳使用者資料與存取/更新令牌 (Email 會自動轉小寫)
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.RegisterRequest true "註冊資料"
// @Success     201  {object} api.AuthResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)

		// 先查既有帳號；真正的裁決者是 email 唯一索引
		if _, err := getUserByEmail(c.Request().Context(), db, req.Email); err == nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "email already in use"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		level := model.ExperienceNovice
		if req.ExperienceLevel != "" {
			level = model.ExperienceLevel(req.ExperienceLevel)
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Username:        req.Username,
			Email:           req.Email,
			PasswordHash:    hash,
			ExperienceLevel: level,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "email already in use"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to register user"})
		}

		accessToken, err := issueAccessToken(*user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}
		refreshToken, err := issueRefreshToken(*user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue refresh token"})
		}

		return c.JSON(http.StatusCreated, api.AuthResponse{
			User:         api.NewUserResponse(user),
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		})
	}
}
