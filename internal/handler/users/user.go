// File: internal/handler/users/user.go
package users

import (
	"errors"
	"net/http"
	"strings"

	"options-lab/internal/api"
	"options-lab/internal/database"
	"options-lab/internal/model"
	"options-lab/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// 測試替換點
var (
	getUserByID       = store.GetUserByID
	getUserByEmail    = store.GetUserByEmail
	updateUserProfile = store.UpdateUserProfile
	deleteUser        = store.DeleteUser
	userExists        = store.UserExists
)

// GetProfileHandler 取得使用者個人資料
// @Summary     取得使用者資料
// @Tags        users
// @Produce     json
// @Param       id path string true "使用者 ID"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id}/profile [get]
func GetProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// UpdateProfileHandler 部分更新使用者個人資料
// 變更 Email 時同樣受唯一索引保護
// @Summary     更新使用者資料
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path string true "使用者 ID"
// @Param       body body api.UpdateProfileRequest true "更新欄位"
// @Success     200  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id}/profile [patch]
func UpdateProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		var req api.UpdateProfileRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}

		if req.Username != nil {
			user.Username = *req.Username
		}
		if req.Email != nil {
			email := strings.ToLower(*req.Email)
			if other, err := getUserByEmail(c.Request().Context(), db, email); err == nil && other.ID != user.ID {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "email already in use"})
			}
			user.Email = email
		}
		if req.ExperienceLevel != nil {
			user.ExperienceLevel = model.ExperienceLevel(*req.ExperienceLevel)
		}

		if err := updateUserProfile(c.Request().Context(), db, user); err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "email already in use"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update user"})
		}

		updated, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load user"})
		}

		return c.JSON(http.StatusOK, api.NewUserResponse(updated))
	}
}

// DeleteUserHandler 刪除使用者，相關模擬由資料庫 cascade 一併刪除
// @Summary     刪除使用者
// @Tags        users
// @Produce     json
// @Param       id path string true "使用者 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		exists, err := userExists(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to check user"})
		}
		if !exists {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}

		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to delete user"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "user deleted"})
	}
}

// GetUserStatisticsHandler 取得使用者帳號摘要
// @Summary     取得使用者摘要
// @Tags        users
// @Produce     json
// @Param       id path string true "使用者 ID"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id}/statistics [get]
func GetUserStatisticsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// UserExistsHandler 檢查使用者是否存在
// @Summary     檢查使用者存在
// @Tags        users
// @Produce     json
// @Param       id path string true "使用者 ID"
// @Success     200 {object} api.ExistsResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id}/exists [get]
func UserExistsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		exists, err := userExists(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to check user"})
		}
		return c.JSON(http.StatusOK, api.ExistsResponse{Exists: exists})
	}
}
