// File: internal/handler/auth/auth.go
package auth

import (
	"options-lab/internal/middleware"
	"options-lab/internal/service"
	"options-lab/internal/store"

	"github.com/labstack/echo/v4"
)

// 測試替換點
var (
	hashPassword       = service.HashPassword
	authenticateUser   = service.AuthenticateUser
	issueAccessToken   = service.IssueAccessToken
	issueRefreshToken  = service.IssueRefreshToken
	verifyAccessToken  = service.VerifyAccessToken
	verifyRefreshToken = service.VerifyRefreshToken
	createUser         = store.CreateUser
	getUserByEmail     = store.GetUserByEmail
	getUserByID        = store.GetUserByID
	touchUser          = store.TouchUser
	updateUserPassword = store.UpdateUserPassword
)

// currentClaims 取出 RequireAuth 放進 context 的 JWT claims
func currentClaims(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
	return claims, ok && claims != nil
}
