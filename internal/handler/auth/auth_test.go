// File: internal/handler/auth/auth_test.go
package auth

import (
	"errors"
	"net/http/httptest"
	"strings"

	"options-lab/internal/middleware"
	"options-lab/internal/service"
	"options-lab/internal/store"

	"github.com/labstack/echo/v4"
)

// 將所有替換點還原為正式實作
func restoreAuthGlobals() {
	hashPassword = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	issueRefreshToken = service.IssueRefreshToken
	verifyAccessToken = service.VerifyAccessToken
	verifyRefreshToken = service.VerifyRefreshToken
	createUser = store.CreateUser
	getUserByEmail = store.GetUserByEmail
	getUserByID = store.GetUserByID
	touchUser = store.TouchUser
	updateUserPassword = store.UpdateUserPassword
}

// helper to build echo context
func newAuthCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// withClaims 模擬 RequireAuth 放入 context 的 claims
func withClaims(ctx echo.Context, claims *service.CustomClaims) echo.Context {
	ctx.Set(middleware.ContextUserKey, claims)
	return ctx
}

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }
