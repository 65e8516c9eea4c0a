// File: internal/handler/auth/validate_token_test.go
package auth

import (
	"errors"
	"net/http"
	"testing"

	"options-lab/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestValidateTokenHandler(t *testing.T) {
	t.Cleanup(restoreAuthGlobals)
	e := echo.New()

	// 缺標頭仍回 200
	ctx, rec := newAuthCtx(e, http.MethodPost, "")
	require.NoError(t, ValidateTokenHandler()(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"valid":false`)

	// bad format
	ctx, rec = newAuthCtx(e, http.MethodPost, "")
	ctx.Request().Header.Set("Authorization", "BadHeader")
	require.NoError(t, ValidateTokenHandler()(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"valid":false`)

	// verify fails
	verifyAccessToken = func(string) (*service.CustomClaims, error) { return nil, errors.New("bad") }
	ctx, rec = newAuthCtx(e, http.MethodPost, "")
	ctx.Request().Header.Set("Authorization", "Bearer tok")
	require.NoError(t, ValidateTokenHandler()(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"valid":false`)

	// valid token carries payload
	verifyAccessToken = func(tok string) (*service.CustomClaims, error) {
		require.Equal(t, "tok", tok)
		return &service.CustomClaims{UserID: "u-1", Email: "a@x.com", Username: "alice"}, nil
	}
	ctx, rec = newAuthCtx(e, http.MethodPost, "")
	ctx.Request().Header.Set("Authorization", "Bearer tok")
	require.NoError(t, ValidateTokenHandler()(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"valid":true`)
	require.Contains(t, rec.Body.String(), "u-1")
	require.Contains(t, rec.Body.String(), "alice")
}
