// File: internal/handler/auth/logout_test.go
package auth

import (
	"net/http"
	"testing"

	"options-lab/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestLogoutHandler(t *testing.T) {
	e := echo.New()

	// no claims
	ctx, rec := newAuthCtx(e, http.MethodPost, "")
	require.NoError(t, LogoutHandler()(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// success
	ctx, rec = newAuthCtx(e, http.MethodPost, "")
	require.NoError(t, LogoutHandler()(withClaims(ctx, &service.CustomClaims{UserID: "u-1"})))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "logged out")
}
