// File: internal/handler/auth/change_password_test.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"options-lab/internal/database"
	"options-lab/internal/model"
	"options-lab/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestChangePasswordHandler(t *testing.T) {
	t.Cleanup(restoreAuthGlobals)
	body := `{"currentPassword":"old-pw","newPassword":"new-pw"}`
	claims := &service.CustomClaims{UserID: "u-1"}

	// no claims
	e := echo.New()
	ctx, rec := newAuthCtx(e, http.MethodPost, body)
	require.NoError(t, ChangePasswordHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// bind error
	e = echo.New()
	e.Binder = errBinder{}
	ctx, rec = newAuthCtx(e, http.MethodPost, "")
	require.NoError(t, ChangePasswordHandler(&database.FakeDB{})(withClaims(ctx, claims)))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newAuthCtx(e, http.MethodPost, body)
	require.NoError(t, ChangePasswordHandler(&database.FakeDB{})(withClaims(ctx, claims)))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	e = echo.New()
	e.Validator = okValidator{}

	// user gone
	getUserByID = func(context.Context, database.DB, string) (*model.User, error) {
		return nil, errors.New("no rows")
	}
	ctx, rec = newAuthCtx(e, http.MethodPost, body)
	require.NoError(t, ChangePasswordHandler(&database.FakeDB{})(withClaims(ctx, claims)))
	require.Equal(t, http.StatusNotFound, rec.Code)

	getUserByID = func(context.Context, database.DB, string) (*model.User, error) {
		return &model.User{ID: "u-1", PasswordHash: "stored-hash"}, nil
	}

	// wrong current password
	updated := false
	updateUserPassword = func(context.Context, database.DB, string, string) error {
		updated = true
		return nil
	}
	authenticateUser = func(ctx context.Context, u model.User, pw string) error {
		require.Equal(t, "old-pw", pw)
		return errors.New("invalid password")
	}
	ctx, rec = newAuthCtx(e, http.MethodPost, body)
	require.NoError(t, ChangePasswordHandler(&database.FakeDB{})(withClaims(ctx, claims)))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid current password")
	require.False(t, updated)

	authenticateUser = func(context.Context, model.User, string) error { return nil }

	// hash error
	hashPassword = func(string) (string, error) { return "", errors.New("hash") }
	ctx, rec = newAuthCtx(e, http.MethodPost, body)
	require.NoError(t, ChangePasswordHandler(&database.FakeDB{})(withClaims(ctx, claims)))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	hashPassword = func(pw string) (string, error) {
		require.Equal(t, "new-pw", pw)
		return "new-hash", nil
	}

	// update error
	updateUserPassword = func(context.Context, database.DB, string, string) error { return errors.New("update") }
	ctx, rec = newAuthCtx(e, http.MethodPost, body)
	require.NoError(t, ChangePasswordHandler(&database.FakeDB{})(withClaims(ctx, claims)))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success
	updateUserPassword = func(ctx context.Context, db database.DB, id, hash string) error {
		require.Equal(t, "u-1", id)
		require.Equal(t, "new-hash", hash)
		return nil
	}
	ctx, rec = newAuthCtx(e, http.MethodPost, body)
	require.NoError(t, ChangePasswordHandler(&database.FakeDB{})(withClaims(ctx, claims)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "password changed")
}
