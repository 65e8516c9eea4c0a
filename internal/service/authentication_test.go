// File: internal/service/authentication_test.go
package service

import (
	"context"
	"testing"
	"time"

	"options-lab/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func restoreTokenGlobals() {
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
}

func TestAuthenticateUser(t *testing.T) {
	hash, _ := HashPassword("pw")
	u := model.User{PasswordHash: hash}
	require.NoError(t, AuthenticateUser(context.Background(), u, "pw"))
	require.Error(t, AuthenticateUser(context.Background(), u, "bad"))
}

func TestIssueAccessToken(t *testing.T) {
	t.Cleanup(restoreTokenGlobals)
	t.Setenv("JWT_SECRET", "")
	_, err := IssueAccessToken(model.User{})
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s")
	user := model.User{ID: "8e4f72e6-1d18-4f0e-9ccb-854a1f9f2d5a", Email: "a@x.com", Username: "alice"}
	tok, err := IssueAccessToken(user)
	require.NoError(t, err)

	claims := &CustomClaims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return []byte("s"), nil })
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, user.ID, claims.Subject)
	require.Equal(t, "a@x.com", claims.Email)
	require.Equal(t, "alice", claims.Username)
}

func TestIssueRefreshTokenUsesOwnSecret(t *testing.T) {
	t.Cleanup(restoreTokenGlobals)
	t.Setenv("JWT_REFRESH_SECRET", "")
	_, err := IssueRefreshToken(model.User{})
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
	user := model.User{ID: "u-1", Email: "a@x.com", Username: "alice"}

	refresh, err := IssueRefreshToken(user)
	require.NoError(t, err)

	// 存取密鑰不得驗過更新令牌，反之亦然
	_, err = VerifyAccessToken(refresh)
	require.Error(t, err)
	claims, err := VerifyRefreshToken(refresh)
	require.NoError(t, err)
	require.Equal(t, "u-1", claims.UserID)

	access, err := IssueAccessToken(user)
	require.NoError(t, err)
	_, err = VerifyRefreshToken(access)
	require.Error(t, err)
}

func TestVerifyAccessToken(t *testing.T) {
	t.Cleanup(restoreTokenGlobals)
	t.Setenv("JWT_SECRET", "")
	_, err := VerifyAccessToken("abc")
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s")
	_, err = VerifyAccessToken("invalid")
	require.Error(t, err)

	tokNone, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"foo": "bar"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	_, err = VerifyAccessToken(tokNone)
	require.Error(t, err)

	parseWithClaims = func(s string, c jwt.Claims, k jwt.Keyfunc, opts ...jwt.ParserOption) (*jwt.Token, error) {
		return &jwt.Token{Claims: jwt.MapClaims{}, Valid: false}, nil
	}
	_, err = VerifyAccessToken("whatever")
	require.Error(t, err)

	parseWithClaims = jwt.ParseWithClaims
	tok, _ := IssueAccessToken(model.User{ID: "u-3"})
	claims, err := VerifyAccessToken(tok)
	require.NoError(t, err)
	require.Equal(t, "u-3", claims.UserID)
}

func TestVerifyAccessTokenExpired(t *testing.T) {
	t.Cleanup(restoreTokenGlobals)
	t.Setenv("JWT_SECRET", "s")

	timeNow = func() time.Time { return time.Now().Add(-2 * AccessTokenTTL) }
	tok, err := IssueAccessToken(model.User{ID: "u-4"})
	require.NoError(t, err)

	timeNow = time.Now
	_, err = VerifyAccessToken(tok)
	require.Error(t, err)
}

func TestVerifyAccessTokenTampered(t *testing.T) {
	t.Cleanup(restoreTokenGlobals)
	t.Setenv("JWT_SECRET", "s")
	tok, err := IssueAccessToken(model.User{ID: "u-5"})
	require.NoError(t, err)

	tampered := tok[:len(tok)-2] + "xx"
	_, err = VerifyAccessToken(tampered)
	require.Error(t, err)
}
