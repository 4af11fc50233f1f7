package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(7, "ani@example.com", "rahasia", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "rahasia")
	require.NoError(t, err)
	require.Equal(t, uint(7), claims.UserID)
	require.Equal(t, "ani@example.com", claims.Email)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseJWTRejects(t *testing.T) {
	token, err := GenerateJWT(1, "a@b.c", "rahasia", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	require.Error(t, err)

	expired, err := GenerateJWT(1, "a@b.c", "rahasia", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(expired, "rahasia")
	require.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = ParseJWT("not.a.token", "rahasia")
	require.Error(t, err)
}
