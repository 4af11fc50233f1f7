package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret", 10)
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, 10, cost)

	again, err := HashPassword("s3cret", 10)
	require.NoError(t, err)
	require.NotEqual(t, hash, again) // salted

	require.True(t, CheckPassword("s3cret", hash))
	require.False(t, CheckPassword("wrong", hash))
	require.False(t, CheckPassword("s3cret", "not-a-hash"))
}
