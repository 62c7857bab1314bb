package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.Contains(t, hash, "$")

	ok, err := VerifyPassword("s3cret", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("same")
	require.NoError(t, err)
	second, err := HashPassword("same")
	require.NoError(t, err)

	// Случайная соль даёт разные хеши одного пароля
	assert.NotEqual(t, first, second)
	assert.NotEqual(t, strings.Split(first, "$")[0], strings.Split(second, "$")[0])
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	_, err := VerifyPassword("x", "not-a-valid-hash")
	assert.Error(t, err)

	_, err = VerifyPassword("x", "zzzz$zzzz")
	assert.Error(t, err)
}
