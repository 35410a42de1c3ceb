package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Compare(t *testing.T) {
	hash, err := HashPassword("longenough1")
	require.NoError(t, err)
	assert.NotEqual(t, "longenough1", hash)

	assert.True(t, ComparePassword(hash, "longenough1"))
	assert.False(t, ComparePassword(hash, "longenough2"))
	assert.False(t, ComparePassword("not-a-hash", "longenough1"))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestGeneratePassword(t *testing.T) {
	for i := 0; i < 50; i++ {
		pw, err := GeneratePassword(GeneratedPasswordLength)
		require.NoError(t, err)
		require.Len(t, pw, GeneratedPasswordLength)
		for _, c := range pw {
			assert.True(t, strings.ContainsRune(passwordCharset, c), "unexpected character %q", c)
		}
	}
}

func TestGeneratePassword_InvalidLength(t *testing.T) {
	_, err := GeneratePassword(0)
	assert.Error(t, err)
}
