package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("111111")
	require.NoError(t, err)
	assert.NotEqual(t, "111111", hashed)

	assert.True(t, CheckPassword(hashed, "111111"))
	assert.False(t, CheckPassword(hashed, "222222"))
}

func TestHashPasswordDifferentSalt(t *testing.T) {
	first, err := HashPassword("111111")
	require.NoError(t, err)
	second, err := HashPassword("111111")
	require.NoError(t, err)
	// bcrypt每次加盐，两次哈希不同但都能校验通过
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "111111"))
	assert.True(t, CheckPassword(second, "111111"))
}
