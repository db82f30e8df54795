package utils

import (
	"testing"

	"mall/config"
	"mall/global"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJwtConfig() {
	global.Config = &config.Config{
		Jwt: config.Jwt{
			Secret:  "test-secret",
			Expires: 24,
			Issuer:  "mall",
		},
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	setupJwtConfig()

	token, err := GenerateToken(PayLoad{Username: "admin", UserID: 1})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "mall", claims.Issuer)
}

func TestParseTokenInvalid(t *testing.T) {
	setupJwtConfig()

	_, err := ParseToken("not-a-token")
	require.Error(t, err)
	assert.Equal(t, "token格式错误", err.Error())
}

func TestParseTokenWrongSecret(t *testing.T) {
	setupJwtConfig()
	token, err := GenerateToken(PayLoad{Username: "admin", UserID: 1})
	require.NoError(t, err)

	global.Config.Jwt.Secret = "another-secret"
	_, err = ParseToken(token)
	require.Error(t, err)
	assert.Equal(t, "token签名无效", err.Error())
}
