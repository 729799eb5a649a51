package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pragavigithub/EmeraldBarcode20260113/internal/utils"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "Jordan Operator", testSecret, time.Hour, "wms-test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "Jordan Operator", claims.Name)
	assert.Equal(t, "wms-test", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "", testSecret, time.Hour, "wms-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "a-completely-different-secret")
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "", testSecret, -time.Minute, "wms-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, testSecret)
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("operator-password")
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("operator-password", hash))
	assert.False(t, utils.CheckPasswordHash("wrong-password", hash))
}
