package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/fx_risk_dashboard/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	now := time.Now()
	signed, err := utils.GenerateJWT("analyst-1", "secret", "fx-risk-dashboard", now, time.Hour)
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(signed, "secret")
	require.NoError(t, err)
	assert.Equal(t, "analyst-1", claims.Subject)
	assert.Equal(t, "fx-risk-dashboard", claims.Issuer)
	assert.WithinDuration(t, now.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestGenerateJWT_RejectsEmptySubject(t *testing.T) {
	_, err := utils.GenerateJWT("", "secret", "issuer", time.Now(), time.Hour)
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Failures(t *testing.T) {
	expired, err := utils.GenerateJWT("analyst-1", "secret", "issuer", time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)
	_, err = utils.ParseAndValidateJWT(expired, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	signed, err := utils.GenerateJWT("analyst-1", "secret", "issuer", time.Now(), time.Hour)
	require.NoError(t, err)
	_, err = utils.ParseAndValidateJWT(signed, "other-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}
