package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, secret string, ttl time.Duration) string {
	t.Helper()

	token := jwt.NewWithClaims(method, jwt.MapClaims{
		"sub": uuid.New().String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestJWTService_ValidateToken_Valid(t *testing.T) {
	svc := NewJWTService()

	signed := signToken(t, jwt.SigningMethodHS256, testSecret, time.Minute)

	token, err := svc.ValidateToken(signed, testSecret)
	require.NoError(t, err)
	assert.True(t, token.Valid)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := NewJWTService()

	signed := signToken(t, jwt.SigningMethodHS256, "another-secret", time.Minute)

	_, err := svc.ValidateToken(signed, testSecret)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := NewJWTService()

	signed := signToken(t, jwt.SigningMethodHS256, testSecret, -time.Minute)

	_, err := svc.ValidateToken(signed, testSecret)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_RejectsNonHMAC(t *testing.T) {
	svc := NewJWTService()

	// "none" is not an HMAC method; the key callback must refuse it.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "x"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed, testSecret)
	assert.Error(t, err)
}
