package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndVerifyToken(t *testing.T) {
	token, err := GenerateToken("alice@example.com", "Alice", testSecret, 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := VerifyToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", identity.Email)
	assert.Equal(t, "Alice", identity.Name)
}

func TestVerifyToken(t *testing.T) {
	t.Run("Wrong secret", func(t *testing.T) {
		token, err := GenerateToken("alice@example.com", "Alice", testSecret, 1)
		require.NoError(t, err)

		_, err = VerifyToken(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("Garbage token", func(t *testing.T) {
		_, err := VerifyToken("not.a.token", testSecret)
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		claims := Claims{
			Email: "alice@example.com",
			Name:  "Alice",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = VerifyToken(signed, testSecret)
		assert.Error(t, err)
	})

	t.Run("Missing email claim", func(t *testing.T) {
		claims := Claims{
			Name: "Nameless",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = VerifyToken(signed, testSecret)
		assert.Error(t, err)
	})

	t.Run("Unexpected signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			Email: "alice@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = VerifyToken(signed, testSecret)
		assert.Error(t, err)
	})
}
