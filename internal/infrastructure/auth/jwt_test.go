package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims(issuer string) *Claims {
	now := time.Now()
	return &Claims{
		Email:    "admin@example.com",
		FullName: "Alice Admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
}

func TestJWTService_Verify(t *testing.T) {
	svc := NewJWTService("test-secret", "https://idp.example.com")

	t.Run("valid token yields identity claims", func(t *testing.T) {
		tokenString := signToken(t, "test-secret", validClaims("https://idp.example.com"))

		claims, err := svc.Verify(tokenString)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID())
		assert.Equal(t, "admin@example.com", claims.Email)
		assert.Equal(t, "Alice Admin", claims.FullName)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		tokenString := signToken(t, "other-secret", validClaims("https://idp.example.com"))

		_, err := svc.Verify(tokenString)
		assert.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		claims := validClaims("https://idp.example.com")
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
		tokenString := signToken(t, "test-secret", claims)

		_, err := svc.Verify(tokenString)
		assert.Error(t, err)
	})

	t.Run("wrong issuer is rejected", func(t *testing.T) {
		tokenString := signToken(t, "test-secret", validClaims("https://rogue.example.com"))

		_, err := svc.Verify(tokenString)
		assert.Error(t, err)
	})

	t.Run("missing subject is rejected", func(t *testing.T) {
		claims := validClaims("https://idp.example.com")
		claims.Subject = ""
		tokenString := signToken(t, "test-secret", claims)

		_, err := svc.Verify(tokenString)
		assert.Error(t, err)
	})

	t.Run("issuer check is skipped when unconfigured", func(t *testing.T) {
		open := NewJWTService("test-secret", "")
		tokenString := signToken(t, "test-secret", validClaims("https://anything.example.com"))

		_, err := open.Verify(tokenString)
		assert.NoError(t, err)
	})
}
