package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity fields this service reads from an access
// token. Tokens are issued by an external identity provider; this service
// only verifies signature, expiry, and issuer.
type Claims struct {
	Email    string `json:"email"`
	FullName string `json:"name"`
	jwt.RegisteredClaims
}

// UserID returns the account identifier. The provider puts it in the
// subject claim.
func (c *Claims) UserID() string {
	return c.Subject
}

type JWTService struct {
	secret []byte
	issuer string
}

func NewJWTService(secret, issuer string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Verify parses and validates an access token. Expiry and not-before are
// checked by the parser; the issuer is checked here when configured.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	if s.issuer != "" && claims.Issuer != s.issuer {
		return nil, fmt.Errorf("unexpected token issuer")
	}

	return claims, nil
}
