package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	appProfile "github.com/accesskit/accesskit/internal/application/profile"
	"github.com/accesskit/accesskit/internal/infrastructure/auth"
	"github.com/accesskit/accesskit/internal/shared/constants"
	"github.com/accesskit/accesskit/internal/shared/logger"
	"github.com/accesskit/accesskit/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	profiles   *appProfile.Service
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, profiles *appProfile.Service, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		profiles:   profiles,
		logger:     logger,
	}
}

// RequireAuth verifies the Bearer token and provisions the caller's profile
// on first sight. Identity claims land in the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if _, err := m.profiles.Ensure(c.Request.Context(), appProfile.AccountClaims{
			UserID:   claims.UserID(),
			Email:    claims.Email,
			FullName: claims.FullName,
			Issuer:   claims.Issuer,
		}); err != nil {
			m.logger.Errorw("failed to provision profile", "user_id", claims.UserID(), "error", err)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID())
		c.Set(constants.ContextKeyUserEmail, claims.Email)
		c.Set(constants.ContextKeyUserName, claims.FullName)

		c.Next()
	}
}
