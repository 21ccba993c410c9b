package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/accesskit/accesskit/internal/interfaces/http/handlers"
	"github.com/accesskit/accesskit/internal/interfaces/http/middleware"
)

// ProfileRouteConfig holds dependencies for profile routes.
type ProfileRouteConfig struct {
	ProfileHandler *handlers.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupProfileRoutes configures profile routes. Reads are open to any
// authenticated caller; writes touch only the caller's own row.
func SetupProfileRoutes(engine *gin.Engine, cfg *ProfileRouteConfig) {
	profiles := engine.Group("/profiles")
	profiles.Use(cfg.AuthMiddleware.RequireAuth())
	{
		profiles.GET("", cfg.ProfileHandler.ListProfiles)
		profiles.GET("/me", cfg.ProfileHandler.GetMyProfile)
		profiles.PATCH("/me", cfg.ProfileHandler.UpdateMyProfile)
	}
}
