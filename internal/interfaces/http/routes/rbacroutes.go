package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/accesskit/accesskit/internal/interfaces/http/handlers"
	"github.com/accesskit/accesskit/internal/interfaces/http/middleware"
)

// RBACRouteConfig holds dependencies for the permission, role, and
// assignment manager routes.
type RBACRouteConfig struct {
	PermissionHandler *handlers.PermissionHandler
	RoleHandler       *handlers.RoleHandler
	AssignmentHandler *handlers.AssignmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
	RateLimit         gin.HandlerFunc // applied to mutations, may be nil
}

// SetupRBACRoutes configures the administrative RBAC routes. All routes
// require authentication; mutations additionally pass the rate limiter.
func SetupRBACRoutes(engine *gin.Engine, cfg *RBACRouteConfig) {
	limit := cfg.RateLimit
	if limit == nil {
		limit = func(c *gin.Context) { c.Next() }
	}

	permissions := engine.Group("/permissions")
	permissions.Use(cfg.AuthMiddleware.RequireAuth())
	{
		permissions.GET("", cfg.PermissionHandler.ListPermissions)
		permissions.POST("", limit, cfg.PermissionHandler.CreatePermission)
		permissions.PATCH("/:id", limit, cfg.PermissionHandler.UpdatePermission)
		permissions.DELETE("/:id", limit, cfg.PermissionHandler.DeletePermission)
	}

	roles := engine.Group("/roles")
	roles.Use(cfg.AuthMiddleware.RequireAuth())
	{
		roles.GET("", cfg.RoleHandler.ListRoles)
		roles.POST("", limit, cfg.RoleHandler.CreateRole)
		roles.PATCH("/:id", limit, cfg.RoleHandler.UpdateRole)
		roles.DELETE("/:id", limit, cfg.RoleHandler.DeleteRole)

		// Assignment sub-resource
		roles.GET("/:id/permissions", cfg.AssignmentHandler.GetRolePermissions)
		roles.PUT("/:id/permissions", limit, cfg.AssignmentHandler.ReplaceRolePermissions)
		roles.DELETE("/:id/permissions/:permissionID", limit, cfg.AssignmentHandler.RemoveRolePermission)
	}

	assignments := engine.Group("/assignments")
	assignments.Use(cfg.AuthMiddleware.RequireAuth())
	{
		assignments.GET("", cfg.AssignmentHandler.GetOverview)
	}
}
