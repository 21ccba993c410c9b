package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	appProfile "github.com/accesskit/accesskit/internal/application/profile"
	appRBAC "github.com/accesskit/accesskit/internal/application/rbac"
	"github.com/accesskit/accesskit/internal/infrastructure/auth"
	"github.com/accesskit/accesskit/internal/infrastructure/config"
	"github.com/accesskit/accesskit/internal/infrastructure/ratelimit"
	"github.com/accesskit/accesskit/internal/infrastructure/repository"
	"github.com/accesskit/accesskit/internal/interfaces/http/handlers"
	"github.com/accesskit/accesskit/internal/interfaces/http/middleware"
	"github.com/accesskit/accesskit/internal/interfaces/http/routes"
	"github.com/accesskit/accesskit/internal/shared/logger"
	"github.com/accesskit/accesskit/internal/shared/utils"

	_ "github.com/accesskit/accesskit/docs"
)

// Router wires repositories, services, handlers, and middleware into a
// Gin engine.
type Router struct {
	engine *gin.Engine
	db     *gorm.DB
	logger logger.Interface

	permissionHandler *handlers.PermissionHandler
	roleHandler       *handlers.RoleHandler
	assignmentHandler *handlers.AssignmentHandler
	profileHandler    *handlers.ProfileHandler
	authMiddleware    *middleware.AuthMiddleware
	rateLimit         gin.HandlerFunc
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	permissionRepo := repository.NewPermissionRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	permissionService := appRBAC.NewPermissionService(permissionRepo, log)
	roleService := appRBAC.NewRoleService(roleRepo, log)
	assignmentService := appRBAC.NewAssignmentService(roleRepo, permissionRepo, assignmentRepo, log)
	profileService := appProfile.NewService(profileRepo, log)

	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, profileService, log)

	var rateLimitMW gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		rateLimitMW = middleware.RateLimit(limiter, &cfg.RateLimit)
	}

	return &Router{
		engine:            engine,
		db:                db,
		logger:            log,
		permissionHandler: handlers.NewPermissionHandler(permissionService, log),
		roleHandler:       handlers.NewRoleHandler(roleService, log),
		assignmentHandler: handlers.NewAssignmentHandler(assignmentService, log),
		profileHandler:    handlers.NewProfileHandler(profileService, log),
		authMiddleware:    authMiddleware,
		rateLimit:         rateLimitMW,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.healthCheck)
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRBACRoutes(r.engine, &routes.RBACRouteConfig{
		PermissionHandler: r.permissionHandler,
		RoleHandler:       r.roleHandler,
		AssignmentHandler: r.assignmentHandler,
		AuthMiddleware:    r.authMiddleware,
		RateLimit:         r.rateLimit,
	})

	routes.SetupProfileRoutes(r.engine, &routes.ProfileRouteConfig{
		ProfileHandler: r.profileHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// healthCheck godoc
// @Summary Health check
// @Description Reports service and database health
// @Tags health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /health [get]
func (r *Router) healthCheck(c *gin.Context) {
	sqlDB, err := r.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ok", gin.H{"status": "healthy"})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
