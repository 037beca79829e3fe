package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"talent-portal-backend/config"
	_ "talent-portal-backend/docs"
	"talent-portal-backend/internal/delivery/http/middleware"
	"talent-portal-backend/internal/delivery/http/response"
	"talent-portal-backend/internal/domain"
	"talent-portal-backend/pkg/auth"
)

type RouterDeps struct {
	AuthUC    domain.AuthUsecase
	UserUC    domain.UserUsecase
	ManagerUC domain.ManagerUsecase
	SkillUC   domain.SkillUsecase
	Tokens    *auth.TokenManager
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(
		middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Stricter limits on credential endpoints
	loginLimit := middleware.RateLimitMiddleware(
		middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))

	// Manager-only routes
	manager := protected.Group("")
	manager.Use(middleware.RequireRole(domain.RoleManager))

	NewAuthHandler(v1, protected, deps.AuthUC, loginLimit)
	NewUserHandler(v1, protected, deps.UserUC)
	NewSkillHandler(v1, deps.SkillUC)
	NewManagerHandler(manager, deps.ManagerUC)

	return r
}
