package handler

import (
	"slices"
	"time"

	"tipcloud/internal/adapter/http/middleware"
	redisStore "tipcloud/internal/adapter/storage/redis"
	"tipcloud/internal/core/ports"
	"tipcloud/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	DirectorySvc   ports.DirectoryService
	TipSvc         ports.TipService
	WalletSvc      ports.WalletService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AllowedOrigins []string
	PromptTimeout  time.Duration // deadline for calls that may prompt the wallet user; 0 = none
	OpenAPISpec    []byte        // nil = /swagger/spec answers 404
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(cors.New(corsConfig(deps.AllowedOrigins)))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	r.Use(middleware.ActivityLog(logger.Component(deps.Logger, "activity")))

	// Health check: PostgreSQL and Redis are required, wallet providers optional
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Swagger documentation
	docs := NewDocsHandler(deps.OpenAPISpec)
	swagger := r.Group("/swagger")
	{
		swagger.GET("", docs.UI)
		swagger.GET("/spec", docs.Spec)
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	prompt := middleware.Deadline(deps.PromptTimeout)

	// API v1 routes
	v1 := r.Group("/api/v1")

	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", rl("auth_signup"), authHandler.SignUp)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
		auth.GET("/me", jwtAuth, authHandler.Me)
	}

	djHandler := NewDJHandler(deps.DirectorySvc, deps.TipSvc)
	djs := v1.Group("/djs")
	{
		djs.GET("", rl("directory"), djHandler.List)
		djs.GET("/featured", rl("directory"), djHandler.Featured)
		djs.GET("/genres", rl("directory"), djHandler.Genres)
		djs.GET("/:id", rl("directory"), djHandler.Get)
		djs.GET("/:id/tips", rl("directory"), djHandler.RecentTips)
		djs.POST("", jwtAuth, rl("dj_register"), djHandler.Register)
	}

	walletHandler := NewWalletHandler(deps.WalletSvc, deps.AllowedOrigins, logger.Component(deps.Logger, "wallet_events"))
	wallet := v1.Group("/wallet")
	{
		wallet.GET("/status", rl("wallet"), walletHandler.Status)
		wallet.POST("/connect", rl("wallet"), prompt, walletHandler.Connect)
		wallet.GET("/events", walletHandler.Events)
	}

	tipHandler := NewTipHandler(deps.TipSvc)
	tips := v1.Group("/tips")
	{
		tips.GET("/options", tipHandler.Options)
		tips.POST("", rl("tips"), prompt, tipHandler.Send)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if allowsAnyOrigin(origins) {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.HeaderRequestID}
	cfg.ExposeHeaders = []string{middleware.HeaderRequestID, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"}
	return cfg
}

// allowsAnyOrigin reports whether the configured origins open the API to
// every origin. An empty list and a "*" entry both do. CORS and the
// wallet events websocket share this rule.
func allowsAnyOrigin(origins []string) bool {
	return len(origins) == 0 || slices.Contains(origins, "*")
}
