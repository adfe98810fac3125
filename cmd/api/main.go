package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tipcloud/config"
	httpHandler "tipcloud/internal/adapter/http/handler"
	pgStorage "tipcloud/internal/adapter/storage/postgres"
	redisStorage "tipcloud/internal/adapter/storage/redis"
	"tipcloud/internal/core/ports"
	"tipcloud/internal/service"
	"tipcloud/internal/wallet"
	"tipcloud/internal/wallet/jsonrpc"
	"tipcloud/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("asset", cfg.Wallet.Asset).
		Str("network", cfg.Wallet.Network).
		Msg("Starting TipCloud")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret must be set (TIPCLOUD_JWT_SECRET)")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool and schema
	pool, err := pgStorage.Open(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open PostgreSQL")
	}
	defer pool.Close()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	userRepo := pgStorage.NewUserRepo(pool)
	djRepo := pgStorage.NewDJRepo(pool)
	tipRepo := pgStorage.NewTipRepo(pool)

	// Initialize Redis stores
	directoryCache := redisStorage.NewDirectoryCache(rdb)
	tipGuard := redisStorage.NewTipGuard(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Wallet providers and the bridge over them
	env := jsonrpc.NewEnvironment(cfg.Wallet, log)
	if len(env.Adapters) == 0 {
		log.Warn().Msg("No wallet providers enabled; tips will report the wallet as unavailable")
	}
	bridge := wallet.NewBridge(wallet.NewStore(), log, env.Adapters...)

	// Initialize core services
	hashSvc := service.NewArgon2HashService(service.DefaultArgon2Params)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize business services
	authSvc := service.NewAuthService(userRepo, hashSvc, tokenSvc)
	directorySvc := service.NewDirectoryService(djRepo, directoryCache, log)
	tipSvc := service.NewTipService(directorySvc, tipRepo, tipGuard, bridge, cfg.Wallet.TipGuardTTL, log)
	walletSvc := service.NewWalletService(bridge)

	// Initialize health checkers
	checkers := []ports.HealthChecker{
		pgStorage.NewHealthCheck(pool),
		redisStorage.NewHealthCheck(rdb),
	}
	for _, c := range env.Clients {
		checkers = append(checkers, c)
	}

	// Load OpenAPI spec for Swagger UI
	specBytes, err := os.ReadFile("docs/api/openapi.yaml")
	if err != nil {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
		specBytes = nil
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		DirectorySvc:   directorySvc,
		TipSvc:         tipSvc,
		WalletSvc:      walletSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: checkers,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		PromptTimeout:  cfg.Wallet.PromptTimeout,
		OpenAPISpec:    specBytes,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
