package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"bookmore/database"
	"bookmore/internal/api/handler"
	"bookmore/internal/api/middleware"
	"bookmore/internal/api/repository"
	"bookmore/internal/api/service"
	"bookmore/internal/config"
	"bookmore/internal/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	likesRepo := repository.NewLikesRepository(db)
	challengeRepo := repository.NewChallengeRepository(db)

	// Services
	tokens := security.NewJwtProvider(cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(userRepo, tokens)
	reviewService := service.NewReviewService(reviewRepo)
	likesService := service.NewLikesService(likesRepo, reviewRepo)
	challengeService := service.NewChallengeService(challengeRepo)

	// Handlers
	userHandler := handler.NewUserHandler(userService)
	reviewHandler := handler.NewReviewHandler(reviewService, likesService)
	challengeHandler := handler.NewChallengeHandler(challengeService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	r.GET("/check-conn", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := middleware.AuthMiddleware(tokens)
	limiter := middleware.RateLimit(cfg.AuthRateLimit, cfg.AuthRateBurst)

	api := r.Group("/api/v1")
	userHandler.RegisterRoutes(api, auth, limiter)
	reviewHandler.RegisterRoutes(api, auth)
	challengeHandler.RegisterRoutes(api, auth)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting api server", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
