package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"bookvault/internal/config"
	"bookvault/internal/handler"
	"bookvault/internal/middleware"
	"bookvault/internal/seed"
	"bookvault/internal/service"
	"bookvault/internal/store"
	"bookvault/internal/summarizer"
)

func main() {
	godotenv.Load(".env.local")

	cfg := config.Load()
	logger := newLogger(cfg.Env)
	logger.Info().Str("env", cfg.Env).Msg("starting bookvault")

	if cfg.Username == "" || cfg.Password == "" {
		logger.Fatal().Msg("API_USERNAME and API_PASSWORD must be set")
	}

	st, err := store.Open(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	logger.Info().Msg("database connection established")

	if cfg.SeedFile != "" {
		n, err := seed.Load(context.Background(), st, cfg.SeedFile)
		if err != nil {
			logger.Warn().Err(err).Str("file", cfg.SeedFile).Msg("seeding failed")
		} else if n > 0 {
			logger.Info().Int("books", n).Msg("seeded initial catalog")
		}
	}

	if cfg.ModelBaseURL == "" {
		logger.Warn().Msg("MODEL_BASE_URL is not set; summary generation will degrade to the fallback text")
	}
	generator := summarizer.NewClient(cfg.ModelBaseURL, cfg.ModelName, cfg.SummaryTimeout, logger)

	bookService := service.NewBookService(st, st, generator, logger)
	reviewService := service.NewReviewService(st, st, logger)
	h := handler.New(bookService, reviewService, st, logger)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLog(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(corsConfig(cfg)))

	// Health probes stay outside the authenticated group.
	r.GET("/health", h.HandleHealth)
	r.GET("/ready", h.HandleReadiness)

	ipLimiter := middleware.NewIPRateLimiter(rate.Every(time.Second), 5)
	dailyQuota := middleware.NewDailyQuota(cfg.DailyQuota)
	llmGuard := middleware.RateLimit(ipLimiter, dailyQuota)

	api := r.Group("/api/v1", middleware.BasicAuth(cfg.Username, cfg.Password))
	{
		api.POST("/books", h.HandleCreateBook)
		api.GET("/books", h.HandleListBooks)
		api.GET("/books/:id", h.HandleGetBook)
		api.PUT("/books/:id", h.HandleUpdateBook)
		api.DELETE("/books/:id", h.HandleDeleteBook)

		api.POST("/books/:id/reviews", h.HandleAddReview)
		api.GET("/books/:id/reviews", h.HandleListReviews)

		// LLM-backed endpoints carry the per-IP limiter and daily quota:
		// each request can cost a multi-minute inference.
		api.GET("/books/:id/summary", llmGuard, h.HandleBookSummary)
		api.POST("/generate-summary", llmGuard, h.HandleGenerateSummary)

		api.GET("/recommendations", h.HandleRecommendations)
	}

	logger.Info().Str("port", cfg.Port).Msg("server ready")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func newLogger(env string) zerolog.Logger {
	if env == "production" {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
}

func corsConfig(cfg config.Config) cors.Config {
	var origins []string
	if cfg.Env != "production" {
		origins = append(origins, "http://localhost:5173")
	}
	if cfg.AllowedOrigins != "" {
		origins = append(origins, strings.Split(cfg.AllowedOrigins, ",")...)
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}
