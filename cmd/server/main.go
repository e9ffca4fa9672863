package main

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/foxxcyber/voice-cart/internal/cache"
	"github.com/foxxcyber/voice-cart/internal/config"
	"github.com/foxxcyber/voice-cart/internal/handlers"
	"github.com/foxxcyber/voice-cart/internal/services"
	"github.com/foxxcyber/voice-cart/internal/store"
)

func main() {
	// Load .env file if it exists
	godotenv.Load()

	// Load configuration
	cfg := config.Load()

	log := newLogger(cfg)

	// Optional Redis cache for variety suggestions
	var suggestionCache cache.Client
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedisClient(cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, suggestion caching disabled")
		} else {
			suggestionCache = redisCache
			defer redisCache.Close()
			log.Info().Str("addr", cfg.RedisAddr).Msg("suggestion cache enabled")
		}
	}

	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set, all suggestion calls will use local fallbacks")
	}

	// Wire the interpreter core
	lex := services.NewLexicon()
	gemini := services.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiAPIURL, cfg.GeminiTimeout, suggestionCache, log)
	processor := services.NewVoiceProcessor(lex, gemini, log)
	listStore := store.NewListStore()

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Create handler with dependencies
	h := handlers.New(cfg, listStore, lex, processor, log)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API routes
	api := app.Group("/api")

	// Voice command routes
	voice := api.Group("/voice")
	voice.Post("/command", h.ProcessVoiceCommand)
	voice.Post("/varieties", h.GetVarietySuggestions)
	voice.Post("/confirm", h.ConfirmVariety)

	// Shopping list routes
	api.Get("/list", h.GetList)
	api.Delete("/list", h.ClearList)
	api.Post("/list/items", h.AddItem)
	api.Put("/list/items/:id", h.UpdateItem)
	api.Delete("/list/items/:id", h.RemoveItem)
	api.Post("/list/items/:id/toggle", h.ToggleItem)

	// Smart suggestions
	api.Get("/suggestions", h.GetSmartSuggestions)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// newLogger builds the process logger from config.
func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var log zerolog.Logger
	if cfg.LogFormat == "console" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		log = zerolog.New(os.Stdout)
	}
	return log.Level(level).With().Timestamp().Str("service", "voice-cart").Logger()
}
