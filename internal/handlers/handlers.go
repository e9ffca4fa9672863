package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/foxxcyber/voice-cart/internal/config"
	"github.com/foxxcyber/voice-cart/internal/services"
	"github.com/foxxcyber/voice-cart/internal/store"
)

// timeNow is swapped out in tests for deterministic seasonal suggestions.
var timeNow = time.Now

// Handler holds all handler dependencies
type Handler struct {
	cfg         *config.Config
	store       *store.ListStore
	lex         *services.Lexicon
	processor   *services.VoiceProcessor
	resolver    *services.ItemResolver
	suggestions *services.SuggestionEngine
	logger      zerolog.Logger
}

// New creates a new Handler instance
func New(cfg *config.Config, listStore *store.ListStore, lex *services.Lexicon, processor *services.VoiceProcessor, logger zerolog.Logger) *Handler {
	return &Handler{
		cfg:         cfg,
		store:       listStore,
		lex:         lex,
		processor:   processor,
		resolver:    services.NewItemResolver(lex),
		suggestions: services.NewSuggestionEngine(),
		logger:      logger.With().Str("component", "handlers").Logger(),
	}
}

// ErrorHandler is a custom error handler for Fiber
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}

// APIResponse is a standard API response structure
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success returns a successful response
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(APIResponse{
		Success: true,
		Data:    data,
	})
}

// Error returns an error response with the given status code
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(APIResponse{
		Success: false,
		Error:   message,
	})
}
