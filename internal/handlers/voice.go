package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/foxxcyber/voice-cart/internal/models"
)

// VoiceCommandRequest is the request body for processing an utterance.
type VoiceCommandRequest struct {
	Transcript string `json:"transcript"`
	Language   string `json:"language"`
}

// VarietyRequest is the request body for variety suggestions.
type VarietyRequest struct {
	Item     string `json:"item"`
	Language string `json:"language"`
}

// ConfirmRequest is the request body for confirming a picked variety.
type ConfirmRequest struct {
	Variety  string `json:"variety"`
	Category string `json:"category"`
	Language string `json:"language"`
}

// VoiceCommandResponse pairs the interpreter result with the list state
// after the command was applied.
type VoiceCommandResponse struct {
	Result  models.ProcessedCommand `json:"result"`
	Applied bool                    `json:"applied"`
	Items   []models.ShoppingItem   `json:"items"`
}

func parseLanguage(tag string) models.Language {
	if models.Language(tag) == models.LanguageHindi {
		return models.LanguageHindi
	}
	return models.LanguageEnglish
}

// ProcessVoiceCommand interprets one transcript and applies the resulting
// command to the list. The interpreter never fails; an unrecognized
// utterance comes back as an error-typed result with HTTP 200.
func (h *Handler) ProcessVoiceCommand(c *fiber.Ctx) error {
	var req VoiceCommandRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	language := parseLanguage(req.Language)
	result := h.processor.Process(c.Context(), req.Transcript, language)

	applied := h.applyCommand(&result, language)

	return Success(c, VoiceCommandResponse{
		Result:  result,
		Applied: applied,
		Items:   h.store.Items(),
	})
}

// applyCommand performs the list mutation a command result asks for. Remove
// commands go through the resolver against a live snapshot; an unresolvable
// item rewrites the result into a localized not-found notice.
func (h *Handler) applyCommand(result *models.ProcessedCommand, language models.Language) bool {
	switch result.Type {
	case models.CommandAdd:
		if result.Item == nil {
			return false
		}
		h.store.Add(*result.Item)
		return true

	case models.CommandRemove:
		item := h.resolver.Resolve(result.SelectedItem, h.store.Items(), language)
		if item == nil {
			displayName := result.SelectedItem
			if language.IsHindi() {
				displayName = h.lex.EnglishToHindi(result.SelectedItem)
			}
			*result = models.ErrorCommand(notFoundMessage(displayName, language))
			return false
		}
		return h.store.Remove(item.ID)

	case models.CommandClear:
		h.store.Clear()
		return true

	default:
		return false
	}
}

func notFoundMessage(name string, language models.Language) string {
	if language.IsHindi() {
		return fmt.Sprintf("\"%s\" आपकी सूची में नहीं है।", name)
	}
	return fmt.Sprintf("\"%s\" is not in your shopping list.", name)
}

// GetVarietySuggestions returns a suggest-typed result for an item so the
// client can show a variety picker.
func (h *Handler) GetVarietySuggestions(c *fiber.Ctx) error {
	var req VarietyRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Item) == "" {
		return Error(c, fiber.StatusBadRequest, "item is required")
	}

	result := h.processor.SuggestVarieties(c.Context(), req.Item, parseLanguage(req.Language))
	return Success(c, result)
}

// ConfirmVariety adds the picked variety to the list and returns a
// confirm-typed result.
func (h *Handler) ConfirmVariety(c *fiber.Ctx) error {
	var req ConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Variety) == "" {
		return Error(c, fiber.StatusBadRequest, "variety is required")
	}

	category := req.Category
	if category == "" {
		category = h.lex.CategoryFor(req.Variety)
	}
	item := models.NewShoppingItem(req.Variety, 1, h.lex.UnitFor(req.Variety), category)
	h.store.Add(item)

	result := h.processor.ConfirmVariety(req.Variety, parseLanguage(req.Language))
	return Success(c, VoiceCommandResponse{
		Result:  result,
		Applied: true,
		Items:   h.store.Items(),
	})
}
