package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/foxxcyber/voice-cart/internal/models"
)

// GetList returns the current shopping list
func (h *Handler) GetList(c *fiber.Ctx) error {
	return Success(c, h.store.Items())
}

// AddItem adds an item directly, deriving unit and category when omitted
func (h *Handler) AddItem(c *fiber.Ctx) error {
	var req models.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return Error(c, fiber.StatusBadRequest, "name is required")
	}

	unit := req.Unit
	if unit == "" {
		unit = h.lex.UnitFor(req.Name)
	}
	category := req.Category
	if category == "" {
		category = h.lex.CategoryFor(req.Name)
	}

	item := models.NewShoppingItem(req.Name, req.Quantity, unit, category)
	item.Notes = req.Notes
	item.Price = req.Price
	item.Brand = req.Brand

	h.store.Add(item)
	h.logger.Info().Str("item", item.Name).Int("quantity", item.Quantity).Msg("item added")

	return c.Status(fiber.StatusCreated).JSON(APIResponse{Success: true, Data: item})
}

// UpdateItem partially updates an item by id
func (h *Handler) UpdateItem(c *fiber.Ctx) error {
	var req models.UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	item := h.store.Update(c.Params("id"), req)
	if item == nil {
		return Error(c, fiber.StatusNotFound, "item not found")
	}
	return Success(c, item)
}

// RemoveItem deletes an item by id
func (h *Handler) RemoveItem(c *fiber.Ctx) error {
	if !h.store.Remove(c.Params("id")) {
		return Error(c, fiber.StatusNotFound, "item not found")
	}
	return Success(c, fiber.Map{"removed": true})
}

// ToggleItem flips an item's completed flag
func (h *Handler) ToggleItem(c *fiber.Ctx) error {
	item := h.store.Toggle(c.Params("id"))
	if item == nil {
		return Error(c, fiber.StatusNotFound, "item not found")
	}
	return Success(c, item)
}

// ClearList removes all items
func (h *Handler) ClearList(c *fiber.Ctx) error {
	cleared := h.store.Clear()
	h.logger.Info().Int("cleared", cleared).Msg("list cleared")
	return Success(c, fiber.Map{"cleared": cleared})
}

// GetSmartSuggestions returns recommendations based on the current list
func (h *Handler) GetSmartSuggestions(c *fiber.Ctx) error {
	return Success(c, h.suggestions.Suggest(h.store.Items(), timeNow()))
}
