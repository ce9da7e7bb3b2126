package handlers

import (
	"Food-Expiry-Tracker/domain"
	"Food-Expiry-Tracker/internal/api/presenters"
	"Food-Expiry-Tracker/pkg/awareness"

	"github.com/gofiber/fiber/v2"
)

type (
	AwarenessHandler interface {
		GetAwarenessStats(c *fiber.Ctx) error
		GetAwarenessTips(c *fiber.Ctx) error
		GetRecipeSuggestions(c *fiber.Ctx) error
	}

	awarenessHandler struct {
		awarenessService awareness.AwarenessService
	}
)

func NewAwarenessHandler(awarenessService awareness.AwarenessService) AwarenessHandler {
	return &awarenessHandler{awarenessService: awarenessService}
}

func (h *awarenessHandler) GetAwarenessStats(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.awarenessService.GetStats(), fiber.StatusOK, domain.MessageSuccessGetAwarenessStats)
}

func (h *awarenessHandler) GetAwarenessTips(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.awarenessService.GetTips(), fiber.StatusOK, domain.MessageSuccessGetAwarenessTips)
}

func (h *awarenessHandler) GetRecipeSuggestions(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.awarenessService.GetRecipeSuggestions(), fiber.StatusOK, domain.MessageSuccessGetSuggestions)
}
