package handlers

import (
	"Food-Expiry-Tracker/domain"
	"Food-Expiry-Tracker/internal/api/presenters"
	"Food-Expiry-Tracker/pkg/food"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	FoodHandler interface {
		AddFoodItem(c *fiber.Ctx) error
		UpdateFoodItem(c *fiber.Ctx) error
		DeleteFoodItem(c *fiber.Ctx) error
		GetFoodItems(c *fiber.Ctx) error
		GetExpiringSoon(c *fiber.Ctx) error
		GetMyFoodItems(c *fiber.Ctx) error
		GetFoodItemDetails(c *fiber.Ctx) error
		AddNote(c *fiber.Ctx) error
		GetNotes(c *fiber.Ctx) error
		UploadFoodImage(c *fiber.Ctx) error
		SendExpiryDigest(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrFoodItemNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNoteNotAllowed), errors.Is(err, domain.ErrNotItemOwner):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidExpiryDate),
		errors.Is(err, domain.ErrInvalidAddedDate),
		errors.Is(err, domain.ErrMissingUserEmail):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError maps service errors to HTTP statuses. Store failures become a
// generic 500, the cause is logged and never returned to the caller.
func respondError(c *fiber.Ctx, message string, err error) error {
	status := statusForError(err)
	if status == fiber.StatusInternalServerError {
		log.Errorf("%s: %v", message, err)
		return presenters.ErrorResponse(c, status, message, nil)
	}
	return presenters.ErrorResponse(c, status, message, err)
}

func (h *foodHandler) AddFoodItem(c *fiber.Ctx) error {
	req := new(domain.AddFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	res, err := h.foodService.AddFoodItem(c.Context(), *req)
	if err != nil {
		return respondError(c, domain.MessageFailedAddFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodItem)
}

func (h *foodHandler) UpdateFoodItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.UpdateFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.foodService.UpdateFoodItem(c.Context(), itemID, *req); err != nil {
		return respondError(c, domain.MessageFailedUpdateFoodItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateFoodItem)
}

func (h *foodHandler) DeleteFoodItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	res, err := h.foodService.DeleteFoodItem(c.Context(), itemID)
	if err != nil {
		return respondError(c, domain.MessageFailedDeleteFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteFoodItem)
}

func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	search := c.Query("search")
	category := c.Query("category")

	items, err := h.foodService.SearchFoodItems(c.Context(), search, category)
	if err != nil {
		return respondError(c, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetExpiringSoon(c *fiber.Ctx) error {
	items, err := h.foodService.GetExpiringSoon(c.Context())
	if err != nil {
		return respondError(c, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetMyFoodItems(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMissingEmail, domain.ErrMissingUserEmail)
	}

	items, err := h.foodService.GetFoodItemsByUser(c.Context(), email)
	if err != nil {
		return respondError(c, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetFoodItemDetails(c *fiber.Ctx) error {
	itemID := c.Params("id")

	item, err := h.foodService.GetFoodItemByID(c.Context(), itemID)
	if err != nil {
		return respondError(c, domain.MessageFailedGetFoodItem, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetFoodItem)
}

func (h *foodHandler) AddNote(c *fiber.Ctx) error {
	authorEmail := c.Locals("user_email").(string)
	itemID := c.Params("id")
	req := new(domain.AddNoteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddNote, err)
	}

	res, err := h.foodService.AddNote(c.Context(), itemID, *req, authorEmail)
	if err != nil {
		return respondError(c, domain.MessageFailedAddNote, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddNote)
}

func (h *foodHandler) GetNotes(c *fiber.Ctx) error {
	itemID := c.Params("id")

	notes, err := h.foodService.GetNotes(c.Context(), itemID)
	if err != nil {
		return respondError(c, domain.MessageFailedGetNotes, err)
	}

	return presenters.SuccessResponse(c, notes, fiber.StatusOK, domain.MessageSuccessGetNotes)
}

func (h *foodHandler) UploadFoodImage(c *fiber.Ctx) error {
	userEmail := c.Locals("user_email").(string)
	itemID := c.Params("id")

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.foodService.UploadFoodImage(c.Context(), itemID, file, userEmail)
	if err != nil {
		return respondError(c, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadImage)
}

func (h *foodHandler) SendExpiryDigest(c *fiber.Ctx) error {
	userEmail := c.Locals("user_email").(string)

	if err := h.foodService.SendExpiryDigest(c.Context(), userEmail); err != nil {
		return respondError(c, domain.MessageFailedSendDigest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSendDigest)
}
