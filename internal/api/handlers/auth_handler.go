package handlers

import (
	"Food-Expiry-Tracker/domain"
	"Food-Expiry-Tracker/internal/api/presenters"
	"Food-Expiry-Tracker/pkg/jwt"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		IssueToken(c *fiber.Ctx) error
	}

	authHandler struct {
		jwtService jwt.JWTService
		validator  *validator.Validate
	}
)

func NewAuthHandler(jwtService jwt.JWTService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		jwtService: jwtService,
		validator:  validator,
	}
}

func (h *authHandler) IssueToken(c *fiber.Ctx) error {
	req := new(domain.IssueTokenRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEmailNeeded, domain.ErrEmailRequired)
	}

	token, err := h.jwtService.GenerateTokenUser(req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrMissingSecret) {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedServerSetup, nil)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedIssueToken, nil)
	}

	expiry := h.jwtService.TokenExpiry()
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		MaxAge:   int(expiry.Seconds()),
		Expires:  time.Now().Add(expiry),
	})

	return presenters.SuccessResponse(c, domain.IssueTokenResponse{Token: token}, fiber.StatusOK, domain.MessageSuccessIssueToken)
}
