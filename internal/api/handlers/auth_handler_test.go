package handlers

import (
	"Food-Expiry-Tracker/internal/utils"
	"Food-Expiry-Tracker/pkg/jwt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp() *fiber.App {
	utils.InitValidator()
	h := NewAuthHandler(jwt.NewJWTService(), utils.Validate)

	app := fiber.New()
	app.Post("/jwt", h.IssueToken)
	return app
}

func TestIssueToken(t *testing.T) {
	t.Run("missing email is 400", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		app := newAuthApp()
		resp, _ := doJSON(t, app, http.MethodPost, "/jwt", `{}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing secret is 500", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		app := newAuthApp()
		resp, _ := doJSON(t, app, http.MethodPost, "/jwt", `{"email":"user@example.com"}`)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("token is returned and set as http-only cookie", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		app := newAuthApp()
		resp, decoded := doJSON(t, app, http.MethodPost, "/jwt", `{"email":"user@example.com"}`)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		data := decoded["data"].(map[string]interface{})
		assert.NotEmpty(t, data["token"])

		var tokenCookie *http.Cookie
		for _, cookie := range resp.Cookies() {
			if cookie.Name == "token" {
				tokenCookie = cookie
			}
		}
		require.NotNil(t, tokenCookie)
		assert.True(t, tokenCookie.HttpOnly)
		assert.True(t, tokenCookie.Secure)
		assert.Equal(t, 3600, tokenCookie.MaxAge)
	})
}
