package routes

import (
	"Food-Expiry-Tracker/internal/api/handlers"
	"Food-Expiry-Tracker/internal/middleware"
	"Food-Expiry-Tracker/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	AuthHandler      handlers.AuthHandler
	FoodHandler      handlers.FoodHandler
	AwarenessHandler handlers.AwarenessHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.FoodItems()
	c.Awareness()
	c.GuestRoute()
}

func (c *Config) Auth() {
	c.App.Post("/jwt", c.AuthHandler.IssueToken)
}

func (c *Config) FoodItems() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	foods := c.App.Group("/foods")
	// static segment first, otherwise /:id swallows it
	foods.Get("/expiring-soon", c.FoodHandler.GetExpiringSoon)
	foods.Get("", c.FoodHandler.GetFoodItems)
	foods.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foods.Post("", auth, c.FoodHandler.AddFoodItem)
	foods.Put("/:id", auth, c.FoodHandler.UpdateFoodItem)
	foods.Delete("/:id", auth, c.FoodHandler.DeleteFoodItem)
	foods.Post("/:id/notes", auth, c.FoodHandler.AddNote)
	foods.Get("/:id/notes", c.FoodHandler.GetNotes)
	foods.Post("/:id/image", auth, c.FoodHandler.UploadFoodImage)

	c.App.Get("/myfoods", auth, c.FoodHandler.GetMyFoodItems)
	c.App.Post("/myfoods/expiry-digest", auth, c.FoodHandler.SendExpiryDigest)
}

func (c *Config) Awareness() {
	c.App.Get("/awareness-stats", c.AwarenessHandler.GetAwarenessStats)
	c.App.Get("/awareness-tips", c.AwarenessHandler.GetAwarenessTips)
	c.App.Get("/recipes/suggestions", c.AwarenessHandler.GetRecipeSuggestions)
}

func (c *Config) GuestRoute() {
	c.App.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Food Expiry Tracker Server is Running...")
	})
}
