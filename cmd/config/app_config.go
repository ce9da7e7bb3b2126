package config

import (
	"Food-Expiry-Tracker/domain"
	"Food-Expiry-Tracker/internal/api/handlers"
	"Food-Expiry-Tracker/internal/api/presenters"
	"Food-Expiry-Tracker/internal/api/routes"
	"Food-Expiry-Tracker/internal/middleware"
	"Food-Expiry-Tracker/internal/utils"
	"Food-Expiry-Tracker/internal/utils/storage"
	"Food-Expiry-Tracker/pkg/awareness"
	"Food-Expiry-Tracker/pkg/food"
	"Food-Expiry-Tracker/pkg/jwt"
	"errors"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return presenters.ErrorResponse(c, fiberErr.Code, fiberErr.Message, nil)
			}
			log.Errorf("unhandled error: %v", err)
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalServerError, nil)
		},
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	foodRepository := food.NewFoodRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	foodService := food.NewFoodService(foodRepository, s3)
	awarenessService := awareness.NewAwarenessService()

	// Handler
	authHandler := handlers.NewAuthHandler(jwtService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	awarenessHandler := handlers.NewAwarenessHandler(awarenessService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		AuthHandler:      authHandler,
		FoodHandler:      foodHandler,
		AwarenessHandler: awarenessHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
