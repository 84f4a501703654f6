package config

import (
	"os"
	"strings"
	"time"

	"cooknextdoor/internal/api/handlers"
	"cooknextdoor/internal/api/routes"
	"cooknextdoor/internal/middleware"
	"cooknextdoor/internal/utils"
	"cooknextdoor/internal/utils/storage"
	"cooknextdoor/pkg/jwt"
	"cooknextdoor/pkg/meal"
	"cooknextdoor/pkg/order"
	"cooknextdoor/pkg/user"

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
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	mealRepository := meal.NewMealRepository(db)
	orderRepository := order.NewOrderRepository(db)

	// Service
	jwtService, err := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	if err != nil {
		return nil, err
	}
	userService := user.NewUserService(userRepository, jwtService)
	mealService := meal.NewMealService(mealRepository, s3)
	orderService := order.NewOrderService(orderRepository, mealRepository, userRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	mealHandler := handlers.NewMealHandler(mealService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)

	// routes
	routesConfig := routes.Config{
		App:          app,
		UserHandler:  userHandler,
		MealHandler:  mealHandler,
		OrderHandler: orderHandler,
		Middleware:   middlewares,
		JWTService:   jwtService,
	}
	routesConfig.Setup()

	// In production the compiled frontend is served from ./public, with the
	// SPA's index.html answering every non-API path.
	if utils.GetConfig("APP_ENV") == "production" {
		app.Static("/", "./public")
		app.Use(func(c *fiber.Ctx) error {
			if strings.HasPrefix(c.Path(), "/api") {
				return c.Next()
			}
			return c.SendFile("./public/index.html")
		})
	}

	return app, nil
}
