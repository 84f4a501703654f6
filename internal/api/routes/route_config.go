package routes

import (
	"time"

	"cooknextdoor/internal/api/handlers"
	"cooknextdoor/internal/middleware"
	"cooknextdoor/internal/utils"
	"cooknextdoor/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App          *fiber.App
	UserHandler  handlers.UserHandler
	MealHandler  handlers.MealHandler
	OrderHandler handlers.OrderHandler
	Middleware   middleware.Middleware
	JWTService   jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Meals()
	c.Orders()
	c.Dashboard()
	c.Health()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
	}
}

func (c *Config) Meals() {
	meals := c.App.Group("/api/meals")

	meals.Get("", c.MealHandler.GetAllMeals)
	meals.Get("/seller", c.Middleware.AuthMiddleware(c.JWTService), c.MealHandler.GetSellerMeals)
	meals.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.MealHandler.CreateMeal)
	meals.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.MealHandler.UpdateMeal)
	meals.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.MealHandler.DeleteMeal)
	meals.Post("/:id/image", c.Middleware.AuthMiddleware(c.JWTService), c.MealHandler.UploadMealImage)
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/orders", c.Middleware.AuthMiddleware(c.JWTService))

	orders.Get("/buyer", c.OrderHandler.GetBuyerOrders)
	orders.Get("/seller", c.OrderHandler.GetSellerOrders)
	orders.Post("", c.OrderHandler.PlaceOrder)
	orders.Put("/:id", c.OrderHandler.UpdateOrderStatus)
}

func (c *Config) Dashboard() {
	dashboard := c.App.Group("/api/dashboard", c.Middleware.AuthMiddleware(c.JWTService))

	dashboard.Get("/seller", c.OrderHandler.GetSellerDashboard)
	dashboard.Get("/buyer", c.OrderHandler.GetBuyerDashboard)
}

func (c *Config) Health() {
	c.App.Get("/api/health", func(c *fiber.Ctx) error {
		environment := utils.GetConfig("APP_ENV")
		if environment == "" {
			environment = "development"
		}
		return c.JSON(fiber.Map{
			"status":      "OK",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": environment,
		})
	})
}
