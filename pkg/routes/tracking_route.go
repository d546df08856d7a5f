package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wellnestapp/wellnest-backend/app/controllers"
	"github.com/wellnestapp/wellnest-backend/pkg/middleware"
)

func RegisterTrackingRoutes(app *fiber.App) {
	tracking := app.Group("/tracking", middleware.JWTProtected())
	tracking.Post("/meals", controllers.LogMeal)
	tracking.Get("/meals", controllers.GetMeals)
	tracking.Post("/water", controllers.LogWater)
	tracking.Get("/water", controllers.GetWater)
	tracking.Post("/sleep", controllers.LogSleep)
	tracking.Get("/sleep", controllers.GetSleep)
	tracking.Post("/fitness", controllers.LogFitness)
	tracking.Get("/fitness", controllers.GetFitness)
	tracking.Post("/mood", controllers.LogMood)
	tracking.Get("/mood", controllers.GetMood)
}
