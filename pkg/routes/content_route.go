package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wellnestapp/wellnest-backend/app/controllers"
	"github.com/wellnestapp/wellnest-backend/pkg/middleware"
)

func RegisterContentRoutes(app *fiber.App) {
	content := app.Group("/content", middleware.JWTProtected())
	content.Get("/", controllers.ListContent)
	content.Get("/daily-tip", controllers.GetDailyTip)
	content.Get("/:id", controllers.GetContent)
	content.Post("/", middleware.AdminOnly(), controllers.CreateContent)
}
