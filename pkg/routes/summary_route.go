package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wellnestapp/wellnest-backend/app/controllers"
	"github.com/wellnestapp/wellnest-backend/pkg/middleware"
)

func RegisterSummaryRoutes(app *fiber.App) {
	summary := app.Group("/summary", middleware.JWTProtected())
	summary.Get("/daily", controllers.GetDailySummary)
	summary.Get("/weekly", controllers.GetWeeklySummary)

	points := app.Group("/points", middleware.JWTProtected())
	points.Get("/balance", controllers.GetPointsBalance)
	points.Get("/history", controllers.GetPointsHistory)
}
