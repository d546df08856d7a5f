package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wellnestapp/wellnest-backend/app/controllers"
	"github.com/wellnestapp/wellnest-backend/pkg/middleware"
)

func RegisterMissionsRoutes(app *fiber.App) {
	missions := app.Group("/missions", middleware.JWTProtected())
	missions.Get("/", controllers.ListMissions)
	missions.Get("/stats", controllers.GetMissionStats)
	missions.Post("/accept", controllers.AcceptMission)
	missions.Put("/progress", controllers.UpdateMissionProgress)
	missions.Post("/cancel", controllers.CancelUserMission)
	missions.Get("/:id", controllers.GetMission)

	// admin-only catalog management and destructive reset
	missions.Post("/", middleware.AdminOnly(), controllers.CreateMission)
	missions.Put("/:id/active", middleware.AdminOnly(), controllers.SetMissionActive)
	missions.Delete("/reset", middleware.AdminOnly(), controllers.ResetUserMissions)
}
