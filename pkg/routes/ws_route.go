package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wellnestapp/wellnest-backend/app/controllers"
)

func RegisterWebsocketRoutes(app *fiber.App) {
	app.Use("/ws", controllers.WebsocketUpgrade)
	app.Get("/ws", controllers.WebsocketHandler())
}
