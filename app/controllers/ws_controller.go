package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/wellnestapp/wellnest-backend/pkg/utils"
)

// WebsocketUpgrade gates the upgrade: the client passes its JWT as a
// ?token= query param because browsers cannot set headers on websocket
// dials.
func WebsocketUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	userID, err := utils.ExtractUserIDFromToken(c.Query("token"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	c.Locals("user_id", userID)
	return c.Next()
}

// WebsocketHandler registers the connection with the notifier and blocks
// reading until the client goes away. Inbound frames are ignored; the
// socket is push-only.
func WebsocketHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, ok := conn.Locals("user_id").(uuid.UUID)
		if !ok {
			_ = conn.Close()
			return
		}

		utils.DefaultNotifier.Register(userID, conn)
		defer utils.DefaultNotifier.Unregister(userID)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
