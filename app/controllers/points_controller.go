package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/wellnestapp/wellnest-backend/app/queries"
	"github.com/wellnestapp/wellnest-backend/pkg/database"
)

func GetPointsBalance(c *fiber.Ctx) error {
	userID, err := authedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	pq := queries.PointsQueries{DB: database.DB}
	balance, err := pq.GetBalance(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get point balance"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"balance": balance}})
}

func GetPointsHistory(c *fiber.Ctx) error {
	userID, err := authedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if iv, err := strconv.Atoi(limitStr); err == nil && iv > 0 && iv <= 500 {
			limit = iv
		}
	}

	pq := queries.PointsQueries{DB: database.DB}
	entries, err := pq.GetHistory(userID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get point history"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": entries})
}
