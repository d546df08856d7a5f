package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wellnestapp/wellnest-backend/app/services"
	"github.com/wellnestapp/wellnest-backend/pkg/database"
)

func summaryError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"success": false, "message": "storage unavailable, retry later"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "internal error"})
}

func GetDailySummary(c *fiber.Ctx) error {
	userID, err := authedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	date := time.Now().UTC()
	if dateStr := strings.TrimSpace(c.Query("date")); dateStr != "" {
		date, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date format, use YYYY-MM-DD"})
		}
	}

	reporter := services.Reporter{DB: database.DB}
	summary, err := reporter.DailySummary(userID, date)
	if err != nil {
		return summaryError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": summary})
}

func GetWeeklySummary(c *fiber.Ctx) error {
	userID, err := authedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	weekStartStr := strings.TrimSpace(c.Query("week_start"))
	if weekStartStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "week_start query param required (YYYY-MM-DD)"})
	}
	weekStart, err := time.Parse("2006-01-02", weekStartStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid week_start format, use YYYY-MM-DD"})
	}

	reporter := services.Reporter{DB: database.DB}
	summary, err := reporter.WeeklySummary(userID, weekStart)
	if err != nil {
		return summaryError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": summary})
}
