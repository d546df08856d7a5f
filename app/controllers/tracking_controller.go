package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/wellnestapp/wellnest-backend/app/models"
	"github.com/wellnestapp/wellnest-backend/app/queries"
	"github.com/wellnestapp/wellnest-backend/app/services"
	"github.com/wellnestapp/wellnest-backend/pkg/database"
	"github.com/wellnestapp/wellnest-backend/pkg/utils"
)

func trackingDayRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	dateStr := strings.TrimSpace(c.Query("date"))
	date := time.Now().UTC()
	if dateStr != "" {
		var err error
		date, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return from, from.Add(24 * time.Hour), nil
}

func authedUser(c *fiber.Ctx) (uuid.UUID, error) {
	return utils.ExtractUserIDFromHeader(c.Get("Authorization"))
}

func LogMeal(c *fiber.Ctx) error {
	userID, err := authedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	req := &models.CreateMealRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tq := queries.TrackingQueries{DB: database.DB}
	id, err := tq.InsertMeal(userID, req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to log meal"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": fiber.Map{"id": id}})
}

func GetMeals(c *fiber.Ctx) error {
	userID, err := authedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	from, to, err := trackingDayRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date format, use YYYY-MM-DD"})
	}

	tq := queries.TrackingQueries{DB: database.DB}
	rows, err := tq.MealRows(userID, from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get meals"})
	}
	entries := []models.MealEntry{}
	for _, r := range rows {
		entries = append(entries, services.CoerceMeal(userID, r))
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": entries})
}

func LogWater(c *fiber.Ctx) error {
	userID, err := authedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	req := &models.CreateWaterRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tq := queries.TrackingQueries{DB: database.DB}
	id, err := tq.InsertWater(userID, req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to log water"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": fiber.Map{"id": id}})
}

func GetWater(c *fiber.Ctx) error {
	userID, err := authedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	from, to, err := trackingDayRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date format, use YYYY-MM-DD"})
	}

	tq := queries.TrackingQueries{DB: database.DB}
	rows, err := tq.WaterRows(userID, from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get water entries"})
	}
	entries := []models.WaterEntry{}
	for _, r := range rows {
		entries = append(entries, services.CoerceWater(userID, r))
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": entries})
}

func LogSleep(c *fiber.Ctx) error {
	userID, err := authedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	req := &models.CreateSleepRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tq := queries.TrackingQueries{DB: database.DB}
	id, err := tq.InsertSleep(userID, req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to log sleep"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": fiber.Map{"id": id}})
}

func GetSleep(c *fiber.Ctx) error {
	userID, err := authedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	from, to, err := trackingDayRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date format, use YYYY-MM-DD"})
	}

	tq := queries.TrackingQueries{DB: database.DB}
	rows, err := tq.SleepRows(userID, from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get sleep entries"})
	}
	entries := []models.SleepEntry{}
	for _, r := range rows {
		entries = append(entries, services.CoerceSleep(userID, r))
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": entries})
}

func LogFitness(c *fiber.Ctx) error {
	userID, err := authedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	req := &models.CreateFitnessRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tq := queries.TrackingQueries{DB: database.DB}
	id, err := tq.InsertFitness(userID, req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to log fitness session"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": fiber.Map{"id": id}})
}

func GetFitness(c *fiber.Ctx) error {
	userID, err := authedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	from, to, err := trackingDayRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date format, use YYYY-MM-DD"})
	}

	tq := queries.TrackingQueries{DB: database.DB}
	rows, err := tq.FitnessRows(userID, from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get fitness sessions"})
	}
	entries := []models.FitnessEntry{}
	for _, r := range rows {
		entries = append(entries, services.CoerceFitness(userID, r))
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": entries})
}

func LogMood(c *fiber.Ctx) error {
	userID, err := authedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	req := &models.CreateMoodRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tq := queries.TrackingQueries{DB: database.DB}
	id, err := tq.InsertMood(userID, req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to log mood"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": fiber.Map{"id": id}})
}

func GetMood(c *fiber.Ctx) error {
	userID, err := authedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	from, to, err := trackingDayRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date format, use YYYY-MM-DD"})
	}

	tq := queries.TrackingQueries{DB: database.DB}
	rows, err := tq.MoodRows(userID, from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get mood entries"})
	}
	entries := []models.MoodEntry{}
	for _, r := range rows {
		entries = append(entries, services.CoerceMood(userID, r))
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": entries})
}
