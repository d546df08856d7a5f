package controllers

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/wellnestapp/wellnest-backend/app/models"
	"github.com/wellnestapp/wellnest-backend/app/queries"
	"github.com/wellnestapp/wellnest-backend/app/services"
	"github.com/wellnestapp/wellnest-backend/pkg/database"
	"github.com/wellnestapp/wellnest-backend/pkg/utils"
)

func ListContent(c *fiber.Ctx) error {
	articles, err := queries.GetAllArticles(database.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get articles"})
	}
	if articles == nil {
		articles = []models.Article{}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": articles})
}

func GetContent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid article id"})
	}

	article, err := queries.GetArticleByID(database.DB, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Article not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get article"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": article})
}

func CreateContent(c *fiber.Ctx) error {
	req := &models.CreateArticleRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	a := &models.Article{
		ID:          uuid.New(),
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Category:    req.Category,
		MediaURL:    req.MediaURL,
		Duration:    req.Duration,
		Author:      req.Author,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if err := queries.CreateArticle(database.DB, a); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create article"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": a})
}

// GetDailyTip generates a short personalized tip from the user's latest
// daily summary via the configured tip API.
func GetDailyTip(c *fiber.Ctx) error {
	userID, err := authedUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	reporter := services.Reporter{DB: database.DB}
	summary, err := reporter.DailySummary(userID, time.Now().UTC())
	if err != nil {
		return summaryError(c, err)
	}

	prompt := fmt.Sprintf(
		"Write one short, encouraging wellness tip (max 2 sentences) for someone who today consumed %.0f kcal, drank %.0f ml of water, slept %.0f minutes, exercised %.0f minutes and has an average mood of %.1f/10.",
		summary.Meals.Calories, summary.Water.TotalMl, summary.Sleep.DurationMinutes, summary.Fitness.DurationMinutes, summary.Mood.AverageScore,
	)
	tip, err := utils.GenerateWellnessTip(prompt)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Tip service unavailable"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"tip": tip}})
}
