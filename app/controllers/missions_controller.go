package controllers

import (
	"database/sql"
	"errors"
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

func newMissionEngine() services.MissionEngine {
	return services.MissionEngine{DB: database.DB, Events: missionEvents}
}

// missionError maps engine errors onto the response envelope. Conflict
// messages stay distinct so clients can tell the terminal states apart.
func missionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMissionNotFound), errors.Is(err, services.ErrUserMissionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": err.Error()})
	case services.IsConflict(err):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": err.Error()})
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	case errors.Is(err, services.ErrUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"success": false, "message": "storage unavailable, retry later"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "internal error"})
	}
}

var errNotOwner = errors.New("user mission belongs to another user")

// requireOwnership rejects operations on another user's mission before
// any write happens.
func requireOwnership(userMissionID, userID uuid.UUID) error {
	umq := queries.UserMissionsQueries{DB: database.DB}
	d, err := umq.GetDetailByID(userMissionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return services.ErrUserMissionNotFound
		}
		return services.ErrUnavailable
	}
	if d.UserID != userID {
		return errNotOwner
	}
	return nil
}

func missionOwnershipError(c *fiber.Ctx, err error) error {
	if errors.Is(err, errNotOwner) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	return missionError(c, err)
}

func ListMissions(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Query("category"))
	includeInactive := c.Query("include_inactive") == "true"

	mq := queries.MissionsQueries{DB: database.DB}
	missions, err := mq.GetMissions(!includeInactive, category)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get missions"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": missions})
}

func GetMission(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid mission id"})
	}

	mq := queries.MissionsQueries{DB: database.DB}
	mission, err := mq.GetMissionByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mission not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get mission"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": mission})
}

func CreateMission(c *fiber.Ctx) error {
	req := &models.CreateMissionRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	durationDays := req.DurationDays
	if durationDays == 0 {
		durationDays = 1
	}
	m := &models.Mission{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		SubCategory:  req.SubCategory,
		Points:       req.Points,
		TargetValue:  req.TargetValue,
		TargetUnit:   req.TargetUnit,
		DurationDays: durationDays,
		Difficulty:   req.Difficulty,
		MissionType:  req.MissionType,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	mq := queries.MissionsQueries{DB: database.DB}
	if err := mq.CreateMission(m); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create mission"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": m})
}

func SetMissionActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid mission id"})
	}

	payload := struct {
		IsActive *bool `json:"is_active" validate:"required"`
	}{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	mq := queries.MissionsQueries{DB: database.DB}
	rows, err := mq.SetMissionActive(id, *payload.IsActive)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update mission"})
	}
	if rows == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mission not found"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func AcceptMission(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	req := &models.AcceptMissionRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	missionID, err := uuid.Parse(req.MissionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid mission id"})
	}

	missionDate := time.Now().UTC()
	if req.MissionDate != "" {
		missionDate, err = time.Parse("2006-01-02", req.MissionDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid mission_date format, use YYYY-MM-DD"})
		}
	}

	engine := newMissionEngine()
	um, err := engine.Accept(userID, missionID, missionDate)
	if err != nil {
		return missionError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"user_mission_id": um.ID,
			"status":          um.Status,
			"progress":        um.Progress,
			"mission_date":    um.MissionDate.Format("2006-01-02"),
		},
	})
}

func UpdateMissionProgress(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	req := &models.UpdateProgressRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userMissionID, err := uuid.Parse(req.UserMissionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user_mission_id"})
	}
	if err := requireOwnership(userMissionID, userID); err != nil {
		return missionOwnershipError(c, err)
	}

	engine := newMissionEngine()
	result, err := engine.UpdateProgress(userMissionID, *req.CurrentValue, req.Status)
	if err != nil {
		return missionError(c, err)
	}

	data := fiber.Map{
		"user_mission_id": result.UserMission.ID,
		"status":          result.UserMission.Status,
		"progress":        result.UserMission.Progress,
		"current_value":   result.UserMission.CurrentValue,
	}
	if result.PointsAwarded > 0 {
		data["points_awarded"] = result.PointsAwarded
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": data})
}

func CancelUserMission(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	req := &models.CancelMissionRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userMissionID, err := uuid.Parse(req.UserMissionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user_mission_id"})
	}
	if err := requireOwnership(userMissionID, userID); err != nil {
		return missionOwnershipError(c, err)
	}

	engine := newMissionEngine()
	um, err := engine.Cancel(userMissionID)
	if err != nil {
		return missionError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"user_mission_id": um.ID,
			"status":          um.Status,
		},
	})
}

func GetMissionStats(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	var datePtr *time.Time
	if dateStr := strings.TrimSpace(c.Query("date")); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date format, use YYYY-MM-DD"})
		}
		datePtr = &date
	}

	engine := newMissionEngine()
	stats, err := engine.Stats(userID, datePtr)
	if err != nil {
		return missionError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": stats})
}

func ResetUserMissions(c *fiber.Ctx) error {
	req := &models.ResetMissionsRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user_id"})
	}
	var missionIDPtr *uuid.UUID
	if req.MissionID != "" {
		missionID, err := uuid.Parse(req.MissionID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid mission_id"})
		}
		missionIDPtr = &missionID
	}

	engine := newMissionEngine()
	rows, err := engine.Reset(userID, missionIDPtr)
	if err != nil {
		return missionError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"rows_deleted": rows}})
}
