package controllers

import (
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wellnestapp/wellnest-backend/app/models"
	"github.com/wellnestapp/wellnest-backend/app/queries"
	"github.com/wellnestapp/wellnest-backend/pkg/database"
	"github.com/wellnestapp/wellnest-backend/pkg/utils"
)

var validate = validator.New()

func UserSignUp(c *fiber.Ctx) error {
	signUp := &models.SignUp{}
	if err := c.BodyParser(signUp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validate.Struct(signUp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	role := signUp.UserRole
	if role == "" {
		role = utils.RoleUser
	}

	valid := false
	for _, r := range utils.ValidRoles {
		if role == r {
			valid = true
			break
		}
	}
	if !valid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user role",
		})
	}

	userQueries := queries.UserQueries{DB: database.DB}
	existing, err := userQueries.GetUserByEmail(signUp.Email)
	if err == nil {
		if !existing.Verified {
			otp, err := utils.GenerateOTP(4)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate OTP"})
			}
			if err := userQueries.UpdateOTPByEmail(signUp.Email, otp); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update OTP"})
			}
			if err := utils.SendOTPEmail(signUp.Email, otp); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send OTP email"})
			}
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "OTP resent to email"})
		}
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already registered"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(signUp.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	otp, err := utils.GenerateOTP(4)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate OTP"})
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        signUp.Email,
		Username:     signUp.Username,
		PasswordHash: string(hashedPassword),
		UserRole:     role,
		Gender:       signUp.Gender,
		Avatar:       "1",
		Verified:     false,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		OTP:          otp,
	}

	if err := userQueries.CreateUser(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	if err := utils.SendOTPEmail(signUp.Email, otp); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send OTP email"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User registered. OTP sent to email"})
}

func UserVerifyOTP(c *fiber.Ctx) error {
	payload := &models.VerifyOTP{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userQueries := queries.UserQueries{DB: database.DB}
	if err := userQueries.VerifyOTPByEmail(payload.Email, payload.OTP); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Account verified successfully"})
}

func UserSignIn(c *fiber.Ctx) error {
	signIn := &models.SignIn{}
	if err := c.BodyParser(signIn); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validate.Struct(signIn); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	userQueries := queries.UserQueries{DB: database.DB}
	user, err := userQueries.GetUserByEmail(signIn.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	if !user.Verified {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Account not verified. Please verify your account before signing in",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(signIn.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	return issueTokens(c, user)
}

func UserSignInWithGoogle(c *fiber.Ctx) error {
	payload := &models.GoogleSignIn{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	email, err := utils.ValidateGoogleIDToken(c.Context(), payload.IDToken)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid Google token"})
	}

	userQueries := queries.UserQueries{DB: database.DB}
	user, err := userQueries.GetUserByEmail(email)
	if err != nil {
		// first sign-in: provision a verified account with a random password
		randomPass, err := utils.GenerateRandomToken(16)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to provision account"})
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(randomPass), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to provision account"})
		}
		user = models.User{
			ID:           uuid.New(),
			Email:        email,
			Username:     email,
			PasswordHash: string(hashed),
			UserRole:     utils.RoleUser,
			Avatar:       "1",
			Verified:     true,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if err := userQueries.CreateUser(&user); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
		}
	}

	return issueTokens(c, user)
}

func UserRefreshToken(c *fiber.Ctx) error {
	payload := &models.RefreshRequest{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rtQueries := queries.RefreshTokenQueries{DB: database.DB}
	rt, err := rtQueries.GetRefreshTokenByToken(payload.RefreshToken)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid refresh token"})
	}
	if rt.Revoked || (!rt.ExpiresAt.IsZero() && time.Now().After(rt.ExpiresAt)) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Refresh token expired or revoked"})
	}

	userQueries := queries.UserQueries{DB: database.DB}
	user, err := userQueries.GetUserByID(rt.UserID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User no longer exists"})
	}

	// rotate: revoke the presented token and issue a fresh pair
	if err := rtQueries.RevokeRefreshToken(rt.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to rotate refresh token"})
	}
	return issueTokens(c, user)
}

func UserLogout(c *fiber.Ctx) error {
	payload := &models.RefreshRequest{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rtQueries := queries.RefreshTokenQueries{DB: database.DB}
	rt, err := rtQueries.GetRefreshTokenByToken(payload.RefreshToken)
	if err != nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Signed out"})
	}
	_ = rtQueries.RevokeRefreshToken(rt.ID)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Signed out"})
}

func issueTokens(c *fiber.Ctx, user models.User) error {
	accessEnv := os.Getenv("ACCESS_TOKEN_MINUTES")
	setAccessExp := false
	accessMinutes := 0
	if accessEnv != "" {
		if iv, err := strconv.Atoi(accessEnv); err == nil && iv > 0 {
			accessMinutes = iv
			setAccessExp = true
		}
	}

	refreshEnv := os.Getenv("REFRESH_TOKEN_HOURS")
	setRefreshExp := false
	refreshHours := 0
	if refreshEnv != "" {
		if iv, err := strconv.Atoi(refreshEnv); err == nil && iv > 0 {
			refreshHours = iv
			setRefreshExp = true
		}
	}

	secret := os.Getenv("JWT_SECRET")
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"email":     user.Email,
		"user_role": user.UserRole,
	}
	if setAccessExp {
		claims["exp"] = time.Now().Add(time.Duration(accessMinutes) * time.Minute).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	rtStr, err := utils.GenerateRandomToken(32)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate refresh token"})
	}

	var rtExpiresAt time.Time
	if setRefreshExp {
		rtExpiresAt = time.Now().Add(time.Duration(refreshHours) * time.Hour)
	}
	rt := &models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     rtStr,
		ExpiresAt: rtExpiresAt,
		Revoked:   false,
		CreatedAt: time.Now(),
	}
	rtQueries := queries.RefreshTokenQueries{DB: database.DB}
	if err := rtQueries.CreateRefreshToken(rt); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store refresh token"})
	}

	var refreshExp interface{} = nil
	if setRefreshExp {
		refreshExp = rtExpiresAt
	}

	var expiresIn int
	if setAccessExp {
		expiresIn = accessMinutes * 60
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":            "Sign in successful",
		"access_token":       tokenString,
		"expires_in":         expiresIn,
		"refresh_token":      rtStr,
		"refresh_expires_at": refreshExp,
		"user": fiber.Map{
			"id":        user.ID,
			"email":     user.Email,
			"user_role": user.UserRole,
		},
	})
}
