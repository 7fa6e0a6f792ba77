package controllers

import (
	"errors"
	"time"

	"rfid-app/config"
	"rfid-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(DB *gorm.DB) *AuthController {
	return &AuthController{DB: DB}
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(input); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "All fields are required.")
	}

	var user models.User
	if err := c.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(ctx, fiber.StatusUnauthorized, "Invalid username or password")
		}
		return errorResponse(ctx, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return errorResponse(ctx, fiber.StatusUnauthorized, "Invalid username or password")
	}

	sessionID := uuid.New().String()
	claims := jwt.MapClaims{
		"user_id":    float64(user.ID),
		"username":   user.Username,
		"role":       user.Role,
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Duration(config.JWTExpiration) * time.Second).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, "Failed to sign token")
	}

	ctx.Cookie(config.GetTokenCookie(tokenString))

	user.Password = ""
	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "Login successful",
		"token":   tokenString,
		"data":    user,
	})
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	ctx.Cookie(config.GetTokenCookie(""))
	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "Logout successful",
	})
}

func (c *AuthController) IsLoggedIn(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var user models.User
	if err := c.DB.Omit("password").First(&user, userID).Error; err != nil {
		return errorResponse(ctx, fiber.StatusUnauthorized, "User not found")
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"data":    user,
	})
}
