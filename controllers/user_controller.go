package controllers

import (
	"rfid-app/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(DB *gorm.DB) *UserController {
	return &UserController{DB: DB}
}

type userInput struct {
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password"`
	FullName    string `json:"full_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Role        string `json:"role" validate:"required"`
	ContactInfo string `json:"contact_info"`
	LocationID  uint   `json:"location_id" validate:"required"`
}

func (uc *UserController) CreateUser(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var input userInput
	if err := ctx.BodyParser(&input); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(input); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "All fields are required.")
	}
	if input.Password == "" {
		return errorResponse(ctx, fiber.StatusBadRequest, "All fields are required.")
	}

	var location models.Location
	if err := uc.DB.First(&location, input.LocationID).Error; err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "Location ID not found")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := models.User{
		Username:    input.Username,
		Password:    string(hashed),
		FullName:    input.FullName,
		Email:       input.Email,
		Role:        input.Role,
		ContactInfo: input.ContactInfo,
		LocationID:  input.LocationID,
		CreatedBy:   userID,
		UpdatedBy:   userID,
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}

	user.Password = ""
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "User created successfully",
		"data":    user,
	})
}

func (uc *UserController) GetAllUsers(ctx *fiber.Ctx) error {
	var users []models.User
	if err := uc.DB.Omit("password").Find(&users).Error; err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"total":   len(users),
		"data":    users,
	})
}

func (uc *UserController) GetUserByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var user models.User

	if err := uc.DB.Omit("password").First(&user, id).Error; err != nil {
		return errorResponse(ctx, fiber.StatusNotFound, "User not found")
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"data":    user,
	})
}

func (uc *UserController) UpdateUser(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		return errorResponse(ctx, fiber.StatusNotFound, "User not found")
	}

	var input userInput
	if err := ctx.BodyParser(&input); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(input); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "All fields are required.")
	}

	user.Username = input.Username
	user.FullName = input.FullName
	user.Email = input.Email
	user.Role = input.Role
	user.ContactInfo = input.ContactInfo
	user.LocationID = input.LocationID
	user.UpdatedBy = userID

	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return errorResponse(ctx, fiber.StatusInternalServerError, "Failed to hash password")
		}
		user.Password = string(hashed)
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}

	user.Password = ""
	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "User updated successfully",
		"data":    user,
	})
}

func (uc *UserController) DeleteUser(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		return errorResponse(ctx, fiber.StatusNotFound, "User not found")
	}

	user.DeletedBy = userID
	if err := uc.DB.Save(&user).Error; err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}

	if err := uc.DB.Delete(&user).Error; err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "User deleted successfully",
	})
}
