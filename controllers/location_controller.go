package controllers

import (
	"rfid-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(DB *gorm.DB) *LocationController {
	return &LocationController{DB: DB}
}

// CREATE
func (lc *LocationController) CreateLocation(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var location models.Location
	if err := ctx.BodyParser(&location); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "Invalid input")
	}

	location.CreatedBy = userID
	location.UpdatedBy = userID

	if err := lc.DB.Create(&location).Error; err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "Location created successfully",
		"data":    location,
	})
}

// READ ALL
func (lc *LocationController) GetAllLocations(ctx *fiber.Ctx) error {
	var locations []models.Location
	if err := lc.DB.Find(&locations).Error; err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"data":    locations,
	})
}

// READ BY ID
func (lc *LocationController) GetLocationByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var location models.Location

	if err := lc.DB.First(&location, id).Error; err != nil {
		return errorResponse(ctx, fiber.StatusNotFound, "Location not found")
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"data":    location,
	})
}

// UPDATE
func (lc *LocationController) UpdateLocation(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var location models.Location
	if err := lc.DB.First(&location, id).Error; err != nil {
		return errorResponse(ctx, fiber.StatusNotFound, "Location not found")
	}

	var input models.Location
	if err := ctx.BodyParser(&input); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "Invalid input")
	}

	location.Name = input.Name
	location.Address = input.Address
	location.IsActive = input.IsActive
	location.UpdatedBy = userID

	if err := lc.DB.Save(&location).Error; err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "Location updated successfully",
		"data":    location,
	})
}

// DELETE
func (lc *LocationController) DeleteLocation(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var location models.Location
	if err := lc.DB.First(&location, id).Error; err != nil {
		return errorResponse(ctx, fiber.StatusNotFound, "Location not found")
	}

	location.DeletedBy = userID
	if err := lc.DB.Save(&location).Error; err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}

	if err := lc.DB.Delete(&location).Error; err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "Location deleted successfully",
	})
}
