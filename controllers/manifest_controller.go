package controllers

import (
	"rfid-app/controllers/idgen"
	"rfid-app/models"
	"rfid-app/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ManifestController struct {
	DB *gorm.DB
}

func NewManifestController(DB *gorm.DB) *ManifestController {
	return &ManifestController{DB: DB}
}

func (mc *ManifestController) CreateManifest(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var manifest models.Manifest
	if err := ctx.BodyParser(&manifest); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "Invalid input")
	}

	manifest.ManifestNo = types.SnowflakeID(idgen.GenerateID())
	manifest.CreatedBy = userID
	manifest.UpdatedBy = userID
	if manifest.Status == "" {
		manifest.Status = "Open"
	}

	if err := mc.DB.Create(&manifest).Error; err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "Manifest created successfully",
		"data":    manifest,
	})
}

func (mc *ManifestController) GetAllManifests(ctx *fiber.Ctx) error {
	var manifests []models.Manifest
	if err := mc.DB.Find(&manifests).Error; err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"total":   len(manifests),
		"data":    manifests,
	})
}

func (mc *ManifestController) GetManifestByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var manifest models.Manifest

	if err := mc.DB.First(&manifest, id).Error; err != nil {
		return errorResponse(ctx, fiber.StatusNotFound, "Manifest not found")
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"data":    manifest,
	})
}

func (mc *ManifestController) UpdateManifest(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var manifest models.Manifest
	if err := mc.DB.First(&manifest, id).Error; err != nil {
		return errorResponse(ctx, fiber.StatusNotFound, "Manifest not found")
	}

	var input models.Manifest
	if err := ctx.BodyParser(&input); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "Invalid input")
	}

	manifest.Origin = input.Origin
	manifest.Destination = input.Destination
	manifest.Vehicle = input.Vehicle
	manifest.Description = input.Description
	manifest.Status = input.Status
	manifest.UpdatedBy = userID

	if err := mc.DB.Save(&manifest).Error; err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "Manifest updated successfully",
		"data":    manifest,
	})
}

func (mc *ManifestController) DeleteManifest(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var manifest models.Manifest
	if err := mc.DB.First(&manifest, id).Error; err != nil {
		return errorResponse(ctx, fiber.StatusNotFound, "Manifest not found")
	}

	manifest.DeletedBy = userID
	if err := mc.DB.Save(&manifest).Error; err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}

	if err := mc.DB.Delete(&manifest).Error; err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "Manifest deleted successfully",
	})
}
