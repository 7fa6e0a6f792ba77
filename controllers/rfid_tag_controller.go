package controllers

import (
	"errors"
	"fmt"

	"rfid-app/domain"
	"rfid-app/models"
	"rfid-app/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type RfidTagController struct {
	DB *gorm.DB
}

func NewRfidTagController(DB *gorm.DB) *RfidTagController {
	return &RfidTagController{DB: DB}
}

func (c *RfidTagController) GetAllRfidTags(ctx *fiber.Ctx) error {
	tagRepo := repositories.NewRfidTagRepository(c.DB)
	tags, err := tagRepo.GetAll()
	if err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"total":   len(tags),
		"data":    tags,
	})
}

func (c *RfidTagController) GetAllInuseRfidTags(ctx *fiber.Ctx) error {
	return c.getAllByStatus(ctx, models.TagStatusInuse)
}

func (c *RfidTagController) GetAllIdleRfidTags(ctx *fiber.Ctx) error {
	return c.getAllByStatus(ctx, models.TagStatusIdle)
}

func (c *RfidTagController) getAllByStatus(ctx *fiber.Ctx, status string) error {
	tagRepo := repositories.NewRfidTagRepository(c.DB)
	details, err := tagRepo.GetAllByStatus(status)
	if err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"total":   len(details),
		"data":    details,
	})
}

func (c *RfidTagController) WriteRfidTag(ctx *fiber.Ctx) error {
	var input repositories.WriteTagInput
	if err := ctx.BodyParser(&input); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(input); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "All fields are required.")
	}

	tagRepo := repositories.NewRfidTagRepository(c.DB)
	detail, err := tagRepo.Write(input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTagInUse),
			errors.Is(err, domain.ErrEPCInUse),
			errors.Is(err, domain.ErrUserNotFound):
			return errorResponse(ctx, fiber.StatusBadRequest, err.Error())
		}
		return errorResponse(ctx, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "RFID tag written successfully",
		"data":    detail,
	})
}

func (c *RfidTagController) ReadTag(ctx *fiber.Ctx) error {
	var input struct {
		TID string `json:"TID" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(input); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "All fields are required.")
	}

	tagRepo := repositories.NewRfidTagRepository(c.DB)
	detail, err := tagRepo.GetDetailByTID(input.TID)
	if err != nil {
		if errors.Is(err, domain.ErrTagUnknown) {
			return errorResponse(ctx, fiber.StatusNotFound, err.Error())
		}
		return errorResponse(ctx, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "RFID tag details fetched successfully",
		"data":    detail,
	})
}

func (c *RfidTagController) ClearRfidTag(ctx *fiber.Ctx) error {
	var input struct {
		TID       string `json:"TID" validate:"required"`
		UpdatedBy uint   `json:"updatedBy" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(input); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "All fields are required.")
	}

	tagRepo := repositories.NewRfidTagRepository(c.DB)
	detail, err := tagRepo.Clear(input.TID, input.UpdatedBy)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTagUnknown), errors.Is(err, domain.ErrUserNotFound):
			return errorResponse(ctx, fiber.StatusNotFound, err.Error())
		}
		return errorResponse(ctx, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "RFID tag cleared successfully",
		"data":    detail,
	})
}

func (c *RfidTagController) ExportExcel(ctx *fiber.Ctx) error {
	tagRepo := repositories.NewRfidTagRepository(c.DB)
	tags, err := tagRepo.GetAll()
	if err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, "Internal Server Error")
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "TID")
	f.SetCellValue(sheet, "B1", "EPC")
	f.SetCellValue(sheet, "C1", "Item Name")
	f.SetCellValue(sheet, "D1", "Quantity")
	f.SetCellValue(sheet, "E1", "Description")
	f.SetCellValue(sheet, "F1", "Weight")
	f.SetCellValue(sheet, "G1", "Status")

	for i, tag := range tags {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), tag.TID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), tag.EPC)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), tag.ItemName)
		if tag.Quantity != nil {
			f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), *tag.Quantity)
		}
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), tag.ItemDescription)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), tag.Weight)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", i+2), tag.Status)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="rfid_tags.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
