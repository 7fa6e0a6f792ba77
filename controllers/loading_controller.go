package controllers

import (
	"errors"
	"fmt"

	"rfid-app/domain"
	"rfid-app/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type LoadingController struct {
	DB *gorm.DB
}

func NewLoadingController(DB *gorm.DB) *LoadingController {
	return &LoadingController{DB: DB}
}

func (c *LoadingController) GetAllLoading(ctx *fiber.Ctx) error {
	loadingRepo := repositories.NewLoadingRepository(c.DB)
	details, err := loadingRepo.GetAll()
	if err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "All loading records fetched successfully",
		"data":    details,
		"total":   len(details),
	})
}

func (c *LoadingController) GetDetailLoading(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	loadingRepo := repositories.NewLoadingRepository(c.DB)
	detail, err := loadingRepo.GetDetail(uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrLoadingNotFound) {
			return errorResponse(ctx, fiber.StatusNotFound, err.Error())
		}
		return errorResponse(ctx, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "Loading detail fetched successfully",
		"data":    detail,
	})
}

func (c *LoadingController) CreateLoading(ctx *fiber.Ctx) error {
	var input repositories.CreateLoadingInput
	if err := ctx.BodyParser(&input); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(input); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "All fields are required.")
	}

	loadingRepo := repositories.NewLoadingRepository(c.DB)
	detail, err := loadingRepo.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTagNotFound),
			errors.Is(err, domain.ErrTagLoaded),
			errors.Is(err, domain.ErrManifestNotFound),
			errors.Is(err, domain.ErrLoaderNotFound):
			return errorResponse(ctx, fiber.StatusBadRequest, err.Error())
		}
		return errorResponse(ctx, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "Loading created successfully",
		"data":    detail,
	})
}

func (c *LoadingController) EditLoading(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	var input repositories.EditLoadingInput
	if err := ctx.BodyParser(&input); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "Invalid input")
	}

	loadingRepo := repositories.NewLoadingRepository(c.DB)
	detail, err := loadingRepo.Edit(uint(id), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLoadingNotFound):
			return errorResponse(ctx, fiber.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrNoFields),
			errors.Is(err, domain.ErrTagNotFound),
			errors.Is(err, domain.ErrManifestNotFound),
			errors.Is(err, domain.ErrLoaderNotFound):
			return errorResponse(ctx, fiber.StatusBadRequest, err.Error())
		}
		return errorResponse(ctx, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "Loading updated successfully",
		"data":    detail,
	})
}

func (c *LoadingController) DeleteLoading(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	loadingRepo := repositories.NewLoadingRepository(c.DB)
	if err := loadingRepo.Delete(uint(id)); err != nil {
		if errors.Is(err, domain.ErrLoadingNotFound) {
			return errorResponse(ctx, fiber.StatusNotFound, err.Error())
		}
		return errorResponse(ctx, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "Loading deleted successfully",
	})
}

func (c *LoadingController) ExportExcel(ctx *fiber.Ctx) error {
	loadingRepo := repositories.NewLoadingRepository(c.DB)
	details, err := loadingRepo.GetAll()
	if err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, "Internal Server Error")
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Bag ID")
	f.SetCellValue(sheet, "B1", "Manifest")
	f.SetCellValue(sheet, "C1", "Vehicle")
	f.SetCellValue(sheet, "D1", "Loaded By")
	f.SetCellValue(sheet, "E1", "Load Start")
	f.SetCellValue(sheet, "F1", "Status")

	for i, item := range details {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), item.BagID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), item.ManifestID)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), item.Vehicle)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), item.LoadedBy)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), item.LoadStartTime.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), item.Status)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="loading_report.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
