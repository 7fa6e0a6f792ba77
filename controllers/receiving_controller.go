package controllers

import (
	"errors"

	"rfid-app/domain"
	"rfid-app/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReceivingController struct {
	DB *gorm.DB
}

func NewReceivingController(DB *gorm.DB) *ReceivingController {
	return &ReceivingController{DB: DB}
}

func (c *ReceivingController) GetAllReceiving(ctx *fiber.Ctx) error {
	receivingRepo := repositories.NewReceivingRepository(c.DB)
	details, err := receivingRepo.GetAll()
	if err != nil {
		return errorResponse(ctx, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "All receiving fetched successfully",
		"data":    details,
		"total":   len(details),
	})
}

func (c *ReceivingController) GetDetailReceiving(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	receivingRepo := repositories.NewReceivingRepository(c.DB)
	detail, err := receivingRepo.GetDetail(uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrReceivingNotFound) {
			return errorResponse(ctx, fiber.StatusNotFound, err.Error())
		}
		return errorResponse(ctx, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "Receiving detail fetched successfully",
		"data":    detail,
	})
}

func (c *ReceivingController) CreateReceiving(ctx *fiber.Ctx) error {
	var input repositories.CreateReceivingInput
	if err := ctx.BodyParser(&input); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(input); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "All fields are required.")
	}

	receivingRepo := repositories.NewReceivingRepository(c.DB)
	detail, err := receivingRepo.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTagNotFound),
			errors.Is(err, domain.ErrReceiverNotFound),
			errors.Is(err, domain.ErrLocationNotFound),
			errors.Is(err, domain.ErrTagReceived):
			return errorResponse(ctx, fiber.StatusBadRequest, err.Error())
		}
		return errorResponse(ctx, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "Receiving created successfully",
		"data":    detail,
	})
}

func (c *ReceivingController) EditReceiving(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	var input repositories.EditReceivingInput
	if err := ctx.BodyParser(&input); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "Invalid input")
	}

	receivingRepo := repositories.NewReceivingRepository(c.DB)
	detail, err := receivingRepo.Edit(uint(id), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReceivingNotFound):
			return errorResponse(ctx, fiber.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrNoFields):
			return errorResponse(ctx, fiber.StatusBadRequest, err.Error())
		}
		return errorResponse(ctx, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "Receiving updated successfully",
		"data":    detail,
	})
}

func (c *ReceivingController) DeleteReceiving(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	receivingRepo := repositories.NewReceivingRepository(c.DB)
	if err := receivingRepo.Delete(uint(id)); err != nil {
		if errors.Is(err, domain.ErrReceivingNotFound) {
			return errorResponse(ctx, fiber.StatusNotFound, err.Error())
		}
		return errorResponse(ctx, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"status":  "success",
		"message": "Receiving deleted successfully",
	})
}
