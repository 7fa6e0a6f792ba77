package routes

import (
	"rfid-app/config"
	"rfid-app/controllers"
	"rfid-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRfidTagRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/rfid-tags", middleware.AuthMiddleware)

	rfidTagController := controllers.NewRfidTagController(db)

	api.Get("/", rfidTagController.GetAllRfidTags)
	api.Get("/inuse", rfidTagController.GetAllInuseRfidTags)
	api.Get("/idle", rfidTagController.GetAllIdleRfidTags)
	api.Get("/export", rfidTagController.ExportExcel)
	api.Post("/", rfidTagController.WriteRfidTag)
	api.Post("/read", rfidTagController.ReadTag)
	api.Post("/clear", rfidTagController.ClearRfidTag)
}
