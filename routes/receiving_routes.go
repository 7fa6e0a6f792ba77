package routes

import (
	"rfid-app/config"
	"rfid-app/controllers"
	"rfid-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReceivingRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/receive", middleware.AuthMiddleware)

	receivingController := controllers.NewReceivingController(db)

	api.Get("/", receivingController.GetAllReceiving)
	api.Get("/:id", receivingController.GetDetailReceiving)
	api.Post("/", receivingController.CreateReceiving)
	api.Put("/edit/:id", receivingController.EditReceiving)
	api.Delete("/delete/:id", receivingController.DeleteReceiving)
}
