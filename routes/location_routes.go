package routes

import (
	"rfid-app/config"
	"rfid-app/controllers"
	"rfid-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLocationRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/locations", middleware.AuthMiddleware)

	locationController := controllers.NewLocationController(db)

	api.Post("/", locationController.CreateLocation)
	api.Get("/", locationController.GetAllLocations)
	api.Get("/:id", locationController.GetLocationByID)
	api.Put("/:id", locationController.UpdateLocation)
	api.Delete("/:id", locationController.DeleteLocation)
}
