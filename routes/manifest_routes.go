package routes

import (
	"rfid-app/config"
	"rfid-app/controllers"
	"rfid-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupManifestRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/manifests", middleware.AuthMiddleware)

	manifestController := controllers.NewManifestController(db)

	api.Post("/", manifestController.CreateManifest)
	api.Get("/", manifestController.GetAllManifests)
	api.Get("/:id", manifestController.GetManifestByID)
	api.Put("/:id", manifestController.UpdateManifest)
	api.Delete("/:id", manifestController.DeleteManifest)
}
