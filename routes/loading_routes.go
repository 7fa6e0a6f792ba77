package routes

import (
	"rfid-app/config"
	"rfid-app/controllers"
	"rfid-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLoadingRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/loading", middleware.AuthMiddleware)

	loadingController := controllers.NewLoadingController(db)

	api.Get("/", loadingController.GetAllLoading)
	api.Get("/export", loadingController.ExportExcel)
	api.Get("/:id", loadingController.GetDetailLoading)
	api.Post("/", loadingController.CreateLoading)
	api.Put("/edit/:id", loadingController.EditLoading)
	api.Delete("/delete/:id", loadingController.DeleteLoading)
}
