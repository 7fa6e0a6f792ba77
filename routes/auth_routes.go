package routes

import (
	"rfid-app/config"
	"rfid-app/controllers"
	"rfid-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES)

	authController := controllers.NewAuthController(db)

	api.Post("/login", authController.Login)
	api.Get("/logout", authController.Logout)
	api.Get("/isLoggedIn", middleware.AuthMiddleware, authController.IsLoggedIn)
}
