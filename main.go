package main

import (
	"fmt"
	"log"

	"rfid-app/config"
	"rfid-app/controllers/idgen"
	"rfid-app/database"
	"rfid-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	db, err := database.GetDBConnection(config.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupUserRoutes(app, db)
	routes.SetupLocationRoutes(app, db)
	routes.SetupManifestRoutes(app, db)
	routes.SetupRfidTagRoutes(app, db)
	routes.SetupLoadingRoutes(app, db)
	routes.SetupReceivingRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server berjalan di port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
