// database/seeder.go
package database

import (
	"errors"
	"fmt"
	"log"

	"rfid-app/models"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/rand"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedLocations(db)
	SeedUserMaster(db)
	SeedDemoTags(db)
}

func SeedLocations(db *gorm.DB) {
	locations := []models.Location{
		{Name: "Central Warehouse", Address: "Jl. Raya Gudang No. 1"},
		{Name: "Sorting Hub", Address: "Jl. Industri Blok C2"},
	}

	for _, location := range locations {
		var existing models.Location
		err := db.Where("name = ?", location.Name).First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := db.Create(&location).Error; err != nil {
					log.Fatalf("Failed to seed location: %v", err)
				}
			} else {
				log.Fatalf("Unexpected DB error: %v", err)
			}
		}
	}
}

func SeedUserMaster(db *gorm.DB) {
	var existing models.User
	err := db.Where("username = ?", "admin").First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Unexpected DB error: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	var location models.Location
	db.Where("name = ?", "Central Warehouse").First(&location)

	admin := models.User{
		Username:    "admin",
		Password:    string(hashed),
		FullName:    "Administrator",
		Email:       "admin@rfid.local",
		Role:        "admin",
		ContactInfo: "081200000000",
		LocationID:  location.ID,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
}

// SeedDemoTags registers a handful of idle tags so scanners have something to
// write against on a fresh install.
func SeedDemoTags(db *gorm.DB) {
	var count int64
	db.Model(&models.RfidTag{}).Count(&count)
	if count > 0 {
		return
	}

	for i := 0; i < 5; i++ {
		tag := models.RfidTag{
			TID:    fmt.Sprintf("E2000%08X", rand.Uint32()),
			Status: models.TagStatusIdle,
		}
		if err := db.Create(&tag).Error; err != nil {
			log.Printf("Warning: failed to seed demo tag: %v", err)
		}
	}
}
