package repositories

import (
	"testing"

	"rfid-app/database"
	"rfid-app/models"
	"rfid-app/types"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func seedLocation(t *testing.T, db *gorm.DB, name, address string) models.Location {
	t.Helper()
	location := models.Location{Name: name, Address: address, IsActive: true}
	require.NoError(t, db.Create(&location).Error)
	return location
}

func seedUser(t *testing.T, db *gorm.DB, username, fullName string, locationID uint) models.User {
	t.Helper()
	user := models.User{
		Username:    username,
		Password:    "x",
		FullName:    fullName,
		Email:       username + "@rfid.local",
		Role:        "operator",
		ContactInfo: "0812000",
		LocationID:  locationID,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedManifest(t *testing.T, db *gorm.DB, no int64) models.Manifest {
	t.Helper()
	manifest := models.Manifest{
		ManifestNo:  types.SnowflakeID(no),
		Origin:      "Central Warehouse",
		Destination: "Sorting Hub",
		Status:      "Open",
	}
	require.NoError(t, db.Create(&manifest).Error)
	return manifest
}

func seedInuseTag(t *testing.T, db *gorm.DB, tid, epc string, user models.User) models.RfidTag {
	t.Helper()
	qty := 10
	tag := models.RfidTag{
		TID:             tid,
		EPC:             epc,
		ItemName:        "Rice",
		Quantity:        &qty,
		ItemDescription: "10kg sacks",
		Weight:          10.5,
		Status:          models.TagStatusInuse,
		UpdatedBy:       user.ID,
		LastLocationID:  user.LocationID,
	}
	require.NoError(t, db.Create(&tag).Error)
	return tag
}
