package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rfid-app/database"
	"rfid-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()

	rfidTagController := NewRfidTagController(db)
	app.Get("/rfid-tags", rfidTagController.GetAllRfidTags)
	app.Get("/rfid-tags/inuse", rfidTagController.GetAllInuseRfidTags)
	app.Get("/rfid-tags/idle", rfidTagController.GetAllIdleRfidTags)
	app.Post("/rfid-tags", rfidTagController.WriteRfidTag)
	app.Post("/rfid-tags/read", rfidTagController.ReadTag)
	app.Post("/rfid-tags/clear", rfidTagController.ClearRfidTag)

	loadingController := NewLoadingController(db)
	app.Post("/loading", loadingController.CreateLoading)
	app.Put("/loading/edit/:id", loadingController.EditLoading)
	app.Delete("/loading/delete/:id", loadingController.DeleteLoading)

	receivingController := NewReceivingController(db)
	app.Post("/receive", receivingController.CreateReceiving)

	return app, db
}

func seedOperator(t *testing.T, db *gorm.DB) models.User {
	t.Helper()

	location := models.Location{Name: "Central Warehouse", Address: "Jl. Raya Gudang No. 1", IsActive: true}
	require.NoError(t, db.Create(&location).Error)

	user := models.User{
		Username:   "budi",
		Password:   "x",
		FullName:   "Budi Santoso",
		Email:      "budi@rfid.local",
		Role:       "operator",
		LocationID: location.ID,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestWriteReadClearFlow(t *testing.T) {
	app, db := setupTestApp(t)
	user := seedOperator(t, db)

	resp, body := doJSON(t, app, "POST", "/rfid-tags", fiber.Map{
		"TID":              "A1",
		"EPC":              "E1",
		"item_name":        "Rice",
		"quantity":         50,
		"item_description": "50kg sacks",
		"updatedBy":        user.ID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "RFID tag written successfully", body["message"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "A1", data["TID"])
	assert.Equal(t, "inuse", data["status"])
	assert.Equal(t, "Central Warehouse", data["last_location_name"])

	resp, body = doJSON(t, app, "POST", "/rfid-tags/read", fiber.Map{"TID": "A1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, "A1", data["TID"])
	assert.Equal(t, "E1", data["EPC"])

	resp, body = doJSON(t, app, "POST", "/rfid-tags/clear", fiber.Map{
		"TID":       "A1",
		"updatedBy": user.ID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]interface{})
	assert.Nil(t, data["quantity"])
	assert.Equal(t, "", data["item_name"])
}

func TestWriteMissingFields(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doJSON(t, app, "POST", "/rfid-tags", fiber.Map{"TID": "A1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "All fields are required.", body["message"])
}

func TestWriteConflictReturns400(t *testing.T) {
	app, db := setupTestApp(t)
	user := seedOperator(t, db)

	input := fiber.Map{
		"TID":              "A1",
		"EPC":              "E1",
		"item_name":        "Rice",
		"quantity":         50,
		"item_description": "50kg sacks",
		"updatedBy":        user.ID,
	}
	resp, _ := doJSON(t, app, "POST", "/rfid-tags", input)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, "POST", "/rfid-tags", input)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Tag already in use", body["message"])
}

func TestReadUnknownReturns404(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doJSON(t, app, "POST", "/rfid-tags/read", fiber.Map{"TID": "NOPE"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "TID not found", body["message"])
}

func TestCreateLoadingEndpoint(t *testing.T) {
	app, db := setupTestApp(t)
	user := seedOperator(t, db)

	manifest := models.Manifest{ManifestNo: 1001, Status: "Open"}
	require.NoError(t, db.Create(&manifest).Error)
	qty := 10
	tag := models.RfidTag{TID: "A1", EPC: "E1", Quantity: &qty, Status: models.TagStatusInuse}
	require.NoError(t, db.Create(&tag).Error)

	input := fiber.Map{
		"manifestId": manifest.ID,
		"rfidTagId":  tag.ID,
		"vehicle":    "Truck-1",
		"loadedBy":   user.ID,
		"status":     "Loaded",
	}
	resp, body := doJSON(t, app, "POST", "/loading", input)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Loading created successfully", body["message"])

	resp, body = doJSON(t, app, "POST", "/loading", input)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "RFID Tag ID has already been loaded", body["message"])
}

func TestEditLoadingUnknownIDReturns404(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doJSON(t, app, "PUT", "/loading/edit/999", fiber.Map{"vehicle": "Truck-9"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Loading not found", body["message"])
}

func TestDeleteLoadingUnknownIDReturns404(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, _ := doJSON(t, app, "DELETE", "/loading/delete/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateReceivingEndpoint(t *testing.T) {
	app, db := setupTestApp(t)
	user := seedOperator(t, db)

	var location models.Location
	require.NoError(t, db.First(&location).Error)
	tag := models.RfidTag{TID: "A1", EPC: "E1", Status: models.TagStatusInuse}
	require.NoError(t, db.Create(&tag).Error)

	input := fiber.Map{
		"rfidTagId":  tag.ID,
		"locationId": location.ID,
		"receivedBy": user.ID,
		"status":     "Received",
	}
	resp, body := doJSON(t, app, "POST", "/receive", input)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Receiving created successfully", body["message"])

	resp, body = doJSON(t, app, "POST", "/receive", input)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "RFID Tag ID has already been used", body["message"])
}
