package repositories

import (
	"testing"

	"rfid-app/domain"
	"rfid-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(tid, epc string, updatedBy uint) WriteTagInput {
	qty := 50
	return WriteTagInput{
		TID:             tid,
		EPC:             epc,
		ItemName:        "Rice",
		Quantity:        &qty,
		ItemDescription: "50kg sacks",
		UpdatedBy:       updatedBy,
	}
}

func TestWriteNewTag(t *testing.T) {
	db := setupTestDB(t)
	location := seedLocation(t, db, "Central Warehouse", "Jl. Raya Gudang No. 1")
	user := seedUser(t, db, "budi", "Budi Santoso", location.ID)

	repo := NewRfidTagRepository(db)
	detail, err := repo.Write(writeInput("A1", "E1", user.ID))
	require.NoError(t, err)

	assert.Equal(t, "A1", detail.TID)
	assert.Equal(t, "E1", detail.EPC)
	assert.Equal(t, "Rice", detail.ItemName)
	require.NotNil(t, detail.Quantity)
	assert.Equal(t, 50, *detail.Quantity)
	assert.Equal(t, models.TagStatusInuse, detail.Status)
	assert.Equal(t, "Central Warehouse", detail.LastLocationName)
	assert.Equal(t, "Budi Santoso", detail.UpdatedBy)
}

func TestWriteConflictOnActiveTID(t *testing.T) {
	db := setupTestDB(t)
	location := seedLocation(t, db, "Central Warehouse", "")
	user := seedUser(t, db, "budi", "Budi Santoso", location.ID)

	repo := NewRfidTagRepository(db)
	_, err := repo.Write(writeInput("A1", "E1", user.ID))
	require.NoError(t, err)

	_, err = repo.Write(writeInput("A1", "E2", user.ID))
	assert.ErrorIs(t, err, domain.ErrTagInUse)
}

func TestWriteConflictOnActiveEPC(t *testing.T) {
	db := setupTestDB(t)
	location := seedLocation(t, db, "Central Warehouse", "")
	user := seedUser(t, db, "budi", "Budi Santoso", location.ID)

	repo := NewRfidTagRepository(db)
	_, err := repo.Write(writeInput("A1", "E1", user.ID))
	require.NoError(t, err)

	// Different chip, same product code.
	_, err = repo.Write(writeInput("A2", "E1", user.ID))
	assert.ErrorIs(t, err, domain.ErrEPCInUse)
}

func TestWriteUnknownUser(t *testing.T) {
	db := setupTestDB(t)

	repo := NewRfidTagRepository(db)
	_, err := repo.Write(writeInput("A1", "E1", 999))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestWriteReusesIdleRow(t *testing.T) {
	db := setupTestDB(t)
	location := seedLocation(t, db, "Central Warehouse", "")
	user := seedUser(t, db, "budi", "Budi Santoso", location.ID)

	idle := models.RfidTag{TID: "A1", Status: models.TagStatusIdle}
	require.NoError(t, db.Create(&idle).Error)

	repo := NewRfidTagRepository(db)
	detail, err := repo.Write(writeInput("A1", "E1", user.ID))
	require.NoError(t, err)
	assert.Equal(t, models.TagStatusInuse, detail.Status)

	// The idle row was claimed in place, not duplicated.
	var count int64
	db.Model(&models.RfidTag{}).Where("tid = ?", "A1").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestClearWipesPayload(t *testing.T) {
	db := setupTestDB(t)
	location := seedLocation(t, db, "Central Warehouse", "")
	user := seedUser(t, db, "budi", "Budi Santoso", location.ID)

	repo := NewRfidTagRepository(db)
	_, err := repo.Write(writeInput("A1", "E1", user.ID))
	require.NoError(t, err)

	detail, err := repo.Clear("A1", user.ID)
	require.NoError(t, err)

	assert.Equal(t, models.TagStatusIdle, detail.Status)
	assert.Equal(t, "", detail.EPC)
	assert.Equal(t, "", detail.ItemName)
	assert.Nil(t, detail.Quantity)
	assert.Equal(t, "Central Warehouse", detail.LastLocationName)
}

func TestClearUnknownTID(t *testing.T) {
	db := setupTestDB(t)
	location := seedLocation(t, db, "Central Warehouse", "")
	user := seedUser(t, db, "budi", "Budi Santoso", location.ID)

	repo := NewRfidTagRepository(db)
	_, err := repo.Clear("NOPE", user.ID)
	assert.ErrorIs(t, err, domain.ErrTagUnknown)
}

func TestClearUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	location := seedLocation(t, db, "Central Warehouse", "")
	user := seedUser(t, db, "budi", "Budi Santoso", location.ID)

	repo := NewRfidTagRepository(db)
	_, err := repo.Write(writeInput("A1", "E1", user.ID))
	require.NoError(t, err)

	_, err = repo.Clear("A1", 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestClearIdleTagSucceeds(t *testing.T) {
	db := setupTestDB(t)
	location := seedLocation(t, db, "Central Warehouse", "")
	user := seedUser(t, db, "budi", "Budi Santoso", location.ID)

	idle := models.RfidTag{TID: "A1", Status: models.TagStatusIdle}
	require.NoError(t, db.Create(&idle).Error)

	repo := NewRfidTagRepository(db)
	detail, err := repo.Clear("A1", user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TagStatusIdle, detail.Status)
}

func TestRewriteAfterClear(t *testing.T) {
	db := setupTestDB(t)
	location := seedLocation(t, db, "Central Warehouse", "")
	user := seedUser(t, db, "budi", "Budi Santoso", location.ID)

	repo := NewRfidTagRepository(db)
	_, err := repo.Write(writeInput("A1", "E1", user.ID))
	require.NoError(t, err)

	_, err = repo.Clear("A1", user.ID)
	require.NoError(t, err)

	detail, err := repo.Write(writeInput("A1", "E2", user.ID))
	require.NoError(t, err)
	assert.Equal(t, models.TagStatusInuse, detail.Status)
	assert.Equal(t, "E2", detail.EPC)
}

func TestReadUnknownTID(t *testing.T) {
	db := setupTestDB(t)

	repo := NewRfidTagRepository(db)
	_, err := repo.GetDetailByTID("NOPE")
	assert.ErrorIs(t, err, domain.ErrTagUnknown)
}

func TestGetAllByStatus(t *testing.T) {
	db := setupTestDB(t)
	location := seedLocation(t, db, "Central Warehouse", "")
	user := seedUser(t, db, "budi", "Budi Santoso", location.ID)

	seedInuseTag(t, db, "A1", "E1", user)
	idle := models.RfidTag{TID: "B1", Status: models.TagStatusIdle}
	require.NoError(t, db.Create(&idle).Error)

	repo := NewRfidTagRepository(db)

	inuse, err := repo.GetAllByStatus(models.TagStatusInuse)
	require.NoError(t, err)
	require.Len(t, inuse, 1)
	assert.Equal(t, "A1", inuse[0].TID)

	idleTags, err := repo.GetAllByStatus(models.TagStatusIdle)
	require.NoError(t, err)
	require.Len(t, idleTags, 1)
	assert.Equal(t, "B1", idleTags[0].TID)
}
