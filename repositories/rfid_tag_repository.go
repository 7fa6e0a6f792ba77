package repositories

import (
	"errors"

	"rfid-app/domain"
	"rfid-app/models"

	"gorm.io/gorm"
)

type RfidTagRepository struct {
	db *gorm.DB
}

func NewRfidTagRepository(db *gorm.DB) *RfidTagRepository {
	return &RfidTagRepository{db}
}

// TagDetail is the joined view returned to scanners: tag payload plus the
// last-known location and the display name of the operator who touched it.
type TagDetail struct {
	TID                 string `json:"TID" gorm:"column:tid"`
	EPC                 string `json:"EPC"`
	ItemName            string `json:"item_name"`
	Quantity            *int   `json:"quantity"`
	ItemDescription     string `json:"item_description"`
	Status              string `json:"status,omitempty"`
	LastLocationName    string `json:"last_location_name"`
	LastLocationAddress string `json:"last_location_address"`
	UpdatedBy           string `json:"updated_by"`
	UpdatedByContact    string `json:"updated_by_contact"`
}

type WriteTagInput struct {
	TID             string `json:"TID" validate:"required"`
	EPC             string `json:"EPC" validate:"required"`
	ItemName        string `json:"item_name" validate:"required"`
	Quantity        *int   `json:"quantity" validate:"required"`
	ItemDescription string `json:"item_description" validate:"required"`
	UpdatedBy       uint   `json:"updatedBy" validate:"required"`
}

const tagDetailSelect = `
	SELECT
		rfid_tags.tid,
		rfid_tags.epc,
		rfid_tags.item_name,
		rfid_tags.quantity,
		rfid_tags.item_description,
		rfid_tags.status,
		locations.name AS last_location_name,
		locations.address AS last_location_address,
		users.full_name AS updated_by,
		users.email AS updated_by_contact
	FROM rfid_tags
	LEFT JOIN locations ON rfid_tags.last_location_id = locations.id
	LEFT JOIN users ON rfid_tags.updated_by = users.id
	WHERE rfid_tags.deleted_at IS NULL`

func (r *RfidTagRepository) GetAll() ([]models.RfidTag, error) {
	var tags []models.RfidTag
	if err := r.db.Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *RfidTagRepository) GetAllByStatus(status string) ([]TagDetail, error) {
	var details []TagDetail
	if err := r.db.Raw(tagDetailSelect+" AND rfid_tags.status = ?", status).Scan(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

func (r *RfidTagRepository) GetDetailByTID(tid string) (*TagDetail, error) {
	var detail TagDetail
	result := r.db.Raw(tagDetailSelect+" AND rfid_tags.tid = ?", tid).Scan(&detail)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrTagUnknown
	}
	return &detail, nil
}

// Write claims a tag for a shipment. Both the physical chip id (TID) and the
// product code (EPC) must be free of an active claim. An idle row with the
// same TID is updated in place so the chip record keeps its history; otherwise
// a new row is inserted. The whole check-then-act sequence runs in one
// transaction.
func (r *RfidTagRepository) Write(input WriteTagInput) (*TagDetail, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.RfidTag{}).
			Where("tid = ? AND status = ?", input.TID, models.TagStatusInuse).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrTagInUse
		}

		if err := tx.Model(&models.RfidTag{}).
			Where("epc = ? AND status = ?", input.EPC, models.TagStatusInuse).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrEPCInUse
		}

		// Location provenance follows the operator, not the scanner device.
		var user models.User
		if err := tx.First(&user, input.UpdatedBy).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return err
		}

		var existing models.RfidTag
		err := tx.Where("tid = ? AND status = ?", input.TID, models.TagStatusIdle).First(&existing).Error
		if err == nil {
			existing.EPC = input.EPC
			existing.ItemName = input.ItemName
			existing.Quantity = input.Quantity
			existing.ItemDescription = input.ItemDescription
			existing.Status = models.TagStatusInuse
			existing.UpdatedBy = user.ID
			existing.LastLocationID = user.LocationID
			return tx.Save(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		tag := models.RfidTag{
			TID:             input.TID,
			EPC:             input.EPC,
			ItemName:        input.ItemName,
			Quantity:        input.Quantity,
			ItemDescription: input.ItemDescription,
			Status:          models.TagStatusInuse,
			UpdatedBy:       user.ID,
			LastLocationID:  user.LocationID,
		}
		return tx.Create(&tag).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetDetailByTID(input.TID)
}

// Clear releases a tag back to idle and wipes its payload. Clearing an
// already-idle tag succeeds; only an unknown TID or operator is an error.
func (r *RfidTagRepository) Clear(tid string, updatedBy uint) (*TagDetail, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var tag models.RfidTag
		if err := tx.Where("tid = ?", tid).First(&tag).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTagUnknown
			}
			return err
		}

		var user models.User
		if err := tx.First(&user, updatedBy).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return err
		}

		return tx.Model(&tag).Updates(map[string]interface{}{
			"epc":              "",
			"item_name":        "",
			"quantity":         nil,
			"item_description": "",
			"status":           models.TagStatusIdle,
			"updated_by":       user.ID,
			"last_location_id": user.LocationID,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetDetailByTID(tid)
}
