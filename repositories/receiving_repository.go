package repositories

import (
	"errors"
	"time"

	"rfid-app/domain"
	"rfid-app/models"

	"gorm.io/gorm"
)

type ReceivingRepository struct {
	db *gorm.DB
}

func NewReceivingRepository(db *gorm.DB) *ReceivingRepository {
	return &ReceivingRepository{db}
}

type ReceiveDetail struct {
	BagID           string    `json:"BagID"`
	BagWeight       float64   `json:"bag_weight"`
	Total           *int      `json:"total"`
	ReceiverName    string    `json:"receiver_name"`
	ReceiverContact string    `json:"receiver_contact"`
	Destination     string    `json:"destination"`
	Status          string    `json:"status"`
	ScannedAt       time.Time `json:"scanned_at"`
	ID              uint      `json:"id"`
}

type CreateReceivingInput struct {
	RfidTagID  uint   `json:"rfidTagId" validate:"required"`
	LocationID uint   `json:"locationId" validate:"required"`
	ReceivedBy uint   `json:"receivedBy" validate:"required"`
	Status     string `json:"status" validate:"required"`
}

type EditReceivingInput struct {
	RfidTagID  uint   `json:"rfidTagId"`
	LocationID uint   `json:"locationId"`
	ReceivedBy uint   `json:"receivedBy"`
	Status     string `json:"status"`
}

const receiveDetailSelect = `
	SELECT
		rfid_tags.tid AS bag_id,
		rfid_tags.weight AS bag_weight,
		rfid_tags.quantity AS total,
		users.full_name AS receiver_name,
		users.contact_info AS receiver_contact,
		locations.name AS destination,
		receives.status,
		receives.received_time AS scanned_at,
		receives.id
	FROM receives
	LEFT JOIN rfid_tags ON receives.rfid_tag_id = rfid_tags.id
	LEFT JOIN users ON receives.received_by = users.id
	LEFT JOIN locations ON receives.location_id = locations.id
	WHERE receives.deleted_at IS NULL`

func (r *ReceivingRepository) GetAll() ([]ReceiveDetail, error) {
	var details []ReceiveDetail
	if err := r.db.Raw(receiveDetailSelect).Scan(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

func (r *ReceivingRepository) GetDetail(id uint) (*ReceiveDetail, error) {
	var detail ReceiveDetail
	result := r.db.Raw(receiveDetailSelect+" AND receives.id = ?", id).Scan(&detail)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrReceivingNotFound
	}
	return &detail, nil
}

// Create validates tag, receiver and destination, then enforces the
// single-receipt rule: any earlier receive row for the tag blocks a new one,
// whatever its status says.
func (r *ReceivingRepository) Create(input CreateReceivingInput) (*ReceiveDetail, error) {
	var receive models.Receive

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.RfidTag{}).Where("id = ?", input.RfidTagID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrTagNotFound
		}

		if err := tx.Model(&models.User{}).Where("id = ?", input.ReceivedBy).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrReceiverNotFound
		}

		if err := tx.Model(&models.Location{}).Where("id = ?", input.LocationID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrLocationNotFound
		}

		if err := tx.Model(&models.Receive{}).Where("rfid_tag_id = ?", input.RfidTagID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrTagReceived
		}

		receive = models.Receive{
			RfidTagID:    input.RfidTagID,
			LocationID:   input.LocationID,
			ReceivedBy:   input.ReceivedBy,
			Status:       input.Status,
			ReceivedTime: time.Now(),
		}
		return tx.Create(&receive).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetDetail(receive.ID)
}

// Edit applies a partial update. Unlike loading edits, supplied foreign keys
// are written without re-validation; that matches the existing client
// behaviour for correcting receive rows.
func (r *ReceivingRepository) Edit(id uint, input EditReceivingInput) (*ReceiveDetail, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var receive models.Receive
		if err := tx.First(&receive, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrReceivingNotFound
			}
			return err
		}

		updates := map[string]interface{}{}
		if input.RfidTagID != 0 {
			updates["rfid_tag_id"] = input.RfidTagID
		}
		if input.LocationID != 0 {
			updates["location_id"] = input.LocationID
		}
		if input.ReceivedBy != 0 {
			updates["received_by"] = input.ReceivedBy
		}
		if input.Status != "" {
			updates["status"] = input.Status
		}

		if len(updates) == 0 {
			return domain.ErrNoFields
		}

		return tx.Model(&receive).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetDetail(id)
}

func (r *ReceivingRepository) Delete(id uint) error {
	var receive models.Receive
	if err := r.db.First(&receive, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReceivingNotFound
		}
		return err
	}
	return r.db.Delete(&receive).Error
}
