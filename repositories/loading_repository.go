package repositories

import (
	"errors"
	"time"

	"rfid-app/domain"
	"rfid-app/models"

	"gorm.io/gorm"
)

type LoadingRepository struct {
	db *gorm.DB
}

func NewLoadingRepository(db *gorm.DB) *LoadingRepository {
	return &LoadingRepository{db}
}

// LoadingDetail keeps the column aliases the mobile client already consumes.
type LoadingDetail struct {
	ID            uint       `json:"id"`
	ManifestID    uint       `json:"manifestId"`
	BagID         string     `json:"BagID"`
	BagWeight     float64    `json:"Bag_Weight"`
	Total         *int       `json:"total"`
	Vehicle       string     `json:"vehicle"`
	LoadedBy      string     `json:"loadedBy"`
	LoaderContact string     `json:"loader_contact"`
	LoadStartTime time.Time  `json:"loadStartTime"`
	LoadEndTime   *time.Time `json:"loadEndTime"`
	Status        string     `json:"status"`
}

type CreateLoadingInput struct {
	ManifestID uint   `json:"manifestId" validate:"required"`
	RfidTagID  uint   `json:"rfidTagId" validate:"required"`
	Vehicle    string `json:"vehicle" validate:"required"`
	LoadedBy   uint   `json:"loadedBy" validate:"required"`
	Status     string `json:"status" validate:"required"`
}

type EditLoadingInput struct {
	ManifestID uint   `json:"manifestId"`
	RfidTagID  uint   `json:"rfidTagId"`
	Vehicle    string `json:"vehicle"`
	LoadedBy   uint   `json:"loadedBy"`
	Status     string `json:"status"`
}

const loadingDetailSelect = `
	SELECT
		loadings.id,
		loadings.manifest_id,
		rfid_tags.tid AS bag_id,
		rfid_tags.weight AS bag_weight,
		rfid_tags.quantity AS total,
		loadings.vehicle,
		users.full_name AS loaded_by,
		users.contact_info AS loader_contact,
		loadings.load_start_time,
		loadings.load_end_time,
		loadings.status
	FROM loadings
	LEFT JOIN rfid_tags ON loadings.rfid_tag_id = rfid_tags.id
	LEFT JOIN users ON loadings.loaded_by = users.id
	WHERE loadings.deleted_at IS NULL`

func (r *LoadingRepository) GetAll() ([]LoadingDetail, error) {
	var details []LoadingDetail
	if err := r.db.Raw(loadingDetailSelect).Scan(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

func (r *LoadingRepository) GetDetail(id uint) (*LoadingDetail, error) {
	var detail LoadingDetail
	result := r.db.Raw(loadingDetailSelect+" AND loadings.id = ?", id).Scan(&detail)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrLoadingNotFound
	}
	return &detail, nil
}

// Create validates the referenced tag, the no-double-loading rule, the
// manifest and the loader, in that order, then inserts the record with a
// server-assigned start time. First failed check wins.
func (r *LoadingRepository) Create(input CreateLoadingInput) (*LoadingDetail, error) {
	var loading models.Loading

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.RfidTag{}).Where("id = ?", input.RfidTagID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrTagNotFound
		}

		if err := tx.Model(&models.Loading{}).
			Where("rfid_tag_id = ? AND status = ?", input.RfidTagID, models.LoadingStatusLoaded).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrTagLoaded
		}

		if err := tx.Model(&models.Manifest{}).Where("id = ?", input.ManifestID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrManifestNotFound
		}

		if err := tx.Model(&models.User{}).Where("id = ?", input.LoadedBy).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrLoaderNotFound
		}

		loading = models.Loading{
			ManifestID:    input.ManifestID,
			RfidTagID:     input.RfidTagID,
			Vehicle:       input.Vehicle,
			LoadedBy:      input.LoadedBy,
			Status:        input.Status,
			LoadStartTime: time.Now(),
		}
		return tx.Create(&loading).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetDetail(loading.ID)
}

// Edit applies a partial update: only supplied fields are written, and any
// supplied foreign key is re-validated for existence first.
func (r *LoadingRepository) Edit(id uint, input EditLoadingInput) (*LoadingDetail, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var loading models.Loading
		if err := tx.First(&loading, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrLoadingNotFound
			}
			return err
		}

		updates := map[string]interface{}{}
		var count int64

		if input.ManifestID != 0 {
			if err := tx.Model(&models.Manifest{}).Where("id = ?", input.ManifestID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domain.ErrManifestNotFound
			}
			updates["manifest_id"] = input.ManifestID
		}
		if input.RfidTagID != 0 {
			if err := tx.Model(&models.RfidTag{}).Where("id = ?", input.RfidTagID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domain.ErrTagNotFound
			}
			updates["rfid_tag_id"] = input.RfidTagID
		}
		if input.LoadedBy != 0 {
			if err := tx.Model(&models.User{}).Where("id = ?", input.LoadedBy).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domain.ErrLoaderNotFound
			}
			updates["loaded_by"] = input.LoadedBy
		}
		if input.Vehicle != "" {
			updates["vehicle"] = input.Vehicle
		}
		if input.Status != "" {
			updates["status"] = input.Status
		}

		if len(updates) == 0 {
			return domain.ErrNoFields
		}

		return tx.Model(&loading).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetDetail(id)
}

func (r *LoadingRepository) Delete(id uint) error {
	var loading models.Loading
	if err := r.db.First(&loading, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrLoadingNotFound
		}
		return err
	}
	return r.db.Delete(&loading).Error
}
