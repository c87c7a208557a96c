// Package settings provides database operations for persisted application
// settings.
//
// # Usage
//
//	repo := settings.NewRepository(db)
//	rate := repo.DailyRate()
package settings

import (
	"strconv"

	"gorm.io/gorm"

	"github.com/mrlokans/booktracer/internal/entities"
)

// Repository handles all settings database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new settings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetSetting retrieves a setting by key.
func (r *Repository) GetSetting(key string) (*entities.Setting, error) {
	var setting entities.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// SetSetting creates or updates a setting.
func (r *Repository) SetSetting(key, value string) error {
	var setting entities.Setting
	result := r.db.Where("key = ?", key).First(&setting)

	if result.Error == gorm.ErrRecordNotFound {
		setting = entities.Setting{
			Key:   key,
			Value: value,
		}
		return r.db.Create(&setting).Error
	} else if result.Error != nil {
		return result.Error
	}

	setting.Value = value
	return r.db.Save(&setting).Error
}

// DeleteSetting removes a setting by key.
func (r *Repository) DeleteSetting(key string) error {
	return r.db.Where("key = ?", key).Delete(&entities.Setting{}).Error
}

// DailyRate returns the configured reading rate in pages per day, or 0 when
// the setting is absent, unparseable or negative.
func (r *Repository) DailyRate() int {
	setting, err := r.GetSetting(entities.SettingKeyDailyRate)
	if err != nil {
		return 0
	}
	rate, err := strconv.Atoi(setting.Value)
	if err != nil || rate < 0 {
		return 0
	}
	return rate
}

// SetDailyRate persists the reading rate. A rate of 0 or below clears the
// setting, which reads back as 0.
func (r *Repository) SetDailyRate(rate int) error {
	if rate <= 0 {
		return r.DeleteSetting(entities.SettingKeyDailyRate)
	}
	return r.SetSetting(entities.SettingKeyDailyRate, strconv.Itoa(rate))
}
