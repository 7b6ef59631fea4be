package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
)

// SettingService manages the admin key/value settings table.
type SettingService struct {
	db *gorm.DB
}

// NewSettingService creates a setting service on the given store.
func NewSettingService(db *gorm.DB) *SettingService {
	return &SettingService{db: db}
}

// List returns all settings.
func (s *SettingService) List() ([]model.AdminSetting, error) {
	var settings []model.AdminSetting
	if err := s.db.Order("setting_key ASC").Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return settings, nil
}

// Get returns a single setting by key.
func (s *SettingService) Get(key string) (*model.AdminSetting, error) {
	var setting model.AdminSetting
	if err := s.db.Where("setting_key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return &setting, nil
}

// Set upserts a setting value, which must be valid JSON.
func (s *SettingService) Set(key string, value json.RawMessage) (*model.AdminSetting, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: setting key is required", ErrValidation)
	}
	if len(value) == 0 || !json.Valid(value) {
		return nil, fmt.Errorf("%w: setting value must be valid JSON", ErrValidation)
	}

	var setting model.AdminSetting
	err := s.db.Where("setting_key = ?", key).First(&setting).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = model.AdminSetting{SettingKey: key, SettingValue: value}
		if err := s.db.Create(&setting).Error; err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
		return &setting, nil
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	setting.SettingValue = value
	if err := s.db.Save(&setting).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return &setting, nil
}
