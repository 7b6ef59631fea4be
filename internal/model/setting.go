package model

import (
	"encoding/json"
	"time"
)

// AdminSetting is one key/value entry of the platform configuration
// managed from the admin panel.
type AdminSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SettingKey   string          `gorm:"uniqueIndex;not null;size:100" json:"setting_key"`
	SettingValue json.RawMessage `gorm:"type:text;not null" json:"setting_value"`
}

// TableName sets the table name.
func (AdminSetting) TableName() string {
	return "admin_settings"
}
