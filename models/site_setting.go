package models

import (
	"gorm.io/gorm"
)

// Setting keys
const (
	SettingKeySite   = "site"
	SettingKeyFooter = "footer"
)

// SiteSetting stores an admin-configurable settings payload as a JSON blob
// keyed by section. Payloads are only read through the typed accessors in
// utils/settings.go, never as raw maps.
type SiteSetting struct {
	gorm.Model
	Key   string `gorm:"uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:jsonb" json:"value"`
}
