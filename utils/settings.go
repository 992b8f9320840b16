package utils

import (
	"encoding/json"

	"github.com/omar-581/DhowLine/models"
	"gorm.io/gorm"
)

// Defaults used when a settings row is missing or a field is unset
const (
	DefaultSiteName     = "DhowLine Cruises"
	DefaultContactEmail = "info@dhowline.ae"
	DefaultContactPhone = "+971 4 555 0123"
)

// SitePayload is the typed shape of the "site" settings row
type SitePayload struct {
	SiteName string `json:"site_name"`
	Tagline  string `json:"tagline"`
	LogoURL  string `json:"logo_url"`
}

// FooterPayload is the typed shape of the "footer" settings row
type FooterPayload struct {
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
	InstagramURL string `json:"instagram_url"`
	WhatsAppURL  string `json:"whatsapp_url"`
}

// SiteSettings is the resolved settings view used across the app. Every
// field is guaranteed non-empty via defaults.
type SiteSettings struct {
	SiteName     string `json:"site_name"`
	Tagline      string `json:"tagline"`
	LogoURL      string `json:"logo_url"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
	InstagramURL string `json:"instagram_url"`
	WhatsAppURL  string `json:"whatsapp_url"`
}

// GetSiteSettings loads the "site" and "footer" rows and resolves them
// against defaults. Missing rows or malformed payloads fall back to
// defaults rather than failing the caller.
func GetSiteSettings(db *gorm.DB) SiteSettings {
	settings := SiteSettings{
		SiteName:     DefaultSiteName,
		ContactEmail: DefaultContactEmail,
		ContactPhone: DefaultContactPhone,
	}

	var rows []models.SiteSetting
	if err := db.Where("key IN ?", []string{models.SettingKeySite, models.SettingKeyFooter}).Find(&rows).Error; err != nil {
		LogError("Failed to load site settings, using defaults: %v", err)
		return settings
	}

	for _, row := range rows {
		switch row.Key {
		case models.SettingKeySite:
			var site SitePayload
			if err := json.Unmarshal([]byte(row.Value), &site); err != nil {
				LogError("Malformed site settings payload: %v", err)
				continue
			}
			if site.SiteName != "" {
				settings.SiteName = site.SiteName
			}
			settings.Tagline = site.Tagline
			settings.LogoURL = site.LogoURL
		case models.SettingKeyFooter:
			var footer FooterPayload
			if err := json.Unmarshal([]byte(row.Value), &footer); err != nil {
				LogError("Malformed footer settings payload: %v", err)
				continue
			}
			if footer.ContactEmail != "" {
				settings.ContactEmail = footer.ContactEmail
			}
			if footer.ContactPhone != "" {
				settings.ContactPhone = footer.ContactPhone
			}
			settings.Address = footer.Address
			settings.InstagramURL = footer.InstagramURL
			settings.WhatsAppURL = footer.WhatsAppURL
		}
	}

	return settings
}

// SaveSetting upserts a settings row with a typed payload
func SaveSetting(db *gorm.DB, key string, payload interface{}) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	var existing models.SiteSetting
	err = db.Where("key = ?", key).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return db.Create(&models.SiteSetting{Key: key, Value: string(value)}).Error
	}
	if err != nil {
		return err
	}
	existing.Value = string(value)
	return db.Save(&existing).Error
}
