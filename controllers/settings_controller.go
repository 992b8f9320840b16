package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/omar-581/DhowLine/config"
	"github.com/omar-581/DhowLine/models"
	"github.com/omar-581/DhowLine/utils"
)

// GetSiteSettings returns the resolved site and footer settings. This is a
// public endpoint; the frontend uses it to render the header and footer.
func GetSiteSettings(c *gin.Context) {
	settings := utils.GetSiteSettings(config.DB)
	utils.Success(c, "Settings retrieved successfully", settings)
}

// UpdateSiteSettingsRequest represents the "site" settings payload
type UpdateSiteSettingsRequest struct {
	SiteName string `json:"site_name" binding:"required"`
	Tagline  string `json:"tagline"`
	LogoURL  string `json:"logo_url"`
}

// UpdateSiteSettings saves the "site" settings row
func UpdateSiteSettings(c *gin.Context) {
	utils.LogInfo("UpdateSiteSettings called")

	var req UpdateSiteSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	payload := utils.SitePayload{
		SiteName: utils.SanitizeString(req.SiteName),
		Tagline:  utils.SanitizeString(req.Tagline),
		LogoURL:  req.LogoURL,
	}
	if err := utils.SaveSetting(config.DB, models.SettingKeySite, payload); err != nil {
		utils.LogError("Failed to save site settings: %v", err)
		utils.InternalServerError(c, "Failed to save settings", nil)
		return
	}

	utils.Success(c, utils.MsgUpdateSuccess, utils.GetSiteSettings(config.DB))
}

// UpdateFooterSettingsRequest represents the "footer" settings payload
type UpdateFooterSettingsRequest struct {
	ContactEmail string `json:"contact_email" binding:"required,email"`
	ContactPhone string `json:"contact_phone" binding:"required"`
	Address      string `json:"address"`
	InstagramURL string `json:"instagram_url"`
	WhatsAppURL  string `json:"whatsapp_url"`
}

// UpdateFooterSettings saves the "footer" settings row
func UpdateFooterSettings(c *gin.Context) {
	utils.LogInfo("UpdateFooterSettings called")

	var req UpdateFooterSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if err := utils.ValidatePhone(req.ContactPhone); err != nil {
		utils.BadRequest(c, utils.ErrInvalidPhone, nil)
		return
	}

	payload := utils.FooterPayload{
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      utils.SanitizeString(req.Address),
		InstagramURL: req.InstagramURL,
		WhatsAppURL:  req.WhatsAppURL,
	}
	if err := utils.SaveSetting(config.DB, models.SettingKeyFooter, payload); err != nil {
		utils.LogError("Failed to save footer settings: %v", err)
		utils.InternalServerError(c, "Failed to save settings", nil)
		return
	}

	utils.Success(c, utils.MsgUpdateSuccess, utils.GetSiteSettings(config.DB))
}
