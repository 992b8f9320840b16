package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omar-581/DhowLine/config"
	"github.com/omar-581/DhowLine/models"
	"github.com/omar-581/DhowLine/utils"
	"gorm.io/gorm"
)

// ListEmailTemplates returns all notification templates
func ListEmailTemplates(c *gin.Context) {
	var templates []models.EmailTemplate
	if err := config.DB.Order("template_key").Find(&templates).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch templates", nil)
		return
	}
	utils.Success(c, "Templates retrieved successfully", templates)
}

// GetEmailTemplate returns a single template
func GetEmailTemplate(c *gin.Context) {
	var template models.EmailTemplate
	if err := config.DB.First(&template, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Template not found")
		return
	}
	utils.Success(c, "Template retrieved successfully", template)
}

// UpdateEmailTemplateRequest represents the template edit payload. The
// template key is fixed; admins edit subject, body and active flag.
type UpdateEmailTemplateRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Body     string `json:"body" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

// UpdateEmailTemplate saves an edited template. Placeholders are checked
// against the template's declared variable set before the save, so a typo
// like {{customer_nam}} is caught here instead of going out verbatim in a
// customer email.
func UpdateEmailTemplate(c *gin.Context) {
	utils.LogInfo("UpdateEmailTemplate called")

	var template models.EmailTemplate
	if err := config.DB.First(&template, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Template not found")
		return
	}

	var req UpdateEmailTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := utils.ValidateTemplate(req.Subject, req.Body, template.Variables); err != nil {
		utils.LogError("Template %s rejected: %v", template.TemplateKey, err)
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	template.Subject = req.Subject
	template.Body = req.Body
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&template).Error; err != nil {
		utils.LogError("Failed to save template %s: %v", template.TemplateKey, err)
		utils.InternalServerError(c, "Failed to save template", nil)
		return
	}

	utils.Success(c, utils.MsgUpdateSuccess, template)
}

// PreviewEmailTemplate renders a template with sample booking data so the
// admin can see the customer-facing result before saving.
func PreviewEmailTemplate(c *gin.Context) {
	var template models.EmailTemplate
	if err := config.DB.First(&template, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Template not found")
		return
	}

	settings := utils.GetSiteSettings(config.DB)
	sample := models.Booking{
		Reference:     "DL-5A0B31F7",
		CustomerName:  "Aisha Rahman",
		CustomerEmail: "aisha@example.com",
		CustomerPhone: "+971 50 123 4567",
		CruiseDate:    time.Now().AddDate(0, 0, 7),
		Adults:        2,
		Children:      1,
		Infants:       0,
		TotalPrice:    1500,
	}
	sample.Tour.Name = "Marina Sunset Dinner Cruise"

	vars := utils.BookingEmailVars(&sample, settings)
	utils.Success(c, "Preview rendered successfully", gin.H{
		"subject": utils.RenderTemplate(template.Subject, vars),
		"body":    utils.RenderTemplate(template.Body, vars),
	})
}

var defaultTemplates = []models.EmailTemplate{
	{
		TemplateKey: models.TemplateKeyBookingPending,
		Subject:     "We received your booking {{booking_id}}",
		Body: "<p>Dear {{customer_name}},</p>" +
			"<p>Thank you for booking with {{site_name}}. Your request for " +
			"<strong>{{tour_name}}</strong> on {{booking_date}} is being reviewed.</p>" +
			"<p>Guests: {{adults}} adults, {{children}} children, {{infants}} infants<br>" +
			"Total: {{total_price}}<br>Special requests: {{special_requests}}</p>" +
			"<p>We will confirm shortly. Questions? Reach us at {{contact_email}} or {{contact_phone}}.</p>",
	},
	{
		TemplateKey: models.TemplateKeyBookingConfirmation,
		Subject:     "Your cruise is confirmed - {{booking_id}}",
		Body: "<p>Dear {{customer_name}},</p>" +
			"<p>Your booking for <strong>{{tour_name}}</strong> on {{booking_date}} is confirmed.</p>" +
			"<p>Booking reference: {{booking_id}}<br>" +
			"Guests: {{adults}} adults, {{children}} children, {{infants}} infants<br>" +
			"Total: {{total_price}}</p>" +
			"<p>Please arrive 30 minutes before departure. See you on board!</p>" +
			"<p>{{site_name}} | {{contact_email}} | {{contact_phone}}</p>",
	},
	{
		TemplateKey: models.TemplateKeyBookingCancelled,
		Subject:     "Booking {{booking_id}} cancelled",
		Body: "<p>Dear {{customer_name}},</p>" +
			"<p>Your booking {{booking_id}} for <strong>{{tour_name}}</strong> on {{booking_date}} " +
			"has been cancelled.</p>" +
			"<p>If this was unexpected, contact us at {{contact_email}} or {{contact_phone}}.</p>",
	},
	{
		TemplateKey: models.TemplateKeyBookingReminder,
		Subject:     "Your cruise is tomorrow - {{booking_id}}",
		Body: "<p>Dear {{customer_name}},</p>" +
			"<p>A quick reminder: your <strong>{{tour_name}}</strong> cruise departs on " +
			"{{booking_date}}.</p>" +
			"<p>Booking reference: {{booking_id}}<br>" +
			"Guests: {{adults}} adults, {{children}} children, {{infants}} infants</p>" +
			"<p>{{site_name}} | {{contact_email}} | {{contact_phone}}</p>",
	},
}

// SeedDefaultTemplates creates any missing booking templates at startup.
// Existing rows are never overwritten; admin edits survive restarts.
func SeedDefaultTemplates() error {
	for _, seed := range defaultTemplates {
		var existing models.EmailTemplate
		err := config.DB.Where("template_key = ?", seed.TemplateKey).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		seed.Variables = models.BookingTemplateVariables
		seed.IsActive = true
		if err := config.DB.Create(&seed).Error; err != nil {
			return err
		}
		utils.LogInfo("Seeded email template %s", seed.TemplateKey)
	}
	return nil
}
