package models

import (
	"gorm.io/gorm"
)

// Template keys resolved by the notification dispatcher
const (
	TemplateKeyBookingConfirmation = "booking_confirmation"
	TemplateKeyBookingPending      = "booking_pending"
	TemplateKeyBookingCancelled    = "booking_cancelled"
	TemplateKeyBookingReminder     = "booking_reminder"
)

// EmailTemplate represents an admin-editable notification template.
// Subject and body use {{variable}} placeholders drawn from Variables.
type EmailTemplate struct {
	gorm.Model
	TemplateKey string   `gorm:"uniqueIndex;not null" json:"template_key"`
	Subject     string   `json:"subject"`
	Body        string   `json:"body"`
	Variables   []string `json:"variables" gorm:"serializer:json"`
	IsActive    bool     `json:"is_active" gorm:"default:true"`
}

// BookingTemplateVariables is the variable set available to booking
// notification templates.
var BookingTemplateVariables = []string{
	"customer_name",
	"customer_email",
	"customer_phone",
	"tour_name",
	"booking_date",
	"adults",
	"children",
	"infants",
	"total_price",
	"special_requests",
	"booking_id",
	"site_name",
	"contact_email",
	"contact_phone",
}
