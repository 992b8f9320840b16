package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/omar-581/DhowLine/models"
	"gorm.io/gorm"
)

// Email kinds accepted by the notification dispatcher. Each maps to the
// template key "booking_<kind>".
const (
	EmailKindConfirmation = "confirmation"
	EmailKindPending      = "pending"
	EmailKindCancelled    = "cancelled"
	EmailKindReminder     = "reminder"
)

// DispatchResult reports a successful email dispatch
type DispatchResult struct {
	MessageID string `json:"message_id"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
}

// EmailKindForStatus maps a booking status to the email kind fired on that
// transition.
func EmailKindForStatus(status string) string {
	switch status {
	case models.BookingStatusConfirmed:
		return EmailKindConfirmation
	case models.BookingStatusPending:
		return EmailKindPending
	case models.BookingStatusCancelled:
		return EmailKindCancelled
	default:
		return ""
	}
}

// FormatAmount renders a monetary amount with thousands separators.
// Whole amounts drop the decimal part: 1500 -> "1,500", 1500.5 -> "1,500.50".
func FormatAmount(amount float64) string {
	formatted := strconv.FormatFloat(amount, 'f', 2, 64)
	parts := strings.SplitN(formatted, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String()
	if negative {
		out = "-" + out
	}
	if fracPart != "00" {
		out += "." + fracPart
	}
	return out
}

// FormatAED renders an amount as displayed in emails: "AED 1,500"
func FormatAED(amount float64) string {
	return "AED " + FormatAmount(amount)
}

// FormatLongDate renders a date the way booking emails show it:
// "Friday, June 12, 2026". Always English month and weekday names.
func FormatLongDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// BookingEmailVars builds the variable map for booking notification
// templates. The booking's Tour must be preloaded.
func BookingEmailVars(booking *models.Booking, settings SiteSettings) map[string]string {
	specialRequests := strings.TrimSpace(booking.SpecialRequests)
	if specialRequests == "" {
		specialRequests = "None"
	}
	return map[string]string{
		"customer_name":    booking.CustomerName,
		"customer_email":   booking.CustomerEmail,
		"customer_phone":   booking.CustomerPhone,
		"tour_name":        booking.Tour.Name,
		"booking_date":     FormatLongDate(booking.CruiseDate),
		"adults":           strconv.Itoa(booking.Adults),
		"children":         strconv.Itoa(booking.Children),
		"infants":          strconv.Itoa(booking.Infants),
		"total_price":      FormatAED(booking.TotalPrice),
		"special_requests": specialRequests,
		"booking_id":       booking.Reference,
		"site_name":        settings.SiteName,
		"contact_email":    settings.ContactEmail,
		"contact_phone":    settings.ContactPhone,
	}
}

// SendBookingEmail runs the notification pipeline for a booking: fetch the
// booking, resolve the active template for the kind, render subject and
// body, and dispatch through the email provider. The pipeline is one-shot
// and fail-fast; there is no retry and no persisted delivery state.
func SendBookingEmail(db *gorm.DB, bookingID uint, kind string) (*DispatchResult, error) {
	switch kind {
	case EmailKindConfirmation, EmailKindPending, EmailKindCancelled, EmailKindReminder:
	default:
		return nil, BadRequestError(fmt.Sprintf("unknown email kind: %s", kind), nil)
	}

	var booking models.Booking
	if err := db.Preload("Tour").First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			LogError("Booking email dispatch: booking %d not found", bookingID)
			return nil, NotFoundError("booking not found", nil)
		}
		return nil, err
	}

	templateKey := "booking_" + kind
	var template models.EmailTemplate
	if err := db.Where("template_key = ? AND is_active = ?", templateKey, true).First(&template).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			LogError("Booking email dispatch: template %s not found or inactive", templateKey)
			return nil, NotFoundError("template not found", nil)
		}
		return nil, err
	}

	settings := GetSiteSettings(db)
	vars := BookingEmailVars(&booking, settings)

	subject := RenderTemplate(template.Subject, vars)
	body := RenderTemplate(template.Body, vars)

	messageID, err := SendEmail(booking.CustomerEmail, subject, body)
	if err != nil {
		LogError("Booking email dispatch failed for %s (%s): %v", booking.Reference, kind, err)
		return nil, err
	}

	LogInfo("Booking email sent for %s kind=%s message_id=%s", booking.Reference, kind, messageID)
	return &DispatchResult{
		MessageID: messageID,
		To:        booking.CustomerEmail,
		Subject:   subject,
	}, nil
}
