package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking statuses
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Payment methods
const (
	PaymentMethodOnArrival = "pay_on_arrival"
	PaymentMethodRazorpay  = "razorpay"
)

// Booking represents a cruise booking placed through the public checkout
type Booking struct {
	gorm.Model
	Reference       string    `gorm:"uniqueIndex;not null" json:"reference"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone"`
	TourID          uint      `json:"tour_id"`
	Tour            Tour      `json:"tour,omitempty" gorm:"foreignKey:TourID"`
	CruiseDate      time.Time `json:"cruise_date"`
	Adults          int       `json:"adults"`
	Children        int       `json:"children"`
	Infants         int       `json:"infants"`
	Subtotal        float64   `json:"subtotal"`
	DiscountID      *uint     `json:"discount_id"`
	Discount        *Discount `json:"discount,omitempty" gorm:"foreignKey:DiscountID"`
	DiscountAmount  float64   `json:"discount_amount"`
	TotalPrice      float64   `json:"total_price"`
	Status          string    `json:"status" gorm:"default:'pending'"`
	SpecialRequests string    `json:"special_requests"`
	PaymentMethod   string    `json:"payment_method" gorm:"default:'pay_on_arrival'"`
	RazorpayOrderID string    `json:"razorpay_order_id"`
	PaymentID       string    `json:"payment_id"`
	IsPaid          bool      `json:"is_paid" gorm:"default:false"`
}

// NewBookingReference generates a short human-readable booking reference
// like "DL-7F3A2C9D".
func NewBookingReference() string {
	id := uuid.New().String()
	return "DL-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}

// ValidStatusTransition reports whether a booking may move from one status
// to another. Cancelled bookings are terminal.
func ValidStatusTransition(from, to string) bool {
	switch from {
	case BookingStatusPending:
		return to == BookingStatusConfirmed || to == BookingStatusCancelled
	case BookingStatusConfirmed:
		return to == BookingStatusCancelled
	default:
		return false
	}
}
