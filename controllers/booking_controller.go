package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omar-581/DhowLine/config"
	"github.com/omar-581/DhowLine/models"
	"github.com/omar-581/DhowLine/utils"
)

// CreateBookingRequest represents the public checkout payload
type CreateBookingRequest struct {
	CustomerName    string    `json:"customer_name" binding:"required"`
	CustomerEmail   string    `json:"customer_email" binding:"required,email"`
	CustomerPhone   string    `json:"customer_phone" binding:"required"`
	TourID          uint      `json:"tour_id" binding:"required"`
	CruiseDate      time.Time `json:"cruise_date" binding:"required"`
	Adults          int       `json:"adults" binding:"required,gt=0"`
	Children        int       `json:"children" binding:"gte=0"`
	Infants         int       `json:"infants" binding:"gte=0"`
	DiscountCode    string    `json:"discount_code"`
	SpecialRequests string    `json:"special_requests"`
	PaymentMethod   string    `json:"payment_method"`
}

// CreateBooking places a booking from the public checkout. The subtotal is
// recomputed server-side from the tour's prices; any discount is validated
// and redeemed inside the same transaction that creates the booking, so a
// code's last remaining use can never be taken twice.
func CreateBooking(c *gin.Context) {
	utils.LogInfo("CreateBooking called")

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid booking request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := utils.ValidatePhone(req.CustomerPhone); err != nil {
		utils.BadRequest(c, utils.ErrInvalidPhone, nil)
		return
	}
	if req.CruiseDate.Before(time.Now().Truncate(24 * time.Hour)) {
		utils.BadRequest(c, "Cruise date cannot be in the past", nil)
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = models.PaymentMethodOnArrival
	}
	if req.PaymentMethod != models.PaymentMethodOnArrival && req.PaymentMethod != models.PaymentMethodRazorpay {
		utils.BadRequest(c, "Unsupported payment method", nil)
		return
	}

	var tour models.Tour
	if err := config.DB.Where("id = ? AND is_active = ?", req.TourID, true).First(&tour).Error; err != nil {
		utils.LogError("Booking for unknown tour %d", req.TourID)
		utils.NotFound(c, "Tour not found")
		return
	}

	partySize := req.Adults + req.Children + req.Infants
	if tour.Capacity > 0 && partySize > tour.Capacity {
		utils.BadRequest(c, "Party size exceeds the tour capacity", nil)
		return
	}

	subtotal := float64(req.Adults)*tour.AdultPrice +
		float64(req.Children)*tour.ChildPrice +
		float64(req.Infants)*tour.InfantPrice

	booking := models.Booking{
		Reference:       models.NewBookingReference(),
		CustomerName:    utils.SanitizeString(req.CustomerName),
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		TourID:          tour.ID,
		CruiseDate:      req.CruiseDate,
		Adults:          req.Adults,
		Children:        req.Children,
		Infants:         req.Infants,
		Subtotal:        subtotal,
		TotalPrice:      subtotal,
		Status:          models.BookingStatusPending,
		SpecialRequests: utils.SanitizeString(req.SpecialRequests),
		PaymentMethod:   req.PaymentMethod,
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start booking transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to place booking", nil)
		return
	}

	if req.DiscountCode != "" {
		discount, err := utils.ApplyDiscountCode(tx, req.DiscountCode, subtotal, tour.ID)
		if err != nil {
			tx.Rollback()
			if rejection, ok := utils.IsDiscountRejection(err); ok {
				utils.LogInfo("Discount %s rejected at checkout: %s", req.DiscountCode, rejection.Reason)
				utils.BadRequest(c, rejection.Reason, nil)
				return
			}
			utils.LogError("Discount lookup failed at checkout: %v", err)
			utils.InternalServerError(c, "Failed to place booking", nil)
			return
		}

		if err := utils.RedeemDiscount(tx, discount.ID); err != nil {
			tx.Rollback()
			if rejection, ok := utils.IsDiscountRejection(err); ok {
				utils.BadRequest(c, rejection.Reason, nil)
				return
			}
			utils.LogError("Failed to redeem discount %d: %v", discount.ID, err)
			utils.InternalServerError(c, "Failed to place booking", nil)
			return
		}

		discountAmount := utils.CalculateDiscount(discount, subtotal)
		booking.DiscountID = &discount.ID
		booking.DiscountAmount = discountAmount
		booking.TotalPrice = subtotal - discountAmount
	}

	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create booking: %v", err)
		utils.InternalServerError(c, "Failed to place booking", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit booking transaction: %v", err)
		utils.InternalServerError(c, "Failed to place booking", nil)
		return
	}

	// Confirmation of receipt is best effort; the booking stands even if
	// the email provider is down.
	if _, err := utils.SendBookingEmail(config.DB, booking.ID, utils.EmailKindPending); err != nil {
		utils.LogError("Pending email failed for booking %s: %v", booking.Reference, err)
	}
	if err := utils.SendAdminAlert(
		"New booking "+booking.Reference,
		fmt.Sprintf("<p>%s booked %s for %s, total %s.</p>",
			booking.CustomerName, tour.Name, utils.FormatLongDate(booking.CruiseDate), utils.FormatAED(booking.TotalPrice)),
	); err != nil {
		utils.LogError("Admin alert failed for booking %s: %v", booking.Reference, err)
	}

	utils.LogInfo("Booking placed: %s tour=%d total=%s", booking.Reference, tour.ID, utils.FormatAED(booking.TotalPrice))
	utils.Created(c, utils.MsgBookingPlaced, gin.H{
		"reference":       booking.Reference,
		"status":          booking.Status,
		"subtotal":        booking.Subtotal,
		"discount_amount": booking.DiscountAmount,
		"total_price":     booking.TotalPrice,
		"total_display":   utils.FormatAED(booking.TotalPrice),
	})
}

// GetBookingByReference returns a booking for the customer-facing status
// page.
func GetBookingByReference(c *gin.Context) {
	reference := c.Param("reference")

	var booking models.Booking
	if err := config.DB.Preload("Tour").Where("reference = ?", reference).First(&booking).Error; err != nil {
		utils.LogError("Booking not found for reference: %s", reference)
		utils.NotFound(c, "Booking not found")
		return
	}

	utils.Success(c, "Booking retrieved successfully", booking)
}
