package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omar-581/DhowLine/config"
	"github.com/omar-581/DhowLine/models"
	"github.com/omar-581/DhowLine/utils"
)

// AdminListBookings returns bookings with filters and pagination
func AdminListBookings(c *gin.Context) {
	pagination := utils.NewPagination(c)

	tx := config.DB.Model(&models.Booking{}).Preload("Tour").Preload("Discount")

	if status := c.Query("status"); status != "" {
		tx = tx.Where("status = ?", status)
	}
	if tourID := c.Query("tour_id"); tourID != "" {
		tx = tx.Where("tour_id = ?", tourID)
	}
	if search := c.Query("search"); search != "" {
		term := "%" + utils.SanitizeString(search) + "%"
		tx = tx.Where("reference ILIKE ? OR customer_name ILIKE ? OR customer_email ILIKE ?", term, term, term)
	}
	if from := c.Query("from"); from != "" {
		if parsed, err := time.Parse("2006-01-02", from); err == nil {
			tx = tx.Where("cruise_date >= ?", parsed)
		}
	}
	if to := c.Query("to"); to != "" {
		if parsed, err := time.Parse("2006-01-02", to); err == nil {
			tx = tx.Where("cruise_date <= ?", parsed.Add(24*time.Hour))
		}
	}

	var total int64
	tx.Count(&total)
	pagination.SetTotal(total)

	var bookings []models.Booking
	if err := tx.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&bookings).Error; err != nil {
		utils.LogError("Failed to fetch bookings: %v", err)
		utils.InternalServerError(c, "Failed to fetch bookings", nil)
		return
	}

	utils.SendPaginatedResponse(c, "Bookings retrieved successfully", bookings, pagination)
}

// AdminGetBooking returns a single booking's detail
func AdminGetBooking(c *gin.Context) {
	var booking models.Booking
	if err := config.DB.Preload("Tour").Preload("Discount").First(&booking, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Booking not found")
		return
	}
	utils.Success(c, "Booking retrieved successfully", booking)
}

// UpdateBookingStatusRequest represents the status transition payload
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

// UpdateBookingStatus moves a booking through its lifecycle and fires the
// matching notification email. The status change is committed even when
// the email dispatch fails; the response reports both outcomes.
func UpdateBookingStatus(c *gin.Context) {
	utils.LogInfo("UpdateBookingStatus called")

	var booking models.Booking
	if err := config.DB.First(&booking, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Booking not found")
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Status == booking.Status {
		utils.BadRequest(c, "Booking is already "+req.Status, nil)
		return
	}
	if !models.ValidStatusTransition(booking.Status, req.Status) {
		utils.LogError("Invalid status transition for booking %s: %s -> %s", booking.Reference, booking.Status, req.Status)
		utils.BadRequest(c, "Invalid status transition", nil)
		return
	}

	booking.Status = req.Status
	if err := config.DB.Save(&booking).Error; err != nil {
		utils.LogError("Failed to update booking %s: %v", booking.Reference, err)
		utils.InternalServerError(c, "Failed to update booking", nil)
		return
	}

	response := gin.H{"reference": booking.Reference, "status": booking.Status}

	kind := utils.EmailKindForStatus(req.Status)
	if kind != "" {
		result, err := utils.SendBookingEmail(config.DB, booking.ID, kind)
		if err != nil {
			utils.LogError("Status email failed for booking %s: %v", booking.Reference, err)
			response["email_sent"] = false
			response["email_error"] = err.Error()
		} else {
			response["email_sent"] = true
			response["message_id"] = result.MessageID
		}
	}

	utils.LogInfo("Booking %s moved to %s", booking.Reference, booking.Status)
	utils.Success(c, utils.MsgUpdateSuccess, response)
}
