package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/omar-581/DhowLine/config"
	"github.com/omar-581/DhowLine/utils"
)

// SendNotificationRequest selects which templated email to fire
type SendNotificationRequest struct {
	Kind string `json:"kind" binding:"required,oneof=confirmation pending cancelled reminder"`
}

// SendBookingNotification lets an admin (re)send a booking email of a given
// kind. Provider failures surface as 502 so the admin UI can distinguish a
// bad request from an outage at the email provider.
func SendBookingNotification(c *gin.Context) {
	utils.LogInfo("SendBookingNotification called")

	var req SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var booking struct{ ID uint }
	if err := config.DB.Table("bookings").Select("id").
		Where("id = ? AND deleted_at IS NULL", c.Param("id")).
		First(&booking).Error; err != nil {
		utils.NotFound(c, "Booking not found")
		return
	}

	result, err := utils.SendBookingEmail(config.DB, booking.ID, req.Kind)
	if err != nil {
		var providerErr *utils.ProviderError
		if errors.As(err, &providerErr) {
			utils.BadGateway(c, "Email provider rejected the message", providerErr.Message)
			return
		}
		var appErr *utils.AppError
		if errors.As(err, &appErr) {
			utils.Error(c, appErr.Code, appErr.Message, nil)
			return
		}
		utils.LogError("Notification dispatch failed: %v", err)
		utils.InternalServerError(c, "Failed to send notification", nil)
		return
	}

	utils.Success(c, "Notification sent successfully", result)
}
