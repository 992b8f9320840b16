package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/omar-581/DhowLine/config"
	"github.com/omar-581/DhowLine/models"
	"github.com/omar-581/DhowLine/utils"
	razorpay "github.com/razorpay/razorpay-go"
)

// InitiateRazorpayPayment creates a Razorpay order for a booking so the
// customer can pay online instead of on arrival. Looked up by booking
// reference since the public checkout never exposes numeric ids.
func InitiateRazorpayPayment(c *gin.Context) {
	utils.LogInfo("InitiateRazorpayPayment called")

	var req struct {
		Reference string `json:"reference" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. reference is required", err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Where("reference = ?", req.Reference).First(&booking).Error; err != nil {
		utils.LogError("Booking not found for reference: %s", req.Reference)
		utils.NotFound(c, "Booking not found")
		return
	}

	if booking.IsPaid {
		utils.BadRequest(c, "This booking is already paid", nil)
		return
	}
	if booking.Status == models.BookingStatusCancelled {
		utils.BadRequest(c, "Cannot pay for a cancelled booking", nil)
		return
	}

	// Razorpay expects the amount in the currency's smallest unit (fils)
	amountFils := int(booking.TotalPrice * 100)

	client := razorpay.NewClient(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))
	orderData := map[string]interface{}{
		"amount":          amountFils,
		"currency":        "AED",
		"receipt":         booking.Reference,
		"payment_capture": 1,
	}
	rzOrder, err := client.Order.Create(orderData, nil)
	if err != nil {
		utils.LogError("Failed to create Razorpay order for booking %s: %v", booking.Reference, err)
		utils.BadGateway(c, "Failed to create payment order", nil)
		return
	}

	if err := config.DB.Model(&booking).Updates(map[string]interface{}{
		"payment_method":    models.PaymentMethodRazorpay,
		"razorpay_order_id": fmt.Sprintf("%v", rzOrder["id"]),
	}).Error; err != nil {
		utils.LogError("Failed to store Razorpay order id for booking %s: %v", booking.Reference, err)
		utils.InternalServerError(c, "Failed to update booking", nil)
		return
	}

	utils.LogInfo("Razorpay order created for booking %s", booking.Reference)
	utils.Success(c, "Payment initiated successfully", gin.H{
		"reference":         booking.Reference,
		"razorpay_order_id": rzOrder["id"],
		"amount":            booking.TotalPrice,
		"amount_display":    utils.FormatAED(booking.TotalPrice),
		"currency":          "AED",
		"key":               os.Getenv("RAZORPAY_KEY"),
		"customer": gin.H{
			"name":  booking.CustomerName,
			"email": booking.CustomerEmail,
			"phone": booking.CustomerPhone,
		},
	})
}

// VerifyRazorpayPayment checks the gateway signature and marks the booking
// paid. Confirmation stays an admin decision; payment alone does not flip
// the booking status.
func VerifyRazorpayPayment(c *gin.Context) {
	utils.LogInfo("VerifyRazorpayPayment called")

	var req struct {
		Reference         string `json:"reference" binding:"required"`
		RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
		RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
		RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	keySecret := os.Getenv("RAZORPAY_SECRET")
	data := req.RazorpayOrderID + "|" + req.RazorpayPaymentID
	h := hmac.New(sha256.New, []byte(keySecret))
	h.Write([]byte(data))
	generatedSignature := hex.EncodeToString(h.Sum(nil))
	if generatedSignature != req.RazorpaySignature {
		utils.LogError("Payment signature mismatch for reference: %s", req.Reference)
		utils.BadRequest(c, "Payment verification failed", gin.H{"retry": true})
		return
	}

	var booking models.Booking
	if err := config.DB.Where("reference = ?", req.Reference).First(&booking).Error; err != nil {
		utils.NotFound(c, "Booking not found")
		return
	}

	if booking.RazorpayOrderID != req.RazorpayOrderID {
		utils.LogError("Razorpay order id mismatch for booking %s. Expected: %s, Received: %s",
			booking.Reference, booking.RazorpayOrderID, req.RazorpayOrderID)
		utils.BadRequest(c, "Invalid Razorpay order ID", nil)
		return
	}

	if err := config.DB.Model(&booking).Updates(map[string]interface{}{
		"is_paid":    true,
		"payment_id": req.RazorpayPaymentID,
	}).Error; err != nil {
		utils.LogError("Failed to mark booking %s paid: %v", booking.Reference, err)
		utils.InternalServerError(c, "Failed to update booking", nil)
		return
	}

	utils.LogInfo("Payment verified for booking %s", booking.Reference)
	utils.Success(c, "Thank you for your payment! Your booking is being reviewed.", gin.H{
		"reference":     booking.Reference,
		"status":        booking.Status,
		"is_paid":       true,
		"total_display": utils.FormatAED(booking.TotalPrice),
	})
}
