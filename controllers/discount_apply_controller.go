package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/omar-581/DhowLine/config"
	"github.com/omar-581/DhowLine/utils"
)

// ApplyDiscountRequest represents the checkout preview payload
type ApplyDiscountRequest struct {
	Code        string  `json:"code" binding:"required"`
	OrderAmount float64 `json:"order_amount" binding:"required,gt=0"`
	TourID      uint    `json:"tour_id"`
}

// ApplyDiscount validates a discount code against the order context and
// returns the computed discount as a preview. Nothing is redeemed here:
// the used count only moves when a booking is actually created, so this
// endpoint is safe to call repeatedly while the customer edits the cart.
func ApplyDiscount(c *gin.Context) {
	utils.LogInfo("ApplyDiscount called")

	var req ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid apply-discount request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	discount, err := utils.ApplyDiscountCode(config.DB, req.Code, req.OrderAmount, req.TourID)
	if err != nil {
		if rejection, ok := utils.IsDiscountRejection(err); ok {
			utils.LogInfo("Discount %s rejected: %s", req.Code, rejection.Reason)
			utils.BadRequest(c, rejection.Reason, nil)
			return
		}
		utils.LogError("Discount lookup failed for %s: %v", req.Code, err)
		utils.InternalServerError(c, "Failed to apply discount", nil)
		return
	}

	discountAmount := utils.CalculateDiscount(discount, req.OrderAmount)
	finalAmount := req.OrderAmount - discountAmount

	utils.Success(c, "Discount applied successfully", gin.H{
		"code":             discount.Code,
		"name":             discount.Name,
		"kind":             discount.Kind,
		"discount_amount":  discountAmount,
		"final_amount":     finalAmount,
		"discount_display": utils.FormatAED(discountAmount),
		"final_display":    utils.FormatAED(finalAmount),
	})
}
