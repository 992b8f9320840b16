package controllers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omar-581/DhowLine/config"
	"github.com/omar-581/DhowLine/models"
	"github.com/omar-581/DhowLine/utils"
)

// CreateDiscountRequest represents the admin payload for a new discount
type CreateDiscountRequest struct {
	Code              string     `json:"code" binding:"required"`
	Name              string     `json:"name" binding:"required"`
	Kind              string     `json:"kind" binding:"required,oneof=percentage fixed"`
	Value             float64    `json:"value" binding:"required,gt=0"`
	MinOrderAmount    *float64   `json:"min_order_amount"`
	MaxUses           *int       `json:"max_uses"`
	StartsAt          *time.Time `json:"starts_at"`
	ExpiresAt         *time.Time `json:"expires_at"`
	ApplicableTourIDs []uint     `json:"applicable_tour_ids"`
}

// CreateDiscount creates a new discount code
func CreateDiscount(c *gin.Context) {
	utils.LogInfo("CreateDiscount called")

	var req CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid discount request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := utils.ValidateDiscountValue(req.Kind, req.Value); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}
	if req.MinOrderAmount != nil && *req.MinOrderAmount <= 0 {
		utils.BadRequest(c, "Minimum order amount must be greater than 0", nil)
		return
	}
	if req.MaxUses != nil && *req.MaxUses <= 0 {
		utils.BadRequest(c, "Maximum uses must be greater than 0", nil)
		return
	}
	if req.StartsAt != nil && req.ExpiresAt != nil && req.ExpiresAt.Before(*req.StartsAt) {
		utils.BadRequest(c, "Expiry must be after the start date", nil)
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))

	var existing models.Discount
	if err := config.DB.Unscoped().Where("code = ?", code).First(&existing).Error; err == nil {
		utils.LogError("Discount code already exists: %s", code)
		utils.Conflict(c, "Discount code already exists", nil)
		return
	}

	discount := models.Discount{
		Code:              code,
		Name:              req.Name,
		Kind:              req.Kind,
		Value:             req.Value,
		MinOrderAmount:    req.MinOrderAmount,
		MaxUses:           req.MaxUses,
		StartsAt:          req.StartsAt,
		ExpiresAt:         req.ExpiresAt,
		IsActive:          true,
		ApplicableTourIDs: req.ApplicableTourIDs,
	}

	if err := config.DB.Create(&discount).Error; err != nil {
		utils.LogError("Failed to create discount: %v", err)
		utils.InternalServerError(c, "Failed to create discount", nil)
		return
	}

	utils.Created(c, utils.MsgCreateSuccess, discount)
}

// UpdateDiscountRequest represents the admin payload for editing a discount.
// The code itself is immutable once created.
type UpdateDiscountRequest struct {
	Name              string     `json:"name" binding:"required"`
	Kind              string     `json:"kind" binding:"required,oneof=percentage fixed"`
	Value             float64    `json:"value" binding:"required,gt=0"`
	MinOrderAmount    *float64   `json:"min_order_amount"`
	MaxUses           *int       `json:"max_uses"`
	StartsAt          *time.Time `json:"starts_at"`
	ExpiresAt         *time.Time `json:"expires_at"`
	ApplicableTourIDs []uint     `json:"applicable_tour_ids"`
}

// UpdateDiscount updates an existing discount
func UpdateDiscount(c *gin.Context) {
	utils.LogInfo("UpdateDiscount called")

	var discount models.Discount
	if err := config.DB.First(&discount, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Discount not found")
		return
	}

	var req UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := utils.ValidateDiscountValue(req.Kind, req.Value); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}
	if req.MaxUses != nil && *req.MaxUses < discount.UsedCount {
		utils.BadRequest(c, "Maximum uses cannot be below the current used count", nil)
		return
	}

	discount.Name = req.Name
	discount.Kind = req.Kind
	discount.Value = req.Value
	discount.MinOrderAmount = req.MinOrderAmount
	discount.MaxUses = req.MaxUses
	discount.StartsAt = req.StartsAt
	discount.ExpiresAt = req.ExpiresAt
	discount.ApplicableTourIDs = req.ApplicableTourIDs

	if err := config.DB.Save(&discount).Error; err != nil {
		utils.LogError("Failed to update discount %d: %v", discount.ID, err)
		utils.InternalServerError(c, "Failed to update discount", nil)
		return
	}

	utils.Success(c, utils.MsgUpdateSuccess, discount)
}

// ListDiscounts returns discounts with filters and pagination
func ListDiscounts(c *gin.Context) {
	pagination := utils.NewPagination(c)

	tx := config.DB.Model(&models.Discount{})
	if search := c.Query("search"); search != "" {
		term := "%" + utils.SanitizeString(search) + "%"
		tx = tx.Where("code ILIKE ? OR name ILIKE ?", term, term)
	}
	switch c.Query("status") {
	case "active":
		tx = tx.Where("is_active = ?", true)
	case "inactive":
		tx = tx.Where("is_active = ?", false)
	}

	var total int64
	tx.Count(&total)
	pagination.SetTotal(total)

	var discounts []models.Discount
	if err := tx.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&discounts).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch discounts", nil)
		return
	}

	utils.SendPaginatedResponse(c, "Discounts retrieved successfully", discounts, pagination)
}

// GetDiscount returns a single discount's detail
func GetDiscount(c *gin.Context) {
	var discount models.Discount
	if err := config.DB.First(&discount, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Discount not found")
		return
	}
	utils.Success(c, "Discount retrieved successfully", discount)
}

// ToggleDiscountActive soft-deactivates or reactivates a discount
func ToggleDiscountActive(c *gin.Context) {
	var discount models.Discount
	if err := config.DB.First(&discount, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Discount not found")
		return
	}

	discount.IsActive = !discount.IsActive
	if err := config.DB.Save(&discount).Error; err != nil {
		utils.InternalServerError(c, "Failed to update discount", nil)
		return
	}

	utils.Success(c, utils.MsgUpdateSuccess, gin.H{"id": discount.ID, "is_active": discount.IsActive})
}

// DeleteDiscount removes a discount. Bookings keep their recorded discount
// amount; only the code disappears.
func DeleteDiscount(c *gin.Context) {
	var discount models.Discount
	if err := config.DB.First(&discount, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Discount not found")
		return
	}

	if err := config.DB.Delete(&discount).Error; err != nil {
		utils.LogError("Failed to delete discount %d: %v", discount.ID, err)
		utils.InternalServerError(c, "Failed to delete discount", nil)
		return
	}

	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
