package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/omar-581/DhowLine/config"
	"github.com/omar-581/DhowLine/models"
	"github.com/omar-581/DhowLine/utils"
)

// TourRequest represents the admin create/update payload for a tour
type TourRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	Highlights      []string `json:"highlights"`
	CategoryID      uint     `json:"category_id" binding:"required"`
	LocationID      uint     `json:"location_id" binding:"required"`
	AdultPrice      float64  `json:"adult_price" binding:"required,gt=0"`
	ChildPrice      float64  `json:"child_price" binding:"gte=0"`
	InfantPrice     float64  `json:"infant_price" binding:"gte=0"`
	DurationMinutes int      `json:"duration_minutes" binding:"required,gt=0"`
	Capacity        int      `json:"capacity" binding:"required,gt=0"`
	ImageURL        string   `json:"image_url"`
	GalleryURLs     []string `json:"gallery_urls"`
	IsFeatured      bool     `json:"is_featured"`
}

// CreateTour creates a new tour
func CreateTour(c *gin.Context) {
	utils.LogInfo("CreateTour called")

	var req TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid tour request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := ensureTourRefs(c, req.CategoryID, req.LocationID); err != nil {
		return
	}

	tour := models.Tour{
		Name:            req.Name,
		Slug:            utils.Slugify(req.Name),
		Description:     req.Description,
		Highlights:      req.Highlights,
		CategoryID:      req.CategoryID,
		LocationID:      req.LocationID,
		AdultPrice:      req.AdultPrice,
		ChildPrice:      req.ChildPrice,
		InfantPrice:     req.InfantPrice,
		DurationMinutes: req.DurationMinutes,
		Capacity:        req.Capacity,
		ImageURL:        req.ImageURL,
		GalleryURLs:     req.GalleryURLs,
		IsActive:        true,
		IsFeatured:      req.IsFeatured,
	}

	if err := config.DB.Create(&tour).Error; err != nil {
		utils.LogError("Failed to create tour: %v", err)
		utils.InternalServerError(c, "Failed to create tour", nil)
		return
	}

	invalidateTourCache()
	utils.Created(c, utils.MsgCreateSuccess, tour)
}

// UpdateTour updates an existing tour
func UpdateTour(c *gin.Context) {
	utils.LogInfo("UpdateTour called")

	var tour models.Tour
	if err := config.DB.First(&tour, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Tour not found")
		return
	}

	var req TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := ensureTourRefs(c, req.CategoryID, req.LocationID); err != nil {
		return
	}

	tour.Name = req.Name
	tour.Slug = utils.Slugify(req.Name)
	tour.Description = req.Description
	tour.Highlights = req.Highlights
	tour.CategoryID = req.CategoryID
	tour.LocationID = req.LocationID
	tour.AdultPrice = req.AdultPrice
	tour.ChildPrice = req.ChildPrice
	tour.InfantPrice = req.InfantPrice
	tour.DurationMinutes = req.DurationMinutes
	tour.Capacity = req.Capacity
	tour.ImageURL = req.ImageURL
	tour.GalleryURLs = req.GalleryURLs
	tour.IsFeatured = req.IsFeatured

	if err := config.DB.Save(&tour).Error; err != nil {
		utils.LogError("Failed to update tour %d: %v", tour.ID, err)
		utils.InternalServerError(c, "Failed to update tour", nil)
		return
	}

	invalidateTourCache()
	utils.Success(c, utils.MsgUpdateSuccess, tour)
}

// ToggleTourActive flips a tour's active flag (soft listing removal)
func ToggleTourActive(c *gin.Context) {
	var tour models.Tour
	if err := config.DB.First(&tour, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Tour not found")
		return
	}

	tour.IsActive = !tour.IsActive
	if err := config.DB.Save(&tour).Error; err != nil {
		utils.InternalServerError(c, "Failed to update tour", nil)
		return
	}

	invalidateTourCache()
	utils.Success(c, utils.MsgUpdateSuccess, gin.H{"id": tour.ID, "is_active": tour.IsActive})
}

// DeleteTour soft-deletes a tour. Bookings keep their tour reference.
func DeleteTour(c *gin.Context) {
	var tour models.Tour
	if err := config.DB.First(&tour, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Tour not found")
		return
	}

	if err := config.DB.Delete(&tour).Error; err != nil {
		utils.LogError("Failed to delete tour %d: %v", tour.ID, err)
		utils.InternalServerError(c, "Failed to delete tour", nil)
		return
	}

	invalidateTourCache()
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}

// AdminListTours returns all tours including inactive ones
func AdminListTours(c *gin.Context) {
	pagination := utils.NewPagination(c)

	tx := config.DB.Model(&models.Tour{}).Preload("Category").Preload("Location")
	if search := c.Query("search"); search != "" {
		tx = tx.Where("name ILIKE ?", "%"+utils.SanitizeString(search)+"%")
	}

	var total int64
	tx.Count(&total)
	pagination.SetTotal(total)

	var tours []models.Tour
	if err := tx.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&tours).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch tours", nil)
		return
	}

	utils.SendPaginatedResponse(c, "Tours retrieved successfully", tours, pagination)
}

func ensureTourRefs(c *gin.Context, categoryID, locationID uint) error {
	var category models.Category
	if err := config.DB.First(&category, categoryID).Error; err != nil {
		utils.BadRequest(c, "Category not found", nil)
		return err
	}
	var location models.Location
	if err := config.DB.First(&location, locationID).Error; err != nil {
		utils.BadRequest(c, "Location not found", nil)
		return err
	}
	return nil
}
