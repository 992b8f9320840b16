package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/omar-581/DhowLine/config"
	"github.com/omar-581/DhowLine/models"
	"github.com/omar-581/DhowLine/utils"
)

// ReviewRequest represents the public review submission payload
type ReviewRequest struct {
	TourID  uint   `json:"tour_id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// CreateReview accepts a public review submission. Reviews await admin
// approval before appearing in listings.
func CreateReview(c *gin.Context) {
	utils.LogInfo("CreateReview called")

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := utils.ValidateRating(req.Rating); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	var tour models.Tour
	if err := config.DB.Where("id = ? AND is_active = ?", req.TourID, true).First(&tour).Error; err != nil {
		utils.NotFound(c, "Tour not found")
		return
	}

	review := models.Review{
		TourID:  req.TourID,
		Name:    utils.SanitizeString(req.Name),
		Email:   req.Email,
		Rating:  req.Rating,
		Comment: utils.SanitizeString(req.Comment),
	}

	if err := config.DB.Create(&review).Error; err != nil {
		utils.LogError("Failed to create review: %v", err)
		utils.InternalServerError(c, "Failed to submit review", nil)
		return
	}

	utils.Created(c, utils.MsgReviewReceived, gin.H{"id": review.ID})
}

// ListTourReviews returns the approved reviews for a tour
func ListTourReviews(c *gin.Context) {
	slug := c.Param("slug")

	var tour models.Tour
	if err := config.DB.Where("slug = ?", slug).First(&tour).Error; err != nil {
		utils.NotFound(c, "Tour not found")
		return
	}

	pagination := utils.NewPagination(c)

	tx := config.DB.Model(&models.Review{}).
		Where("tour_id = ? AND is_approved = ?", tour.ID, true)

	var total int64
	tx.Count(&total)
	pagination.SetTotal(total)

	var reviews []models.Review
	if err := tx.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&reviews).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch reviews", nil)
		return
	}

	utils.SendPaginatedResponse(c, "Reviews retrieved successfully", reviews, pagination)
}

// AdminListReviews returns reviews for moderation, pending first
func AdminListReviews(c *gin.Context) {
	pagination := utils.NewPagination(c)

	tx := config.DB.Model(&models.Review{}).Preload("Tour")
	if c.Query("pending") == "true" {
		tx = tx.Where("is_approved = ?", false)
	}

	var total int64
	tx.Count(&total)
	pagination.SetTotal(total)

	var reviews []models.Review
	if err := tx.Order("is_approved ASC, created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&reviews).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch reviews", nil)
		return
	}

	utils.SendPaginatedResponse(c, "Reviews retrieved successfully", reviews, pagination)
}

// ApproveReview publishes a review and refreshes the tour's rating
func ApproveReview(c *gin.Context) {
	var review models.Review
	if err := config.DB.First(&review, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Review not found")
		return
	}

	review.IsApproved = true
	if err := config.DB.Save(&review).Error; err != nil {
		utils.InternalServerError(c, "Failed to approve review", nil)
		return
	}

	if err := refreshTourRating(review.TourID); err != nil {
		utils.LogError("Failed to refresh rating for tour %d: %v", review.TourID, err)
	}

	invalidateTourCache()
	utils.Success(c, "Review approved", review)
}

// DeleteReview removes a review and refreshes the tour's rating
func DeleteReview(c *gin.Context) {
	var review models.Review
	if err := config.DB.First(&review, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Review not found")
		return
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete review", nil)
		return
	}

	if err := refreshTourRating(review.TourID); err != nil {
		utils.LogError("Failed to refresh rating for tour %d: %v", review.TourID, err)
	}

	invalidateTourCache()
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}

// refreshTourRating recomputes a tour's average rating and review count
// from its approved reviews.
func refreshTourRating(tourID uint) error {
	var stats struct {
		Average float64
		Count   int64
	}
	err := config.DB.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as average, COUNT(*) as count").
		Where("tour_id = ? AND is_approved = ?", tourID, true).
		Scan(&stats).Error
	if err != nil {
		return err
	}

	return config.DB.Model(&models.Tour{}).Where("id = ?", tourID).
		Updates(map[string]interface{}{
			"average_rating": stats.Average,
			"total_reviews":  stats.Count,
		}).Error
}
