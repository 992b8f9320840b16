package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/omar-581/DhowLine/config"
	"github.com/omar-581/DhowLine/models"
	"github.com/omar-581/DhowLine/utils"
)

// CategoryRequest represents the admin payload for a category
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// ListCategories returns active categories for the public site
func ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Where("blocked = ?", false).Order("name ASC").Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", nil)
		return
	}
	utils.Success(c, "Categories retrieved successfully", categories)
}

// CreateCategory creates a new cruise category
func CreateCategory(c *gin.Context) {
	utils.LogInfo("CreateCategory called")

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	category := models.Category{
		Name:        req.Name,
		Slug:        utils.Slugify(req.Name),
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	var existing models.Category
	if err := config.DB.Where("slug = ?", category.Slug).First(&existing).Error; err == nil {
		utils.Conflict(c, "Category already exists", nil)
		return
	}

	if err := config.DB.Create(&category).Error; err != nil {
		utils.LogError("Failed to create category: %v", err)
		utils.InternalServerError(c, "Failed to create category", nil)
		return
	}

	invalidateTourCache()
	utils.Created(c, utils.MsgCreateSuccess, category)
}

// UpdateCategory updates a category
func UpdateCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Category not found")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	category.Name = req.Name
	category.Slug = utils.Slugify(req.Name)
	category.Description = req.Description
	category.ImageURL = req.ImageURL

	if err := config.DB.Save(&category).Error; err != nil {
		utils.LogError("Failed to update category %d: %v", category.ID, err)
		utils.InternalServerError(c, "Failed to update category", nil)
		return
	}

	invalidateTourCache()
	utils.Success(c, utils.MsgUpdateSuccess, category)
}

// ToggleCategoryBlocked hides or shows a category and its tours
func ToggleCategoryBlocked(c *gin.Context) {
	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Category not found")
		return
	}

	category.Blocked = !category.Blocked
	if err := config.DB.Save(&category).Error; err != nil {
		utils.InternalServerError(c, "Failed to update category", nil)
		return
	}

	invalidateTourCache()
	utils.Success(c, utils.MsgUpdateSuccess, gin.H{"id": category.ID, "blocked": category.Blocked})
}

// DeleteCategory removes a category with no tours attached
func DeleteCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Category not found")
		return
	}

	var tourCount int64
	config.DB.Model(&models.Tour{}).Where("category_id = ?", category.ID).Count(&tourCount)
	if tourCount > 0 {
		utils.BadRequest(c, "Cannot delete a category that has tours", nil)
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete category", nil)
		return
	}

	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
