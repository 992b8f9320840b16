package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/omar-581/DhowLine/config"
	"github.com/omar-581/DhowLine/models"
	"github.com/omar-581/DhowLine/utils"
)

// LocationRequest represents the admin payload for a departure marina
type LocationRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	MapURL      string `json:"map_url"`
}

// ListLocations returns active departure locations for the public site
func ListLocations(c *gin.Context) {
	var locations []models.Location
	if err := config.DB.Where("is_active = ?", true).Order("name ASC").Find(&locations).Error; err != nil {
		utils.LogError("Failed to fetch locations: %v", err)
		utils.InternalServerError(c, "Failed to fetch locations", nil)
		return
	}
	utils.Success(c, "Locations retrieved successfully", locations)
}

// CreateLocation creates a departure marina
func CreateLocation(c *gin.Context) {
	utils.LogInfo("CreateLocation called")

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	location := models.Location{
		Name:        req.Name,
		Slug:        utils.Slugify(req.Name),
		Description: req.Description,
		Address:     req.Address,
		MapURL:      req.MapURL,
		IsActive:    true,
	}

	var existing models.Location
	if err := config.DB.Where("slug = ?", location.Slug).First(&existing).Error; err == nil {
		utils.Conflict(c, "Location already exists", nil)
		return
	}

	if err := config.DB.Create(&location).Error; err != nil {
		utils.LogError("Failed to create location: %v", err)
		utils.InternalServerError(c, "Failed to create location", nil)
		return
	}

	invalidateTourCache()
	utils.Created(c, utils.MsgCreateSuccess, location)
}

// UpdateLocation updates a departure marina
func UpdateLocation(c *gin.Context) {
	var location models.Location
	if err := config.DB.First(&location, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Location not found")
		return
	}

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	location.Name = req.Name
	location.Slug = utils.Slugify(req.Name)
	location.Description = req.Description
	location.Address = req.Address
	location.MapURL = req.MapURL

	if err := config.DB.Save(&location).Error; err != nil {
		utils.LogError("Failed to update location %d: %v", location.ID, err)
		utils.InternalServerError(c, "Failed to update location", nil)
		return
	}

	invalidateTourCache()
	utils.Success(c, utils.MsgUpdateSuccess, location)
}

// DeleteLocation removes a location with no tours attached
func DeleteLocation(c *gin.Context) {
	var location models.Location
	if err := config.DB.First(&location, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Location not found")
		return
	}

	var tourCount int64
	config.DB.Model(&models.Tour{}).Where("location_id = ?", location.ID).Count(&tourCount)
	if tourCount > 0 {
		utils.BadRequest(c, "Cannot delete a location that has tours", nil)
		return
	}

	if err := config.DB.Delete(&location).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete location", nil)
		return
	}

	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
