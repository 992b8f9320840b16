package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/omar-581/DhowLine/utils"
)

// UploadImage stores an admin-uploaded image and returns its delivery URLs.
// The webp_url variant is what tour galleries should reference.
func UploadImage(c *gin.Context) {
	utils.LogInfo("UploadImage called")

	file, err := c.FormFile("image")
	if err != nil {
		utils.BadRequest(c, "No image file provided", nil)
		return
	}

	folder := c.DefaultPostForm("folder", "tours")

	image, err := utils.UploadImage(c.Request.Context(), file, folder)
	if err != nil {
		utils.LogError("Image upload failed: %v", err)
		utils.BadRequest(c, "Failed to upload image", err.Error())
		return
	}

	utils.Created(c, "Image uploaded successfully", image)
}
