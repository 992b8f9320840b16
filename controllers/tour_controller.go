package controllers

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omar-581/DhowLine/config"
	"github.com/omar-581/DhowLine/models"
	"github.com/omar-581/DhowLine/utils"
)

const tourCacheTTL = 5 * time.Minute

// TourListItem is the public listing projection of a tour
type TourListItem struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Description     string   `json:"description"`
	CategoryName    string   `json:"category_name"`
	LocationName    string   `json:"location_name"`
	AdultPrice      float64  `json:"adult_price"`
	ChildPrice      float64  `json:"child_price"`
	DurationMinutes int      `json:"duration_minutes"`
	ImageURL        string   `json:"image_url"`
	WebPImageURL    string   `json:"webp_image_url"`
	IsFeatured      bool     `json:"is_featured"`
	AverageRating   float64  `json:"average_rating"`
	TotalReviews    int      `json:"total_reviews"`
	Highlights      []string `json:"highlights"`
}

type cachedTourPage struct {
	Items []TourListItem `json:"items"`
	Total int64          `json:"total"`
}

// ListTours returns the public tour listing with filters and pagination.
// Pages are served from the Redis cache when available; admin writes
// invalidate the cache.
func ListTours(c *gin.Context) {
	pagination := utils.NewPagination(c)

	cacheKey := "tours:" + c.Request.URL.RawQuery
	if cached, ok := cacheGet(cacheKey); ok {
		var page cachedTourPage
		if err := json.Unmarshal([]byte(cached), &page); err == nil {
			utils.LogDebug("Tour listing served from cache: %s", cacheKey)
			pagination.SetTotal(page.Total)
			utils.SendPaginatedResponse(c, "Tours retrieved successfully", page.Items, pagination)
			return
		}
	}

	tx := config.DB.Model(&models.Tour{}).
		Joins("Category").Joins("Location").
		Where("tours.is_active = ?", true).
		Where("\"Category\".blocked = ?", false)

	if categorySlug := c.Query("category"); categorySlug != "" {
		tx = tx.Where("\"Category\".slug = ?", categorySlug)
	}
	if locationSlug := c.Query("location"); locationSlug != "" {
		tx = tx.Where("\"Location\".slug = ?", locationSlug)
	}
	if c.Query("featured") == "true" {
		tx = tx.Where("tours.is_featured = ?", true)
	}
	if minPrice := c.Query("min_price"); minPrice != "" {
		if parsed, err := strconv.ParseFloat(minPrice, 64); err == nil {
			tx = tx.Where("tours.adult_price >= ?", parsed)
		}
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		if parsed, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			tx = tx.Where("tours.adult_price <= ?", parsed)
		}
	}
	if search := c.Query("search"); search != "" {
		tx = tx.Where("tours.name ILIKE ?", "%"+utils.SanitizeString(search)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		utils.LogError("Failed to count tours: %v", err)
		utils.InternalServerError(c, "Failed to fetch tours", nil)
		return
	}
	pagination.SetTotal(total)

	var tours []models.Tour
	if err := tx.Order("tours.is_featured DESC, tours.created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&tours).Error; err != nil {
		utils.LogError("Failed to fetch tours: %v", err)
		utils.InternalServerError(c, "Failed to fetch tours", nil)
		return
	}

	items := make([]TourListItem, 0, len(tours))
	for _, tour := range tours {
		items = append(items, TourListItem{
			ID:              tour.ID,
			Name:            tour.Name,
			Slug:            tour.Slug,
			Description:     tour.Description,
			CategoryName:    tour.Category.Name,
			LocationName:    tour.Location.Name,
			AdultPrice:      tour.AdultPrice,
			ChildPrice:      tour.ChildPrice,
			DurationMinutes: tour.DurationMinutes,
			ImageURL:        tour.ImageURL,
			WebPImageURL:    utils.WebPDeliveryURL(tour.ImageURL),
			IsFeatured:      tour.IsFeatured,
			AverageRating:   tour.AverageRating,
			TotalReviews:    tour.TotalReviews,
			Highlights:      tour.Highlights,
		})
	}

	if payload, err := json.Marshal(cachedTourPage{Items: items, Total: total}); err == nil {
		cacheSet(cacheKey, string(payload), tourCacheTTL)
	}

	utils.SendPaginatedResponse(c, "Tours retrieved successfully", items, pagination)
}

// GetTourBySlug returns a single tour's public detail
func GetTourBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var tour models.Tour
	if err := config.DB.Preload("Category").Preload("Location").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&tour).Error; err != nil {
		utils.LogError("Tour not found for slug: %s", slug)
		utils.NotFound(c, "Tour not found")
		return
	}

	config.DB.Model(&tour).UpdateColumn("views", tour.Views+1)

	utils.Success(c, "Tour retrieved successfully", gin.H{
		"tour":           tour,
		"webp_image_url": utils.WebPDeliveryURL(tour.ImageURL),
	})
}

// cacheGet fetches a cached payload; returns false when Redis is not
// configured or the key is missing.
func cacheGet(key string) (string, bool) {
	if config.Redis == nil {
		return "", false
	}
	value, err := config.Redis.Get(config.Ctx, key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

func cacheSet(key, value string, ttl time.Duration) {
	if config.Redis == nil {
		return
	}
	if err := config.Redis.Set(config.Ctx, key, value, ttl).Err(); err != nil {
		utils.LogDebug("Cache set failed for %s: %v", key, err)
	}
}

// invalidateTourCache drops cached tour listings after admin writes
func invalidateTourCache() {
	if config.Redis == nil {
		return
	}
	keys, err := config.Redis.Keys(config.Ctx, "tours:*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	config.Redis.Del(config.Ctx, keys...)
}
