package models

import (
	"gorm.io/gorm"
)

// Tour represents a bookable cruise
type Tour struct {
	gorm.Model
	Name            string   `json:"name"`
	Slug            string   `json:"slug" gorm:"uniqueIndex"`
	Description     string   `json:"description"`
	Highlights      []string `json:"highlights" gorm:"serializer:json"`
	CategoryID      uint     `json:"category_id"`
	Category        Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	LocationID      uint     `json:"location_id"`
	Location        Location `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	AdultPrice      float64  `json:"adult_price"`
	ChildPrice      float64  `json:"child_price"`
	InfantPrice     float64  `json:"infant_price" gorm:"default:0"`
	DurationMinutes int      `json:"duration_minutes"`
	Capacity        int      `json:"capacity"`
	ImageURL        string   `json:"image_url"`
	GalleryURLs     []string `json:"gallery_urls" gorm:"serializer:json"`
	IsActive        bool     `json:"is_active" gorm:"default:true"`
	IsFeatured      bool     `json:"is_featured" gorm:"default:false"`
	Views           int      `json:"views" gorm:"default:0"`
	Reviews         []Review `json:"reviews,omitempty"`
	AverageRating   float64  `json:"average_rating" gorm:"default:0"`
	TotalReviews    int      `json:"total_reviews" gorm:"default:0"`
}
