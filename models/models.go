package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin represents a back-office administrator
type Admin struct {
	gorm.Model
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	GoogleID  string    `gorm:"default:null" json:"-"`
	LastLogin time.Time `json:"last_login"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
}

// Category represents a cruise category (dinner cruise, private charter, ...)
type Category struct {
	gorm.Model
	Name        string `json:"name"`
	Slug        string `json:"slug" gorm:"uniqueIndex"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Tours       []Tour `json:"tours,omitempty"`
	Blocked     bool   `json:"blocked" gorm:"default:false"`
}

// Location represents a departure marina
type Location struct {
	gorm.Model
	Name        string `json:"name"`
	Slug        string `json:"slug" gorm:"uniqueIndex"`
	Description string `json:"description"`
	Address     string `json:"address"`
	MapURL      string `json:"map_url"`
	Tours       []Tour `json:"tours,omitempty"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
}

// Review represents a customer review on a tour. Reviews stay hidden from
// the public listing until an admin approves them.
type Review struct {
	gorm.Model
	TourID     uint   `json:"tour_id"`
	Tour       Tour   `json:"tour,omitempty" gorm:"foreignKey:TourID"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Rating     int    `json:"rating" gorm:"check:rating >= 1 AND rating <= 5"`
	Comment    string `json:"comment"`
	IsApproved bool   `json:"is_approved" gorm:"default:false"`
}
