package models

import (
	"time"

	"gorm.io/gorm"
)

// Discount kinds
const (
	DiscountKindPercentage = "percentage"
	DiscountKindFixed      = "fixed"
)

// Discount represents a redeemable discount code. Codes are stored
// upper-cased and matched case-insensitively.
type Discount struct {
	gorm.Model
	Code              string     `gorm:"uniqueIndex;not null" json:"code"`
	Name              string     `json:"name"`
	Kind              string     `json:"kind"` // "percentage" or "fixed"
	Value             float64    `json:"value"`
	MinOrderAmount    *float64   `json:"min_order_amount"`
	MaxUses           *int       `json:"max_uses"`
	UsedCount         int        `json:"used_count" gorm:"default:0"`
	StartsAt          *time.Time `json:"starts_at"`
	ExpiresAt         *time.Time `json:"expires_at"`
	IsActive          bool       `json:"is_active" gorm:"default:true"`
	ApplicableTourIDs []uint     `json:"applicable_tour_ids" gorm:"serializer:json"`
}

// AppliesToTour reports whether the discount may be used on the given tour.
// An empty allow-list means the code is valid for every tour.
func (d *Discount) AppliesToTour(tourID uint) bool {
	if len(d.ApplicableTourIDs) == 0 || tourID == 0 {
		return true
	}
	for _, id := range d.ApplicableTourIDs {
		if id == tourID {
			return true
		}
	}
	return false
}
