package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/omar-581/DhowLine/config"
	"github.com/omar-581/DhowLine/models"
	"gorm.io/gorm"
)

// Discount rejection reasons, surfaced verbatim to the checkout UI
const (
	ReasonInvalidCode       = "invalid code"
	ReasonExpired           = "expired"
	ReasonNotYetActive      = "not yet active"
	ReasonUsageLimitReached = "usage limit reached"
	ReasonTourMismatch      = "not valid for this tour"
)

// DiscountRejection is returned when a code fails validation. It is a
// user-correctable error, distinct from lookup or storage failures.
type DiscountRejection struct {
	Reason string
}

// Error implements the error interface
func (e *DiscountRejection) Error() string {
	return e.Reason
}

// IsDiscountRejection reports whether err is a validation rejection and
// returns it if so.
func IsDiscountRejection(err error) (*DiscountRejection, bool) {
	rej, ok := err.(*DiscountRejection)
	return rej, ok
}

// FindDiscountByCode looks up an active discount by code. Matching is
// case-insensitive: codes are stored upper-cased and the candidate is
// upper-cased before the query.
func FindDiscountByCode(db *gorm.DB, code string) (*models.Discount, error) {
	var discount models.Discount
	normalized := strings.ToUpper(strings.TrimSpace(code))
	err := db.Where("code = ? AND is_active = ?", normalized, true).First(&discount).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &DiscountRejection{Reason: ReasonInvalidCode}
		}
		return nil, err
	}
	return &discount, nil
}

// ValidateDiscount checks a discount against the order context and returns
// a DiscountRejection describing the first failing rule, or nil when the
// code is usable. It never mutates the discount; redeeming is a separate
// step so repeated validation calls stay idempotent.
func ValidateDiscount(d *models.Discount, orderAmount float64, tourID uint, now time.Time) error {
	if d.ExpiresAt != nil && d.ExpiresAt.Before(now) {
		return &DiscountRejection{Reason: ReasonExpired}
	}
	if d.StartsAt != nil && d.StartsAt.After(now) {
		return &DiscountRejection{Reason: ReasonNotYetActive}
	}
	if d.MaxUses != nil && d.UsedCount >= *d.MaxUses {
		return &DiscountRejection{Reason: ReasonUsageLimitReached}
	}
	if d.MinOrderAmount != nil && orderAmount < *d.MinOrderAmount {
		return &DiscountRejection{
			Reason: fmt.Sprintf("minimum order amount of AED %s not met", FormatAmount(*d.MinOrderAmount)),
		}
	}
	if !d.AppliesToTour(tourID) {
		return &DiscountRejection{Reason: ReasonTourMismatch}
	}
	return nil
}

// ApplyDiscountCode looks up and validates a code in one call. Used by the
// checkout preview and the booking transaction.
func ApplyDiscountCode(db *gorm.DB, code string, orderAmount float64, tourID uint) (*models.Discount, error) {
	discount, err := FindDiscountByCode(db, code)
	if err != nil {
		return nil, err
	}
	if err := ValidateDiscount(discount, orderAmount, tourID, time.Now()); err != nil {
		return nil, err
	}
	return discount, nil
}

// CalculateDiscount computes the discount amount for an order total. The
// result is never negative and never exceeds the order amount.
func CalculateDiscount(d *models.Discount, amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	var discounted float64
	switch d.Kind {
	case models.DiscountKindPercentage:
		discounted = amount * d.Value / 100
	case models.DiscountKindFixed:
		discounted = d.Value
	default:
		return 0
	}
	if discounted < 0 {
		return 0
	}
	if discounted > amount {
		return amount
	}
	return discounted
}

// RedeemDiscount increments the discount's used count inside the caller's
// transaction. The increment is conditional on the usage limit so two
// concurrent bookings cannot both take the last remaining use; the loser
// gets a usage-limit rejection.
func RedeemDiscount(tx *gorm.DB, discountID uint) error {
	result := tx.Model(&models.Discount{}).
		Where("id = ? AND (max_uses IS NULL OR used_count < max_uses)", discountID).
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &DiscountRejection{Reason: ReasonUsageLimitReached}
	}
	return nil
}

// ValidateDiscountValue enforces kind-specific value limits at create and
// update time.
func ValidateDiscountValue(kind string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("discount value must be greater than 0")
	}
	switch kind {
	case models.DiscountKindPercentage:
		if value > 100 {
			return fmt.Errorf("percentage discount cannot exceed 100")
		}
	case models.DiscountKindFixed:
		// any positive amount
	default:
		return fmt.Errorf("discount kind must be percentage or fixed")
	}
	return nil
}

// DeactivateExpiredDiscounts soft-disables discounts whose expiry has
// passed. Run nightly by the cron job.
func DeactivateExpiredDiscounts(now time.Time) (int64, error) {
	result := config.DB.Model(&models.Discount{}).
		Where("is_active = ? AND expires_at IS NOT NULL AND expires_at < ?", true, now).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
