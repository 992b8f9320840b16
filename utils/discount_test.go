package utils

import (
	"testing"
	"time"

	"github.com/omar-581/DhowLine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func timePtr(t time.Time) *time.Time {
	return &t
}

func TestValidateDiscount(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("valid code passes", func(t *testing.T) {
		d := &models.Discount{Code: "SUMMER10", Kind: models.DiscountKindPercentage, Value: 10, IsActive: true}
		assert.NoError(t, ValidateDiscount(d, 500, 1, now))
	})

	t.Run("expired one second ago", func(t *testing.T) {
		d := &models.Discount{
			Code:      "OLD",
			Kind:      models.DiscountKindPercentage,
			Value:     10,
			ExpiresAt: timePtr(now.Add(-time.Second)),
		}
		err := ValidateDiscount(d, 500, 0, now)
		require.Error(t, err)
		rej, ok := IsDiscountRejection(err)
		require.True(t, ok)
		assert.Equal(t, "expired", rej.Reason)
	})

	t.Run("not yet active", func(t *testing.T) {
		d := &models.Discount{
			Code:     "SOON",
			Kind:     models.DiscountKindFixed,
			Value:    50,
			StartsAt: timePtr(now.Add(time.Hour)),
		}
		err := ValidateDiscount(d, 500, 0, now)
		require.Error(t, err)
		assert.Equal(t, "not yet active", err.Error())
	})

	t.Run("usage limit reached at max uses", func(t *testing.T) {
		d := &models.Discount{
			Code:      "LIMITED",
			Kind:      models.DiscountKindPercentage,
			Value:     10,
			MaxUses:   intPtr(5),
			UsedCount: 5,
		}
		err := ValidateDiscount(d, 500, 0, now)
		require.Error(t, err)
		assert.Equal(t, "usage limit reached", err.Error())
	})

	t.Run("one use remaining still passes", func(t *testing.T) {
		d := &models.Discount{
			Code:      "LIMITED",
			Kind:      models.DiscountKindPercentage,
			Value:     10,
			MaxUses:   intPtr(5),
			UsedCount: 4,
		}
		assert.NoError(t, ValidateDiscount(d, 500, 0, now))
	})

	t.Run("minimum order amount includes the threshold", func(t *testing.T) {
		d := &models.Discount{
			Code:           "BIGSPEND",
			Kind:           models.DiscountKindFixed,
			Value:          100,
			MinOrderAmount: floatPtr(1000),
		}
		err := ValidateDiscount(d, 999.99, 0, now)
		require.Error(t, err)
		assert.Equal(t, "minimum order amount of AED 1,000 not met", err.Error())

		assert.NoError(t, ValidateDiscount(d, 1000, 0, now))
	})

	t.Run("tour restriction", func(t *testing.T) {
		d := &models.Discount{
			Code:              "SUNSET",
			Kind:              models.DiscountKindPercentage,
			Value:             15,
			ApplicableTourIDs: []uint{3, 7},
		}
		err := ValidateDiscount(d, 500, 5, now)
		require.Error(t, err)
		assert.Equal(t, "not valid for this tour", err.Error())

		assert.NoError(t, ValidateDiscount(d, 500, 7, now))
	})

	t.Run("unrestricted code applies to any tour", func(t *testing.T) {
		d := &models.Discount{Code: "ANY", Kind: models.DiscountKindPercentage, Value: 5}
		assert.NoError(t, ValidateDiscount(d, 500, 42, now))
		assert.NoError(t, ValidateDiscount(d, 500, 0, now))
	})

	t.Run("expiry is checked before usage limit", func(t *testing.T) {
		d := &models.Discount{
			Code:      "BOTH",
			Kind:      models.DiscountKindPercentage,
			Value:     10,
			ExpiresAt: timePtr(now.Add(-time.Hour)),
			MaxUses:   intPtr(1),
			UsedCount: 1,
		}
		err := ValidateDiscount(d, 500, 0, now)
		require.Error(t, err)
		assert.Equal(t, "expired", err.Error())
	})
}

func TestCalculateDiscount(t *testing.T) {
	t.Run("percentage of the order amount", func(t *testing.T) {
		d := &models.Discount{Kind: models.DiscountKindPercentage, Value: 10}
		assert.Equal(t, 50.0, CalculateDiscount(d, 500))
	})

	t.Run("fixed amount", func(t *testing.T) {
		d := &models.Discount{Kind: models.DiscountKindFixed, Value: 75}
		assert.Equal(t, 75.0, CalculateDiscount(d, 500))
	})

	t.Run("fixed amount never exceeds the order", func(t *testing.T) {
		d := &models.Discount{Kind: models.DiscountKindFixed, Value: 200}
		assert.Equal(t, 150.0, CalculateDiscount(d, 150))
	})

	t.Run("full percentage discounts the whole order", func(t *testing.T) {
		d := &models.Discount{Kind: models.DiscountKindPercentage, Value: 100}
		assert.Equal(t, 500.0, CalculateDiscount(d, 500))
	})

	t.Run("zero or negative order amount", func(t *testing.T) {
		d := &models.Discount{Kind: models.DiscountKindPercentage, Value: 10}
		assert.Equal(t, 0.0, CalculateDiscount(d, 0))
		assert.Equal(t, 0.0, CalculateDiscount(d, -100))
	})

	t.Run("unknown kind yields zero", func(t *testing.T) {
		d := &models.Discount{Kind: "bogus", Value: 10}
		assert.Equal(t, 0.0, CalculateDiscount(d, 500))
	})

	t.Run("percentage is monotonic in order amount", func(t *testing.T) {
		d := &models.Discount{Kind: models.DiscountKindPercentage, Value: 20}
		prev := 0.0
		for _, amount := range []float64{100, 250, 500, 999.5, 2400} {
			got := CalculateDiscount(d, amount)
			assert.GreaterOrEqual(t, got, prev)
			assert.LessOrEqual(t, got, amount)
			prev = got
		}
	})
}

func TestValidateDiscountValue(t *testing.T) {
	assert.NoError(t, ValidateDiscountValue(models.DiscountKindPercentage, 10))
	assert.NoError(t, ValidateDiscountValue(models.DiscountKindPercentage, 100))
	assert.Error(t, ValidateDiscountValue(models.DiscountKindPercentage, 101))
	assert.NoError(t, ValidateDiscountValue(models.DiscountKindFixed, 2500))
	assert.Error(t, ValidateDiscountValue(models.DiscountKindFixed, 0))
	assert.Error(t, ValidateDiscountValue("bogus", 10))
}

func TestAppliesToTour(t *testing.T) {
	restricted := models.Discount{ApplicableTourIDs: []uint{1, 2}}
	assert.True(t, restricted.AppliesToTour(1))
	assert.False(t, restricted.AppliesToTour(3))
	assert.True(t, restricted.AppliesToTour(0))

	open := models.Discount{}
	assert.True(t, open.AppliesToTour(99))
}
