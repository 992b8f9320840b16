package utils

import (
	"testing"
	"time"

	"github.com/omar-581/DhowLine/models"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "0"},
		{950, "950"},
		{1500, "1,500"},
		{1500.5, "1,500.50"},
		{24999.99, "24,999.99"},
		{1000000, "1,000,000"},
		{-1500, "-1,500"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatAmount(tc.amount))
	}
}

func TestFormatAED(t *testing.T) {
	assert.Equal(t, "AED 1,500", FormatAED(1500))
	assert.Equal(t, "AED 249.50", FormatAED(249.5))
}

func TestFormatLongDate(t *testing.T) {
	d := time.Date(2026, 6, 12, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "Friday, June 12, 2026", FormatLongDate(d))
}

func TestEmailKindForStatus(t *testing.T) {
	assert.Equal(t, EmailKindConfirmation, EmailKindForStatus(models.BookingStatusConfirmed))
	assert.Equal(t, EmailKindPending, EmailKindForStatus(models.BookingStatusPending))
	assert.Equal(t, EmailKindCancelled, EmailKindForStatus(models.BookingStatusCancelled))
	assert.Equal(t, "", EmailKindForStatus("refunded"))
}

func TestBookingEmailVars(t *testing.T) {
	booking := models.Booking{
		Reference:     "DL-7F3A2C9D",
		CustomerName:  "Aisha Rahman",
		CustomerEmail: "aisha@example.com",
		CustomerPhone: "+971 50 123 4567",
		CruiseDate:    time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
		Adults:        2,
		Children:      1,
		Infants:       0,
		TotalPrice:    1500,
	}
	booking.Tour.Name = "Marina Sunset Dinner Cruise"

	settings := SiteSettings{
		SiteName:     "DhowLine Cruises",
		ContactEmail: "info@dhowline.ae",
		ContactPhone: "+971 4 555 0123",
	}

	vars := BookingEmailVars(&booking, settings)

	assert.Equal(t, "Aisha Rahman", vars["customer_name"])
	assert.Equal(t, "Marina Sunset Dinner Cruise", vars["tour_name"])
	assert.Equal(t, "Friday, June 12, 2026", vars["booking_date"])
	assert.Equal(t, "2", vars["adults"])
	assert.Equal(t, "1", vars["children"])
	assert.Equal(t, "0", vars["infants"])
	assert.Equal(t, "AED 1,500", vars["total_price"])
	assert.Equal(t, "DL-7F3A2C9D", vars["booking_id"])
	assert.Equal(t, "DhowLine Cruises", vars["site_name"])
	assert.Equal(t, "info@dhowline.ae", vars["contact_email"])
	assert.Equal(t, "+971 4 555 0123", vars["contact_phone"])

	t.Run("empty special requests become None", func(t *testing.T) {
		assert.Equal(t, "None", vars["special_requests"])
	})

	t.Run("special requests pass through when present", func(t *testing.T) {
		booking.SpecialRequests = "Window table please"
		got := BookingEmailVars(&booking, settings)
		assert.Equal(t, "Window table please", got["special_requests"])
	})

	t.Run("every declared template variable is populated", func(t *testing.T) {
		for _, name := range models.BookingTemplateVariables {
			_, ok := vars[name]
			assert.True(t, ok, "missing variable %s", name)
		}
	})
}
