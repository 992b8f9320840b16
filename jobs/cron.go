package jobs

import (
	"time"

	"github.com/omar-581/DhowLine/config"
	"github.com/omar-581/DhowLine/models"
	"github.com/omar-581/DhowLine/utils"
	"github.com/robfig/cron/v3"
)

// InitCronJobs registers the scheduled jobs and starts the scheduler
func InitCronJobs(c *cron.Cron) error {
	// Nightly sweep: deactivate discount codes past their expiry
	if _, err := c.AddFunc("15 0 * * *", func() {
		count, err := utils.DeactivateExpiredDiscounts(time.Now())
		if err != nil {
			utils.LogError("Expired discount sweep failed: %v", err)
			return
		}
		if count > 0 {
			utils.LogInfo("Deactivated %d expired discounts", count)
		}
	}); err != nil {
		return err
	}

	// Morning reminders for tomorrow's confirmed cruises
	if _, err := c.AddFunc("0 9 * * *", SendCruiseReminders); err != nil {
		return err
	}

	c.Start()
	utils.LogInfo("Cron jobs initialized successfully")
	return nil
}

// SendCruiseReminders emails every confirmed booking whose cruise departs
// tomorrow. If the reminder template is missing or inactive the run is
// skipped quietly; reminders are a nicety, not part of the booking flow.
func SendCruiseReminders() {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	end := start.AddDate(0, 0, 1)

	var bookings []models.Booking
	if err := config.DB.Where("status = ? AND cruise_date >= ? AND cruise_date < ?",
		models.BookingStatusConfirmed, start, end).Find(&bookings).Error; err != nil {
		utils.LogError("Reminder sweep query failed: %v", err)
		return
	}

	sent := 0
	for _, booking := range bookings {
		_, err := utils.SendBookingEmail(config.DB, booking.ID, utils.EmailKindReminder)
		if err != nil {
			if utils.IsNotFoundError(err) {
				utils.LogInfo("Reminder template not available, skipping sweep")
				return
			}
			utils.LogError("Reminder failed for booking %s: %v", booking.Reference, err)
			continue
		}
		sent++
	}

	if sent > 0 {
		utils.LogInfo("Sent %d cruise reminders for %s", sent, start.Format("2006-01-02"))
	}
}
