package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omar-581/DhowLine/config"
	"github.com/omar-581/DhowLine/models"
	"github.com/omar-581/DhowLine/utils"
	"gorm.io/gorm"
)

// DashboardStats represents the response structure for dashboard statistics
type DashboardStats struct {
	TotalRevenue    string `json:"total_revenue"`
	TotalBookings   int64  `json:"total_bookings"`
	PendingBookings int64  `json:"pending_bookings"`
	TotalTours      int64  `json:"total_tours"`
	PendingReviews  int64  `json:"pending_reviews"`
}

// BookingChartData represents the response structure for booking chart data
type BookingChartData struct {
	Labels   []string `json:"labels"`
	Bookings []int64  `json:"bookings"`
	Revenue  []string `json:"revenue"`
}

// TopTourItem represents a top booked tour
type TopTourItem struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	TotalRevenue  string `json:"total_revenue"`
	TotalBookings int64  `json:"total_bookings"`
	TotalGuests   int64  `json:"total_guests"`
}

// DiscountUsageItem reports how heavily a code has been redeemed
type DiscountUsageItem struct {
	ID            uint   `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	UsedCount     int    `json:"used_count"`
	MaxUses       *int   `json:"max_uses"`
	TotalDiscount string `json:"total_discount"`
}

// GetDashboardStats returns overall dashboard statistics
func GetDashboardStats(c *gin.Context) {
	var stats DashboardStats
	var totalRevenue float64

	config.DB.Model(&models.Booking{}).
		Where("status != ?", models.BookingStatusCancelled).
		Select("COALESCE(SUM(total_price), 0)").
		Row().Scan(&totalRevenue)
	stats.TotalRevenue = utils.FormatAmount(totalRevenue)

	config.DB.Model(&models.Booking{}).
		Where("status != ?", models.BookingStatusCancelled).
		Count(&stats.TotalBookings)

	config.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusPending).
		Count(&stats.PendingBookings)

	config.DB.Model(&models.Tour{}).Where("is_active = ?", true).Count(&stats.TotalTours)

	config.DB.Model(&models.Review{}).Where("is_approved = ?", false).Count(&stats.PendingReviews)

	utils.Success(c, "Dashboard statistics retrieved successfully", stats)
}

// GetBookingsChart returns booking and revenue data for charts with
// time-based filtering
func GetBookingsChart(c *gin.Context) {
	period := c.Query("period")
	if period == "" {
		period = "monthly"
	}

	var chartData BookingChartData
	var query *gorm.DB

	now := time.Now()
	var startTime time.Time
	var timeFormat string

	switch period {
	case "yearly":
		startTime = now.AddDate(-5, 0, 0)
		timeFormat = "2006"
		query = config.DB.Model(&models.Booking{}).
			Select("DATE_TRUNC('year', created_at) as period, COUNT(*) as bookings, SUM(total_price) as revenue").
			Where("created_at >= ? AND status != ?", startTime, models.BookingStatusCancelled).
			Group("period").
			Order("period ASC")
	case "monthly":
		startTime = now.AddDate(0, -12, 0)
		timeFormat = "2006-01"
		query = config.DB.Model(&models.Booking{}).
			Select("DATE_TRUNC('month', created_at) as period, COUNT(*) as bookings, SUM(total_price) as revenue").
			Where("created_at >= ? AND status != ?", startTime, models.BookingStatusCancelled).
			Group("period").
			Order("period ASC")
	case "weekly":
		startTime = now.AddDate(0, 0, -60)
		timeFormat = "2006-01-02"
		query = config.DB.Model(&models.Booking{}).
			Select("DATE_TRUNC('week', created_at) as period, COUNT(*) as bookings, SUM(total_price) as revenue").
			Where("created_at >= ? AND status != ?", startTime, models.BookingStatusCancelled).
			Group("period").
			Order("period ASC")
	case "daily":
		startTime = now.AddDate(0, 0, -30)
		timeFormat = "2006-01-02"
		query = config.DB.Model(&models.Booking{}).
			Select("DATE_TRUNC('day', created_at) as period, COUNT(*) as bookings, SUM(total_price) as revenue").
			Where("created_at >= ? AND status != ?", startTime, models.BookingStatusCancelled).
			Group("period").
			Order("period ASC")
	default:
		utils.BadRequest(c, "Invalid period. Must be one of: yearly, monthly, weekly, daily", nil)
		return
	}

	type Result struct {
		Period   time.Time
		Bookings int64
		Revenue  float64
	}
	var results []Result
	query.Find(&results)

	for _, r := range results {
		chartData.Labels = append(chartData.Labels, r.Period.Format(timeFormat))
		chartData.Bookings = append(chartData.Bookings, r.Bookings)
		chartData.Revenue = append(chartData.Revenue, utils.FormatAmount(r.Revenue))
	}

	utils.Success(c, "Booking chart data retrieved successfully", chartData)
}

// GetTopTours returns the 10 most booked tours by revenue
func GetTopTours(c *gin.Context) {
	type RawTour struct {
		ID            uint
		Name          string
		TotalRevenue  float64
		TotalBookings int64
		TotalGuests   int64
	}
	var rawTours []RawTour

	config.DB.Model(&models.Booking{}).
		Select("tours.id, tours.name, SUM(bookings.total_price) as total_revenue, COUNT(bookings.id) as total_bookings, SUM(bookings.adults + bookings.children + bookings.infants) as total_guests").
		Joins("JOIN tours ON tours.id = bookings.tour_id").
		Where("bookings.status != ?", models.BookingStatusCancelled).
		Group("tours.id, tours.name").
		Order("total_revenue DESC").
		Limit(10).
		Find(&rawTours)

	tours := make([]TopTourItem, len(rawTours))
	for i, t := range rawTours {
		tours[i] = TopTourItem{
			ID:            t.ID,
			Name:          t.Name,
			TotalRevenue:  utils.FormatAmount(t.TotalRevenue),
			TotalBookings: t.TotalBookings,
			TotalGuests:   t.TotalGuests,
		}
	}

	utils.Success(c, "Top tours retrieved successfully", tours)
}

// GetDiscountUsage returns redemption stats per discount code
func GetDiscountUsage(c *gin.Context) {
	type RawUsage struct {
		ID            uint
		Code          string
		Name          string
		UsedCount     int
		MaxUses       *int
		TotalDiscount float64
	}
	var rawUsage []RawUsage

	config.DB.Model(&models.Discount{}).
		Select("discounts.id, discounts.code, discounts.name, discounts.used_count, discounts.max_uses, COALESCE(SUM(bookings.discount_amount), 0) as total_discount").
		Joins("LEFT JOIN bookings ON bookings.discount_id = discounts.id AND bookings.status != ?", models.BookingStatusCancelled).
		Group("discounts.id, discounts.code, discounts.name, discounts.used_count, discounts.max_uses").
		Order("discounts.used_count DESC").
		Limit(20).
		Find(&rawUsage)

	usage := make([]DiscountUsageItem, len(rawUsage))
	for i, u := range rawUsage {
		usage[i] = DiscountUsageItem{
			ID:            u.ID,
			Code:          u.Code,
			Name:          u.Name,
			UsedCount:     u.UsedCount,
			MaxUses:       u.MaxUses,
			TotalDiscount: utils.FormatAmount(u.TotalDiscount),
		}
	}

	utils.Success(c, "Discount usage retrieved successfully", usage)
}
