package controllers

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/omar-581/DhowLine/config"
	"github.com/omar-581/DhowLine/models"
	"github.com/omar-581/DhowLine/utils"
	"github.com/tealeg/xlsx"
)

// exportPeriodRange resolves the ?period= query into a date range
func exportPeriodRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	switch c.DefaultQuery("period", "month") {
	case "day":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, start.Add(24 * time.Hour), nil
	case "week":
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
		return end.AddDate(0, 0, -6).Truncate(24 * time.Hour), end, nil
	case "month":
		return now.AddDate(0, -1, 0), now.Add(24 * time.Hour), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("period must be day, week, or month")
	}
}

func fetchBookingsForExport(c *gin.Context) ([]models.Booking, error) {
	start, end, err := exportPeriodRange(c)
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	query := config.DB.Where("created_at >= ? AND created_at <= ?", start, end).
		Preload("Tour").Preload("Discount").
		Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

var bookingExportHeader = []string{
	"Reference", "Created", "Customer", "Email", "Phone", "Tour",
	"Cruise Date", "Adults", "Children", "Infants",
	"Subtotal (AED)", "Discount Code", "Discount (AED)", "Total (AED)", "Status",
}

func bookingExportRow(b models.Booking) []string {
	discountCode := ""
	if b.Discount != nil {
		discountCode = b.Discount.Code
	}
	return []string{
		b.Reference,
		b.CreatedAt.Format("2006-01-02 15:04"),
		b.CustomerName,
		b.CustomerEmail,
		b.CustomerPhone,
		b.Tour.Name,
		b.CruiseDate.Format("2006-01-02"),
		strconv.Itoa(b.Adults),
		strconv.Itoa(b.Children),
		strconv.Itoa(b.Infants),
		utils.FormatAmount(b.Subtotal),
		discountCode,
		utils.FormatAmount(b.DiscountAmount),
		utils.FormatAmount(b.TotalPrice),
		b.Status,
	}
}

// DownloadBookingsCSV streams the bookings report as CSV
func DownloadBookingsCSV(c *gin.Context) {
	utils.LogInfo("DownloadBookingsCSV called")

	bookings, err := fetchBookingsForExport(c)
	if err != nil {
		utils.LogError("Failed to build CSV export: %v", err)
		utils.BadRequest(c, "Failed to export bookings", err.Error())
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=bookings-%s.csv", time.Now().Format("2006-01-02")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	if err := writer.Write(bookingExportHeader); err != nil {
		utils.LogError("Failed to write CSV header: %v", err)
		return
	}
	for _, booking := range bookings {
		if err := writer.Write(bookingExportRow(booking)); err != nil {
			utils.LogError("Failed to write CSV row for %s: %v", booking.Reference, err)
			return
		}
	}
}

// DownloadBookingsExcel streams the bookings report as an Excel workbook
func DownloadBookingsExcel(c *gin.Context) {
	utils.LogInfo("DownloadBookingsExcel called")

	bookings, err := fetchBookingsForExport(c)
	if err != nil {
		utils.LogError("Failed to build Excel export: %v", err)
		utils.BadRequest(c, "Failed to export bookings", err.Error())
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Bookings")
	if err != nil {
		utils.InternalServerError(c, "Failed to build report", nil)
		return
	}

	headerRow := sheet.AddRow()
	for _, title := range bookingExportHeader {
		cell := headerRow.AddCell()
		cell.Value = title
	}

	var totalRevenue float64
	for _, booking := range bookings {
		row := sheet.AddRow()
		for _, value := range bookingExportRow(booking) {
			row.AddCell().Value = value
		}
		if booking.Status != models.BookingStatusCancelled {
			totalRevenue += booking.TotalPrice
		}
	}

	summaryRow := sheet.AddRow()
	summaryRow.AddCell().Value = "Total revenue (excl. cancelled)"
	summaryRow.AddCell().Value = utils.FormatAED(totalRevenue)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=bookings-%s.xlsx", time.Now().Format("2006-01-02")))

	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel export: %v", err)
	}
}

// DownloadBookingVoucher renders a printable PDF voucher for a booking
func DownloadBookingVoucher(c *gin.Context) {
	utils.LogInfo("DownloadBookingVoucher called")

	var booking models.Booking
	if err := config.DB.Preload("Tour").Preload("Tour.Location").First(&booking, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Booking not found")
		return
	}

	settings := utils.GetSiteSettings(config.DB)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, settings.SiteName)
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 9, "Cruise Booking Voucher")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	lines := [][2]string{
		{"Booking reference", booking.Reference},
		{"Guest", booking.CustomerName},
		{"Tour", booking.Tour.Name},
		{"Departure", booking.Tour.Location.Name},
		{"Cruise date", utils.FormatLongDate(booking.CruiseDate)},
		{"Guests", fmt.Sprintf("%d adults, %d children, %d infants", booking.Adults, booking.Children, booking.Infants)},
		{"Total", utils.FormatAED(booking.TotalPrice)},
		{"Status", utils.Title(booking.Status)},
	}
	for _, line := range lines {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(55, 8, line[0])
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 8, line[1])
		pdf.Ln(8)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Questions? %s | %s", settings.ContactEmail, settings.ContactPhone))

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=voucher-%s.pdf", booking.Reference))

	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write voucher PDF for %s: %v", booking.Reference, err)
	}
}
