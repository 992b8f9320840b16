package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/omar-581/DhowLine/controllers"
	"github.com/omar-581/DhowLine/middleware"
)

// initAdminRoutes initializes all admin-related routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		// Public admin routes
		admin.POST("/login", controllers.AdminLogin)
		admin.POST("/logout", controllers.AdminLogout)

		// Protected admin routes
		admin.Use(middleware.AdminAuthMiddleware())
		{
			// Dashboard
			admin.GET("/dashboard/stats", controllers.GetDashboardStats)
			admin.GET("/dashboard/bookings-chart", controllers.GetBookingsChart)
			admin.GET("/dashboard/top-tours", controllers.GetTopTours)
			admin.GET("/dashboard/discount-usage", controllers.GetDiscountUsage)

			// Tour management
			admin.GET("/tours", controllers.AdminListTours)
			admin.POST("/tours", controllers.CreateTour)
			admin.PUT("/tours/:id", controllers.UpdateTour)
			admin.PATCH("/tours/:id/toggle", controllers.ToggleTourActive)
			admin.DELETE("/tours/:id", controllers.DeleteTour)

			// Category management
			admin.POST("/categories", controllers.CreateCategory)
			admin.PUT("/categories/:id", controllers.UpdateCategory)
			admin.PATCH("/categories/:id/toggle", controllers.ToggleCategoryBlocked)
			admin.DELETE("/categories/:id", controllers.DeleteCategory)

			// Location management
			admin.POST("/locations", controllers.CreateLocation)
			admin.PUT("/locations/:id", controllers.UpdateLocation)
			admin.DELETE("/locations/:id", controllers.DeleteLocation)

			// Review moderation
			admin.GET("/reviews", controllers.AdminListReviews)
			admin.PATCH("/reviews/:id/approve", controllers.ApproveReview)
			admin.DELETE("/reviews/:id", controllers.DeleteReview)

			// Discount management
			admin.GET("/discounts", controllers.ListDiscounts)
			admin.POST("/discounts", controllers.CreateDiscount)
			admin.GET("/discounts/:id", controllers.GetDiscount)
			admin.PUT("/discounts/:id", controllers.UpdateDiscount)
			admin.PATCH("/discounts/:id/toggle", controllers.ToggleDiscountActive)
			admin.DELETE("/discounts/:id", controllers.DeleteDiscount)

			// Booking management
			admin.GET("/bookings", controllers.AdminListBookings)
			admin.GET("/bookings/:id", controllers.AdminGetBooking)
			admin.PATCH("/bookings/:id/status", controllers.UpdateBookingStatus)
			admin.POST("/bookings/:id/notify", controllers.SendBookingNotification)
			admin.GET("/bookings/:id/voucher", controllers.DownloadBookingVoucher)

			// Exports
			admin.GET("/exports/bookings/csv", controllers.DownloadBookingsCSV)
			admin.GET("/exports/bookings/excel", controllers.DownloadBookingsExcel)

			// Email templates
			admin.GET("/email-templates", controllers.ListEmailTemplates)
			admin.GET("/email-templates/:id", controllers.GetEmailTemplate)
			admin.PUT("/email-templates/:id", controllers.UpdateEmailTemplate)
			admin.GET("/email-templates/:id/preview", controllers.PreviewEmailTemplate)

			// Site settings
			admin.PUT("/settings/site", controllers.UpdateSiteSettings)
			admin.PUT("/settings/footer", controllers.UpdateFooterSettings)

			// Media
			admin.POST("/uploads/images", controllers.UploadImage)

			// Chat inbox
			admin.GET("/chat/conversations", controllers.AdminListChatConversations)
			admin.GET("/chat/conversations/:id", controllers.AdminGetChatConversation)
			admin.PATCH("/chat/conversations/:id/close", controllers.CloseChatConversation)
		}
	}
}
