package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/omar-581/DhowLine/controllers"
)

// initPublicRoutes initializes the customer-facing routes
func initPublicRoutes(router *gin.RouterGroup) {
	// Catalog
	router.GET("/tours", controllers.ListTours)
	router.GET("/tours/:slug", controllers.GetTourBySlug)
	router.GET("/tours/:slug/reviews", controllers.ListTourReviews)
	router.GET("/categories", controllers.ListCategories)
	router.GET("/locations", controllers.ListLocations)
	router.GET("/settings", controllers.GetSiteSettings)

	// Reviews
	router.POST("/reviews", controllers.CreateReview)

	// Checkout
	router.POST("/discounts/apply", controllers.ApplyDiscount)
	router.POST("/bookings", controllers.CreateBooking)
	router.GET("/bookings/:reference", controllers.GetBookingByReference)

	// Online payment
	router.POST("/payments/initiate", controllers.InitiateRazorpayPayment)
	router.POST("/payments/verify", controllers.VerifyRazorpayPayment)

	// Chat widget
	router.POST("/chat/messages", controllers.PostChatMessage)
	router.GET("/chat/history", controllers.GetChatHistory)
}
