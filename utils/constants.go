package utils

// Application constants
const (
	// Application name
	AppName = "DhowLine"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// JWT token expiration (24 hours)
	JWTExpiration = "24h"

	// Maximum file size for uploads (5MB)
	MaxFileSize = 5 * 1024 * 1024

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// Minimum rating
	MinRating = 1

	// Maximum rating
	MaxRating = 5
)

// Error messages
const (
	// Authentication errors
	ErrInvalidCredentials = "Invalid email or password"
	ErrInvalidToken       = "Invalid or expired token"
	ErrUnauthorized       = "Unauthorized access"

	// Validation errors
	ErrInvalidEmail    = "Invalid email format"
	ErrInvalidPhone    = "Invalid phone number format"
	ErrInvalidRating   = "Rating must be between 1 and 5"
	ErrInvalidFileType = "Invalid file type. Allowed types: jpg, jpeg, png, webp"
	ErrFileTooLarge    = "File size exceeds 5MB limit"

	// Database errors
	ErrRecordNotFound = "Record not found"

	// Server errors
	ErrInternalServer = "Internal server error"
)

// Success messages
const (
	MsgLoginSuccess   = "Login successful"
	MsgLogoutSuccess  = "Logout successful"
	MsgCreateSuccess  = "Created successfully"
	MsgUpdateSuccess  = "Updated successfully"
	MsgDeleteSuccess  = "Deleted successfully"
	MsgUploadSuccess  = "File uploaded successfully"
	MsgBookingPlaced  = "Booking placed successfully"
	MsgEmailSent      = "Email sent successfully"
	MsgReviewReceived = "Review submitted and awaiting approval"
)
