package config

import (
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Cloudinary is the shared Cloudinary handle, nil when not configured
var Cloudinary *cloudinary.Cloudinary

// InitCloudinary initializes the Cloudinary client from the environment
func InitCloudinary() error {
	cloud := os.Getenv("CLOUDINARY_CLOUD_NAME")
	if cloud == "" {
		return nil
	}

	cld, err := cloudinary.NewFromParams(
		cloud,
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		return err
	}

	Cloudinary = cld
	return nil
}
