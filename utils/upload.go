package utils

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/omar-581/DhowLine/config"
)

// AllowedImageTypes defines the allowed image file extensions
var AllowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadedImage describes a stored image and its WebP delivery variant
type UploadedImage struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
	WebPURL  string `json:"webp_url"`
}

// ValidateImageFile checks if the uploaded file is a valid image
func ValidateImageFile(file *multipart.FileHeader) error {
	if file.Size > MaxFileSize {
		return fmt.Errorf(ErrFileTooLarge)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !AllowedImageTypes[ext] {
		return fmt.Errorf(ErrInvalidFileType)
	}
	return nil
}

// UploadImage pushes an uploaded file to Cloudinary and returns the stored
// URL together with a WebP delivery URL.
func UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (*UploadedImage, error) {
	if err := ValidateImageFile(file); err != nil {
		return nil, err
	}
	if config.Cloudinary == nil {
		return nil, fmt.Errorf("cloudinary is not configured")
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	publicID := uuid.New().String()
	result, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:   folder,
		PublicID: publicID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %v", err)
	}

	return &UploadedImage{
		PublicID: result.PublicID,
		URL:      result.SecureURL,
		WebPURL:  WebPDeliveryURL(result.SecureURL),
	}, nil
}

// WebPDeliveryURL rewrites a Cloudinary delivery URL so the asset is served
// converted to WebP (f_webp transformation). Non-Cloudinary URLs are
// returned unchanged.
func WebPDeliveryURL(url string) string {
	const marker = "/upload/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return url
	}
	return url[:idx+len(marker)] + "f_webp/" + url[idx+len(marker):]
}
