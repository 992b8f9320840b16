package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// DB is the shared database handle, set by InitDB
var DB *gorm.DB

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	Port       string
	Env        string

	ResendAPIKey string
	OpenAIAPIKey string

	CloudinaryCloud  string
	CloudinaryKey    string
	CloudinarySecret string

	RedisAddr     string
	RedisPassword string

	RazorpayKey    string
	RazorpaySecret string
}

// LoadConfig loads configuration from environment variables. A missing
// .env file is not fatal; the process environment is used as-is.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using process environment")
	}

	config := &Config{
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           os.Getenv("DB_PORT"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		Port:             os.Getenv("PORT"),
		Env:              os.Getenv("ENV"),
		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		CloudinaryCloud:  os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinarySecret: os.Getenv("CLOUDINARY_API_SECRET"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RazorpayKey:      os.Getenv("RAZORPAY_KEY"),
		RazorpaySecret:   os.Getenv("RAZORPAY_SECRET"),
	}

	return config, nil
}
