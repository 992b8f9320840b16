package main

import (
	"log"
	"os"

	"github.com/omar-581/DhowLine/config"
	"github.com/omar-581/DhowLine/controllers"
	"github.com/omar-581/DhowLine/jobs"
	"github.com/omar-581/DhowLine/routes"
	"github.com/omar-581/DhowLine/utils"
	"github.com/robfig/cron/v3"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	_, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Optional services; the app runs without them
	config.InitRedis()
	config.InitCloudinary()
	config.InitGoogleOAuth()

	// Create sample admin
	if err := controllers.CreateSampleAdmin(); err != nil {
		utils.LogError("Failed to create sample admin: %v", err)
		log.Fatal("Failed to create sample admin:", err)
	}

	// Seed booking email templates
	if err := controllers.SeedDefaultTemplates(); err != nil {
		utils.LogError("Failed to seed email templates: %v", err)
		log.Fatal("Failed to seed email templates:", err)
	}

	// Scheduled jobs
	scheduler := cron.New()
	if err := jobs.InitCronJobs(scheduler); err != nil {
		utils.LogError("Failed to initialize cron jobs: %v", err)
		log.Fatal("Failed to initialize cron jobs:", err)
	}

	// Set up router
	router := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	utils.LogInfo("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
