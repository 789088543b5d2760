package main

import (
	"log"
	"net/http"
	"os"

	"fbs/config"
	"fbs/controllers"
	"fbs/jobs"
	"fbs/routes"
	"fbs/services"
	"fbs/services/logger"
	"fbs/services/notification"
	"fbs/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	validator.RegisterCustomValidators()

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)
	notifier := notification.NewMelodyService(m)

	bookingService := services.NewBookingService(services.BookingServiceOptions{
		DB:       config.DB,
		Redis:    config.RedisClient,
		Notifier: notifier,
		Logger:   appLogger,
	})
	issueService := services.NewIssueService(services.IssueServiceOptions{
		DB:       config.DB,
		Redis:    config.RedisClient,
		Notifier: notifier,
		Logger:   appLogger,
	})

	controllers.InitControllers(bookingService, issueService)
	jobs.SetNoShowSweeper(bookingService)

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
