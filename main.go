package main

import (
	"fmt"
	"log"
	"os"

	"github.com/genepreston69/hours-of-hope-tracker-sub000/config"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/controllers"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/models"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/routes"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.FacilityLocation{},
		&models.ServiceEntry{},
		&models.RecoverySurvey{},
		&models.IncidentReport{},
		&models.NotificationRecipient{},
		&models.NotificationLog{},
	)

	config.SeedFacilityLocations()
}

func main() {
	notifier := services.NewNotificationService(config.DB)
	controllers.Notifier = notifier
	notifier.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
