package routes

import (
	"github.com/genepreston69/hours-of-hope-tracker-sub000/config"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/controllers"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://hours.recoverypointwv.org",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			return origin == "https://hours.recoverypointwv.org" ||
				origin == "http://localhost:3000"
		},
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
			customers.POST("/import", controllers.ImportCustomers)
			customers.GET("/export", controllers.ExportCustomers)
		}

		// Facility location routes
		api.GET("/locations", controllers.GetLocations)

		// Service entry routes
		entries := api.Group("/service-entries")
		{
			entries.POST("", controllers.CreateServiceEntry)
			entries.GET("", controllers.GetServiceEntries)
			entries.DELETE("/:id", controllers.DeleteServiceEntry)
			entries.POST("/import/validate", controllers.ValidateServiceEntriesImport)
			entries.POST("/import", controllers.ImportServiceEntries)
			entries.GET("/export", controllers.ExportServiceEntriesCSV)
			entries.GET("/export/xlsx", controllers.ExportServiceEntriesXLSX)
		}

		// Weekly survey routes
		surveys := api.Group("/surveys")
		{
			surveys.POST("", controllers.CreateSurvey)
			surveys.GET("", controllers.GetSurveys)
			surveys.GET("/:id", controllers.GetSurvey)
			surveys.PUT("/:id", controllers.UpdateSurvey)
			surveys.POST("/:id/submit", controllers.SubmitSurvey)
			surveys.DELETE("/:id", controllers.DeleteSurvey)
		}

		// Incident report routes
		incidents := api.Group("/incident-reports")
		{
			incidents.GET("", controllers.GetIncidentReports)
			incidents.PUT("/draft", controllers.SaveIncidentDraft)
			incidents.GET("/:id", controllers.GetIncidentReport)
			incidents.GET("/:id/wizard", controllers.GetIncidentWizard)
			incidents.POST("/:id/submit", controllers.SubmitIncidentReport)
			incidents.PUT("/:id/review", controllers.ReviewIncidentReport)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboard)

		// Settings routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", controllers.UpdateProfile)
		}

		recipients := api.Group("/recipients")
		{
			recipients.GET("", controllers.GetRecipients)
			recipients.POST("", controllers.CreateRecipient)
			recipients.PUT("/:id", controllers.UpdateRecipient)
			recipients.DELETE("/:id", controllers.DeleteRecipient)
		}
	}

	return r
}
