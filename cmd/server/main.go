package main

import (
	"log"
	"net/http"
	"os"

	"gamevault/backend/internal/assets"
	"gamevault/backend/internal/auth"
	"gamevault/backend/internal/config"
	"gamevault/backend/internal/database"
	"gamevault/backend/internal/handler"
	"gamevault/backend/internal/hub"
	"gamevault/backend/internal/ingest"
	"gamevault/backend/internal/logger"
	"gamevault/backend/internal/store"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Gamevault Library API
// @version         1.0
// @description     Ingestion and read API for the game library.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	appLog, err := logger.New(config.AppConfig.LogMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLog.Sync()

	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	if err := os.MkdirAll(config.AppConfig.MediaDir, 0o755); err != nil {
		appLog.Fatal("failed to create media directory", "dir", config.AppConfig.MediaDir, "error", err)
	}

	// Wire the ingestion engine
	st := store.New(database.DB, appLog)
	flusher := assets.NewFlusher(database.DB, config.AppConfig.MediaDir, appLog)
	handler.IngestService = ingest.NewService(database.DB, st, flusher, hub.GlobalHub, appLog)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/token", handler.GetToken)
		}

		// Library routes (protected)
		libraryRoutes := apiV1.Group("/library")
		libraryRoutes.Use(auth.AuthMiddleware())
		{
			libraryRoutes.POST("/games", handler.AddGame)
			libraryRoutes.GET("/games", handler.GetGames)
			libraryRoutes.POST("/persons", handler.AddPerson)
			libraryRoutes.GET("/persons", handler.GetPersons)
			libraryRoutes.POST("/companies", handler.AddCompany)
			libraryRoutes.GET("/companies", handler.GetCompanies)
			libraryRoutes.POST("/characters", handler.AddCharacter)
			libraryRoutes.GET("/characters", handler.GetCharacters)
		}

		// Collection routes (protected)
		collectionRoutes := apiV1.Group("/collections")
		collectionRoutes.Use(auth.AuthMiddleware())
		{
			collectionRoutes.POST("", handler.CreateCollection)
			collectionRoutes.GET("", handler.GetCollections)
		}

		// Tag routes (protected)
		tagRoutes := apiV1.Group("/tags")
		tagRoutes.Use(auth.AuthMiddleware())
		{
			tagRoutes.GET("", handler.GetTags)
		}

		// Event stream (protected)
		eventRoutes := apiV1.Group("/events")
		eventRoutes.Use(auth.AuthMiddleware())
		{
			eventRoutes.GET("", handler.StreamEvents)
		}
	}

	appLog.Info("server starting", "port", config.AppConfig.Port)
	log.Fatal(router.Run(":" + config.AppConfig.Port))
}
