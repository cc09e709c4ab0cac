package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/solucioning/fleetforms/config"
	"github.com/solucioning/fleetforms/db"
	"github.com/solucioning/fleetforms/middleware"
	"github.com/solucioning/fleetforms/routes"
	"github.com/solucioning/fleetforms/storage"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Connect and migrate the database
	db.Init()

	store, err := buildStore()
	if err != nil {
		log.Fatalf("Failed to initialize storage backend %q: %v", config.StorageBackend, err)
	}

	if config.RunMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, store)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}

func buildStore() (storage.Store, error) {
	switch config.StorageBackend {
	case "minio":
		return storage.NewMinioStore()
	default:
		return storage.NewDiskStore(config.UploadDir)
	}
}
