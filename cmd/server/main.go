package main

import (
	"log"
	"net/http"

	"ecobin_backend/internal/config"
	"ecobin_backend/internal/logger"
	"ecobin_backend/internal/middleware"
	"ecobin_backend/internal/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	settings := config.LoadSettings()

	// Setup Gin router
	r := routes.SetupRouter()

	// Recovery middleware
	r.Use(gin.Recovery())

	// Wrap with CORS
	handler := middleware.EnableCORS(r, settings.CORSOrigin)

	log.Printf("🚀 Server running at %s", settings.ServerAddr)
	log.Fatal(http.ListenAndServe(settings.ServerAddr, handler))
}
