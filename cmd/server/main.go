package main

import (
	"log"
	"net/http"

	"crewquick/internal/config"
	"crewquick/internal/logger"
	"crewquick/internal/middleware"
	"crewquick/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	cfg := config.Load()

	// Connect to the database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Token signing secret is process-wide, loaded once
	middleware.Setup(cfg.JWTSecret)

	// Setup Gin router
	r := routes.SetupRouter(db)

	// Wrap with CORS
	handler := middleware.EnableCORS(r, cfg.AllowedOrigin)

	log.Printf("🚀 Server running at :%s", cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
