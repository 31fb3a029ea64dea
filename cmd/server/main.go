package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"hitchmap/internal/api"
	"hitchmap/internal/api/handlers"
	"hitchmap/internal/config"
	eng "hitchmap/internal/engine"
	"hitchmap/internal/observability"
)

func main() {
	// Load configuration (defaults + environment)
	cfg := config.Load()

	// Initialize metrics
	collector, err := observability.NewEngineCollector(nil)
	if err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	// Start the query engine worker
	worker := eng.NewWorker(cfg, collector)
	defer worker.Close()

	// Initialize handlers
	queryHandler := handlers.NewQueryHandler(worker)

	// Setup router
	router := api.NewRouter(queryHandler, collector.Handler())

	// Create Gin engine
	engine := gin.Default()
	router.Setup(engine)

	// Start server
	log.Printf("Starting spot query engine on %s", cfg.Server.Port)
	if err := engine.Run(cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
