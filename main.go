package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"etherlite-site/pkg/api"
	"etherlite-site/pkg/config"
	"etherlite-site/pkg/metrics"
	"etherlite-site/pkg/services"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file loaded, using environment")
	}

	// Initialize configuration
	cfg := config.LoadConfig()

	gin.SetMode(cfg.GinMode)

	// Site and runtime metrics share one registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	siteMetrics := metrics.New(registry)

	// Initialize services
	submissionService := services.NewContactSubmissionService(siteMetrics, cfg, log.Default())

	// Initialize handlers and routes
	handlers := api.NewHandlers(submissionService, siteMetrics, cfg.SiteURL)
	router := api.NewRouter(cfg, handlers, registry)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Error starting server: %v", err)
	}
}
