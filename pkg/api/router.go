package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"etherlite-site/pkg/assets"
	"etherlite-site/pkg/config"
	"etherlite-site/pkg/middleware"
)

// NewRouter wires the handlers into a gin engine. A nil gatherer disables
// the /metrics endpoint.
func NewRouter(cfg *config.Config, handlers *Handlers, gatherer prometheus.Gatherer) *gin.Engine {
	RegisterValidators()

	router := gin.Default()
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	router.StaticFS("/static", http.FS(assets.Static()))

	router.GET("/", handlers.LandingPage)
	router.POST("/contact", handlers.HandleContactForm)
	router.POST("/api/contact", handlers.HandleContactAPI)
	router.GET("/health", handlers.HealthCheck)

	if cfg.MetricsEnabled && gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	return router
}
