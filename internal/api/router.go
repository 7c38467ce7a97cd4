package api

import (
	"net/http"

	"solar-profit/internal/api/handlers"
	"solar-profit/internal/api/middleware"
	"solar-profit/internal/api/models"
	"solar-profit/internal/cache"
	"solar-profit/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Caches holds the server's result caches. Nil fields disable caching.
type Caches struct {
	Results *cache.TTLCache[models.EstimateResponse]
	IDs     *cache.TTLCache[string]
}

// NewCaches builds the caches described by cfg.
func NewCaches(cfg *config.Config) (Caches, error) {
	if !cfg.Cache.Enabled {
		return Caches{}, nil
	}
	ttl, err := cfg.Cache.TTLDuration()
	if err != nil {
		return Caches{}, err
	}
	return Caches{
		Results: cache.New[models.EstimateResponse](ttl),
		IDs:     cache.New[string](ttl),
	}, nil
}

// NewRouter wires middleware and routes.
func NewRouter(cfg *config.Config, caches Caches, log *logrus.Entry) *gin.Engine {
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS(cfg.Server.CORSOrigins))
	router.Use(middleware.Logger(log.WithField("component", "http")))
	router.Use(middleware.ErrorHandler(log))

	est := cfg.NewEstimator()
	strict := cfg.Estimator.StrictDomain
	estimateHandler := handlers.NewEstimateHandler(est, strict, caches.Results, caches.IDs, log.WithField("component", "estimate"))
	compareHandler := handlers.NewCompareHandler(est, strict, log.WithField("component", "compare"))
	fieldHandler := handlers.NewFieldHandler(log.WithField("component", "fields"))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/estimate", estimateHandler.Estimate)
		api.GET("/estimate", estimateHandler.EstimateQuery)
		api.GET("/estimate/:id", estimateHandler.GetEstimate)
		api.POST("/estimate/compare", compareHandler.Compare)
		api.POST("/estimate/sweep", compareHandler.Sweep)

		api.GET("/fields", fieldHandler.ListFields)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "NOT_FOUND", Message: "Not found"},
		})
	})

	return router
}
