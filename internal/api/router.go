package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/meteo-data/weather-ingest/internal/api/handlers"
	"github.com/meteo-data/weather-ingest/internal/api/middleware"
	"github.com/meteo-data/weather-ingest/internal/ingest"
	"github.com/meteo-data/weather-ingest/internal/observability"
	"github.com/meteo-data/weather-ingest/internal/repository"
)

// NewRouter creates and configures the Gin router with all routes and
// middleware. The store handle is constructed once here and passed into
// each handler as a dependency.
func NewRouter(pool *pgxpool.Pool) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.CorrelationMiddleware())
	r.Use(middleware.StructuredLogging())

	readingRepo := repository.NewReadingRepository(pool)
	metrics := observability.NewMetrics()
	ingester := ingest.NewIngester(readingRepo, metrics)

	ingestHandler := handlers.NewIngestHandler(ingester)
	recordsHandler := handlers.NewRecordsHandler(readingRepo)

	r.GET("/health", func(c *gin.Context) {
		if err := readingRepo.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "DB OK"})
	})

	r.POST("/ingest/csv", ingestHandler.HandleIngestCSV)
	r.GET("/cities", recordsHandler.HandleListCities)
	r.GET("/records", recordsHandler.HandleGetRecords)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
