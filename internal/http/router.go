package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taxitracker/internal/config"
	h "taxitracker/internal/http/handlers"
	"taxitracker/internal/http/middleware"
	"taxitracker/internal/repositories"
	"taxitracker/internal/services"
)

func NewRouter(env config.Env, log *logrus.Logger, ledger *repositories.TripLedger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warnf("failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	tripHandler := &h.TripHandler{Trips: services.NewTripService(ledger, log)}
	exportHandler := &h.ExportHandler{
		Exports: services.NewExportService(ledger, log),
		Reports: services.NewReportService(ledger, log),
	}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/taxi-types", h.TaxiTypes)
		api.GET("/summary", tripHandler.Summary)

		trips := api.Group("/trips")
		trips.GET("", tripHandler.List)
		trips.POST("", tripHandler.Create)
		trips.POST("/quote", tripHandler.Quote)
		trips.PUT("/:id", tripHandler.Update)
		trips.DELETE("/:id", tripHandler.Delete)

		api.GET("/exports/trips.xlsx", exportHandler.TripsXLSX)
		api.GET("/reports/summary.pdf", exportHandler.SummaryPDF)
	}

	return r
}
