package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxitracker/internal/domain/models"
)

// GET /api/taxi-types
// The catalog is static reference data; the form uses it to fill the
// class selector and preview per-km rates.
func TaxiTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"taxiTypes": models.TaxiTypes()})
}
