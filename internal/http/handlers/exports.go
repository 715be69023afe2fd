package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"taxitracker/internal/services"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

type ExportHandler struct {
	Exports *services.ExportService
	Reports *services.ReportService
}

// GET /api/exports/trips.xlsx
func (h *ExportHandler) TripsXLSX(c *gin.Context) {
	data, filename, err := h.Exports.TripsWorkbook()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentTypeXLSX, data)
}

// GET /api/reports/summary.pdf
func (h *ExportHandler) SummaryPDF(c *gin.Context) {
	data, filename, err := h.Reports.LedgerSummaryPDF()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentTypePDF, data)
}
