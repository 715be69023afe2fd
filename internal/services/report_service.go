package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/sirupsen/logrus"

	"taxitracker/internal/domain"
	"taxitracker/internal/domain/models"
	"taxitracker/internal/repositories"
	"taxitracker/internal/utils"
)

// ReportService renders the ledger as a printable summary PDF.
type ReportService struct {
	Ledger *repositories.TripLedger
	Log    *logrus.Logger
}

func NewReportService(ledger *repositories.TripLedger, log *logrus.Logger) *ReportService {
	if log == nil {
		log = logrus.New()
	}
	return &ReportService{Ledger: ledger, Log: log}
}

// LedgerSummaryPDF returns the report bytes and a dated file name.
func (s *ReportService) LedgerSummaryPDF() ([]byte, string, error) {
	trips := s.Ledger.List()
	if len(trips) == 0 {
		return nil, "", domain.EmptyLedgerError{}
	}

	totals := domain.Aggregate(trips)

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Taxi Trip Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TAXI TRIP REPORT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Generated : "+utils.FormatDateIN(time.Now()))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Summary")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	summaryLines := []string{
		fmt.Sprintf("Trips          : %d", totals.TripCount),
		"Total Revenue  : " + utils.FormatINR(totals.TotalRevenue),
		"Total Expense  : " + utils.FormatINR(totals.TotalExpense),
		"Total Balance  : " + utils.FormatINR(totals.TotalBalance),
		"Net Profit     : " + utils.FormatINR(totals.TotalProfit),
	}
	for _, line := range summaryLines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Trips")
	pdf.Ln(8)

	widths := []float64{24, 70, 45, 40, 32, 32, 32}
	headers := []string{"Date", "Route", "Vehicle / Type", "Driver", "Revenue", "Expense", "Profit"}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, trip := range trips {
		cols := []string{
			utils.FormatDateIN(trip.Date),
			trip.From + " -> " + trip.To,
			tripVehicleLabel(trip),
			safe(trip.DriverName, "-"),
			utils.FormatINR(trip.Revenue()),
			utils.FormatINR(trip.Expense()),
			utils.FormatINR(trip.NetProfit()),
		}
		for i, col := range cols {
			pdf.CellFormat(widths[i], 7, col, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := "Taxi_Report_" + utils.DateStamp(time.Now()) + ".pdf"
	s.Log.WithFields(logrus.Fields{
		"module": "report", "action": "pdf", "rows": len(trips), "file": filename,
	}).Info("report generated")
	return buf.Bytes(), filename, nil
}

func tripVehicleLabel(trip models.TaxiTrip) string {
	if trip.FareMode == models.FareModeFlat {
		return safe(trip.Vehicle, "-")
	}
	return string(trip.TaxiType)
}

func safe(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
