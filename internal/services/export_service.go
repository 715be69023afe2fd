package services

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"taxitracker/internal/domain"
	"taxitracker/internal/domain/models"
	"taxitracker/internal/repositories"
	"taxitracker/internal/utils"
)

// ExportService turns the current ledger into a downloadable XLSX workbook.
type ExportService struct {
	Ledger *repositories.TripLedger
	Log    *logrus.Logger
}

func NewExportService(ledger *repositories.TripLedger, log *logrus.Logger) *ExportService {
	if log == nil {
		log = logrus.New()
	}
	return &ExportService{Ledger: ledger, Log: log}
}

const exportSheet = "Taxi Trips"

var exportHeaders = []string{
	"Trip ID",
	"Date",
	"From",
	"To",
	"Distance (km)",
	"Taxi Type",
	"Driver Name",
	"Passenger Count",
	"Base Fare (₹)",
	"Per KM Rate (₹)",
	"Trip Amount (₹)",
	"Diesel Rate (₹/L)",
	"Fuel Consumed (L)",
	"Diesel Expense (₹)",
	"Total Expense (₹)",
	"Profit/Loss (₹)",
	"Remarks",
}

// TripsWorkbook renders the whole ledger, one row per trip in insertion
// order, and returns the workbook bytes plus the dated file name. An empty
// ledger is rejected before any bytes are produced.
func (s *ExportService) TripsWorkbook() ([]byte, string, error) {
	start := time.Now()

	trips := s.Ledger.List()
	if len(trips) == 0 {
		return nil, "", domain.EmptyLedgerError{}
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return nil, "", fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFD966"}},
	})
	if err != nil {
		return nil, "", fmt.Errorf("header style: %w", err)
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(exportSheet, cell, h)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	_ = f.SetCellStyle(exportSheet, "A1", lastHeader, headerStyle)

	for i, trip := range trips {
		writeTripRow(f, i+2, trip)
	}

	// Widen the columns users actually read.
	_ = f.SetColWidth(exportSheet, "A", "A", 38) // trip id
	_ = f.SetColWidth(exportSheet, "B", "B", 12) // date
	_ = f.SetColWidth(exportSheet, "C", "D", 18) // route
	_ = f.SetColWidth(exportSheet, "F", "G", 16) // taxi type, driver
	_ = f.SetColWidth(exportSheet, "I", "P", 14) // amounts
	_ = f.SetColWidth(exportSheet, "Q", "Q", 32) // remarks

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("xlsx write: %w", err)
	}

	filename := "Taxi_Trips_" + utils.DateStamp(time.Now()) + ".xlsx"
	s.Log.WithFields(logrus.Fields{
		"module": "export", "action": "xlsx",
		"rows":       len(trips),
		"file":       filename,
		"elapsed_ms": time.Since(start).Milliseconds(),
	}).Info("workbook generated")
	return buf.Bytes(), filename, nil
}

// writeTripRow fills one data row. Cells that only exist for the other
// fare variant render as "-", same as missing remarks.
func writeTripRow(f *excelize.File, row int, trip models.TaxiTrip) {
	write := func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(exportSheet, cell, v)
	}

	write(1, trip.ID)
	write(2, utils.FormatDateIN(trip.Date))
	write(3, trip.From)
	write(4, trip.To)

	if trip.FareMode == models.FareModeFlat {
		write(5, "-")
		write(6, orDash(trip.Vehicle))
		write(7, "-")
	} else {
		write(5, trip.DistanceKm)
		write(6, string(trip.TaxiType))
		write(7, trip.DriverName)
	}
	write(8, trip.PassengerCount)

	if trip.FareMode == models.FareModeFlat {
		write(9, "-")
		write(10, "-")
		write(12, "-")
		write(13, "-")
	} else {
		write(9, trip.BaseFare)
		write(10, trip.PerKmRate)
		write(12, trip.DieselRate)
		write(13, trip.FuelConsumed)
	}

	write(11, trip.Revenue())
	write(14, trip.Expense())
	write(15, trip.Expense())
	write(16, trip.NetProfit())
	write(17, orDash(trip.Remarks))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
