package services

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"taxitracker/internal/domain"
	"taxitracker/internal/repositories"
)

func TestLedgerSummaryPDF(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	ledger := repositories.NewTripLedger()
	trips := NewTripService(ledger, log)
	reports := NewReportService(ledger, log)

	if _, _, err := reports.LedgerSummaryPDF(); !domain.IsEmptyLedger(err) {
		t.Fatalf("expected empty ledger error, got %v", err)
	}

	if _, err := trips.Create(distanceInput()); err != nil {
		t.Fatalf("create trip: %v", err)
	}
	if _, err := trips.Create(flatInput()); err != nil {
		t.Fatalf("create trip: %v", err)
	}

	pdf, filename, err := reports.LedgerSummaryPDF()
	if err != nil {
		t.Fatalf("LedgerSummaryPDF returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("LedgerSummaryPDF returned empty data")
	}
	if !strings.HasPrefix(filename, "Taxi_Report_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}
