package domain

import (
	"math"

	"taxitracker/internal/domain/models"
)

// FareBreakdown is the derived billing detail for one distance-fare trip.
type FareBreakdown struct {
	BaseFare      float64 `json:"baseFare"`
	PerKmRate     float64 `json:"perKmRate"`
	TripAmount    float64 `json:"tripAmount"`
	FuelConsumed  float64 `json:"fuelConsumed"`
	DieselExpense float64 `json:"dieselExpense"`
	TotalExpense  float64 `json:"totalExpense"`
	Profit        float64 `json:"profit"`
}

// Totals aggregates the ledger for summary cards and reports.
type Totals struct {
	TotalRevenue float64 `json:"totalRevenue"`
	TotalExpense float64 `json:"totalExpense"`
	TotalProfit  float64 `json:"totalProfit"`
	TotalBalance float64 `json:"totalBalance"`
	TripCount    int     `json:"tripCount"`
}

// ComputeDistanceFare derives the billed amount, fuel consumption, diesel
// expense and profit for a distance-fare trip:
//
//	tripAmount   = baseFare + distanceKm * perKmRate
//	fuelConsumed = distanceKm / mileage
//	expense      = fuelConsumed * dieselRate
func ComputeDistanceFare(taxiType models.TaxiType, distanceKm, dieselRate float64) (FareBreakdown, error) {
	if err := checkAmount("distanceKm", distanceKm); err != nil {
		return FareBreakdown{}, err
	}
	if err := checkAmount("dieselRate", dieselRate); err != nil {
		return FareBreakdown{}, err
	}

	cfg, ok := models.LookupTaxiType(taxiType)
	if !ok {
		return FareBreakdown{}, UnknownTaxiTypeError{TaxiType: string(taxiType)}
	}

	tripAmount := cfg.BaseFare + distanceKm*cfg.PerKmRate
	fuelConsumed := distanceKm / cfg.MileageKmPerLiter
	dieselExpense := fuelConsumed * dieselRate

	return FareBreakdown{
		BaseFare:      cfg.BaseFare,
		PerKmRate:     cfg.PerKmRate,
		TripAmount:    tripAmount,
		FuelConsumed:  fuelConsumed,
		DieselExpense: dieselExpense,
		TotalExpense:  dieselExpense,
		Profit:        tripAmount - dieselExpense,
	}, nil
}

// ComputeFlatProfit is the flat-rent variant's rule: net profit is the
// agreed rent minus the entered diesel expense.
func ComputeFlatProfit(rentAmount, dieselAmount float64) float64 {
	return rentAmount - dieselAmount
}

// Aggregate sums revenue and expense over the ledger. Total profit is the
// difference of the sums rather than a sum of per-trip profits, so any
// rounding applied downstream cannot drift the headline number. An empty
// ledger aggregates to all zeros.
func Aggregate(trips []models.TaxiTrip) Totals {
	t := Totals{TripCount: len(trips)}
	for _, trip := range trips {
		t.TotalRevenue += trip.Revenue()
		t.TotalExpense += trip.Expense()
		t.TotalBalance += trip.BalanceAmount
	}
	t.TotalProfit = t.TotalRevenue - t.TotalExpense
	return t
}

func checkAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ValidationError{Field: field, Msg: "must be a finite number"}
	}
	if v < 0 {
		return ValidationError{Field: field, Msg: "must not be negative"}
	}
	return nil
}
