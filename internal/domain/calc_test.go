package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxitracker/internal/domain/models"
)

func TestComputeDistanceFareSedan(t *testing.T) {
	fare, err := ComputeDistanceFare(models.TaxiTypeSedan, 100, 95)
	require.NoError(t, err)

	assert.Equal(t, 50.0, fare.BaseFare)
	assert.Equal(t, 12.0, fare.PerKmRate)
	assert.Equal(t, 1250.0, fare.TripAmount)
	assert.InDelta(t, 6.667, fare.FuelConsumed, 0.001)
	assert.InDelta(t, 633.33, fare.DieselExpense, 0.01)
	assert.Equal(t, fare.DieselExpense, fare.TotalExpense)
	assert.InDelta(t, 616.67, fare.Profit, 0.01)
}

func TestComputeDistanceFareNeverBelowBaseFare(t *testing.T) {
	for _, cfg := range models.TaxiTypes() {
		for _, km := range []float64{0, 1, 37.5, 1200} {
			fare, err := ComputeDistanceFare(cfg.Type, km, 95)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, fare.TripAmount, cfg.BaseFare, "type %s km %v", cfg.Type, km)
			assert.InDelta(t, km/cfg.MileageKmPerLiter, fare.FuelConsumed, 1e-9)
		}
	}
}

func TestComputeDistanceFareRejectsBadInput(t *testing.T) {
	cases := []struct {
		name       string
		distanceKm float64
		dieselRate float64
	}{
		{"negative distance", -1, 95},
		{"negative rate", 10, -0.5},
		{"nan distance", math.NaN(), 95},
		{"infinite rate", 10, math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeDistanceFare(models.TaxiTypeSedan, tc.distanceKm, tc.dieselRate)
			assert.True(t, IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestComputeDistanceFareUnknownType(t *testing.T) {
	_, err := ComputeDistanceFare("Bullock Cart", 10, 95)
	assert.True(t, IsUnknownTaxiType(err), "expected unknown taxi type error, got %v", err)
}

func TestComputeFlatProfit(t *testing.T) {
	assert.Equal(t, 1400.0, ComputeFlatProfit(2000, 600))
	assert.Equal(t, -250.0, ComputeFlatProfit(500, 750))
}

func TestAggregateEmpty(t *testing.T) {
	totals := Aggregate(nil)
	assert.Equal(t, Totals{}, totals)

	totals = Aggregate([]models.TaxiTrip{})
	assert.Zero(t, totals.TotalRevenue)
	assert.Zero(t, totals.TotalExpense)
	assert.Zero(t, totals.TotalProfit)
	assert.Zero(t, totals.TripCount)
}

func TestAggregateMixedLedger(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	trips := []models.TaxiTrip{
		{
			Date: date, FareMode: models.FareModeDistance,
			TripAmount: 1250, DieselExpense: 633.33, TotalExpense: 633.33,
		},
		{
			Date: date, FareMode: models.FareModeFlat,
			RentAmount: 2000, DieselAmount: 600, BalanceAmount: -150,
		},
		{
			Date: date, FareMode: models.FareModeFlat,
			RentAmount: 800, DieselAmount: 950, BalanceAmount: 400,
		},
	}

	totals := Aggregate(trips)
	assert.Equal(t, 3, totals.TripCount)
	assert.InDelta(t, 4050, totals.TotalRevenue, 1e-9)
	assert.InDelta(t, 2183.33, totals.TotalExpense, 1e-9)
	assert.InDelta(t, 250, totals.TotalBalance, 1e-9)
	assert.InDelta(t, totals.TotalRevenue-totals.TotalExpense, totals.TotalProfit, 1e-9)
}
