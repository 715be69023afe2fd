package services

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxitracker/internal/domain"
	"taxitracker/internal/domain/models"
	"taxitracker/internal/repositories"
)

func newTripService() *TripService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewTripService(repositories.NewTripLedger(), log)
}

func distanceInput() models.TripInput {
	return models.TripInput{
		Date:       "2025-06-01",
		FareMode:   models.FareModeDistance,
		From:       "Majestic",
		To:         "Airport",
		TaxiType:   "Sedan",
		DriverName: "Ravi",
		DistanceKm: 100,
	}
}

func flatInput() models.TripInput {
	return models.TripInput{
		Date:          "2025-06-01",
		FareMode:      models.FareModeFlat,
		From:          "Majestic",
		To:            "Mysore",
		Vehicle:       "KA-01-1234",
		RentAmount:    2000,
		DieselAmount:  600,
		BalanceAmount: -150,
	}
}

func TestCreateDistanceTripAppliesDefaultsAndDerives(t *testing.T) {
	svc := newTripService()

	trip, err := svc.Create(distanceInput())
	require.NoError(t, err)

	assert.NotEmpty(t, trip.ID)
	assert.Equal(t, models.FareModeDistance, trip.FareMode)
	assert.Equal(t, models.DefaultPassengerCount, trip.PassengerCount)
	assert.Equal(t, models.DefaultDieselRate, trip.DieselRate)

	assert.Equal(t, 1250.0, trip.TripAmount)
	assert.InDelta(t, 6.667, trip.FuelConsumed, 0.001)
	assert.InDelta(t, 633.33, trip.DieselExpense, 0.01)
	assert.InDelta(t, 616.67, trip.NetProfit(), 0.01)

	assert.Equal(t, 1, svc.Ledger.Len())
}

func TestCreateFlatTrip(t *testing.T) {
	svc := newTripService()

	trip, err := svc.Create(flatInput())
	require.NoError(t, err)

	assert.Equal(t, models.FareModeFlat, trip.FareMode)
	assert.Equal(t, 2000.0, trip.Revenue())
	assert.Equal(t, 600.0, trip.Expense())
	assert.Equal(t, 1400.0, trip.NetProfit())
	assert.Equal(t, -150.0, trip.BalanceAmount)
}

func TestCreateInfersFareModeFromPopulatedFields(t *testing.T) {
	svc := newTripService()

	in := flatInput()
	in.FareMode = ""
	trip, err := svc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, models.FareModeFlat, trip.FareMode)

	in2 := distanceInput()
	in2.FareMode = ""
	trip2, err := svc.Create(in2)
	require.NoError(t, err)
	assert.Equal(t, models.FareModeDistance, trip2.FareMode)
}

func TestCreateValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.TripInput)
		check  func(error) bool
	}{
		{"missing date", func(in *models.TripInput) { in.Date = "" }, domain.IsValidation},
		{"malformed date", func(in *models.TripInput) { in.Date = "01/06/2025" }, domain.IsValidation},
		{"missing from", func(in *models.TripInput) { in.From = "  " }, domain.IsValidation},
		{"missing to", func(in *models.TripInput) { in.To = "" }, domain.IsValidation},
		{"negative passengers", func(in *models.TripInput) { in.PassengerCount = -2 }, domain.IsValidation},
		{"missing driver", func(in *models.TripInput) { in.DriverName = "" }, domain.IsValidation},
		{"negative distance", func(in *models.TripInput) { in.DistanceKm = -5 }, domain.IsValidation},
		{"unknown taxi type", func(in *models.TripInput) { in.TaxiType = "Tram" }, domain.IsUnknownTaxiType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTripService()
			in := distanceInput()
			tc.mutate(&in)

			_, err := svc.Create(in)
			assert.True(t, tc.check(err), "got %v", err)
			assert.Zero(t, svc.Ledger.Len(), "failed create must not store anything")
		})
	}
}

func TestCreateFlatValidation(t *testing.T) {
	svc := newTripService()

	in := flatInput()
	in.Vehicle = ""
	_, err := svc.Create(in)
	assert.True(t, domain.IsValidation(err), "got %v", err)

	in = flatInput()
	in.RentAmount = -100
	_, err = svc.Create(in)
	assert.True(t, domain.IsValidation(err), "got %v", err)
}

func TestUpdateReplacesRecord(t *testing.T) {
	svc := newTripService()
	created, err := svc.Create(distanceInput())
	require.NoError(t, err)

	in := distanceInput()
	in.DistanceKm = 10
	in.DieselRate = 100

	updated, err := svc.Update(created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 170.0, updated.TripAmount) // 50 + 10*12
	assert.Equal(t, 1, svc.Ledger.Len())
}

func TestUpdateUnknownID(t *testing.T) {
	svc := newTripService()
	svc.Create(distanceInput())

	_, err := svc.Update("no-such-id", distanceInput())
	assert.True(t, domain.IsNotFound(err), "got %v", err)
	assert.Equal(t, 1, svc.Ledger.Len())
}

func TestDelete(t *testing.T) {
	svc := newTripService()
	created, err := svc.Create(flatInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	assert.Zero(t, svc.Ledger.Len())

	err = svc.Delete(created.ID)
	assert.True(t, domain.IsNotFound(err), "got %v", err)
}

func TestQuoteDoesNotStore(t *testing.T) {
	svc := newTripService()

	fare, err := svc.Quote(distanceInput())
	require.NoError(t, err)
	assert.Equal(t, 1250.0, fare.TripAmount)
	assert.Zero(t, svc.Ledger.Len())

	flat, err := svc.Quote(flatInput())
	require.NoError(t, err)
	assert.Equal(t, 1400.0, flat.Profit)
	assert.Zero(t, svc.Ledger.Len())
}

func TestSummary(t *testing.T) {
	svc := newTripService()
	_, err := svc.Create(distanceInput())
	require.NoError(t, err)
	_, err = svc.Create(flatInput())
	require.NoError(t, err)

	totals := svc.Summary()
	assert.Equal(t, 2, totals.TripCount)
	assert.InDelta(t, totals.TotalRevenue-totals.TotalExpense, totals.TotalProfit, 1e-9)
	assert.InDelta(t, -150, totals.TotalBalance, 1e-9)
}
