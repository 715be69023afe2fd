package services

import (
	"math"

	"github.com/sirupsen/logrus"

	"taxitracker/internal/domain"
	"taxitracker/internal/domain/models"
	"taxitracker/internal/repositories"
	"taxitracker/internal/utils"
)

// TripService validates raw submissions, derives the billing fields and
// keeps the ledger as the single source of truth. All mutation goes
// through here so derived fields can never drift from their inputs.
type TripService struct {
	Ledger *repositories.TripLedger
	Log    *logrus.Logger
}

func NewTripService(ledger *repositories.TripLedger, log *logrus.Logger) *TripService {
	if log == nil {
		log = logrus.New()
	}
	return &TripService{Ledger: ledger, Log: log}
}

func (s *TripService) Create(in models.TripInput) (models.TaxiTrip, error) {
	trip, err := s.buildTrip(in)
	if err != nil {
		return models.TaxiTrip{}, err
	}

	stored := s.Ledger.Insert(trip)
	s.Log.WithFields(logrus.Fields{
		"module": "trips", "action": "create", "trip_id": stored.ID, "fare_mode": stored.FareMode,
	}).Info("trip recorded")
	return stored, nil
}

// Update replaces the whole record; there is no partial patch.
func (s *TripService) Update(id string, in models.TripInput) (models.TaxiTrip, error) {
	trip, err := s.buildTrip(in)
	if err != nil {
		return models.TaxiTrip{}, err
	}

	stored, err := s.Ledger.Update(id, trip)
	if err != nil {
		return models.TaxiTrip{}, err
	}
	s.Log.WithFields(logrus.Fields{
		"module": "trips", "action": "update", "trip_id": id,
	}).Info("trip updated")
	return stored, nil
}

func (s *TripService) Delete(id string) error {
	if err := s.Ledger.Delete(id); err != nil {
		return err
	}
	s.Log.WithFields(logrus.Fields{
		"module": "trips", "action": "delete", "trip_id": id,
	}).Info("trip deleted")
	return nil
}

func (s *TripService) Get(id string) (models.TaxiTrip, error) {
	return s.Ledger.Get(id)
}

func (s *TripService) List() []models.TaxiTrip {
	return s.Ledger.List()
}

func (s *TripService) Summary() domain.Totals {
	return domain.Aggregate(s.Ledger.List())
}

// Quote derives the billing fields for an input without storing anything.
// The form calls this to show the figures while the user types.
func (s *TripService) Quote(in models.TripInput) (domain.FareBreakdown, error) {
	trip, err := s.buildTrip(in)
	if err != nil {
		return domain.FareBreakdown{}, err
	}

	if trip.FareMode == models.FareModeFlat {
		return domain.FareBreakdown{
			TripAmount:    trip.RentAmount,
			DieselExpense: trip.DieselAmount,
			TotalExpense:  trip.DieselAmount,
			Profit:        domain.ComputeFlatProfit(trip.RentAmount, trip.DieselAmount),
		}, nil
	}

	return domain.FareBreakdown{
		BaseFare:      trip.BaseFare,
		PerKmRate:     trip.PerKmRate,
		TripAmount:    trip.TripAmount,
		FuelConsumed:  trip.FuelConsumed,
		DieselExpense: trip.DieselExpense,
		TotalExpense:  trip.TotalExpense,
		Profit:        trip.NetProfit(),
	}, nil
}

// buildTrip turns raw input into a fully derived record. All validation
// the core performs lives here: required-field presence and numeric
// sanity, nothing more.
func (s *TripService) buildTrip(in models.TripInput) (models.TaxiTrip, error) {
	trip := models.TaxiTrip{
		From:          utils.NormalizeSpace(in.From),
		To:            utils.NormalizeSpace(in.To),
		Remarks:       utils.TrimOrEmpty(in.Remarks),
		DriverName:    utils.NormalizeSpace(in.DriverName),
		Vehicle:       utils.NormalizeSpace(in.Vehicle),
		TaxiType:      models.TaxiType(utils.TrimOrEmpty(in.TaxiType)),
		DistanceKm:    in.DistanceKm,
		DieselRate:    in.DieselRate,
		RentAmount:    in.RentAmount,
		DieselAmount:  in.DieselAmount,
		BalanceAmount: in.BalanceAmount,
	}

	if utils.TrimOrEmpty(in.Date) == "" {
		return models.TaxiTrip{}, domain.ValidationError{Field: "date", Msg: "is required"}
	}
	date, err := utils.ParseDate(in.Date)
	if err != nil {
		return models.TaxiTrip{}, domain.ValidationError{Field: "date", Msg: "must be YYYY-MM-DD", Err: err}
	}
	trip.Date = date

	if trip.From == "" {
		return models.TaxiTrip{}, domain.ValidationError{Field: "from", Msg: "is required"}
	}
	if trip.To == "" {
		return models.TaxiTrip{}, domain.ValidationError{Field: "to", Msg: "is required"}
	}

	switch in.PassengerCount {
	case 0:
		trip.PassengerCount = models.DefaultPassengerCount
	default:
		if in.PassengerCount < 0 {
			return models.TaxiTrip{}, domain.ValidationError{Field: "passengerCount", Msg: "must be positive"}
		}
		trip.PassengerCount = in.PassengerCount
	}

	// Balance is optional on either variant, signed by convention:
	// positive means the customer owes the operator.
	if math.IsNaN(trip.BalanceAmount) || math.IsInf(trip.BalanceAmount, 0) {
		return models.TaxiTrip{}, domain.ValidationError{Field: "balanceAmount", Msg: "must be a finite amount"}
	}

	trip.FareMode = in.FareMode
	if trip.FareMode == "" {
		// Legacy submissions carry no discriminator; the populated half
		// of the schema tells the variants apart.
		if trip.TaxiType != "" {
			trip.FareMode = models.FareModeDistance
		} else if trip.Vehicle != "" {
			trip.FareMode = models.FareModeFlat
		}
	}

	switch trip.FareMode {
	case models.FareModeDistance:
		if trip.DriverName == "" {
			return models.TaxiTrip{}, domain.ValidationError{Field: "driverName", Msg: "is required"}
		}
		if trip.DieselRate == 0 {
			trip.DieselRate = models.DefaultDieselRate
		}
		fare, err := domain.ComputeDistanceFare(trip.TaxiType, trip.DistanceKm, trip.DieselRate)
		if err != nil {
			return models.TaxiTrip{}, err
		}
		trip.BaseFare = fare.BaseFare
		trip.PerKmRate = fare.PerKmRate
		trip.TripAmount = fare.TripAmount
		trip.FuelConsumed = fare.FuelConsumed
		trip.DieselExpense = fare.DieselExpense
		trip.TotalExpense = fare.TotalExpense
		// Flat fields have no meaning here.
		trip.Vehicle = ""
		trip.RentAmount = 0
		trip.DieselAmount = 0

	case models.FareModeFlat:
		if trip.Vehicle == "" {
			return models.TaxiTrip{}, domain.ValidationError{Field: "vehicle", Msg: "is required"}
		}
		for field, v := range map[string]float64{
			"rentAmount":   trip.RentAmount,
			"dieselAmount": trip.DieselAmount,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return models.TaxiTrip{}, domain.ValidationError{Field: field, Msg: "must be a non-negative amount"}
			}
		}
		// Distance fields have no meaning here.
		trip.TaxiType = ""
		trip.DriverName = ""
		trip.DistanceKm = 0
		trip.DieselRate = 0
	default:
		return models.TaxiTrip{}, domain.ValidationError{Field: "fareMode", Msg: "must be distance or flat"}
	}

	return trip, nil
}
