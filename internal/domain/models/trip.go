package models

import "time"

// FareMode selects which half of the union schema a trip uses.
type FareMode string

const (
	// FareModeDistance bills by catalog rates over the driven distance.
	FareModeDistance FareMode = "distance"
	// FareModeFlat records an agreed rent and an entered diesel expense.
	FareModeFlat FareMode = "flat"
)

const (
	DefaultDieselRate     = 95.0
	DefaultPassengerCount = 1
)

// TaxiTrip is one ledger record: the union of the distance-fare and
// flat-rent schemas, discriminated by FareMode. Derived fields are filled
// in full on every insert and update, never patched incrementally.
type TaxiTrip struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	FareMode FareMode  `json:"fareMode"`

	From           string `json:"from"`
	To             string `json:"to"`
	PassengerCount int    `json:"passengerCount"`
	Remarks        string `json:"remarks,omitempty"`

	// Distance-fare fields.
	TaxiType   TaxiType `json:"taxiType,omitempty"`
	DriverName string   `json:"driverName,omitempty"`
	DistanceKm float64  `json:"distanceKm,omitempty"`
	DieselRate float64  `json:"dieselRate,omitempty"`

	// Flat-rent fields. BalanceAmount is signed: positive means the
	// customer owes the operator.
	Vehicle       string  `json:"vehicle,omitempty"`
	RentAmount    float64 `json:"rentAmount,omitempty"`
	DieselAmount  float64 `json:"dieselAmount,omitempty"`
	BalanceAmount float64 `json:"balanceAmount,omitempty"`

	// Derived billing detail (distance mode only).
	BaseFare      float64 `json:"baseFare,omitempty"`
	PerKmRate     float64 `json:"perKmRate,omitempty"`
	TripAmount    float64 `json:"tripAmount,omitempty"`
	FuelConsumed  float64 `json:"fuelConsumed,omitempty"`
	DieselExpense float64 `json:"dieselExpense,omitempty"`
	TotalExpense  float64 `json:"totalExpense,omitempty"`
}

// Revenue is the billed side of the trip: the computed trip amount for
// distance trips, the agreed rent for flat trips.
func (t TaxiTrip) Revenue() float64 {
	if t.FareMode == FareModeFlat {
		return t.RentAmount
	}
	return t.TripAmount
}

// Expense is the cost side: derived diesel expense for distance trips,
// the entered diesel amount for flat trips.
func (t TaxiTrip) Expense() float64 {
	if t.FareMode == FareModeFlat {
		return t.DieselAmount
	}
	return t.TotalExpense
}

// NetProfit is always recomputed from its inputs so it cannot go stale.
func (t TaxiTrip) NetProfit() float64 {
	return t.Revenue() - t.Expense()
}

// TripInput is the raw user-supplied portion of a trip, before ids and
// derived fields exist. Date arrives as YYYY-MM-DD, matching the form's
// date input.
type TripInput struct {
	Date     string   `json:"date"`
	FareMode FareMode `json:"fareMode"`

	From           string `json:"from"`
	To             string `json:"to"`
	PassengerCount int    `json:"passengerCount"`
	Remarks        string `json:"remarks"`

	TaxiType   string  `json:"taxiType"`
	DriverName string  `json:"driverName"`
	DistanceKm float64 `json:"distanceKm"`
	DieselRate float64 `json:"dieselRate"`

	Vehicle       string  `json:"vehicle"`
	RentAmount    float64 `json:"rentAmount"`
	DieselAmount  float64 `json:"dieselAmount"`
	BalanceAmount float64 `json:"balanceAmount"`
}
