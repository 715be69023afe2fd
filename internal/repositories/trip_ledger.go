package repositories

import (
	"sync"

	"github.com/google/uuid"

	"taxitracker/internal/domain"
	"taxitracker/internal/domain/models"
)

// TripLedger holds the session's trips in insertion order. It is purely
// in-memory: contents live and die with the process. The lock exists
// because the ledger is shared across HTTP requests, not because the
// domain needs concurrent mutation.
type TripLedger struct {
	mu    sync.RWMutex
	trips []models.TaxiTrip
}

func NewTripLedger() *TripLedger {
	return &TripLedger{}
}

// Insert assigns a fresh id, appends the trip and returns the stored copy.
// It never fails for a well-formed trip.
func (l *TripLedger) Insert(trip models.TaxiTrip) models.TaxiTrip {
	l.mu.Lock()
	defer l.mu.Unlock()

	trip.ID = uuid.NewString()
	l.trips = append(l.trips, trip)
	return trip
}

// Update replaces the record with the given id in place, keeping its
// position in the ledger.
func (l *TripLedger) Update(id string, trip models.TaxiTrip) (models.TaxiTrip, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.trips {
		if l.trips[i].ID == id {
			trip.ID = id
			l.trips[i] = trip
			return trip, nil
		}
	}
	return models.TaxiTrip{}, domain.NotFoundError{Resource: "trip", ID: id}
}

// Delete removes the record with the given id. A missing id is an error,
// not a no-op.
func (l *TripLedger) Delete(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.trips {
		if l.trips[i].ID == id {
			l.trips = append(l.trips[:i], l.trips[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "trip", ID: id}
}

// Get returns the record with the given id.
func (l *TripLedger) Get(id string) (models.TaxiTrip, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, t := range l.trips {
		if t.ID == id {
			return t, nil
		}
	}
	return models.TaxiTrip{}, domain.NotFoundError{Resource: "trip", ID: id}
}

// List returns a snapshot of the ledger in insertion order. Later
// mutations do not affect a previously returned snapshot.
func (l *TripLedger) List() []models.TaxiTrip {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.TaxiTrip, len(l.trips))
	copy(out, l.trips)
	return out
}

func (l *TripLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.trips)
}
