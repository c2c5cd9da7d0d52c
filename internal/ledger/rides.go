// Package ledger implements the booking and seat-allocation engine: ride
// lifecycle, booking lifecycle, user registration and the read-only queries,
// all running load-validate-mutate-persist cycles against the record store.
package ledger

import (
	"math"
	"sort"
	"strings"

	"github.com/ridepoolhq/carpool-backend/internal/models"
	"github.com/ridepoolhq/carpool-backend/internal/store"
)

// RideLedger owns ride lifecycle and the seat-count invariants
// (0 <= seats_available <= seats_total after every operation).
type RideLedger struct {
	store *store.Store
}

func NewRideLedger(s *store.Store) *RideLedger {
	return &RideLedger{store: s}
}

type RideInput struct {
	Origin      string
	Destination string
	Date        string
	Time        string
	Seats       int
	Price       float64
	Notes       string
}

func (l *RideLedger) Create(driverID int, in RideInput) (models.Ride, error) {
	in.Origin = strings.TrimSpace(in.Origin)
	in.Destination = strings.TrimSpace(in.Destination)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	in.Notes = strings.TrimSpace(in.Notes)

	if in.Origin == "" || in.Destination == "" || in.Date == "" || in.Time == "" || in.Seats <= 0 {
		return models.Ride{}, ErrMissingFields
	}

	var ride models.Ride
	err := l.store.Update(func(ds *models.Dataset) error {
		ride = models.Ride{
			ID:             store.NextID(ds.Rides),
			DriverID:       driverID,
			Origin:         in.Origin,
			Destination:    in.Destination,
			Date:           in.Date,
			Time:           in.Time,
			SeatsTotal:     in.Seats,
			SeatsAvailable: in.Seats,
			Price:          math.Round(in.Price*100) / 100,
			Notes:          in.Notes,
			CreatedAt:      models.NowUTC(),
		}
		ds.Rides = append(ds.Rides, ride)
		return nil
	})
	if err != nil {
		return models.Ride{}, err
	}
	return ride, nil
}

// Filters are optional and conjunctive. Search matches the concatenation of
// origin, destination and notes; origin and destination are substring
// matches; all three are case-insensitive. Date is an exact string match.
type Filters struct {
	Search      string
	Origin      string
	Destination string
	Date        string
}

func (f Filters) matches(r models.Ride) bool {
	if f.Search != "" {
		blob := strings.ToLower(r.Origin + " " + r.Destination + " " + r.Notes)
		if !strings.Contains(blob, strings.ToLower(f.Search)) {
			return false
		}
	}
	if f.Origin != "" && !containsFold(r.Origin, f.Origin) {
		return false
	}
	if f.Destination != "" && !containsFold(r.Destination, f.Destination) {
		return false
	}
	if f.Date != "" && r.Date != f.Date {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// List returns the matching rides sorted ascending by (date, time) as plain
// strings. The ordering is lexical rather than calendar-aware; a missing
// date or time sorts as the empty string, i.e. first.
func (l *RideLedger) List(f Filters) ([]models.Ride, error) {
	f.Search = strings.TrimSpace(f.Search)
	f.Origin = strings.TrimSpace(f.Origin)
	f.Destination = strings.TrimSpace(f.Destination)
	f.Date = strings.TrimSpace(f.Date)

	ds, err := l.store.Load()
	if err != nil {
		return nil, err
	}

	result := []models.Ride{}
	for _, r := range ds.Rides {
		if f.matches(r) {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].Time < result[j].Time
	})
	return result, nil
}

// Delete removes a ride and cascades deletion of every booking referencing
// it, regardless of booking status. Only the driver may delete a ride.
func (l *RideLedger) Delete(rideID, requesterID int) error {
	return l.store.Update(func(ds *models.Dataset) error {
		ride := ds.RideByID(rideID)
		if ride == nil {
			return ErrRideNotFound
		}
		if ride.DriverID != requesterID {
			return ErrNotDriver
		}

		rides := ds.Rides[:0]
		for _, r := range ds.Rides {
			if r.ID != rideID {
				rides = append(rides, r)
			}
		}
		ds.Rides = rides

		bookings := ds.Bookings[:0]
		for _, b := range ds.Bookings {
			if b.RideID != rideID {
				bookings = append(bookings, b)
			}
		}
		ds.Bookings = bookings
		return nil
	})
}
