package ledger

import (
	"github.com/ridepoolhq/carpool-backend/internal/models"
	"github.com/ridepoolhq/carpool-backend/internal/store"
)

// Queries is the read-only view over a user's rides. It never mutates the
// dataset and is not isolated from concurrent writers: each call sees
// whatever snapshot is on disk at call time.
type Queries struct {
	store *store.Store
}

func NewQueries(s *store.Store) *Queries {
	return &Queries{store: s}
}

// MyRides returns the rides the user drives and the rides the user holds an
// active booking on, the latter deduplicated by ride id.
func (q *Queries) MyRides(userID int) (driven, booked []models.Ride, err error) {
	ds, err := q.store.Load()
	if err != nil {
		return nil, nil, err
	}

	driven = []models.Ride{}
	for _, r := range ds.Rides {
		if r.DriverID == userID {
			driven = append(driven, r)
		}
	}

	bookedIDs := map[int]bool{}
	for _, b := range ds.Bookings {
		if b.UserID == userID && b.Active() {
			bookedIDs[b.RideID] = true
		}
	}
	booked = []models.Ride{}
	for _, r := range ds.Rides {
		if bookedIDs[r.ID] {
			booked = append(booked, r)
		}
	}
	return driven, booked, nil
}
