package ledger

import (
	"github.com/ridepoolhq/carpool-backend/internal/models"
	"github.com/ridepoolhq/carpool-backend/internal/store"
)

// BookingLedger owns booking lifecycle. Seat counts and booking records are
// mutated together inside one store update, so both land in the same
// snapshot or neither does.
type BookingLedger struct {
	store *store.Store
}

func NewBookingLedger(s *store.Store) *BookingLedger {
	return &BookingLedger{store: s}
}

// Join books one seat on a ride for userID. A user cannot join their own
// ride, a full ride, or a ride they already hold an active booking on.
func (l *BookingLedger) Join(rideID, userID int) (models.Booking, *models.Ride, error) {
	var (
		booking models.Booking
		ride    models.Ride
	)
	err := l.store.Update(func(ds *models.Dataset) error {
		r := ds.RideByID(rideID)
		if r == nil {
			return ErrRideNotFound
		}
		if r.DriverID == userID {
			return ErrCannotJoinOwnRide
		}
		if r.SeatsAvailable <= 0 {
			return ErrNoSeatsLeft
		}
		if ds.ActiveBooking(rideID, userID) != nil {
			return ErrAlreadyJoined
		}

		booking = models.Booking{
			ID:        store.NextID(ds.Bookings),
			RideID:    rideID,
			UserID:    userID,
			Status:    models.BookingStatusActive,
			CreatedAt: models.NowUTC(),
		}
		r.TakeSeat()
		ds.Bookings = append(ds.Bookings, booking)
		ride = *r
		return nil
	})
	if err != nil {
		return models.Booking{}, nil, err
	}
	return booking, &ride, nil
}

// Cancel closes the caller's active booking on a ride. The transition is
// one-way; re-joining later creates a new booking record. The freed seat is
// handed back to the ride if the ride still exists — the ride may have been
// deleted independently, in which case the returned ride is nil and the
// cancellation still succeeds.
func (l *BookingLedger) Cancel(rideID, userID int) (models.Booking, *models.Ride, error) {
	var (
		booking models.Booking
		ride    *models.Ride
	)
	err := l.store.Update(func(ds *models.Dataset) error {
		b := ds.ActiveBooking(rideID, userID)
		if b == nil {
			return ErrBookingNotFound
		}

		if r := ds.RideByID(rideID); r != nil {
			r.ReleaseSeat()
			copied := *r
			ride = &copied
		}

		b.Status = models.BookingStatusCancelled
		b.CancelledAt = models.NowUTC()
		booking = *b
		return nil
	})
	if err != nil {
		return models.Booking{}, nil, err
	}
	return booking, ride, nil
}
