package ledger

import (
	"errors"
	"testing"

	"github.com/ridepoolhq/carpool-backend/internal/models"
)

func TestJoinFailures(t *testing.T) {
	s := newTestStore(t)
	rides := NewRideLedger(s)
	bookings := NewBookingLedger(s)

	ride := mustCreateRide(t, rides, 1, 1)

	if _, _, err := bookings.Join(999, 2); !errors.Is(err, ErrRideNotFound) {
		t.Fatalf("expected ride_not_found, got %v", err)
	}
	if _, _, err := bookings.Join(ride.ID, 1); !errors.Is(err, ErrCannotJoinOwnRide) {
		t.Fatalf("expected cannot_join_own_ride, got %v", err)
	}

	if _, _, err := bookings.Join(ride.ID, 2); err != nil {
		t.Fatalf("join: %v", err)
	}
	if _, _, err := bookings.Join(ride.ID, 2); !errors.Is(err, ErrAlreadyJoined) {
		t.Fatalf("expected already_joined, got %v", err)
	}
	if _, _, err := bookings.Join(ride.ID, 3); !errors.Is(err, ErrNoSeatsLeft) {
		t.Fatalf("expected no_seats_left, got %v", err)
	}

	checkSeatInvariant(t, s)
}

// Full seat lifecycle: fill the ride, reject the overflow, free a seat by
// cancelling, re-join producing a fresh booking record.
func TestSeatLifecycle(t *testing.T) {
	s := newTestStore(t)
	rides := NewRideLedger(s)
	bookings := NewBookingLedger(s)

	const driverA = 1
	ride := mustCreateRide(t, rides, driverA, 2)

	bookingB, rideAfterB, err := bookings.Join(ride.ID, 2)
	if err != nil {
		t.Fatalf("B join: %v", err)
	}
	if rideAfterB.SeatsAvailable != 1 {
		t.Fatalf("expected 1 seat after B joins, got %d", rideAfterB.SeatsAvailable)
	}
	if bookingB.Status != models.BookingStatusActive {
		t.Fatalf("expected active booking, got %s", bookingB.Status)
	}

	_, rideAfterC, err := bookings.Join(ride.ID, 3)
	if err != nil {
		t.Fatalf("C join: %v", err)
	}
	if rideAfterC.SeatsAvailable != 0 {
		t.Fatalf("expected 0 seats after C joins, got %d", rideAfterC.SeatsAvailable)
	}

	if _, _, err := bookings.Join(ride.ID, 4); !errors.Is(err, ErrNoSeatsLeft) {
		t.Fatalf("D join: expected no_seats_left, got %v", err)
	}

	cancelled, rideAfterCancel, err := bookings.Cancel(ride.ID, 2)
	if err != nil {
		t.Fatalf("B cancel: %v", err)
	}
	if rideAfterCancel.SeatsAvailable != 1 {
		t.Fatalf("expected 1 seat after B cancels, got %d", rideAfterCancel.SeatsAvailable)
	}
	if cancelled.Status != models.BookingStatusCancelled || cancelled.CancelledAt == "" {
		t.Fatalf("cancel did not close the booking: %+v", cancelled)
	}

	rejoined, rideAfterRejoin, err := bookings.Join(ride.ID, 2)
	if err != nil {
		t.Fatalf("B re-join: %v", err)
	}
	if rideAfterRejoin.SeatsAvailable != 0 {
		t.Fatalf("expected 0 seats after B re-joins, got %d", rideAfterRejoin.SeatsAvailable)
	}
	if rejoined.ID == cancelled.ID {
		t.Fatalf("re-join must mint a new booking id, reused %d", rejoined.ID)
	}

	// History survives: the cancelled record is still there, and the user
	// never holds two active bookings for the same ride.
	ds, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	active := 0
	total := 0
	for _, b := range ds.Bookings {
		if b.UserID == 2 && b.RideID == ride.ID {
			total++
			if b.Active() {
				active++
			}
		}
	}
	if total != 2 || active != 1 {
		t.Fatalf("expected 2 bookings (1 active) for user 2, got %d (%d active)", total, active)
	}

	checkSeatInvariant(t, s)
}

func TestCancelFailures(t *testing.T) {
	s := newTestStore(t)
	rides := NewRideLedger(s)
	bookings := NewBookingLedger(s)

	ride := mustCreateRide(t, rides, 1, 2)

	if _, _, err := bookings.Cancel(ride.ID, 2); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected booking_not_found, got %v", err)
	}

	if _, _, err := bookings.Join(ride.ID, 2); err != nil {
		t.Fatalf("join: %v", err)
	}
	if _, _, err := bookings.Cancel(ride.ID, 2); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	// The transition is one-way; a second cancel finds no active booking.
	if _, _, err := bookings.Cancel(ride.ID, 2); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected booking_not_found on double cancel, got %v", err)
	}
}

func TestCancelSeatCapAtTotal(t *testing.T) {
	s := newTestStore(t)
	rides := NewRideLedger(s)
	bookings := NewBookingLedger(s)

	ride := mustCreateRide(t, rides, 1, 1)

	if _, _, err := bookings.Join(ride.ID, 2); err != nil {
		t.Fatalf("join: %v", err)
	}
	_, after, err := bookings.Cancel(ride.ID, 2)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if after.SeatsAvailable != after.SeatsTotal {
		t.Fatalf("expected seats back to total, got %d/%d", after.SeatsAvailable, after.SeatsTotal)
	}
	checkSeatInvariant(t, s)
}

// A ride may be deleted while bookings on it are still active elsewhere in
// history; cancelling such a booking still succeeds, with no ride returned.
func TestCancelAfterRideDeleted(t *testing.T) {
	s := newTestStore(t)
	rides := NewRideLedger(s)
	bookings := NewBookingLedger(s)

	rideB := mustCreateRide(t, rides, 1, 2)

	if _, _, err := bookings.Join(rideB.ID, 2); err != nil {
		t.Fatalf("join: %v", err)
	}

	// Remove the ride from under its booking by editing the dataset
	// directly; the ledger's own delete would cascade the booking away.
	err := s.Update(func(ds *models.Dataset) error {
		ds.Rides = ds.Rides[:0]
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	booking, ride, err := bookings.Cancel(rideB.ID, 2)
	if err != nil {
		t.Fatalf("cancel after delete: %v", err)
	}
	if ride != nil {
		t.Fatalf("expected nil ride, got %+v", ride)
	}
	if booking.Status != models.BookingStatusCancelled {
		t.Fatalf("booking not cancelled: %+v", booking)
	}
}
