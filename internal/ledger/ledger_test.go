package ledger

import (
	"path/filepath"
	"testing"

	"github.com/ridepoolhq/carpool-backend/internal/models"
	"github.com/ridepoolhq/carpool-backend/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.Open(filepath.Join(t.TempDir(), "data.json"))
}

func mustCreateRide(t *testing.T, rides *RideLedger, driverID, seats int) models.Ride {
	t.Helper()
	ride, err := rides.Create(driverID, RideInput{
		Origin:      "NYC",
		Destination: "Boston",
		Date:        "2026-02-01",
		Time:        "08:30",
		Seats:       seats,
		Price:       25,
	})
	if err != nil {
		t.Fatalf("create ride: %v", err)
	}
	return ride
}

// checkSeatInvariant asserts 0 <= seats_available <= seats_total for every
// ride in the persisted snapshot.
func checkSeatInvariant(t *testing.T, s *store.Store) {
	t.Helper()
	ds, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, r := range ds.Rides {
		if r.SeatsAvailable < 0 || r.SeatsAvailable > r.SeatsTotal {
			t.Fatalf("ride %d violates seat invariant: available=%d total=%d", r.ID, r.SeatsAvailable, r.SeatsTotal)
		}
	}
}
