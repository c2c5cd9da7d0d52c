package models

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking transitions active -> cancelled exactly once and is never reopened;
// re-joining a ride produces a fresh record instead of reviving an old one.
type Booking struct {
	ID          int           `json:"id"`
	RideID      int           `json:"ride_id"`
	UserID      int           `json:"user_id"`
	Status      BookingStatus `json:"status"`
	CreatedAt   string        `json:"created_at"`
	CancelledAt string        `json:"cancelled_at,omitempty"`
}

func (b Booking) RecordID() int { return b.ID }

func (b Booking) Active() bool { return b.Status == BookingStatusActive }
