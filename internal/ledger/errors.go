package ledger

import "net/http"

// Error is a machine-readable failure code paired with the HTTP status the
// web layer should answer with. Every core failure path returns one of the
// fixed values below; nothing is swallowed.
type Error struct {
	Code   string
	Status int
}

func (e *Error) Error() string { return e.Code }

var (
	ErrMissingFields            = &Error{"missing_fields", http.StatusBadRequest}
	ErrEmailAndPasswordRequired = &Error{"email_and_password_required", http.StatusBadRequest}
	ErrPasswordTooShort         = &Error{"password_too_short", http.StatusBadRequest}
	ErrEmailExists              = &Error{"email_exists", http.StatusConflict}
	ErrInvalidCredentials       = &Error{"invalid_credentials", http.StatusUnauthorized}
	ErrRideNotFound             = &Error{"ride_not_found", http.StatusNotFound}
	ErrCannotJoinOwnRide        = &Error{"cannot_join_own_ride", http.StatusBadRequest}
	ErrNoSeatsLeft              = &Error{"no_seats_left", http.StatusBadRequest}
	ErrAlreadyJoined            = &Error{"already_joined", http.StatusConflict}
	ErrBookingNotFound          = &Error{"booking_not_found", http.StatusNotFound}
	ErrNotDriver                = &Error{"not_driver", http.StatusForbidden}
	ErrAuthRequired             = &Error{"auth_required", http.StatusUnauthorized}
)
