package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ridepoolhq/carpool-backend/internal/ledger"
	"github.com/ridepoolhq/carpool-backend/internal/observability"
)

// ListRides retrieves rides with optional search/origin/destination/date
// filters, sorted ascending by (date, time).
func ListRides(rides *ledger.RideLedger) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := rides.List(ledger.Filters{
			Search:      c.Query("search"),
			Origin:      c.Query("origin"),
			Destination: c.Query("destination"),
			Date:        c.Query("date"),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, gin.H{"rides": result})
	}
}

// CreateRide posts a new ride owned by the authenticated user. Wrongly-typed
// seats or price payloads fail binding and are reported as missing_fields.
func CreateRide(rides *ledger.RideLedger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt("userId")

		var input struct {
			Origin      string  `json:"origin"`
			Destination string  `json:"destination"`
			Date        string  `json:"date"`
			Time        string  `json:"time"`
			Seats       int     `json:"seats"`
			Price       float64 `json:"price"`
			Notes       string  `json:"notes"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, ledger.ErrMissingFields)
			return
		}

		ride, err := rides.Create(userID, ledger.RideInput{
			Origin:      input.Origin,
			Destination: input.Destination,
			Date:        input.Date,
			Time:        input.Time,
			Seats:       input.Seats,
			Price:       input.Price,
			Notes:       input.Notes,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		observability.RidesCreated.Inc()
		c.JSON(201, gin.H{"ride": ride})
	}
}

// JoinRide books one seat on the ride for the authenticated user.
func JoinRide(bookings *ledger.BookingLedger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt("userId")
		rideID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondError(c, ledger.ErrRideNotFound)
			return
		}

		booking, ride, err := bookings.Join(rideID, userID)
		if err != nil {
			respondError(c, err)
			return
		}

		observability.BookingsCreated.Inc()
		c.JSON(200, gin.H{"booking": booking, "ride": ride})
	}
}

// CancelBooking cancels the authenticated user's active booking on the ride.
// The ride in the response is null when the ride was deleted in the
// meantime.
func CancelBooking(bookings *ledger.BookingLedger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt("userId")
		rideID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondError(c, ledger.ErrBookingNotFound)
			return
		}

		booking, ride, err := bookings.Cancel(rideID, userID)
		if err != nil {
			respondError(c, err)
			return
		}

		observability.BookingsCancelled.Inc()
		c.JSON(200, gin.H{"booking": booking, "ride": ride})
	}
}

// DeleteRide removes a ride and all bookings referencing it. Driver only.
func DeleteRide(rides *ledger.RideLedger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt("userId")
		rideID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondError(c, ledger.ErrRideNotFound)
			return
		}

		if err := rides.Delete(rideID, userID); err != nil {
			respondError(c, err)
			return
		}

		observability.RidesDeleted.Inc()
		c.JSON(200, gin.H{"ok": true})
	}
}

// MyRides returns the rides the user drives and the rides the user has
// actively booked.
func MyRides(queries *ledger.Queries) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt("userId")

		driven, booked, err := queries.MyRides(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, gin.H{"driven": driven, "booked": booked})
	}
}
