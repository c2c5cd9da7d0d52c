package models

type Ride struct {
	ID             int     `json:"id"`
	DriverID       int     `json:"driver_id"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	SeatsTotal     int     `json:"seats_total"`
	SeatsAvailable int     `json:"seats_available"`
	Price          float64 `json:"price"`
	Notes          string  `json:"notes"`
	CreatedAt      string  `json:"created_at"`
}

func (r Ride) RecordID() int { return r.ID }

// TakeSeat decrements the available seat count, floored at zero.
func (r *Ride) TakeSeat() {
	if r.SeatsAvailable > 0 {
		r.SeatsAvailable--
	}
}

// ReleaseSeat increments the available seat count, capped at seats_total.
func (r *Ride) ReleaseSeat() {
	if r.SeatsAvailable < r.SeatsTotal {
		r.SeatsAvailable++
	}
}
