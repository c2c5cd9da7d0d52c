package models

import "time"

// Dataset is the whole persisted state. The three collections form a single
// consistency unit: every mutation loads all of them, changes them in memory
// and writes them back as one snapshot, so cross-entity invariants are always
// checked against one consistent view.
type Dataset struct {
	Users    []User    `json:"users"`
	Rides    []Ride    `json:"rides"`
	Bookings []Booking `json:"bookings"`
}

func NewDataset() *Dataset {
	return &Dataset{
		Users:    []User{},
		Rides:    []Ride{},
		Bookings: []Booking{},
	}
}

// Normalize replaces nil collections with empty ones so a dataset always
// serializes its three top-level arrays.
func (d *Dataset) Normalize() {
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Rides == nil {
		d.Rides = []Ride{}
	}
	if d.Bookings == nil {
		d.Bookings = []Booking{}
	}
}

// UserByID returns a pointer into the dataset, or nil.
func (d *Dataset) UserByID(id int) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// RideByID returns a pointer into the dataset, or nil.
func (d *Dataset) RideByID(id int) *Ride {
	for i := range d.Rides {
		if d.Rides[i].ID == id {
			return &d.Rides[i]
		}
	}
	return nil
}

// ActiveBooking returns the active booking for (rideID, userID), or nil.
// At most one such booking exists at any time.
func (d *Dataset) ActiveBooking(rideID, userID int) *Booking {
	for i := range d.Bookings {
		b := &d.Bookings[i]
		if b.RideID == rideID && b.UserID == userID && b.Active() {
			return b
		}
	}
	return nil
}

// NowUTC is the persisted timestamp format: UTC ISO-8601 with second
// precision and a trailing Z.
func NowUTC() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05Z")
}
