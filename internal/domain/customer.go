package domain

import "time"

// Customer represents a hotel guest. Created once, referenced by many bookings.
type Customer struct {
	ID       int64
	FullName string
	Phone    string
	Email    string

	CreatedAt time.Time
}
