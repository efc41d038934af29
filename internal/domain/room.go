package domain

import "time"

// Category represents a room category with a base nightly price
type Category struct {
	ID          int64
	Name        string
	Description string
	BasePrice   int64
}

// Room represents a hotel room. Every room belongs to exactly one category.
// The room number is unique across the hotel.
type Room struct {
	ID            int64
	Number        int
	CategoryID    int64
	Capacity      int
	PricePerNight int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FitsGuests returns true if the room can accommodate the given number of guests
func (r *Room) FitsGuests(guests int) bool {
	return guests >= 1 && guests <= r.Capacity
}
