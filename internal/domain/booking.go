package domain

import "time"

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	StatusCreated   BookingStatus = "created"
	StatusPaid      BookingStatus = "paid"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reservation of one room for one customer over a date range.
// The date range is half-open: [StartDate, EndDate), so EndDate is the checkout day.
// Once created, a booking is an immutable audit record except for the status field.
type Booking struct {
	ID         int64
	RoomID     int64
	CustomerID int64

	StartDate time.Time
	EndDate   time.Time

	GuestsCount int

	// Meal counts over the whole stay
	BreakfastCount int
	LunchCount     int
	DinnerCount    int

	// Discount percentages actually applied at creation time
	DiscountNights float64
	DiscountRepeat float64

	TotalAmount int64 // room rate * nights, before meals and discounts
	FinalAmount int64 // what is charged, after meals and discounts

	Status    BookingStatus
	CreatedAt time.Time
}

// Nights returns the number of nights in the booking
func (b *Booking) Nights() int {
	return int(b.EndDate.Sub(b.StartDate).Hours() / 24)
}

// IsActive returns true if the booking still holds the room (not cancelled)
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsPaid returns true if the booking has been paid
func (b *Booking) IsPaid() bool {
	return b.Status == StatusPaid
}

// CanBePaid returns true if the booking can transition to paid
func (b *Booking) CanBePaid() bool {
	return b.Status == StatusCreated
}

// CanBeCancelled returns true if the booking can transition to cancelled.
// Cancelled is terminal: a cancelled booking can never be cancelled again.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusCreated || b.Status == StatusPaid
}

// HoursUntilCheckIn returns the number of hours remaining before check-in
func (b *Booking) HoursUntilCheckIn(now time.Time) float64 {
	return b.StartDate.Sub(now).Hours()
}

// StayStarted returns true if the check-in date is today or in the past
// (date precision: same-day check-in counts as started)
func (b *Booking) StayStarted(now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !b.StartDate.After(today)
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	RoomID           *int64         // Фильтр по номеру (опционально)
	CustomerID       *int64         // Фильтр по клиенту (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	StartDate        *time.Time     // Заезд не раньше (опционально)
	EndDate          *time.Time     // Заезд не позже (опционально)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}
