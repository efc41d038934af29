package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBooking_Nights(t *testing.T) {
	b := &Booking{
		StartDate: date(2026, 9, 10),
		EndDate:   date(2026, 9, 13),
	}
	assert.Equal(t, 3, b.Nights())
}

func TestBooking_StatusTransitions(t *testing.T) {
	created := &Booking{Status: StatusCreated}
	paid := &Booking{Status: StatusPaid}
	cancelled := &Booking{Status: StatusCancelled}

	assert.True(t, created.CanBePaid())
	assert.False(t, paid.CanBePaid())
	assert.False(t, cancelled.CanBePaid())

	assert.True(t, created.CanBeCancelled())
	assert.True(t, paid.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())

	assert.True(t, created.IsActive())
	assert.True(t, paid.IsActive())
	assert.False(t, cancelled.IsActive())
}

func TestBooking_StayStarted(t *testing.T) {
	b := &Booking{StartDate: date(2026, 9, 10)}

	// За день до заезда отмена еще возможна
	assert.False(t, b.StayStarted(date(2026, 9, 9)))

	// В день заезда проживание считается начавшимся, даже в полночь
	assert.True(t, b.StayStarted(date(2026, 9, 10)))
	assert.True(t, b.StayStarted(time.Date(2026, 9, 10, 23, 0, 0, 0, time.UTC)))

	assert.True(t, b.StayStarted(date(2026, 9, 11)))
}

func TestBooking_HoursUntilCheckIn(t *testing.T) {
	b := &Booking{StartDate: date(2026, 9, 10)}

	now := time.Date(2026, 9, 8, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 36.0, b.HoursUntilCheckIn(now))

	after := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, -12.0, b.HoursUntilCheckIn(after))
}

func TestRoom_FitsGuests(t *testing.T) {
	room := &Room{Capacity: 2}

	assert.True(t, room.FitsGuests(1))
	assert.True(t, room.FitsGuests(2))
	assert.False(t, room.FitsGuests(3))
	assert.False(t, room.FitsGuests(0))
}

func TestIsValidPaymentMethod(t *testing.T) {
	for _, m := range PaymentMethods {
		assert.True(t, IsValidPaymentMethod(m))
	}
	assert.False(t, IsValidPaymentMethod("crypto"))
	assert.False(t, IsValidPaymentMethod(""))
}
