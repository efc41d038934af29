package domain

import "time"

// PaymentMethod enumerates supported payment methods
type PaymentMethod string

const (
	MethodCash   PaymentMethod = "cash"
	MethodCard   PaymentMethod = "card"
	MethodOnline PaymentMethod = "online"
	MethodBank   PaymentMethod = "bank"
)

// PaymentMethods список допустимых методов оплаты
var PaymentMethods = []PaymentMethod{MethodCash, MethodCard, MethodOnline, MethodBank}

// IsValidPaymentMethod returns true if the method is one of the supported ones
func IsValidPaymentMethod(m PaymentMethod) bool {
	for _, valid := range PaymentMethods {
		if m == valid {
			return true
		}
	}
	return false
}

// PaymentStatus represents the state of a payment
type PaymentStatus string

const (
	PaymentSuccess   PaymentStatus = "success"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
)

// Payment represents a payment for a booking.
// A booking has at most one successful payment; the amount always equals
// the booking's final amount.
type Payment struct {
	ID        int64
	BookingID int64

	Amount      int64
	Method      PaymentMethod
	Status      PaymentStatus
	PaymentDate time.Time
}
