package pay_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("pay_booking: booking not found")

	// ErrInvalidState возвращается при попытке оплатить оплаченное или отмененное бронирование
	ErrInvalidState = errors.New("pay_booking: booking cannot be paid in its current state")

	// ErrInvalidPaymentMethod возвращается при неизвестном методе оплаты
	ErrInvalidPaymentMethod = errors.New("pay_booking: invalid payment method")

	// ErrPaymentDeclined возвращается, когда эквайринг отклонил платеж
	ErrPaymentDeclined = errors.New("pay_booking: payment declined")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("pay_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("pay_booking: internal error")
)
