package create_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomUnavailable возвращается, когда номер занят на выбранные даты
	ErrRoomUnavailable = errors.New("create_booking: room is not available for these dates")

	// ErrRoomCapacityExceeded возвращается, когда гостей больше вместимости номера
	ErrRoomCapacityExceeded = errors.New("create_booking: guests count exceeds room capacity")

	// ErrInvalidDate возвращается при некорректных датах заезда и выезда
	ErrInvalidDate = errors.New("create_booking: invalid booking dates")

	// ErrInvalidCustomer возвращается при некорректных данных клиента
	ErrInvalidCustomer = errors.New("create_booking: invalid customer data")

	// ErrCustomerNotFound возвращается, когда указанный customerID не существует
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
