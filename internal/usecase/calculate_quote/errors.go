package calculate_quote

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("calculate_quote: room not found")

	// ErrRoomCapacityExceeded возвращается, когда гостей больше вместимости номера
	ErrRoomCapacityExceeded = errors.New("calculate_quote: guests count exceeds room capacity")

	// ErrInvalidDate возвращается при некорректных датах заезда и выезда
	ErrInvalidDate = errors.New("calculate_quote: invalid booking dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calculate_quote: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calculate_quote: internal error")
)
