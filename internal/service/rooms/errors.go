package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("room not found")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rooms service: internal error")
)
